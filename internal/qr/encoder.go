// Package qr turns text into styled QR code rasters.
//
// Symbol construction (version choice, Reed-Solomon, masking) is left to
// github.com/skip2/go-qrcode; this package only validates the request,
// draws the module grid with the requested colours, module size and border,
// and serializes the result to PNG.
package qr

import (
	"fmt"
	"image"
	"image/color"

	"github.com/nryeo/QRCODE-APP01/internal/model"
	"github.com/skip2/go-qrcode"
)

// Пределы растра: всё, что больше, отклоняется до выделения памяти
const (
	MaxModuleSize  = 100
	MaxBorderWidth = 100
	MaxImageSide   = 8192
)

// Encoder builds a QR raster for one request.
type Encoder interface {
	Generate(req model.EncodeRequest) (*Code, error)
}

// Code is a rasterized QR symbol.
type Code struct {
	// Version is the symbol version (1..40) chosen by the library.
	Version int
	// Modules is the side of the module grid without border.
	Modules int
	// Image has palette index 0 for the background and 1 for the fill.
	Image *image.Paletted
}

// SkipEncoder is the Encoder backed by skip2/go-qrcode.
type SkipEncoder struct {
	level qrcode.RecoveryLevel
}

// NewEncoder returns an encoder with the lowest error-correction level.
func NewEncoder() *SkipEncoder {
	return &SkipEncoder{level: qrcode.Low}
}

// Generate encodes req.Payload and draws it with req.Style.
func (e *SkipEncoder) Generate(req model.EncodeRequest) (*Code, error) {
	if req.Payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidInput)
	}
	st := req.Style
	if st.ModuleSize < 1 || st.ModuleSize > MaxModuleSize {
		return nil, fmt.Errorf("%w: module size %d not in [1, %d]", ErrInvalidInput, st.ModuleSize, MaxModuleSize)
	}
	if st.BorderWidth < 0 || st.BorderWidth > MaxBorderWidth {
		return nil, fmt.Errorf("%w: border width %d not in [0, %d]", ErrInvalidInput, st.BorderWidth, MaxBorderWidth)
	}
	fill, err := ParseHexColor(st.FillColor)
	if err != nil {
		return nil, err
	}
	back, err := ParseHexColor(st.BackColor)
	if err != nil {
		return nil, err
	}

	// QRCode накапливает состояние при кодировании, поэтому на каждый запрос новый
	q, err := qrcode.New(req.Payload, e.level)
	if err != nil {
		return nil, &EncodingError{Err: err}
	}
	q.DisableBorder = true
	bitmap := q.Bitmap()

	modules := 17 + 4*q.VersionNumber
	if len(bitmap) < modules {
		return nil, &EncodingError{Err: fmt.Errorf("bitmap is %d modules, version %d needs %d", len(bitmap), q.VersionNumber, modules)}
	}
	if side := (modules + 2*st.BorderWidth) * st.ModuleSize; side > MaxImageSide {
		return nil, fmt.Errorf("%w: image side %dpx exceeds %dpx", ErrInvalidInput, side, MaxImageSide)
	}
	// Срезаем тихую зону библиотеки, если она всё же есть
	off := (len(bitmap) - modules) / 2

	return &Code{
		Version: q.VersionNumber,
		Modules: modules,
		Image:   rasterize(bitmap, off, modules, st.ModuleSize, st.BorderWidth, back, fill),
	}, nil
}

func rasterize(bitmap [][]bool, off, modules, moduleSize, border int, back, fill color.Color) *image.Paletted {
	side := (modules + 2*border) * moduleSize
	img := image.NewPaletted(image.Rect(0, 0, side, side), color.Palette{back, fill})

	for y := 0; y < modules; y++ {
		for x := 0; x < modules; x++ {
			if !bitmap[y+off][x+off] {
				continue
			}
			x0 := (x + border) * moduleSize
			y0 := (y + border) * moduleSize
			for py := y0; py < y0+moduleSize; py++ {
				start := py*img.Stride + x0
				row := img.Pix[start : start+moduleSize]
				for i := range row {
					row[i] = 1
				}
			}
		}
	}
	return img
}
