package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/nryeo/QRCODE-APP01/internal/model"
)

// Serialize encodes img as a standalone PNG.
func Serialize(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// PNG generates the symbol for req and serializes it.
func PNG(enc Encoder, req model.EncodeRequest) ([]byte, *Code, error) {
	code, err := enc.Generate(req)
	if err != nil {
		return nil, nil, err
	}
	data, err := Serialize(code.Image)
	if err != nil {
		return nil, nil, err
	}
	return data, code, nil
}
