package model

// Границы слайдеров формы
const (
	MinModuleSize  = 5
	MaxModuleSize  = 20
	MinBorderWidth = 1
	MaxBorderWidth = 10
)

// Значения по умолчанию
const (
	DefaultFillColor   = "#000000"
	DefaultBackColor   = "#FFFFFF"
	DefaultModuleSize  = 10
	DefaultBorderWidth = 4
)

// Style describes how a QR symbol is rasterized.
type Style struct {
	FillColor   string `json:"fill_color"`
	BackColor   string `json:"back_color"`
	ModuleSize  int    `json:"module_size"`
	BorderWidth int    `json:"border_width"`
}

// DefaultStyle returns black modules on white, 10px per module, 4 modules of border.
func DefaultStyle() Style {
	return Style{
		FillColor:   DefaultFillColor,
		BackColor:   DefaultBackColor,
		ModuleSize:  DefaultModuleSize,
		BorderWidth: DefaultBorderWidth,
	}
}

// WithDefaults fills zero fields from def.
func (s Style) WithDefaults(def Style) Style {
	if s.FillColor == "" {
		s.FillColor = def.FillColor
	}
	if s.BackColor == "" {
		s.BackColor = def.BackColor
	}
	if s.ModuleSize == 0 {
		s.ModuleSize = def.ModuleSize
	}
	if s.BorderWidth == 0 {
		s.BorderWidth = def.BorderWidth
	}
	return s
}

// InRange reports whether module size and border fit the form sliders.
func (s Style) InRange() bool {
	return s.ModuleSize >= MinModuleSize && s.ModuleSize <= MaxModuleSize &&
		s.BorderWidth >= MinBorderWidth && s.BorderWidth <= MaxBorderWidth
}

// EncodeRequest is everything the encoder needs for one symbol.
type EncodeRequest struct {
	Payload string
	Style   Style
}
