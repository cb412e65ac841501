package model

import (
	"fmt"
	"strings"
)

// Mode выбирает, что делать с введённым текстом.
type Mode string

const (
	ModeGenerate Mode = "generate"
	ModeShorten  Mode = "shorten"
	ModeBoth     Mode = "both"
)

// Подписи переключателя режимов в форме
var modeLabels = map[Mode]string{
	ModeGenerate: "Generate QR Code",
	ModeShorten:  "Shorten URL",
	ModeBoth:     "Both",
}

// Modes lists the modes in the order the form shows them.
func Modes() []Mode {
	return []Mode{ModeGenerate, ModeShorten, ModeBoth}
}

// ParseMode accepts either the machine name or the form label.
// An empty string means ModeGenerate.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ModeGenerate, nil
	}
	for _, m := range Modes() {
		if strings.EqualFold(s, string(m)) || strings.EqualFold(s, modeLabels[m]) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Label returns the human readable name of the mode.
func (m Mode) Label() string {
	if l, ok := modeLabels[m]; ok {
		return l
	}
	return string(m)
}

// WantsQR reports whether the mode produces an image.
func (m Mode) WantsQR() bool {
	return m == ModeGenerate || m == ModeBoth
}

// WantsShort reports whether the mode calls the shortener.
func (m Mode) WantsShort() bool {
	return m == ModeShorten || m == ModeBoth
}
