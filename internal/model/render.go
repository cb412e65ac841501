package model

import "encoding/base64"

// Submission is one user action: the text, the selected mode and the style.
type Submission struct {
	Text  string
	Mode  Mode
	Style Style
}

// RenderModel is what the presenter shows after a submission.
type RenderModel struct {
	Text     string
	Mode     Mode
	Style    Style
	PNG      []byte
	Version  int
	Modules  int
	ShortURL string
	Warnings []string
	Errors   []string
}

// HasImage reports whether a QR image was produced.
func (m *RenderModel) HasImage() bool {
	return len(m.PNG) > 0
}

// DataURI returns the PNG inlined as a data: URI.
func (m *RenderModel) DataURI() string {
	if !m.HasImage() {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(m.PNG)
}

// Warn adds a validation message.
func (m *RenderModel) Warn(msg string) {
	m.Warnings = append(m.Warnings, msg)
}

// Fail adds an error message.
func (m *RenderModel) Fail(msg string) {
	m.Errors = append(m.Errors, msg)
}

// QRRequest тело запроса POST /api/qr.
type QRRequest struct {
	Text string `json:"text"`
	Style
}

// QRResponse тело ответа POST /api/qr.
type QRResponse struct {
	PNG     []byte `json:"png"`
	Version int    `json:"version"`
	Modules int    `json:"modules"`
}
