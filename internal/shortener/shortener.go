// Package shortener talks to a TinyURL-compatible URL shortening service.
package shortener

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrInvalidURL — строка не начинается с http:// или https://.
	ErrInvalidURL = errors.New("invalid URL")
	// ErrShortening matches every *ShorteningError.
	ErrShortening = errors.New("url shortening failed")
	// ErrShortenerDisabled is returned by Disabled.
	ErrShortenerDisabled = errors.New("url shortener is disabled")
)

// Shortener turns a long URL into a short one.
type Shortener interface {
	Shorten(ctx context.Context, url string) (string, error)
}

// ShorteningError wraps a failed call to the external service.
type ShorteningError struct {
	URL string
	Err error
}

func (e *ShorteningError) Error() string {
	return "shorten " + e.URL + ": " + e.Err.Error()
}

func (e *ShorteningError) Unwrap() error {
	return e.Err
}

func (e *ShorteningError) Is(target error) bool {
	return target == ErrShortening
}

// IsValidURL only checks the scheme prefix; host and path are not inspected.
func IsValidURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Disabled is used when shortening is switched off in the configuration.
type Disabled struct{}

func (Disabled) Shorten(context.Context, string) (string, error) {
	return "", ErrShortenerDisabled
}
