package qr

import "errors"

var (
	// ErrInvalidInput возвращается, если запрос нельзя закодировать в принципе:
	// пустой текст, неверный цвет или размеры.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEncoding matches every *EncodingError.
	ErrEncoding = errors.New("qr encoding failed")
)

// EncodingError wraps a failure reported by the symbol encoder,
// e.g. a payload that exceeds the capacity of version 40.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return "qr encoding failed: " + e.Err.Error()
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrEncoding) true for any EncodingError.
func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}
