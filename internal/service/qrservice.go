package service

//go:generate mockgen -source=qrservice.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nryeo/QRCODE-APP01/internal/model"
	"github.com/nryeo/QRCODE-APP01/internal/qr"
	"github.com/nryeo/QRCODE-APP01/internal/shortener"
	"go.uber.org/zap"
)

// Сообщения, которые видит пользователь
const (
	MsgEmptyInput       = "Please enter text or a URL."
	MsgInvalidURL       = "Please enter a valid URL starting with http:// or https://."
	MsgStyleOutOfRange  = "Module size must be between 5 and 20 and border between 1 and 10."
	MsgShortenerOff     = "URL shortening is disabled on this server."
	msgGenerateFailed   = "Error generating QR code: "
	msgShortenFailed    = "Error shortening URL: "
	msgInvalidQRRequest = "Invalid QR code settings: "
)

type Encoder interface {
	Generate(req model.EncodeRequest) (*qr.Code, error)
}

type Shortener interface {
	Shorten(ctx context.Context, url string) (string, error)
}

// QRService runs one submission through the encode and shorten steps.
// It holds no per-request state and is safe for concurrent use.
type QRService struct {
	Encoder   Encoder
	Shortener Shortener
	Logger    *zap.Logger
	Defaults  model.Style
}

func NewQRService(encoder Encoder, short Shortener, logger *zap.Logger, defaults model.Style) *QRService {
	return &QRService{
		Encoder:   encoder,
		Shortener: short,
		Logger:    logger,
		Defaults:  defaults,
	}
}

// Process evaluates a form submission and returns what should be displayed.
// Validation problems become warnings, failed external calls become errors;
// Process itself never fails.
func (s *QRService) Process(ctx context.Context, sub model.Submission) *model.RenderModel {
	mode := sub.Mode
	if mode == "" {
		mode = model.ModeGenerate
	}
	rm := &model.RenderModel{
		Text:  sub.Text,
		Mode:  mode,
		Style: sub.Style.WithDefaults(s.Defaults),
	}

	if strings.TrimSpace(sub.Text) == "" {
		rm.Warn(MsgEmptyInput)
		return rm
	}

	if mode.WantsQR() {
		s.renderQR(rm)
	}
	if mode.WantsShort() {
		s.renderShort(ctx, rm)
	}
	return rm
}

func (s *QRService) renderQR(rm *model.RenderModel) {
	if !rm.Style.InRange() {
		s.Logger.Warn("style out of range",
			zap.Int("module_size", rm.Style.ModuleSize),
			zap.Int("border_width", rm.Style.BorderWidth),
		)
		rm.Warn(MsgStyleOutOfRange)
		return
	}

	data, code, err := s.Generate(model.EncodeRequest{Payload: rm.Text, Style: rm.Style})
	switch {
	case errors.Is(err, qr.ErrInvalidInput):
		rm.Warn(msgInvalidQRRequest + err.Error())
		return
	case err != nil:
		rm.Fail(msgGenerateFailed + err.Error())
		return
	}
	rm.PNG = data
	rm.Version = code.Version
	rm.Modules = code.Modules
}

func (s *QRService) renderShort(ctx context.Context, rm *model.RenderModel) {
	short, err := s.Shorten(ctx, rm.Text)
	switch {
	case errors.Is(err, shortener.ErrInvalidURL):
		rm.Warn(MsgInvalidURL)
	case errors.Is(err, shortener.ErrShortenerDisabled):
		rm.Warn(MsgShortenerOff)
	case err != nil:
		rm.Fail(msgShortenFailed + err.Error())
	default:
		rm.ShortURL = short
	}
}

// Generate encodes and serializes a single symbol. No defaults are applied.
func (s *QRService) Generate(req model.EncodeRequest) ([]byte, *qr.Code, error) {
	data, code, err := qr.PNG(s.Encoder, req)
	if err != nil {
		if errors.Is(err, qr.ErrInvalidInput) {
			s.Logger.Warn("rejected qr request", zap.Error(err))
		} else {
			s.Logger.Error("failed to generate qr code", zap.Int("payload_len", len(req.Payload)), zap.Error(err))
		}
		return nil, nil, err
	}
	s.Logger.Debug("qr code generated",
		zap.Int("version", code.Version),
		zap.Int("modules", code.Modules),
		zap.Int("png_bytes", len(data)),
	)
	return data, code, nil
}

// Shorten checks the scheme prefix and asks the external service for a short link.
func (s *QRService) Shorten(ctx context.Context, url string) (string, error) {
	if !shortener.IsValidURL(url) {
		s.Logger.Warn("rejected url", zap.String("url", url))
		return "", fmt.Errorf("%w: %q", shortener.ErrInvalidURL, url)
	}
	short, err := s.Shortener.Shorten(ctx, url)
	if err != nil {
		if !errors.Is(err, shortener.ErrShortenerDisabled) {
			s.Logger.Error("failed to shorten url", zap.String("url", url), zap.Error(err))
		}
		return "", err
	}
	s.Logger.Debug("url shortened", zap.String("url", url), zap.String("short", short))
	return short, nil
}
