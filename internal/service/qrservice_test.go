package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/nryeo/QRCODE-APP01/internal/model"
	"github.com/nryeo/QRCODE-APP01/internal/qr"
	"github.com/nryeo/QRCODE-APP01/internal/service"
	"github.com/nryeo/QRCODE-APP01/internal/service/mocks"
	"github.com/nryeo/QRCODE-APP01/internal/shortener"
)

func newService(t *testing.T) (*service.QRService, *mocks.MockEncoder, *mocks.MockShortener) {
	ctrl := gomock.NewController(t)
	enc := mocks.NewMockEncoder(ctrl)
	sh := mocks.NewMockShortener(ctrl)
	return service.NewQRService(enc, sh, zap.NewNop(), model.DefaultStyle()), enc, sh
}

func realCode(t *testing.T, payload string) *qr.Code {
	t.Helper()
	code, err := qr.NewEncoder().Generate(model.EncodeRequest{Payload: payload, Style: model.DefaultStyle()})
	require.NoError(t, err)
	return code
}

func TestProcess_EmptyInput(t *testing.T) {
	// ни кодировщик, ни сокращатель вызываться не должны
	svc, _, _ := newService(t)

	for _, mode := range model.Modes() {
		for _, text := range []string{"", "   ", "\n\t"} {
			rm := svc.Process(context.Background(), model.Submission{Text: text, Mode: mode})
			assert.False(t, rm.HasImage())
			assert.Empty(t, rm.ShortURL)
			assert.Equal(t, []string{service.MsgEmptyInput}, rm.Warnings)
			assert.Empty(t, rm.Errors)
		}
	}
}

func TestProcess_Generate(t *testing.T) {
	svc, enc, _ := newService(t)
	want := model.EncodeRequest{Payload: "hello", Style: model.DefaultStyle()}
	enc.EXPECT().Generate(want).Return(realCode(t, "hello"), nil)

	rm := svc.Process(context.Background(), model.Submission{Text: "hello", Mode: model.ModeGenerate})

	assert.True(t, rm.HasImage())
	assert.Equal(t, 1, rm.Version)
	assert.Equal(t, 21, rm.Modules)
	assert.Empty(t, rm.ShortURL)
	assert.Empty(t, rm.Warnings)
	assert.Empty(t, rm.Errors)
	assert.Contains(t, rm.DataURI(), "data:image/png;base64,")
}

func TestProcess_DefaultModeIsGenerate(t *testing.T) {
	svc, enc, _ := newService(t)
	enc.EXPECT().Generate(gomock.Any()).Return(realCode(t, "x"), nil)

	rm := svc.Process(context.Background(), model.Submission{Text: "x"})
	assert.Equal(t, model.ModeGenerate, rm.Mode)
	assert.True(t, rm.HasImage())
}

func TestProcess_StyleOutOfRange(t *testing.T) {
	svc, _, _ := newService(t)

	styles := []model.Style{
		{ModuleSize: model.MinModuleSize - 1, BorderWidth: 4},
		{ModuleSize: model.MaxModuleSize + 1, BorderWidth: 4},
		{ModuleSize: 10, BorderWidth: model.MaxBorderWidth + 1},
	}
	for _, st := range styles {
		rm := svc.Process(context.Background(), model.Submission{Text: "x", Mode: model.ModeGenerate, Style: st})
		assert.False(t, rm.HasImage())
		assert.Equal(t, []string{service.MsgStyleOutOfRange}, rm.Warnings)
	}
}

func TestProcess_EncodingFailure(t *testing.T) {
	svc, enc, _ := newService(t)
	enc.EXPECT().Generate(gomock.Any()).Return(nil, &qr.EncodingError{Err: errors.New("content too long to encode")})

	rm := svc.Process(context.Background(), model.Submission{Text: "huge", Mode: model.ModeGenerate})
	assert.False(t, rm.HasImage())
	require.Len(t, rm.Errors, 1)
	assert.Contains(t, rm.Errors[0], "Error generating QR code")
	assert.Contains(t, rm.Errors[0], "content too long")
}

func TestProcess_InvalidStyleFromEncoder(t *testing.T) {
	svc, enc, _ := newService(t)
	enc.EXPECT().Generate(gomock.Any()).Return(nil, qr.ErrInvalidInput)

	rm := svc.Process(context.Background(), model.Submission{Text: "x", Style: model.Style{FillColor: "nope"}})
	assert.Empty(t, rm.Errors)
	require.Len(t, rm.Warnings, 1)
	assert.Contains(t, rm.Warnings[0], "Invalid QR code settings")
}

func TestProcess_ShortenInvalidURL(t *testing.T) {
	svc, _, _ := newService(t)

	rm := svc.Process(context.Background(), model.Submission{Text: "ftp://x.com", Mode: model.ModeShorten})
	assert.Empty(t, rm.ShortURL)
	assert.False(t, rm.HasImage())
	assert.Equal(t, []string{service.MsgInvalidURL}, rm.Warnings)
}

func TestProcess_Shorten(t *testing.T) {
	svc, _, sh := newService(t)
	sh.EXPECT().Shorten(gomock.Any(), "https://example.com").Return("https://tinyurl.com/xyz", nil)

	rm := svc.Process(context.Background(), model.Submission{Text: "https://example.com", Mode: model.ModeShorten})
	assert.Equal(t, "https://tinyurl.com/xyz", rm.ShortURL)
	assert.False(t, rm.HasImage())
	assert.Empty(t, rm.Warnings)
}

func TestProcess_ShortenFailure(t *testing.T) {
	svc, _, sh := newService(t)
	sh.EXPECT().Shorten(gomock.Any(), gomock.Any()).
		Return("", &shortener.ShorteningError{URL: "https://example.com", Err: errors.New("connection refused")})

	rm := svc.Process(context.Background(), model.Submission{Text: "https://example.com", Mode: model.ModeShorten})
	assert.Empty(t, rm.ShortURL)
	require.Len(t, rm.Errors, 1)
	assert.Contains(t, rm.Errors[0], "Error shortening URL")
}

func TestProcess_ShortenerDisabled(t *testing.T) {
	svc := service.NewQRService(qr.NewEncoder(), shortener.Disabled{}, zap.NewNop(), model.DefaultStyle())

	rm := svc.Process(context.Background(), model.Submission{Text: "https://example.com", Mode: model.ModeBoth})
	assert.True(t, rm.HasImage())
	assert.Equal(t, []string{service.MsgShortenerOff}, rm.Warnings)
	assert.Empty(t, rm.Errors)
}

func TestProcess_BothInvalidURLStillRendersQR(t *testing.T) {
	svc, enc, _ := newService(t)
	enc.EXPECT().Generate(gomock.Any()).Return(realCode(t, "plain text"), nil)

	rm := svc.Process(context.Background(), model.Submission{Text: "plain text", Mode: model.ModeBoth})
	assert.True(t, rm.HasImage())
	assert.Equal(t, []string{service.MsgInvalidURL}, rm.Warnings)
}

func TestProcess_BothEndToEnd(t *testing.T) {
	tiny := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("https://tinyurl.com/2p8kz3"))
	}))
	defer tiny.Close()

	svc := service.NewQRService(
		qr.NewEncoder(),
		shortener.NewTinyURL(tiny.URL, time.Second, zap.NewNop()),
		zap.NewNop(),
		model.DefaultStyle(),
	)

	rm := svc.Process(context.Background(), model.Submission{Text: "https://example.com", Mode: model.ModeBoth})
	assert.Empty(t, rm.Warnings)
	assert.Empty(t, rm.Errors)
	assert.True(t, rm.HasImage())
	assert.NotEmpty(t, rm.ShortURL)
	assert.NotEqual(t, "https://example.com", rm.ShortURL)
}

func TestGenerate_NoDefaultsApplied(t *testing.T) {
	svc := service.NewQRService(qr.NewEncoder(), shortener.Disabled{}, zap.NewNop(), model.DefaultStyle())

	_, _, err := svc.Generate(model.EncodeRequest{Payload: "x"})
	assert.ErrorIs(t, err, qr.ErrInvalidInput)

	data, code, err := svc.Generate(model.EncodeRequest{Payload: "x", Style: model.Style{
		FillColor: "#000", BackColor: "#fff", ModuleSize: 1, BorderWidth: 0,
	}})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, code.Modules, code.Image.Bounds().Dx())
}

func TestShorten_RejectsBeforeNetwork(t *testing.T) {
	svc, _, _ := newService(t)
	_, err := svc.Shorten(context.Background(), "example.com")
	assert.ErrorIs(t, err, shortener.ErrInvalidURL)
}
