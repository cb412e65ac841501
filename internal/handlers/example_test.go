package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"go.uber.org/zap"

	"github.com/nryeo/QRCODE-APP01/internal/handlers"
	"github.com/nryeo/QRCODE-APP01/internal/model"
	"github.com/nryeo/QRCODE-APP01/internal/qr"
	"github.com/nryeo/QRCODE-APP01/internal/service"
)

type stubShortener struct{}

func (stubShortener) Shorten(ctx context.Context, url string) (string, error) {
	return "https://tinyurl.com/example", nil
}

// ExampleHandler_ReceiveShorten демонстрирует работу метода ReceiveShorten.
func ExampleHandler_ReceiveShorten() {
	logger := zap.NewNop()
	svc := service.NewQRService(qr.NewEncoder(), stubShortener{}, logger, model.DefaultStyle())
	h := handlers.NewHandler(svc, logger, model.DefaultStyle())

	body := `{"url":"https://example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/shorten", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.ReceiveShorten(rec, req)
	resp := rec.Result()
	defer resp.Body.Close()

	var result map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&result)

	fmt.Println(resp.StatusCode)
	fmt.Println(result["result"])

	// Output:
	// 201
	// https://tinyurl.com/example
}

// ExampleHandler_GenerateJSON демонстрирует генерацию QR-кода через JSON API.
func ExampleHandler_GenerateJSON() {
	logger := zap.NewNop()
	svc := service.NewQRService(qr.NewEncoder(), stubShortener{}, logger, model.DefaultStyle())
	h := handlers.NewHandler(svc, logger, model.DefaultStyle())

	req := httptest.NewRequest(http.MethodPost, "/api/qr", strings.NewReader(`{"text":"hello"}`))
	rec := httptest.NewRecorder()
	h.GenerateJSON(rec, req)

	var result model.QRResponse
	_ = json.NewDecoder(rec.Body).Decode(&result)

	fmt.Println(rec.Code, result.Version, result.Modules)

	// Output:
	// 200 1 21
}
