package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/nryeo/QRCODE-APP01/internal/handlers"
	"github.com/nryeo/QRCODE-APP01/internal/middleware"
)

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(middleware.GzipMiddleware)            // Gzip-сжатие

	r.Get("/", handler.Index)
	r.Post("/", handler.Submit)
	r.Get("/download", handler.Download)
	r.Get("/ping", handler.Ping)

	r.Route("/api", func(r chi.Router) {
		r.Post("/qr", handler.GenerateJSON)
		r.Post("/shorten", handler.ReceiveShorten)
	})
	return r
}
