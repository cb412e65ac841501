package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/nryeo/QRCODE-APP01/internal/model"
	"github.com/nryeo/QRCODE-APP01/internal/qr"
	"github.com/nryeo/QRCODE-APP01/internal/shortener"
)

// DownloadFileName is the name offered for the downloaded image.
const DownloadFileName = "qr_code.png"

// ограничение на тело запроса
const maxBodySize = 1 << 20

// Service is implemented by service.QRService.
type Service interface {
	Process(ctx context.Context, sub model.Submission) *model.RenderModel
	Generate(req model.EncodeRequest) ([]byte, *qr.Code, error)
	Shorten(ctx context.Context, url string) (string, error)
}

// Handler обслуживает HTML-форму, скачивание и JSON API
type Handler struct {
	Service  Service
	Logger   *zap.Logger
	Defaults model.Style
}

func NewHandler(svc Service, logger *zap.Logger, defaults model.Style) *Handler {
	return &Handler{
		Service:  svc,
		Logger:   logger,
		Defaults: defaults,
	}
}

// Index renders the empty form.
func (h *Handler) Index(res http.ResponseWriter, req *http.Request) {
	h.render(res, &model.RenderModel{Mode: model.ModeGenerate, Style: h.Defaults})
}

// Submit handles the form post and renders the result page.
func (h *Handler) Submit(res http.ResponseWriter, req *http.Request) {
	req.Body = http.MaxBytesReader(res, req.Body, maxBodySize)
	if err := req.ParseForm(); err != nil {
		http.Error(res, "BadRequest", http.StatusBadRequest)
		return
	}

	mode, err := model.ParseMode(req.PostForm.Get("mode"))
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	style, err := styleFromValues(req.PostForm)
	if err != nil {
		rm := &model.RenderModel{Text: req.PostForm.Get("text"), Mode: mode, Style: h.Defaults}
		rm.Warn(err.Error())
		h.render(res, rm)
		return
	}

	rm := h.Service.Process(req.Context(), model.Submission{
		Text:  req.PostForm.Get("text"),
		Mode:  mode,
		Style: style,
	})
	h.render(res, rm)
}

func (h *Handler) render(res http.ResponseWriter, rm *model.RenderModel) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageView(rm)); err != nil {
		h.Logger.Error("failed to render page", zap.Error(err))
		http.Error(res, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.WriteHeader(http.StatusOK)
	res.Write(buf.Bytes())
}

// Download serves the PNG as an attachment named qr_code.png.
func (h *Handler) Download(res http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	text := q.Get("text")
	if strings.TrimSpace(text) == "" {
		http.Error(res, "text is empty", http.StatusBadRequest)
		return
	}
	style, err := styleFromValues(q)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}

	data, _, err := h.Service.Generate(model.EncodeRequest{Payload: text, Style: style.WithDefaults(h.Defaults)})
	if err != nil {
		http.Error(res, err.Error(), qrErrorStatus(err))
		return
	}

	res.Header().Set("Content-Type", "image/png")
	res.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", DownloadFileName))
	res.Header().Set("Content-Length", strconv.Itoa(len(data)))
	res.WriteHeader(http.StatusOK)
	res.Write(data)
}

// GenerateJSON handles POST /api/qr.
func (h *Handler) GenerateJSON(res http.ResponseWriter, req *http.Request) {
	var body model.QRRequest
	if err := decodeJSON(res, req, &body); err != nil {
		writeError(res, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(body.Text) == "" {
		writeError(res, http.StatusBadRequest, "text is empty")
		return
	}

	data, code, err := h.Service.Generate(model.EncodeRequest{
		Payload: body.Text,
		Style:   body.Style.WithDefaults(h.Defaults),
	})
	if err != nil {
		writeError(res, qrErrorStatus(err), err.Error())
		return
	}
	writeJSON(res, http.StatusOK, model.QRResponse{PNG: data, Version: code.Version, Modules: code.Modules})
}

// ReceiveShorten handles POST /api/shorten.
func (h *Handler) ReceiveShorten(res http.ResponseWriter, req *http.Request) {
	var body model.ShortenRequest
	if err := decodeJSON(res, req, &body); err != nil {
		writeError(res, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	originalURL := strings.TrimSpace(body.URL)
	if originalURL == "" {
		writeError(res, http.StatusBadRequest, "URL empty")
		return
	}

	short, err := h.Service.Shorten(req.Context(), originalURL)
	switch {
	case errors.Is(err, shortener.ErrInvalidURL):
		writeError(res, http.StatusBadRequest, "URL must start with http:// or https://")
	case errors.Is(err, shortener.ErrShortenerDisabled):
		writeError(res, http.StatusServiceUnavailable, err.Error())
	case err != nil:
		writeError(res, http.StatusBadGateway, err.Error())
	default:
		writeJSON(res, http.StatusCreated, model.ShortenResponse{Result: short})
	}
}

// Ping is a liveness probe.
func (h *Handler) Ping(res http.ResponseWriter, req *http.Request) {
	res.Header().Set("Content-Type", "text/plain")
	res.WriteHeader(http.StatusOK)
	res.Write([]byte("pong"))
}

func qrErrorStatus(err error) int {
	switch {
	case errors.Is(err, qr.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, qr.ErrEncoding):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// styleFromValues reads fill_color, back_color, module_size and border_width.
// Missing values stay zero so that defaults can be applied later.
func styleFromValues(v url.Values) (model.Style, error) {
	st := model.Style{
		FillColor: strings.TrimSpace(v.Get("fill_color")),
		BackColor: strings.TrimSpace(v.Get("back_color")),
	}
	var err error
	if st.ModuleSize, err = optionalInt(v, "module_size"); err != nil {
		return model.Style{}, err
	}
	if st.BorderWidth, err = optionalInt(v, "border_width"); err != nil {
		return model.Style{}, err
	}
	return st, nil
}

func optionalInt(v url.Values, key string) (int, error) {
	s := strings.TrimSpace(v.Get(key))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, s)
	}
	return n, nil
}

func decodeJSON(res http.ResponseWriter, req *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(res, req.Body, maxBodySize))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeJSON(res http.ResponseWriter, status int, data any) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	json.NewEncoder(res).Encode(data)
}

func writeError(res http.ResponseWriter, status int, message string) {
	writeJSON(res, status, model.ErrorResponse{Error: message})
}
