package shortener

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultEndpoint is the public TinyURL creation API.
const DefaultEndpoint = "https://tinyurl.com/api-create.php"

// ответ сервиса — одна строка, больше не читаем
const maxResponseSize = 4 << 10

// TinyURL calls GET <endpoint>?url=<long url> and returns the body.
type TinyURL struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewTinyURL creates a client. A zero timeout leaves the http.Client default.
func NewTinyURL(endpoint string, timeout time.Duration, logger *zap.Logger) *TinyURL {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &TinyURL{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Shorten returns the short link for longURL.
func (c *TinyURL) Shorten(ctx context.Context, longURL string) (string, error) {
	if !IsValidURL(longURL) {
		return "", fmt.Errorf("%w: %q must start with http:// or https://", ErrInvalidURL, longURL)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", &ShorteningError{URL: longURL, Err: err}
	}
	q := u.Query()
	q.Set("url", longURL)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", &ShorteningError{URL: longURL, Err: err}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", &ShorteningError{URL: longURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", &ShorteningError{URL: longURL, Err: err}
	}

	c.logger.Debug("shortener response",
		zap.String("url", longURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return "", &ShorteningError{URL: longURL, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	short := strings.TrimSpace(string(body))
	if short == "" {
		return "", &ShorteningError{URL: longURL, Err: fmt.Errorf("empty response")}
	}
	return short, nil
}
