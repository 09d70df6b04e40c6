package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/MKhiriev/go-empanadas/internal/utils"
	"github.com/MKhiriev/go-empanadas/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

type HTTPClientConfig struct {
	// BaseURL of the server; the scheme defaults to http.
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] for cfg.BaseURL.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg HTTPClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. The returned token's claims are decoded
// without verification; only the server can verify the signature.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&tokenResp).
		Post("/token")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseUnverifiedToken(tokenResp.AccessToken)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse token: %w", err)
	}

	h.SetToken(token.SignedString)
	h.logger.Debug().Str("username", token.Username()).Time("expires_at", token.Expiry()).Msg("logged in")
	return token, nil
}

func (h *httpServerAdapter) List(ctx context.Context, filter models.EmpanadaFilter) ([]models.Empanada, error) {
	var empanadas []models.Empanada

	req := h.client.R().
		SetContext(ctx).
		SetResult(&empanadas)
	if id, ok := filter.ID.Get(); ok {
		req.SetQueryParam("id", strconv.FormatInt(id, 10))
	}
	if name, ok := filter.Name.Get(); ok {
		req.SetQueryParam("name", name)
	}

	resp, err := req.Get("/empanadas")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return empanadas, nil
}

func (h *httpServerAdapter) Create(ctx context.Context, name string, quantity int64) (models.Empanada, error) {
	var created models.Empanada

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateEmpanada{Name: models.Some(name), Quantity: models.Some(quantity)}).
		SetResult(&created).
		Post("/empanadas")
	if err != nil {
		return models.Empanada{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Empanada{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) Update(ctx context.Context, id int64, update models.UpdateEmpanada) (models.Empanada, error) {
	var updated models.Empanada

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&updated).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Put("/empanadas/{id}")
	if err != nil {
		return models.Empanada{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Empanada{}, err
	}

	return updated, nil
}

func (h *httpServerAdapter) Delete(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/empanadas/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func parseUnverifiedToken(tokenString string) (models.Token, error) {
	var token models.Token

	parsed, _, err := jwt.NewParser().ParseUnverified(tokenString, &token)
	if err != nil {
		return models.Token{}, err
	}

	token.Token = parsed
	token.SignedString = tokenString
	return token, nil
}
