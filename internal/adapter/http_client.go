package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/neverov-dev/passvault/models"
)

// HTTPClientConfig carries the settings for [NewHTTPVaultServer].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpVaultServer struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPVaultServer constructs the HTTP/REST implementation of
// [VaultServer]. Zero config values fall back to localhost and a 15 second
// request timeout.
func NewHTTPVaultServer(cfg HTTPClientConfig) VaultServer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpVaultServer{client: cli}
}

func (h *httpVaultServer) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpVaultServer) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpVaultServer) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

func (h *httpVaultServer) Login(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

func (h *httpVaultServer) ListEnvelopes(ctx context.Context) ([]models.VaultEnvelope, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vault/")
	if err != nil {
		return nil, fmt.Errorf("list envelopes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.ListEnvelopesResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode list envelopes response: %w", err)
	}

	return list.Items, nil
}

func (h *httpVaultServer) CreateEnvelope(ctx context.Context, ciphertext models.Ciphertext) (models.VaultEnvelope, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EnvelopeRequest{Ciphertext: ciphertext}).
		Post("/api/vault/")
	if err != nil {
		return models.VaultEnvelope{}, fmt.Errorf("create envelope request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultEnvelope{}, err
	}

	var created models.EnvelopeResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.VaultEnvelope{}, fmt.Errorf("decode create envelope response: %w", err)
	}

	return created.Item, nil
}

func (h *httpVaultServer) UpdateEnvelope(ctx context.Context, id string, ciphertext models.Ciphertext) (models.VaultEnvelope, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EnvelopeRequest{Ciphertext: ciphertext}).
		Put("/api/vault/" + id)
	if err != nil {
		return models.VaultEnvelope{}, fmt.Errorf("update envelope request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultEnvelope{}, err
	}

	var updated models.EnvelopeResponse
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.VaultEnvelope{}, fmt.Errorf("decode update envelope response: %w", err)
	}

	return updated.Item, nil
}

func (h *httpVaultServer) DeleteEnvelope(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/vault/" + id)
	if err != nil {
		return fmt.Errorf("delete envelope request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpVaultServer) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
