package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/puwasa/pos-terminal/internal/config"
	"github.com/puwasa/pos-terminal/internal/session"
	"github.com/puwasa/pos-terminal/pkg/apperror"
)

// envelope is the backend's uniform response shape.
type envelope struct {
	Status       bool            `json:"status"`
	Data         json.RawMessage `json:"data"`
	ErrorMessage string          `json:"error_message"`
	Message      string          `json:"message"`
}

// TokenRefresher refreshes the session tokens after a 401. Implemented by
// the auth client; wired in after construction to avoid a dependency cycle.
type TokenRefresher interface {
	RefreshSession(ctx context.Context) error
}

// refreshLeeway is how close to expiry an access token may get before an
// authed request renews it up front instead of waiting for the 401.
const refreshLeeway = 30 * time.Second

// Client is the shared HTTP client for all backend endpoints: base URL,
// bearer injection from the token store, per-call timeout, envelope
// decoding, and a single transparent refresh-and-retry on 401.
type Client struct {
	baseURL   string
	http      *http.Client
	tokens    *session.TokenStore
	refresher TokenRefresher
	logger    *zap.Logger
}

// NewClient creates the shared backend client.
func NewClient(cfg *config.RemoteConfig, tokens *session.TokenStore, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// SetRefresher installs the 401 refresh hook.
func (c *Client) SetRefresher(r TokenRefresher) {
	c.refresher = r
}

func (c *Client) get(ctx context.Context, path string, authed bool) (*envelope, error) {
	return c.do(ctx, http.MethodGet, path, nil, authed)
}

func (c *Client) post(ctx context.Context, path string, body any, authed bool) (*envelope, error) {
	return c.do(ctx, http.MethodPost, path, body, authed)
}

func (c *Client) delete(ctx context.Context, path string, authed bool) (*envelope, error) {
	return c.do(ctx, http.MethodDelete, path, nil, authed)
}

func (c *Client) do(ctx context.Context, method, path string, body any, authed bool) (*envelope, error) {
	if authed {
		c.refreshIfStale(ctx, path)
	}

	resp, err := c.send(ctx, method, path, body, authed)
	if err != nil {
		return nil, apperror.NewTransportError(err)
	}

	// Expired session: refresh once and replay the request. Billing
	// operations themselves are never retried; this only re-establishes
	// the credential the operation runs under.
	if resp.StatusCode == http.StatusUnauthorized && authed && c.refresher != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		c.logger.Info("access token rejected, refreshing session", zap.String("path", path))
		if rerr := c.refresher.RefreshSession(ctx); rerr != nil {
			return nil, rerr
		}

		resp, err = c.send(ctx, method, path, body, authed)
		if err != nil {
			return nil, apperror.NewTransportError(err)
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewTransportError(err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, apperror.NewTransportError(fmt.Errorf("decoding response from %s: %w", path, err))
	}

	if !env.Status {
		msg := env.ErrorMessage
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("request to %s failed with status %d", path, resp.StatusCode)
		}
		return &env, apperror.NewRemoteError(msg)
	}

	return &env, nil
}

// refreshIfStale renews the access token before an authed request when its
// unverified expiry claim is within the leeway. Best effort: a failed
// refresh lets the request go out as-is and the 401 replay path take over.
func (c *Client) refreshIfStale(ctx context.Context, path string) {
	if c.refresher == nil || c.tokens.RefreshToken() == "" {
		return
	}
	if !c.tokens.AccessExpired(refreshLeeway) {
		return
	}

	c.logger.Info("access token stale, refreshing before request", zap.String("path", path))
	if err := c.refresher.RefreshSession(ctx); err != nil {
		c.logger.Warn("proactive token refresh failed", zap.Error(err))
	}
}

func (c *Client) send(ctx context.Context, method, path string, body any, authed bool) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return c.http.Do(req)
}

// decodeData unmarshals the envelope's data field into out.
func decodeData(env *envelope, out any) error {
	if len(env.Data) == 0 {
		return apperror.NewTransportError(fmt.Errorf("empty data in backend response"))
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return apperror.NewTransportError(fmt.Errorf("decoding backend data: %w", err))
	}
	return nil
}
