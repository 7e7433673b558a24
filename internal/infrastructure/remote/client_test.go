package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/puwasa/pos-terminal/internal/config"
	"github.com/puwasa/pos-terminal/internal/session"
	"github.com/puwasa/pos-terminal/pkg/apperror"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.TokenStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := session.NewTokenStore()
	c := NewClient(&config.RemoteConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, tokens, zap.NewNop())
	return c, tokens
}

func TestDo_DecodesEnvelopeData(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": true, "data": 42})
	}))

	env, err := c.get(context.Background(), "/x", false)
	require.NoError(t, err)

	var got int64
	require.NoError(t, decodeData(env, &got))
	assert.Equal(t, int64(42), got)
}

func TestDo_RemoteErrorMessageSurfacedVerbatim(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status":        false,
			"error_message": "Bill not found",
		})
	}))

	_, err := c.get(context.Background(), "/x", false)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
	assert.Equal(t, "Bill not found", appErr.Message)
}

func TestDo_FallsBackToMessageField(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status":  false,
			"message": "something went wrong",
		})
	}))

	_, err := c.get(context.Background(), "/x", false)
	require.Error(t, err)
	assert.Equal(t, "something went wrong", apperror.GetAppError(err).Message)
}

func TestDo_TransportErrorWrapped(t *testing.T) {
	tokens := session.NewTokenStore()
	c := NewClient(&config.RemoteConfig{
		BaseURL: "http://127.0.0.1:1", // nothing listening
		Timeout: 200 * time.Millisecond,
	}, tokens, zap.NewNop())

	_, err := c.get(context.Background(), "/x", false)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Code)
	assert.Contains(t, appErr.Message, "Billing service unreachable")
}

type stubRefresher struct {
	tokens *session.TokenStore
	calls  int
}

func (r *stubRefresher) RefreshSession(ctx context.Context) error {
	r.calls++
	r.tokens.Set("fresh-token", "refresh-2")
	return nil
}

func TestDo_RefreshesOnceAndReplaysOn401(t *testing.T) {
	// A token that still looks live locally but the backend has revoked:
	// only the 401 path can catch this.
	revoked := liveAccessToken(t)

	var seenTokens []string
	c, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		seenTokens = append(seenTokens, auth)
		if auth != "Bearer fresh-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"status": false, "error_message": "expired"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"status": true, "data": "ok"})
	}))

	tokens.Set(revoked, "refresh-1")
	refresher := &stubRefresher{tokens: tokens}
	c.SetRefresher(refresher)

	env, err := c.get(context.Background(), "/x", true)
	require.NoError(t, err)

	var got string
	require.NoError(t, decodeData(env, &got))
	assert.Equal(t, "ok", got)
	assert.Equal(t, 1, refresher.calls)
	assert.Equal(t, []string{"Bearer " + revoked, "Bearer fresh-token"}, seenTokens)
}

func signedAccessToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "cashier",
		"exp": time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return signed
}

func expiredAccessToken(t *testing.T) string {
	return signedAccessToken(t, -time.Minute)
}

func liveAccessToken(t *testing.T) string {
	return signedAccessToken(t, time.Hour)
}

func TestDo_RefreshesStaleTokenBeforeRequest(t *testing.T) {
	hits := 0
	c, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		// The stale bearer must never reach the backend.
		assert.Equal(t, "Bearer fresh-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"status": true, "data": "ok"})
	}))

	tokens.Set(expiredAccessToken(t), "refresh-1")
	refresher := &stubRefresher{tokens: tokens}
	c.SetRefresher(refresher)

	_, err := c.get(context.Background(), "/x", true)
	require.NoError(t, err)

	assert.Equal(t, 1, refresher.calls)
	assert.Equal(t, 1, hits)
}

func TestDo_LiveTokenSkipsProactiveRefresh(t *testing.T) {
	c, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": true, "data": "ok"})
	}))

	tokens.Set(liveAccessToken(t), "refresh-1")

	refresher := &stubRefresher{tokens: tokens}
	c.SetRefresher(refresher)

	_, err := c.get(context.Background(), "/x", true)
	require.NoError(t, err)
	assert.Equal(t, 0, refresher.calls)
}

func TestDo_No401RetryWhenUnauthenticated(t *testing.T) {
	hits := 0
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"status": false, "error_message": "expired"})
	}))
	c.SetRefresher(&stubRefresher{tokens: session.NewTokenStore()})

	_, err := c.get(context.Background(), "/x", false)
	require.Error(t, err)
	assert.Equal(t, 1, hits)
}
