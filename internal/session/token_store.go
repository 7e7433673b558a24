package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenStore keeps the cashier's access and refresh tokens in memory for the
// lifetime of the terminal process. Expiry is read from the unverified JWT
// claims; the terminal does not hold the signing secret, verification is the
// backend's job.
type TokenStore struct {
	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Set replaces both tokens after a login or refresh.
func (s *TokenStore) Set(accessToken, refreshToken string) {
	s.mu.Lock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	s.mu.Unlock()
}

// AccessToken returns the current access token, or empty when logged out.
func (s *TokenStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token, or empty when logged out.
func (s *TokenStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Clear drops both tokens (logout).
func (s *TokenStore) Clear() {
	s.mu.Lock()
	s.accessToken = ""
	s.refreshToken = ""
	s.mu.Unlock()
}

// HasSession reports whether an access token is present.
func (s *TokenStore) HasSession() bool {
	return s.AccessToken() != ""
}

// AccessExpired reports whether the access token is absent, unparseable, or
// expires within the given leeway.
func (s *TokenStore) AccessExpired(leeway time.Duration) bool {
	token := s.AccessToken()
	if token == "" {
		return true
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return time.Now().Add(leeway).After(exp.Time)
}
