package remote

import (
	"context"

	"github.com/puwasa/pos-terminal/internal/domain/entity"
	domainremote "github.com/puwasa/pos-terminal/internal/domain/remote"
	"github.com/puwasa/pos-terminal/internal/session"
	"github.com/puwasa/pos-terminal/pkg/apperror"
)

// AuthClient implements remote.AuthAPI and doubles as the shared client's
// TokenRefresher: a 401 anywhere triggers one refresh through here.
type AuthClient struct {
	c      *Client
	tokens *session.TokenStore
}

// NewAuthClient creates an auth client on the shared backend client.
func NewAuthClient(c *Client, tokens *session.TokenStore) *AuthClient {
	return &AuthClient{c: c, tokens: tokens}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshPayload struct {
	RefreshToken string `json:"refresh_token"`
}

type loginData struct {
	User         *entity.User     `json:"user"`
	Location     *entity.Location `json:"location"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
}

// Login authenticates the cashier and returns the user, location and tokens.
func (ac *AuthClient) Login(ctx context.Context, username, password string) (*domainremote.LoginResult, error) {
	env, err := ac.c.post(ctx, "/auth/login", loginPayload{Username: username, Password: password}, false)
	if err != nil {
		return nil, err
	}

	var data loginData
	if err := decodeData(env, &data); err != nil {
		return nil, err
	}

	return &domainremote.LoginResult{
		User:         data.User,
		Location:     data.Location,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
	}, nil
}

// Refresh exchanges the refresh token for a new token pair.
func (ac *AuthClient) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	env, err := ac.c.post(ctx, "/auth/refresh", refreshPayload{RefreshToken: refreshToken}, false)
	if err != nil {
		return "", "", err
	}

	var data loginData
	if err := decodeData(env, &data); err != nil {
		return "", "", err
	}
	return data.AccessToken, data.RefreshToken, nil
}

// Logout invalidates the session on the backend.
func (ac *AuthClient) Logout(ctx context.Context) error {
	_, err := ac.c.post(ctx, "/auth/logout", nil, true)
	return err
}

// RefreshSession implements TokenRefresher: refreshes the stored token pair
// in place so the failed request can be replayed.
func (ac *AuthClient) RefreshSession(ctx context.Context) error {
	refresh := ac.tokens.RefreshToken()
	if refresh == "" {
		return apperror.ErrNoSession
	}

	access, newRefresh, err := ac.Refresh(ctx, refresh)
	if err != nil {
		return err
	}
	if newRefresh == "" {
		newRefresh = refresh
	}
	ac.tokens.Set(access, newRefresh)
	return nil
}
