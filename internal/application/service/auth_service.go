package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/puwasa/pos-terminal/internal/domain/entity"
	"github.com/puwasa/pos-terminal/internal/domain/remote"
	"github.com/puwasa/pos-terminal/internal/session"
	"github.com/puwasa/pos-terminal/pkg/apperror"
)

// AuthService signs the cashier in and out against the backend and keeps
// the session (user, location, tokens) in step.
type AuthService struct {
	api    remote.AuthAPI
	sess   *session.Session
	logger *zap.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(api remote.AuthAPI, sess *session.Session, logger *zap.Logger) *AuthService {
	return &AuthService{api: api, sess: sess, logger: logger}
}

// Profile describes who is logged in on this terminal.
type Profile struct {
	User     *entity.User     `json:"user,omitempty"`
	Location *entity.Location `json:"location,omitempty"`
	Register *entity.Register `json:"register,omitempty"`
	DeviceID string           `json:"device_id"`
	LoggedIn bool             `json:"logged_in"`
}

// Login authenticates the cashier and binds user, location and tokens to
// the session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Profile, error) {
	if username == "" || password == "" {
		return nil, apperror.NewBadRequestError("Username and password are required")
	}

	result, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	s.sess.Tokens.Set(result.AccessToken, result.RefreshToken)
	s.sess.SetUser(result.User)
	s.sess.SetLocation(result.Location)

	if result.User != nil {
		s.logger.Info("cashier logged in",
			zap.Int64("user_id", result.User.ID),
			zap.String("username", result.User.Username),
		)
	}
	return s.Profile(), nil
}

// Logout invalidates the backend session and resets the local one. A remote
// failure is logged but does not keep the terminal logged in.
func (s *AuthService) Logout(ctx context.Context) {
	if s.sess.Tokens.HasSession() {
		if err := s.api.Logout(ctx); err != nil {
			s.logger.Warn("remote logout failed", zap.Error(err))
		}
	}
	s.sess.Reset()
}

// Profile returns this terminal's current identity.
func (s *AuthService) Profile() *Profile {
	return &Profile{
		User:     s.sess.User(),
		Location: s.sess.Location(),
		Register: s.sess.Register(),
		DeviceID: s.sess.DeviceID(),
		LoggedIn: s.sess.Tokens.HasSession(),
	}
}
