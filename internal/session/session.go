package session

import (
	"sync"

	"github.com/puwasa/pos-terminal/internal/domain/entity"
)

// Session is the explicit per-terminal context passed into the services:
// who is logged in, where the terminal is, and which physical device it is.
// Nothing here is ambient; constructors receive the session they operate on.
type Session struct {
	mu       sync.RWMutex
	deviceID string
	user     *entity.User
	location *entity.Location
	register *entity.Register

	Tokens *TokenStore
}

// New creates a session for the given device id.
func New(deviceID string) *Session {
	return &Session{
		deviceID: deviceID,
		Tokens:   NewTokenStore(),
	}
}

// DeviceID returns the stable terminal device id.
func (s *Session) DeviceID() string {
	return s.deviceID
}

// User returns the logged-in cashier, or nil.
func (s *Session) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser records the logged-in cashier.
func (s *Session) SetUser(u *entity.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

// CashierID returns the logged-in cashier's id, falling back to 1 when no
// user is bound (the backend's walk-in default).
func (s *Session) CashierID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return 1
	}
	return s.user.ID
}

// Location returns the terminal's store location, or nil.
func (s *Session) Location() *entity.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.location
}

// SetLocation records the terminal's store location.
func (s *Session) SetLocation(l *entity.Location) {
	s.mu.Lock()
	s.location = l
	s.mu.Unlock()
}

// LocationID returns the bound location id, or the given fallback.
func (s *Session) LocationID(fallback int64) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.location == nil {
		return fallback
	}
	return s.location.ID
}

// Register returns the cash register bound to this device, or nil.
func (s *Session) Register() *entity.Register {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.register
}

// SetRegister records the cash register bound to this device.
func (s *Session) SetRegister(r *entity.Register) {
	s.mu.Lock()
	s.register = r
	s.mu.Unlock()
}

// Reset clears the user, register binding and tokens (logout).
func (s *Session) Reset() {
	s.mu.Lock()
	s.user = nil
	s.register = nil
	s.mu.Unlock()
	s.Tokens.Clear()
}
