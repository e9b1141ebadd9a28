package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Storage keys for the persisted session. Both present means a session
// can be restored; anything else is treated as no session.
const (
	KeyAuthToken    = "auth-token"
	KeyAuthUsername = "auth-username"
)

// ErrEmptyUsername is returned when login is attempted without a username.
var ErrEmptyUsername = errors.New("username is required")

// tokenSigningKey signs the mock tokens. It is not a secret: tokens are
// never verified, the signature only exists so the token has the usual
// three-segment shape.
var tokenSigningKey = []byte("saas-contract-dashboard-mock")

// User is the current authenticated identity.
type User struct {
	Username string `json:"username"`
	Token    string `json:"token"`
	Role     string `json:"role"`
}

// SessionManager owns the zero-or-one current session. Login performs
// no credential verification (any non-empty username succeeds) and
// restore never validates the token's signature or expiry. Both are
// deliberate modeling choices carried over from the mock client, not
// gaps to close.
type SessionManager struct {
	kv          KV
	expireAfter time.Duration

	mu      sync.RWMutex
	user    *User
	loading bool
	done    chan struct{}
}

// NewSessionManager creates a manager over kv and kicks off restore in
// the background so construction never blocks on storage.
func NewSessionManager(kv KV, expireAfter time.Duration) *SessionManager {
	if expireAfter <= 0 {
		expireAfter = 7 * 24 * time.Hour
	}
	m := &SessionManager{
		kv:          kv,
		expireAfter: expireAfter,
		loading:     true,
		done:        make(chan struct{}),
	}

	go func() {
		defer close(m.done)
		if err := m.Restore(); err != nil {
			slog.Warn("session restore failed", "error", err)
		}
	}()

	return m
}

// Restore reads the persisted token and username. Both present yields an
// authenticated session; a partial pair is cleaned up and treated as no
// session. The token is decoded without verification.
func (m *SessionManager) Restore() error {
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	token, hasToken, err := m.kv.Get(KeyAuthToken)
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	username, hasUsername, err := m.kv.Get(KeyAuthUsername)
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	if !hasToken || !hasUsername {
		// Clear any surviving half of the pair
		if hasToken {
			_ = m.kv.Delete(KeyAuthToken)
		}
		if hasUsername {
			_ = m.kv.Delete(KeyAuthUsername)
		}
		return nil
	}

	role := "user"
	if claims, err := DecodeToken(token); err == nil && claims.Role != "" {
		role = claims.Role
	}

	m.mu.Lock()
	m.user = &User{Username: username, Token: token, Role: role}
	m.mu.Unlock()

	slog.Info("session restored", "username", username)
	return nil
}

// Login creates a session for any non-empty username. No password is
// involved and no credentials are checked.
func (m *SessionManager) Login(username string) (*User, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	token, err := m.buildToken(username)
	if err != nil {
		return nil, fmt.Errorf("failed to build token: %w", err)
	}

	if err := m.kv.Set(KeyAuthToken, token); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}
	if err := m.kv.Set(KeyAuthUsername, username); err != nil {
		// Keep the two-key invariant if the second write fails
		_ = m.kv.Delete(KeyAuthToken)
		return nil, fmt.Errorf("failed to persist username: %w", err)
	}

	user := &User{Username: username, Token: token, Role: "user"}
	m.mu.Lock()
	m.user = user
	m.mu.Unlock()

	slog.Info("user logged in", "username", username)
	return user, nil
}

// Logout clears the persisted session. Safe to call when already
// unauthenticated.
func (m *SessionManager) Logout() error {
	if err := m.kv.Delete(KeyAuthToken); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	if err := m.kv.Delete(KeyAuthUsername); err != nil {
		return fmt.Errorf("failed to clear username: %w", err)
	}

	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()

	slog.Info("user logged out")
	return nil
}

// Current returns the active user, or nil when unauthenticated.
func (m *SessionManager) Current() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// IsLoading reports whether the initial restore is still in flight.
func (m *SessionManager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// WaitReady blocks until the initial restore has completed.
func (m *SessionManager) WaitReady() {
	<-m.done
}

// TokenClaims is the payload encoded into the mock token.
type TokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// buildToken produces the three-segment mock token with subject,
// issued-at, expiry and role claims.
func (m *SessionManager) buildToken(username string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expireAfter)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tokenSigningKey)
}

// DecodeToken extracts the claims without verifying signature or
// expiry, matching the original client which only ever encodes.
func DecodeToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
