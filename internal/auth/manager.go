// Package auth owns the login session: a single time-boxed proof of
// authentication persisted in the key-value store and checked lazily.
// There is no timer; expiry is detected whenever a caller asks.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/avoigt/timecard/internal/directory"
	"github.com/avoigt/timecard/internal/domain"
	"github.com/avoigt/timecard/internal/kvstore"
	"github.com/google/uuid"
)

// sessionKey is the key-value store key holding the session blob.
const sessionKey = "session"

// RoleEmployee is the fixed role tag on every public user view.
const RoleEmployee = "employee"

// The two user-facing login failures. They stay distinct: a wrong
// password and a deactivated account print different messages.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated, contact your administrator")
)

// Manager issues, validates, renews and clears the login session.
type Manager struct {
	kv  kvstore.Store
	dir directory.Directory
	ttl time.Duration
	log *slog.Logger

	now func() time.Time
}

// NewManager creates a session manager over the given store and user
// directory. A non-positive ttl falls back to the default eight hours;
// a nil logger discards log output.
func NewManager(kv kvstore.Store, dir directory.Directory, ttl time.Duration, log *slog.Logger) *Manager {
	if ttl <= 0 {
		ttl = domain.DefaultSessionTTL
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{
		kv:  kv,
		dir: dir,
		ttl: ttl,
		log: log,
		now: time.Now,
	}
}

// Login verifies credentials against the directory and mints a fresh
// session. Failures come back as ErrInvalidCredentials or
// ErrAccountInactive, never as a panic or merged message.
func (m *Manager) Login(ctx context.Context, email, password string) (*domain.User, error) {
	account, ok := m.dir.Authenticate(ctx, email, password)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if !account.Active {
		return nil, ErrAccountInactive
	}

	now := m.now()
	session := domain.Session{
		Token: uuid.NewString(),
		User: domain.User{
			ID:    account.ID,
			Name:  account.Name,
			Email: account.Email,
			Role:  RoleEmployee,
		},
		LoginTime:  now,
		ExpiryTime: now.Add(m.ttl),
	}

	if err := m.save(ctx, &session); err != nil {
		return nil, err
	}
	m.log.Info("session created", "user", session.User.Email, "expires", session.ExpiryTime)
	return &session.User, nil
}

// IsAuthenticated reports whether a valid session exists. An expired
// session is purged from storage as a side effect, so repeated checks
// at any cadence converge on the same answer.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	return m.validSession(ctx) != nil
}

// CurrentUser returns the logged-in user, or nil when no valid session
// exists.
func (m *Manager) CurrentUser(ctx context.Context) *domain.User {
	session := m.validSession(ctx)
	if session == nil {
		return nil
	}
	return &session.User
}

// CurrentSession returns the valid session itself, for callers that
// need the expiry time. Nil when not authenticated.
func (m *Manager) CurrentSession(ctx context.Context) *domain.Session {
	return m.validSession(ctx)
}

// ExtendSession renews a valid session in place with a fresh TTL.
// No-op when there is no valid session.
func (m *Manager) ExtendSession(ctx context.Context) {
	session := m.validSession(ctx)
	if session == nil {
		return
	}
	session.Extend(m.now(), m.ttl)
	if err := m.save(ctx, session); err != nil {
		m.log.Warn("persisting extended session failed", "error", err)
	}
}

// Logout unconditionally clears the stored session.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.kv.Remove(ctx, sessionKey); err != nil {
		m.log.Warn("clearing session failed", "error", err)
	}
}

// validSession loads the stored session and applies lazy eviction:
// expired sessions are deleted and reported as absent. Any storage or
// decode failure reads as "no session", never as authenticated.
func (m *Manager) validSession(ctx context.Context) *domain.Session {
	blob, ok, err := m.kv.Get(ctx, sessionKey)
	if err != nil {
		m.log.Warn("reading session failed, treating as logged out", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(blob), &session); err != nil {
		m.log.Warn("session blob is corrupt, treating as logged out", "error", err)
		return nil
	}

	if !session.Valid(m.now()) {
		if err := m.kv.Remove(ctx, sessionKey); err != nil {
			m.log.Warn("purging expired session failed", "error", err)
		}
		return nil
	}
	return &session
}

func (m *Manager) save(ctx context.Context, session *domain.Session) error {
	blob, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return m.kv.Set(ctx, sessionKey, string(blob))
}
