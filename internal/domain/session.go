package domain

import "time"

// DefaultSessionTTL is the fixed lifetime of a login session.
const DefaultSessionTTL = 8 * time.Hour

// User is the public view of an authenticated account.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is a time-boxed proof of authentication tied to one user.
// The token is opaque and demo-grade, not a security boundary.
type Session struct {
	Token      string    `json:"token"`
	User       User      `json:"user"`
	LoginTime  time.Time `json:"loginTime"`
	ExpiryTime time.Time `json:"expiryTime"`
}

// Valid reports whether the session has not yet expired at now.
// An expired session is equivalent to no session at all.
func (s *Session) Valid(now time.Time) bool {
	return !now.After(s.ExpiryTime)
}

// Extend renews the session in place with a fresh TTL from now.
func (s *Session) Extend(now time.Time, ttl time.Duration) {
	s.ExpiryTime = now.Add(ttl)
}

// Remaining returns how long the session is still valid at now,
// zero if already expired.
func (s *Session) Remaining(now time.Time) time.Duration {
	if !s.Valid(now) {
		return 0
	}
	return s.ExpiryTime.Sub(now)
}
