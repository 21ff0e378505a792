// Package directory is the user directory consumed by the session
// manager. Credential checks are deliberately demo-grade: accounts
// live in the key-value store as plain records and this is not a
// security boundary.
package directory

import (
	"context"
	"strings"
)

// UserRecord is one directory account as stored.
type UserRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Active       bool   `json:"active"`
	TempPassword bool   `json:"tempPassword"`
}

// LoginUser is the listing view shown on the login screen.
type LoginUser struct {
	Email           string
	Name            string
	HasTempPassword bool
}

// Directory resolves credentials to accounts. An absent result means
// the credentials matched nothing; the caller decides what an inactive
// account means.
type Directory interface {
	Authenticate(ctx context.Context, email, password string) (*UserRecord, bool)
	ListLoginEnabled(ctx context.Context) []LoginUser
}

// matchEmail compares addresses case-insensitively.
func matchEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
