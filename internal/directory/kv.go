package directory

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/avoigt/timecard/internal/kvstore"
)

// usersKey is the key-value store key holding the account list.
const usersKey = "users"

// KVDirectory reads accounts from the key-value store, falling back to
// the seeded demo accounts when no list has been stored or the stored
// blob does not decode.
type KVDirectory struct {
	kv  kvstore.Store
	log *slog.Logger
}

// NewKVDirectory creates a Directory over the given store. A nil
// logger discards log output.
func NewKVDirectory(kv kvstore.Store, log *slog.Logger) *KVDirectory {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &KVDirectory{kv: kv, log: log}
}

func (d *KVDirectory) Authenticate(ctx context.Context, email, password string) (*UserRecord, bool) {
	for _, user := range d.loadAll(ctx) {
		if matchEmail(user.Email, email) && user.Password == password {
			u := user
			return &u, true
		}
	}
	return nil, false
}

// ListLoginEnabled returns the accounts offered on the login screen,
// skipping deactivated ones.
func (d *KVDirectory) ListLoginEnabled(ctx context.Context) []LoginUser {
	var users []LoginUser
	for _, user := range d.loadAll(ctx) {
		if !user.Active {
			continue
		}
		users = append(users, LoginUser{
			Email:           user.Email,
			Name:            user.Name,
			HasTempPassword: user.TempPassword,
		})
	}
	return users
}

// loadAll reads the account list, failing safe to the seed set.
func (d *KVDirectory) loadAll(ctx context.Context) []UserRecord {
	blob, ok, err := d.kv.Get(ctx, usersKey)
	if err != nil {
		d.log.Warn("reading user directory failed, using seed accounts", "error", err)
		return SeedUsers()
	}
	if !ok {
		return SeedUsers()
	}

	var users []UserRecord
	if err := json.Unmarshal([]byte(blob), &users); err != nil {
		d.log.Warn("user directory blob is corrupt, using seed accounts", "error", err)
		return SeedUsers()
	}
	return users
}

// Save persists an account list, replacing the seed set.
func (d *KVDirectory) Save(ctx context.Context, users []UserRecord) error {
	blob, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return d.kv.Set(ctx, usersKey, string(blob))
}
