package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/zeitrechner/internal/domain"
)

// ErrNotFound is returned when a requested key does not exist.
var ErrNotFound = errors.New("not found")

// KVRepo is the local key-value store every other repository is built on.
type KVRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Revision reports the change counter of key. A missing key has revision 0.
	Revision(ctx context.Context, key string) (domain.Revision, error)
}

type SettingsRepo interface {
	Load(ctx context.Context) (domain.SessionInput, error)
	StoreStart(ctx context.Context, value string) error
	StoreBreak(ctx context.Context, value string) error
	StoreTarget(ctx context.Context, value string) error
}

type WeeklyRepo interface {
	// Load never fails on malformed stored data; only storage errors are
	// returned.
	Load(ctx context.Context) (domain.WeeklyEntries, error)
	Store(ctx context.Context, entries domain.WeeklyEntries) error
	Revision(ctx context.Context) (domain.Revision, error)
}
