package repository

import (
	"context"

	"github.com/alexanderramin/zeitrechner/internal/domain"
)

// SQLiteSettingsRepo stores the three session inputs under their own keys.
type SQLiteSettingsRepo struct {
	kv KVRepo
}

func NewSQLiteSettingsRepo(kv KVRepo) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{kv: kv}
}

// Load returns the stored inputs; keys never written come back empty.
func (r *SQLiteSettingsRepo) Load(ctx context.Context) (domain.SessionInput, error) {
	var in domain.SessionInput
	var err error
	if in.Start, err = valueOrEmpty(r.kv.Get(ctx, domain.KeyStartTime)); err != nil {
		return domain.SessionInput{}, err
	}
	if in.Break, err = valueOrEmpty(r.kv.Get(ctx, domain.KeyBreakDuration)); err != nil {
		return domain.SessionInput{}, err
	}
	if in.Target, err = valueOrEmpty(r.kv.Get(ctx, domain.KeyTargetDuration)); err != nil {
		return domain.SessionInput{}, err
	}
	return in, nil
}

func (r *SQLiteSettingsRepo) StoreStart(ctx context.Context, value string) error {
	return r.kv.Set(ctx, domain.KeyStartTime, value)
}

func (r *SQLiteSettingsRepo) StoreBreak(ctx context.Context, value string) error {
	return r.kv.Set(ctx, domain.KeyBreakDuration, value)
}

func (r *SQLiteSettingsRepo) StoreTarget(ctx context.Context, value string) error {
	return r.kv.Set(ctx, domain.KeyTargetDuration, value)
}
