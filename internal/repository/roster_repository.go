package repository

import (
	"context"
	"encoding/json"

	"github.com/atlas-rto/workforce-matrix/internal/domain"
	"github.com/atlas-rto/workforce-matrix/internal/persistence"
)

// RosterRepository persists the whole staff collection as one JSON blob.
type RosterRepository interface {
	// Load returns the persisted roster. ok is false when nothing usable is
	// stored; a blob that fails to parse is treated the same way.
	Load(ctx context.Context) (records []domain.StaffRecord, ok bool, err error)
	Save(ctx context.Context, records []domain.StaffRecord) error
}

type kvRosterRepository struct {
	kv  persistence.KV
	key string
}

// NewRosterRepository returns a KV-backed implementation storing the roster
// under the given key.
func NewRosterRepository(kv persistence.KV, key string) RosterRepository {
	return &kvRosterRepository{kv: kv, key: key}
}

func (r *kvRosterRepository) Load(ctx context.Context) ([]domain.StaffRecord, bool, error) {
	raw, found, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return nil, false, err
	}
	if !found || raw == "" {
		return nil, false, nil
	}

	var records []domain.StaffRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		// Corrupt blob reads as "no data"; the caller falls back to the seed.
		return nil, false, nil
	}
	if len(records) == 0 {
		return nil, false, nil
	}
	return records, true, nil
}

func (r *kvRosterRepository) Save(ctx context.Context, records []domain.StaffRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, r.key, string(raw))
}
