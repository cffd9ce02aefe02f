// Package repo implements the generic record-query interface over the
// profile store. The search core treats the store as a black box that
// returns raw, variantly-shaped field values; normalization happens
// upstream in internal/normalize.
package repo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/kordlan/harmonia_backend/internal/model"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidField = errors.New("unknown profile field")
)

// Store is the record-query contract: bulk select, select by identity,
// and full-field replace of named fields. Reference vocabularies live
// in the same store.
type Store interface {
	AllProfiles(ctx context.Context) ([]model.RawProfile, error)
	ProfileByID(ctx context.Context, id string) (model.RawProfile, error)
	ProfileByEmail(ctx context.Context, email string) (model.RawProfile, error)
	CreateProfile(ctx context.Context, p model.RawProfile) error

	// UpdateProfileField replaces one named field wholesale (no partial
	// merge) and stamps updated_at.
	UpdateProfileField(ctx context.Context, id, field string, value json.RawMessage) error

	Genres(ctx context.Context) ([]model.Genre, error)
	Instruments(ctx context.Context) ([]model.Instrument, error)
	EducationRanks(ctx context.Context) ([]model.EducationRank, error)
}
