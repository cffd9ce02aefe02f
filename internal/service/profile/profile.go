package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kordlan/harmonia_backend/internal/model"
	"github.com/kordlan/harmonia_backend/internal/normalize"
	"github.com/kordlan/harmonia_backend/internal/repo"
)

// Service manages the profile lifecycle outside the search path:
// skeleton creation on first access and full-field replace updates.
type Service interface {
	GetOrCreate(ctx context.Context, email string) (model.Profile, error)
	GetByID(ctx context.Context, id string) (model.Profile, error)
	UpdateField(ctx context.Context, id, field string, value json.RawMessage) error
}

type ProfileService struct {
	store repo.Store
}

func New(store repo.Store) *ProfileService {
	return &ProfileService{store: store}
}

// GetOrCreate returns the profile for email, creating an empty skeleton
// on first access. The returned profile is normalized.
func (s *ProfileService) GetOrCreate(ctx context.Context, email string) (model.Profile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return model.Profile{}, ErrEmailRequired
	}

	raw, err := s.store.ProfileByEmail(ctx, email)
	if err == nil {
		return normalize.Profile(raw), nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Profile{}, fmt.Errorf("failed to load profile: %w", err)
	}

	skeleton := model.RawProfile{ID: uuid.NewString(), Email: email}
	if err := s.store.CreateProfile(ctx, skeleton); err != nil {
		return model.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}
	return normalize.Profile(skeleton), nil
}

// GetByID returns one normalized profile for public display.
func (s *ProfileService) GetByID(ctx context.Context, id string) (model.Profile, error) {
	raw, err := s.store.ProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Profile{}, ErrProfileNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to load profile: %w", err)
	}
	return normalize.Profile(raw), nil
}

// UpdateField replaces one field wholesale with the canonical form of
// value and stamps updated_at. Write failures surface to the caller so
// the edit can be retried; edits never silently no-op. Concurrent edits
// to the same profile are last-write-wins.
func (s *ProfileService) UpdateField(ctx context.Context, id, field string, value json.RawMessage) error {
	if !repo.ValidField(field) {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	canonical, err := canonicalValue(field, value)
	if err != nil {
		return err
	}

	if err := s.store.UpdateProfileField(ctx, id, field, canonical); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrProfileNotFound
		}
		if errors.Is(err, repo.ErrInvalidField) {
			return fmt.Errorf("%w: %s", ErrInvalidValue, field)
		}
		return fmt.Errorf("failed to update %s: %w", field, err)
	}
	return nil
}

// canonicalValue normalizes an incoming field value before storage, so
// new writes never reintroduce legacy shapes. Scalar fields pass
// through after a type check.
func canonicalValue(field string, value json.RawMessage) (json.RawMessage, error) {
	var canonical any

	switch field {
	case "occupation", "video_links":
		canonical = normalize.Strings(normalize.FromJSON(value))
	case "education":
		canonical = normalize.EducationEntries(normalize.FromJSON(value))
	case "certificates":
		canonical = normalize.CertificateEntries(normalize.FromJSON(value))
	case "genre_instrument":
		canonical = normalize.TagList(normalize.FromJSON(value))
	case "social":
		canonical = normalize.SocialLinks(normalize.FromJSON(value))
	case "location":
		canonical = normalize.LocationValue(normalize.FromJSON(value))
	default:
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, fmt.Errorf("%w: %s expects a string", ErrInvalidValue, field)
		}
		return value, nil
	}

	out, err := json.Marshal(canonical)
	if err != nil {
		return nil, fmt.Errorf("failed to encode canonical %s: %w", field, err)
	}
	return out, nil
}
