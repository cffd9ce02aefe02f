package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/kordlan/harmonia_backend/internal/model"
	"github.com/kordlan/harmonia_backend/internal/normalize"
	"github.com/kordlan/harmonia_backend/internal/repo"
)

// Service is the profile search orchestrator.
type Service interface {
	Search(ctx context.Context, f Filters) []model.Profile
}

// RankSource supplies the reference education-rank table for the
// education sort criterion. Staleness of hours is acceptable.
type RankSource interface {
	EducationRanks(ctx context.Context) ([]model.EducationRank, error)
}

// Filters are the sanitized search parameters. SortBy is validated by
// the caller before a search executes; an unknown value still degrades
// to identity order here.
type Filters struct {
	Genre      string
	Instrument string
	Category   string
	NameSearch string
	SortBy     string

	RequesterEmail     string
	IncludeCurrentUser bool
}

type SearchService struct {
	store repo.Store
	ranks RankSource
}

func New(store repo.Store, ranks RankSource) *SearchService {
	return &SearchService{store: store, ranks: ranks}
}

// Search pulls the candidate snapshot from the store, normalizes every
// record, applies tag / self-exclusion / name filters and sorts. A
// store fetch failure degrades to an empty result rather than an error
// so search reads stay available; the cause is logged for operators.
func (s *SearchService) Search(ctx context.Context, f Filters) []model.Profile {
	raws, err := s.store.AllProfiles(ctx)
	if err != nil {
		slog.WarnContext(ctx, "profile fetch failed, returning empty search result", "error", err)
		return []model.Profile{}
	}

	profiles := lo.Map(raws, func(r model.RawProfile, _ int) model.Profile {
		return normalize.Profile(r)
	})
	profiles = lo.UniqBy(profiles, func(p model.Profile) string { return p.ID })

	if filter := (TagFilter{Genre: f.Genre, Instrument: f.Instrument, Category: f.Category}); filter.IsActive() {
		profiles = lo.Filter(profiles, func(p model.Profile, _ int) bool {
			return MatchesTags(p.Tags, filter)
		})
	}

	if f.RequesterEmail != "" && !f.IncludeCurrentUser {
		profiles = lo.Filter(profiles, func(p model.Profile, _ int) bool {
			return !strings.EqualFold(p.Email, f.RequesterEmail)
		})
	}

	if terms := strings.Fields(strings.ToLower(f.NameSearch)); len(terms) > 0 {
		profiles = lo.Filter(profiles, func(p model.Profile, _ int) bool {
			return matchesName(p, terms)
		})
	}

	return Sort(profiles, f.SortBy, s.educationRanks(ctx, f.SortBy))
}

// matchesName requires every search term to appear in the composed full
// name, case-insensitively.
func matchesName(p model.Profile, terms []string) bool {
	name := strings.ToLower(p.FullName())
	for _, term := range terms {
		if !strings.Contains(name, term) {
			return false
		}
	}
	return true
}

func (s *SearchService) educationRanks(ctx context.Context, sortBy string) Ranks {
	if sortBy != SortEducationDesc || s.ranks == nil {
		return nil
	}
	entries, err := s.ranks.EducationRanks(ctx)
	if err != nil {
		slog.WarnContext(ctx, "education rank lookup failed, sorting with empty table", "error", err)
		return nil
	}
	return NewRanks(entries)
}
