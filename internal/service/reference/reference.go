// Package reference serves the filter vocabularies (genres,
// instruments) and the education-rank table. The record store is the
// source of truth, fronted by a TTL cache; when the store is
// unreachable or a collection comes back empty the compiled-in fallback
// set answers instead so filter UIs never render blank.
package reference

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kordlan/harmonia_backend/internal/model"
	"github.com/kordlan/harmonia_backend/internal/repo"
)

// Source values reported alongside reference data. A result is marked
// SourceFallback when any collection had to be substituted.
const (
	SourceStore    = "store"
	SourceFallback = "fallback"
)

// Reference is the filter vocabulary payload.
type Reference struct {
	Genres      []model.Genre      `json:"genres"`
	Instruments []model.Instrument `json:"instruments"`
	Source      string             `json:"source"`
}

type Service interface {
	Reference(ctx context.Context) Reference
	Refresh(ctx context.Context) Reference
	EducationRanks(ctx context.Context) ([]model.EducationRank, error)
}

type ReferenceService struct {
	store repo.Store
	cache vocabCache
}

func New(store repo.Store, rdb *redis.Client, ttl time.Duration) *ReferenceService {
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &ReferenceService{
		store: store,
		cache: redisCache{rdb: rdb, ttl: ttl},
	}
}

// Reference returns the current filter vocabularies, cache-first. Never
// fails: store trouble degrades to the fallback set with Source marking
// the path taken.
func (s *ReferenceService) Reference(ctx context.Context) Reference {
	var cached Reference
	if s.cache.get(ctx, "vocabulary", &cached) {
		return cached
	}
	return s.loadVocabulary(ctx)
}

// Refresh bypasses the cache: the vocabularies are re-read from the
// store and the cached copy re-set, restarting its TTL. The rank table
// is invalidated alongside so its next read repopulates too. The warm
// worker calls this so a healthy store never lets the cache lapse.
func (s *ReferenceService) Refresh(ctx context.Context) Reference {
	s.cache.invalidate(ctx, "vocabulary", "education_ranks")
	return s.loadVocabulary(ctx)
}

// loadVocabulary reads both collections from the store, substituting
// the compiled-in set per collection when its read fails or comes back
// empty. Only a fully store-sourced result is cached.
func (s *ReferenceService) loadVocabulary(ctx context.Context) Reference {
	genres, gErr := s.store.Genres(ctx)
	instruments, iErr := s.store.Instruments(ctx)

	if gErr != nil || iErr != nil {
		slog.WarnContext(ctx, "reference lookup failed, serving fallback vocabulary",
			"genres_error", gErr, "instruments_error", iErr)
	}

	source := SourceStore
	if gErr != nil || len(genres) == 0 {
		genres = fallbackGenres
		source = SourceFallback
	}
	if iErr != nil || len(instruments) == 0 {
		instruments = fallbackInstruments
		source = SourceFallback
	}

	ref := Reference{
		Genres:      genres,
		Instruments: sortInstruments(instruments),
		Source:      source,
	}
	if source == SourceStore {
		s.cache.set(ctx, "vocabulary", ref)
	}
	return ref
}

// EducationRanks returns the rank table for the education sort
// criterion, cache-first. Store failure falls back to the built-in
// table rather than erroring: a stale or approximate ranking beats no
// education sort at all.
func (s *ReferenceService) EducationRanks(ctx context.Context) ([]model.EducationRank, error) {
	var cached []model.EducationRank
	if s.cache.get(ctx, "education_ranks", &cached) {
		return cached, nil
	}

	ranks, err := s.store.EducationRanks(ctx)
	if err != nil || len(ranks) == 0 {
		if err != nil {
			slog.WarnContext(ctx, "education rank lookup failed, serving fallback table", "error", err)
		}
		return fallbackEducationRanks, nil
	}

	s.cache.set(ctx, "education_ranks", ranks)
	return ranks, nil
}

// Invalidate drops the cached vocabulary, e.g. after a reseed.
func (s *ReferenceService) Invalidate(ctx context.Context) {
	s.cache.invalidate(ctx, "vocabulary", "education_ranks")
}

// sortInstruments orders instruments for grouped selection UIs:
// category groups by category_rank, instruments within a category by
// instrument_rank then name. Returns a new slice.
func sortInstruments(in []model.Instrument) []model.Instrument {
	out := make([]model.Instrument, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.CategoryRank != b.CategoryRank {
			return a.CategoryRank < b.CategoryRank
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.InstrumentRank != b.InstrumentRank {
			return a.InstrumentRank < b.InstrumentRank
		}
		return a.Name < b.Name
	})
	return out
}
