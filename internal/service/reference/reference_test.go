package reference

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/kordlan/harmonia_backend/internal/model"
)

type stubStore struct {
	genres      []model.Genre
	instruments []model.Instrument
	ranks       []model.EducationRank
	err         error

	genreCalls int
}

func (s *stubStore) AllProfiles(ctx context.Context) ([]model.RawProfile, error) { return nil, nil }
func (s *stubStore) ProfileByID(ctx context.Context, id string) (model.RawProfile, error) {
	return model.RawProfile{}, nil
}
func (s *stubStore) ProfileByEmail(ctx context.Context, email string) (model.RawProfile, error) {
	return model.RawProfile{}, nil
}
func (s *stubStore) CreateProfile(ctx context.Context, p model.RawProfile) error { return nil }
func (s *stubStore) UpdateProfileField(ctx context.Context, id, field string, value json.RawMessage) error {
	return nil
}
func (s *stubStore) Genres(ctx context.Context) ([]model.Genre, error) {
	s.genreCalls++
	return s.genres, s.err
}
func (s *stubStore) Instruments(ctx context.Context) ([]model.Instrument, error) {
	return s.instruments, s.err
}
func (s *stubStore) EducationRanks(ctx context.Context) ([]model.EducationRank, error) {
	return s.ranks, s.err
}

func TestReferenceFromStore(t *testing.T) {
	store := &stubStore{
		genres:      []model.Genre{{ID: "jazz", Name: "Jazz"}},
		instruments: []model.Instrument{{ID: "piano", Name: "Piano", CategoryRank: 2}},
	}
	svc := New(store, nil, 0)

	ref := svc.Reference(context.Background())
	if ref.Source != SourceStore {
		t.Errorf("Source = %q, want %q", ref.Source, SourceStore)
	}
	if len(ref.Genres) != 1 || len(ref.Instruments) != 1 {
		t.Errorf("vocabulary = %d genres / %d instruments, want 1/1",
			len(ref.Genres), len(ref.Instruments))
	}
}

func TestReferenceFallback(t *testing.T) {
	tests := []struct {
		name  string
		store *stubStore
	}{
		{name: "store unreachable", store: &stubStore{err: errors.New("connection refused")}},
		{name: "store empty", store: &stubStore{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(tt.store, nil, 0)
			ref := svc.Reference(context.Background())
			if ref.Source != SourceFallback {
				t.Errorf("Source = %q, want %q", ref.Source, SourceFallback)
			}
			if len(ref.Genres) == 0 || len(ref.Instruments) == 0 {
				t.Error("fallback vocabulary must not be empty")
			}
		})
	}
}

// memCache stands in for redis so cache interaction is observable.
type memCache struct{ m map[string][]byte }

func newMemCache() *memCache { return &memCache{m: map[string][]byte{}} }

func (c *memCache) get(ctx context.Context, key string, dest any) bool {
	raw, ok := c.m[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *memCache) set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.m[key] = raw
}

func (c *memCache) invalidate(ctx context.Context, keys ...string) {
	for _, k := range keys {
		delete(c.m, k)
	}
}

func TestReferencePartialFallback(t *testing.T) {
	store := &stubStore{genres: []model.Genre{{ID: "jazz", Name: "Jazz"}}}
	svc := New(store, nil, 0)
	svc.cache = newMemCache()

	ref := svc.Reference(context.Background())
	if ref.Source != SourceFallback {
		t.Errorf("Source = %q, want %q", ref.Source, SourceFallback)
	}
	if len(ref.Genres) != 1 || ref.Genres[0].Name != "Jazz" {
		t.Errorf("genres = %v, want the store's single entry kept", ref.Genres)
	}
	if len(ref.Instruments) == 0 {
		t.Error("empty instruments table must be substituted with the fallback set")
	}

	// a partially substituted result must not be cached
	svc.Reference(context.Background())
	if store.genreCalls != 2 {
		t.Errorf("store reads = %d, want 2 (half-fallback result was cached)", store.genreCalls)
	}
}

func TestRefreshBypassesCache(t *testing.T) {
	store := &stubStore{
		genres:      []model.Genre{{ID: "jazz", Name: "Jazz"}},
		instruments: []model.Instrument{{ID: "piano", Name: "Piano"}},
	}
	svc := New(store, nil, 0)
	svc.cache = newMemCache()

	ctx := context.Background()
	svc.Reference(ctx)
	svc.Reference(ctx)
	if store.genreCalls != 1 {
		t.Fatalf("store reads behind a warm cache = %d, want 1", store.genreCalls)
	}

	if ref := svc.Refresh(ctx); ref.Source != SourceStore {
		t.Errorf("Refresh Source = %q, want %q", ref.Source, SourceStore)
	}
	if store.genreCalls != 2 {
		t.Errorf("store reads after Refresh = %d, want 2 (Refresh served from cache)", store.genreCalls)
	}

	svc.Reference(ctx)
	if store.genreCalls != 2 {
		t.Errorf("store reads = %d, want 2 (Refresh did not re-set the cache)", store.genreCalls)
	}
}

func TestEducationRanksFallback(t *testing.T) {
	svc := New(&stubStore{err: errors.New("down")}, nil, 0)

	ranks, err := svc.EducationRanks(context.Background())
	if err != nil {
		t.Fatalf("EducationRanks() error = %v", err)
	}
	if len(ranks) == 0 {
		t.Error("fallback rank table must not be empty")
	}
}

func TestSortInstruments(t *testing.T) {
	in := []model.Instrument{
		{Name: "Drums", Category: "Percussion", CategoryRank: 5, InstrumentRank: 1},
		{Name: "Viola", Category: "Strings", CategoryRank: 1, InstrumentRank: 2},
		{Name: "Violin", Category: "Strings", CategoryRank: 1, InstrumentRank: 1},
		{Name: "Banjo", Category: "Strings", CategoryRank: 1, InstrumentRank: 5},
		{Name: "Balalaika", Category: "Strings", CategoryRank: 1, InstrumentRank: 5},
	}

	got := sortInstruments(in)
	wantOrder := []string{"Violin", "Viola", "Balalaika", "Banjo", "Drums"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("position %d = %s, want %s", i, got[i].Name, name)
		}
	}

	if in[0].Name != "Drums" {
		t.Error("sortInstruments must not mutate its input")
	}
}
