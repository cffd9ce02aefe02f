package search

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/kordlan/harmonia_backend/internal/model"
)

// fakeStore implements repo.Store over a fixed snapshot.
type fakeStore struct {
	profiles []model.RawProfile
	ranks    []model.EducationRank
	fetchErr error
}

func (f *fakeStore) AllProfiles(ctx context.Context) ([]model.RawProfile, error) {
	return f.profiles, f.fetchErr
}

func (f *fakeStore) ProfileByID(ctx context.Context, id string) (model.RawProfile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return model.RawProfile{}, errors.New("not found")
}

func (f *fakeStore) ProfileByEmail(ctx context.Context, email string) (model.RawProfile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return model.RawProfile{}, errors.New("not found")
}

func (f *fakeStore) CreateProfile(ctx context.Context, p model.RawProfile) error {
	f.profiles = append(f.profiles, p)
	return nil
}

func (f *fakeStore) UpdateProfileField(ctx context.Context, id, field string, value json.RawMessage) error {
	return nil
}

func (f *fakeStore) Genres(ctx context.Context) ([]model.Genre, error)         { return nil, nil }
func (f *fakeStore) Instruments(ctx context.Context) ([]model.Instrument, error) { return nil, nil }
func (f *fakeStore) EducationRanks(ctx context.Context) ([]model.EducationRank, error) {
	return f.ranks, nil
}

func rawProfile(id, email, forename, surname, tags string) model.RawProfile {
	p := model.RawProfile{ID: id, Email: email, Forename: forename, Surname: surname}
	if tags != "" {
		p.GenreInstrument = json.RawMessage(tags)
	}
	return p
}

func ids(profiles []model.Profile) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.ID
	}
	return out
}

func TestSearchTagFilter(t *testing.T) {
	store := &fakeStore{profiles: []model.RawProfile{
		rawProfile("p1", "a@x.com", "Ada", "Keys", `[{"genre":"Jazz","instrument":"Piano"}]`),
		rawProfile("p2", "b@x.com", "Ben", "Frets", `["Rock Guitar"]`),
		rawProfile("p3", "c@x.com", "Cleo", "Drums", ""),
	}}
	svc := New(store, store)

	got := svc.Search(context.Background(), Filters{Genre: "Jazz", SortBy: SortNameAsc})
	if len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("genre filter returned %v, want [p1]", ids(got))
	}

	// compact legacy entries filter the same as structured ones
	got = svc.Search(context.Background(), Filters{Instrument: "guitar", SortBy: SortNameAsc})
	if len(got) != 1 || got[0].ID != "p2" {
		t.Errorf("instrument filter returned %v, want [p2]", ids(got))
	}

	// all-any passes everyone, including the profile without tags
	got = svc.Search(context.Background(), Filters{Genre: "any", Instrument: "any", Category: "any", SortBy: SortNameAsc})
	if len(got) != 3 {
		t.Errorf("all-any filter returned %v, want all three", ids(got))
	}
}

func TestSearchSelfExclusion(t *testing.T) {
	store := &fakeStore{profiles: []model.RawProfile{
		rawProfile("p1", "me@x.com", "Me", "Self", ""),
		rawProfile("p2", "other@x.com", "Other", "One", ""),
	}}
	svc := New(store, store)

	got := svc.Search(context.Background(), Filters{SortBy: SortNameAsc, RequesterEmail: "me@x.com"})
	if len(got) != 1 || got[0].ID != "p2" {
		t.Errorf("requester must be excluded, got %v", ids(got))
	}

	got = svc.Search(context.Background(), Filters{
		SortBy: SortNameAsc, RequesterEmail: "me@x.com", IncludeCurrentUser: true,
	})
	if len(got) != 2 {
		t.Errorf("includeCurrentUser must keep the requester, got %v", ids(got))
	}

	// unknown requester: nothing to exclude
	got = svc.Search(context.Background(), Filters{SortBy: SortNameAsc})
	if len(got) != 2 {
		t.Errorf("empty requester email must exclude nobody, got %v", ids(got))
	}
}

func TestSearchNameTermsAnd(t *testing.T) {
	store := &fakeStore{profiles: []model.RawProfile{
		rawProfile("p1", "", "John", "Smith", ""),
		rawProfile("p2", "", "John", "Doe", ""),
		rawProfile("p3", "", "Josephine", "Clark", ""),
	}}
	svc := New(store, store)

	got := svc.Search(context.Background(), Filters{NameSearch: "jo smi", SortBy: SortNameAsc})
	if len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("nameSearch %q returned %v, want [p1]", "jo smi", ids(got))
	}
}

func TestSearchDeduplicates(t *testing.T) {
	store := &fakeStore{profiles: []model.RawProfile{
		rawProfile("p1", "a@x.com", "Ada", "Keys", ""),
		rawProfile("p1", "a@x.com", "Ada", "Keys", ""),
	}}
	svc := New(store, store)

	got := svc.Search(context.Background(), Filters{SortBy: SortNameAsc})
	if len(got) != 1 {
		t.Errorf("duplicate records must collapse, got %v", ids(got))
	}
}

func TestSearchEducationSortUsesRankSource(t *testing.T) {
	store := &fakeStore{
		profiles: []model.RawProfile{
			{ID: "p1", Education: json.RawMessage(`["Bachelor"]`)},
			{ID: "p2", Education: json.RawMessage(`["Master at Academy"]`)},
		},
		ranks: []model.EducationRank{{Name: "Bachelor", Rank: 1}, {Name: "Master", Rank: 2}},
	}
	svc := New(store, store)

	got := svc.Search(context.Background(), Filters{SortBy: SortEducationDesc})
	if len(got) != 2 || got[0].ID != "p2" {
		t.Errorf("education_desc returned %v, want p2 first", ids(got))
	}
}

func TestSearchStoreFailureDegradesToEmpty(t *testing.T) {
	store := &fakeStore{fetchErr: errors.New("connection refused")}
	svc := New(store, store)

	got := svc.Search(context.Background(), Filters{SortBy: SortNameAsc})
	if got == nil {
		t.Fatal("degraded result must be an empty list, not nil")
	}
	if len(got) != 0 {
		t.Errorf("store failure must yield no results, got %v", ids(got))
	}
}
