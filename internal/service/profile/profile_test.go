package profile

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/kordlan/harmonia_backend/internal/model"
	"github.com/kordlan/harmonia_backend/internal/repo"
)

type memStore struct {
	byEmail map[string]model.RawProfile
	updates map[string]json.RawMessage
	failOn  string
}

func newMemStore() *memStore {
	return &memStore{
		byEmail: map[string]model.RawProfile{},
		updates: map[string]json.RawMessage{},
	}
}

func (m *memStore) AllProfiles(ctx context.Context) ([]model.RawProfile, error) { return nil, nil }

func (m *memStore) ProfileByID(ctx context.Context, id string) (model.RawProfile, error) {
	for _, p := range m.byEmail {
		if p.ID == id {
			return p, nil
		}
	}
	return model.RawProfile{}, repo.ErrNotFound
}

func (m *memStore) ProfileByEmail(ctx context.Context, email string) (model.RawProfile, error) {
	p, ok := m.byEmail[email]
	if !ok {
		return model.RawProfile{}, repo.ErrNotFound
	}
	return p, nil
}

func (m *memStore) CreateProfile(ctx context.Context, p model.RawProfile) error {
	m.byEmail[p.Email] = p
	return nil
}

func (m *memStore) UpdateProfileField(ctx context.Context, id, field string, value json.RawMessage) error {
	if field == m.failOn {
		return errors.New("write failed")
	}
	m.updates[field] = value
	return nil
}

func (m *memStore) Genres(ctx context.Context) ([]model.Genre, error)           { return nil, nil }
func (m *memStore) Instruments(ctx context.Context) ([]model.Instrument, error) { return nil, nil }
func (m *memStore) EducationRanks(ctx context.Context) ([]model.EducationRank, error) {
	return nil, nil
}

func TestGetOrCreate(t *testing.T) {
	store := newMemStore()
	svc := New(store)

	created, err := svc.GetOrCreate(context.Background(), "new@x.com")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if created.ID == "" || created.Email != "new@x.com" {
		t.Errorf("skeleton = %+v, want generated id and email set", created)
	}
	if created.Occupation == nil || created.Tags == nil {
		t.Error("skeleton fields must normalize to empty lists, not nil")
	}

	again, err := svc.GetOrCreate(context.Background(), "new@x.com")
	if err != nil {
		t.Fatalf("second GetOrCreate() error = %v", err)
	}
	if again.ID != created.ID {
		t.Errorf("second access created a new profile: %s vs %s", again.ID, created.ID)
	}

	if _, err := svc.GetOrCreate(context.Background(), "  "); !errors.Is(err, ErrEmailRequired) {
		t.Errorf("blank email error = %v, want ErrEmailRequired", err)
	}
}

func TestUpdateFieldCanonicalizes(t *testing.T) {
	store := newMemStore()
	svc := New(store)

	// a legacy double-encoded occupation write lands canonical
	err := svc.UpdateField(context.Background(), "p1", "occupation",
		json.RawMessage(`["[\"Pianist\",\"Student\"]"]`))
	if err != nil {
		t.Fatalf("UpdateField() error = %v", err)
	}

	var stored []string
	if err := json.Unmarshal(store.updates["occupation"], &stored); err != nil {
		t.Fatalf("stored value is not a JSON list: %v", err)
	}
	if want := []string{"Pianist"}; !reflect.DeepEqual(stored, want) {
		t.Errorf("stored occupation = %v, want %v", stored, want)
	}
}

func TestUpdateFieldRejectsUnknown(t *testing.T) {
	svc := New(newMemStore())

	err := svc.UpdateField(context.Background(), "p1", "favourite_color", json.RawMessage(`"red"`))
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("unknown field error = %v, want ErrUnknownField", err)
	}
}

func TestUpdateFieldSurfacesWriteFailure(t *testing.T) {
	store := newMemStore()
	store.failOn = "bio"
	svc := New(store)

	err := svc.UpdateField(context.Background(), "p1", "bio", json.RawMessage(`"hello"`))
	if err == nil {
		t.Error("write failures must surface to the caller, not silently no-op")
	}
}
