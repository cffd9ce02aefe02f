package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kordlan/harmonia_backend/internal/model"
)

// Postgres is the production Store over a plain database/sql
// connection. Variant profile fields live in jsonb columns and are
// returned as raw JSON so the stored shapes reach the normalizer
// untouched.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const profileColumns = `id, email, forename, surname, bio,
	location, occupation, education, certificates, genre_instrument, social, video_links,
	created_at, updated_at`

func (s *Postgres) AllProfiles(ctx context.Context) ([]model.RawProfile, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+profileColumns+` FROM profiles`)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var out []model.RawProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}
	return out, nil
}

func (s *Postgres) ProfileByID(ctx context.Context, id string) (model.RawProfile, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	return oneProfile(row)
}

func (s *Postgres) ProfileByEmail(ctx context.Context, email string) (model.RawProfile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE lower(email) = lower($1)`, email)
	return oneProfile(row)
}

func (s *Postgres) CreateProfile(ctx context.Context, p model.RawProfile) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (id, email, forename, surname, bio, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now(), now())`,
		p.ID, p.Email, p.Forename, p.Surname, p.Bio,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// scalarFields and variantFields whitelist the updatable columns; field
// names arrive from the HTTP layer and are never interpolated raw.
var scalarFields = map[string]bool{
	"email":    true,
	"forename": true,
	"surname":  true,
	"bio":      true,
}

var variantFields = map[string]bool{
	"location":         true,
	"occupation":       true,
	"education":        true,
	"certificates":     true,
	"genre_instrument": true,
	"social":           true,
	"video_links":      true,
}

// ValidField reports whether field names an updatable profile column.
func ValidField(field string) bool {
	return scalarFields[field] || variantFields[field]
}

func (s *Postgres) UpdateProfileField(ctx context.Context, id, field string, value json.RawMessage) error {
	var query string
	var arg any

	switch {
	case scalarFields[field]:
		var str string
		if err := json.Unmarshal(value, &str); err != nil {
			return fmt.Errorf("%w: %s expects a string value", ErrInvalidField, field)
		}
		query = fmt.Sprintf(`UPDATE profiles SET %s = $1, updated_at = now() WHERE id = $2`, field)
		arg = strings.TrimSpace(str)
	case variantFields[field]:
		query = fmt.Sprintf(`UPDATE profiles SET %s = $1::jsonb, updated_at = now() WHERE id = $2`, field)
		arg = []byte(value)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidField, field)
	}

	res, err := s.db.ExecContext(ctx, query, arg, id)
	if err != nil {
		return fmt.Errorf("failed to update profile field %s: %w", field, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) Genres(ctx context.Context) ([]model.Genre, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM genres ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	var out []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *Postgres) Instruments(ctx context.Context) ([]model.Instrument, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, category, category_rank, instrument_rank FROM instruments`)
	if err != nil {
		return nil, fmt.Errorf("failed to query instruments: %w", err)
	}
	defer rows.Close()

	var out []model.Instrument
	for rows.Next() {
		var in model.Instrument
		if err := rows.Scan(&in.ID, &in.Name, &in.Category, &in.CategoryRank, &in.InstrumentRank); err != nil {
			return nil, fmt.Errorf("failed to scan instrument: %w", err)
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func (s *Postgres) EducationRanks(ctx context.Context) ([]model.EducationRank, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, rank FROM education_ranks`)
	if err != nil {
		return nil, fmt.Errorf("failed to query education ranks: %w", err)
	}
	defer rows.Close()

	var out []model.EducationRank
	for rows.Next() {
		var r model.EducationRank
		if err := rows.Scan(&r.Name, &r.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan education rank: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func oneProfile(row *sql.Row) (model.RawProfile, error) {
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return model.RawProfile{}, ErrNotFound
	}
	return p, err
}

func scanProfile(row rowScanner) (model.RawProfile, error) {
	var p model.RawProfile
	var email, forename, surname, bio sql.NullString
	var location, occupation, education, certificates, tags, social, videos []byte

	err := row.Scan(
		&p.ID, &email, &forename, &surname, &bio,
		&location, &occupation, &education, &certificates, &tags, &social, &videos,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return p, err
		}
		return p, fmt.Errorf("failed to scan profile: %w", err)
	}

	p.Email = email.String
	p.Forename = forename.String
	p.Surname = surname.String
	p.Bio = bio.String
	p.Location = location
	p.Occupation = occupation
	p.Education = education
	p.Certificates = certificates
	p.GenreInstrument = tags
	p.Social = social
	p.VideoLinks = videos
	return p, nil
}
