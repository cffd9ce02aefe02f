package repo

import (
	"context"
	"fmt"

	"github.com/kordlan/harmonia_backend/internal/model"
)

// schema is the bootstrap DDL; applied by `harmonia system initdb`.
// The variant profile fields are deliberately loose jsonb: the store
// must accept the historical shapes, correction happens on read.
const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id               text PRIMARY KEY,
	email            text UNIQUE,
	forename         text,
	surname          text,
	bio              text,
	location         jsonb,
	occupation       jsonb,
	education        jsonb,
	certificates     jsonb,
	genre_instrument jsonb,
	social           jsonb,
	video_links      jsonb,
	created_at       timestamptz NOT NULL DEFAULT now(),
	updated_at       timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS genres (
	id   text PRIMARY KEY,
	name text NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS instruments (
	id              text PRIMARY KEY,
	name            text NOT NULL,
	category        text NOT NULL DEFAULT '',
	category_rank   integer NOT NULL DEFAULT 0,
	instrument_rank integer NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS education_ranks (
	name text PRIMARY KEY,
	rank integer NOT NULL
);
`

// EnsureSchema creates the tables if they do not exist.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// SeedReference upserts the reference vocabulary, typically the
// compiled-in fallback set on a fresh deployment.
func (s *Postgres) SeedReference(ctx context.Context, genres []model.Genre, instruments []model.Instrument, ranks []model.EducationRank) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, g := range genres {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO genres (id, name) VALUES ($1, $2)
			 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
			g.ID, g.Name)
		if err != nil {
			return fmt.Errorf("failed to seed genre %s: %w", g.Name, err)
		}
	}

	for _, in := range instruments {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO instruments (id, name, category, category_rank, instrument_rank)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				category = EXCLUDED.category,
				category_rank = EXCLUDED.category_rank,
				instrument_rank = EXCLUDED.instrument_rank`,
			in.ID, in.Name, in.Category, in.CategoryRank, in.InstrumentRank)
		if err != nil {
			return fmt.Errorf("failed to seed instrument %s: %w", in.Name, err)
		}
	}

	for _, r := range ranks {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO education_ranks (name, rank) VALUES ($1, $2)
			 ON CONFLICT (name) DO UPDATE SET rank = EXCLUDED.rank`,
			r.Name, r.Rank)
		if err != nil {
			return fmt.Errorf("failed to seed education rank %s: %w", r.Name, err)
		}
	}

	return tx.Commit()
}
