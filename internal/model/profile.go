package model

import (
	"encoding/json"
	"time"
)

// RawProfile is a profile record exactly as the store returns it. The
// variant fields carry whatever shape was written historically (arrays,
// JSON-encoded strings, single objects, legacy scalars) and must go
// through the normalize package before use.
type RawProfile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Forename string `json:"forename"`
	Surname  string `json:"surname"`
	Bio      string `json:"bio"`

	Location        json.RawMessage `json:"location"`
	Occupation      json.RawMessage `json:"occupation"`
	Education       json.RawMessage `json:"education"`
	Certificates    json.RawMessage `json:"certificates"`
	GenreInstrument json.RawMessage `json:"genre_instrument"`
	Social          json.RawMessage `json:"social"`
	VideoLinks      json.RawMessage `json:"video_links"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the canonical, fully normalized musician record served by
// the search and profile endpoints.
type Profile struct {
	ID       string   `json:"id"`
	Email    string   `json:"email,omitempty"`
	Forename string   `json:"forename"`
	Surname  string   `json:"surname"`
	Bio      string   `json:"bio,omitempty"`
	Location Location `json:"location"`

	Occupation   []string     `json:"occupation"`
	Education    []string     `json:"education"`
	Certificates []string     `json:"certificates"`
	Tags         []Tag        `json:"genre_instrument"`
	Social       []SocialLink `json:"social"`
	VideoLinks   []string     `json:"video_links"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName composes the display name used for name search and sorting.
func (p Profile) FullName() string {
	switch {
	case p.Forename == "":
		return p.Surname
	case p.Surname == "":
		return p.Forename
	default:
		return p.Forename + " " + p.Surname
	}
}

// Tag is one searchable genre/instrument/category triple. Raw is set
// instead of the structured fields when a legacy string entry could not
// be decomposed; such entries are matched by substring only.
type Tag struct {
	Genre      string `json:"genre,omitempty"`
	Instrument string `json:"instrument,omitempty"`
	Category   string `json:"category,omitempty"`

	// Raw holds an undecomposable legacy entry verbatim.
	Raw string `json:"raw,omitempty"`
}

// SocialLink is one platform/URL pair.
type SocialLink struct {
	Platform string `json:"platform"`
	Link     string `json:"link"`
}

// Location tolerates the historical shapes (absent, [country, city]
// pair, or {city, country} object); this is the canonical one.
type Location struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}
