// Package normalize converts variant-shaped stored profile fields into
// their canonical in-memory form.
//
// Profile fields have accumulated several storage shapes over time:
// plain arrays, JSON-encoded strings, double-encoded arrays, single
// objects and bare scalars. All shape detection lives here; callers
// never branch on raw shapes themselves. Every function is pure,
// idempotent (normalizing an already-canonical value returns it
// unchanged) and total: malformed input yields an empty canonical
// value, never an error.
package normalize

import (
	"encoding/json"
	"sort"
	"strings"
	"unicode"

	"github.com/kordlan/harmonia_backend/internal/model"
)

// FieldType selects the canonical shape a raw value is normalized to.
type FieldType int

const (
	FieldStrings FieldType = iota
	FieldEducation
	FieldCertificates
	FieldTags
	FieldSocial
)

// Normalize dispatches on fieldType and returns the canonical list for
// the raw value. The concrete result type depends on fieldType:
// []string for FieldStrings/FieldEducation/FieldCertificates,
// []model.Tag for FieldTags and []model.SocialLink for FieldSocial.
func Normalize(ft FieldType, v any) any {
	switch ft {
	case FieldEducation:
		return EducationEntries(v)
	case FieldCertificates:
		return CertificateEntries(v)
	case FieldTags:
		return TagList(v)
	case FieldSocial:
		return SocialLinks(v)
	default:
		return Strings(v)
	}
}

// FromJSON decodes a stored raw field for normalization. Empty input
// decodes to nil; bytes that are not valid JSON are treated as a bare
// legacy string rather than an error.
func FromJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}

// Strings normalizes a free-text list field (occupation, video links).
// Sentinel junk entries are dropped silently.
func Strings(v any) []string {
	if list, ok := v.([]string); ok {
		out := make([]string, 0, len(list))
		for _, s := range list {
			if !isSentinel(s) {
				out = append(out, s)
			}
		}
		return out
	}

	out := []string{}
	for _, el := range asList(v) {
		s, ok := el.(string)
		if !ok || isSentinel(s) {
			continue
		}
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

// EducationEntries normalizes the education field to display strings.
// Object entries are reshaped through the education alias rules; string
// entries are assumed preformatted.
func EducationEntries(v any) []string {
	return displayEntries(v, educationRules, " at ")
}

// CertificateEntries normalizes the certificates field to display
// strings, pairing certificate name with issuing organization.
func CertificateEntries(v any) []string {
	return displayEntries(v, certificateRules, " by ")
}

func displayEntries(v any, rules []aliasRule, sep string) []string {
	if list, ok := v.([]string); ok {
		out := make([]string, 0, len(list))
		for _, s := range list {
			if !isSentinel(s) {
				out = append(out, s)
			}
		}
		return out
	}

	out := []string{}
	for _, el := range asList(v) {
		switch e := el.(type) {
		case string:
			if !isSentinel(e) {
				out = append(out, strings.TrimSpace(e))
			}
		case map[string]any:
			if entry := applyRules(e, rules, sep); entry != "" {
				out = append(out, entry)
			}
		}
	}
	return out
}

// TagList normalizes the genre_instrument field to structured triples.
// Compact string encodings ("<genre> <instrument>" optionally followed
// by "(<category>)") are split on the first whitespace run only; a
// single-token string cannot be decomposed and is kept verbatim in
// Tag.Raw for degraded substring matching.
func TagList(v any) []model.Tag {
	if tags, ok := v.([]model.Tag); ok {
		return tags
	}

	out := []model.Tag{}
	for _, el := range asList(v) {
		switch e := el.(type) {
		case string:
			if tag, ok := parseCompactTag(e); ok {
				out = append(out, tag)
			}
		case map[string]any:
			tag := model.Tag{
				Genre:      field(e, "genre"),
				Instrument: field(e, "instrument"),
				Category:   field(e, "category"),
				Raw:        field(e, "raw"),
			}
			if tag != (model.Tag{}) {
				out = append(out, tag)
			}
		case model.Tag:
			out = append(out, e)
		}
	}
	return out
}

// SocialLinks normalizes the social field. The legacy plain-object form
// (platform name as key, link as value) is converted to a list; keys
// are visited in sorted order since the stored object carries no order.
func SocialLinks(v any) []model.SocialLink {
	if links, ok := v.([]model.SocialLink); ok {
		return links
	}

	if obj, ok := v.(map[string]any); ok {
		platforms := make([]string, 0, len(obj))
		for k := range obj {
			platforms = append(platforms, k)
		}
		sort.Strings(platforms)

		out := make([]model.SocialLink, 0, len(platforms))
		for _, p := range platforms {
			if link := field(obj, p); link != "" {
				out = append(out, model.SocialLink{Platform: p, Link: link})
			}
		}
		return out
	}

	out := []model.SocialLink{}
	for _, el := range asList(v) {
		switch e := el.(type) {
		case string:
			if s := strings.TrimSpace(e); s != "" {
				out = append(out, model.SocialLink{Link: s})
			}
		case map[string]any:
			link := model.SocialLink{
				Platform: field(e, "platform", "name"),
				Link:     field(e, "link", "url"),
			}
			if link.Platform != "" || link.Link != "" {
				out = append(out, link)
			}
		case model.SocialLink:
			out = append(out, e)
		}
	}
	return out
}

// LocationValue normalizes the location field: absent, a
// [countryCode, citySelector] pair, a {city, country} object or a bare
// string are all tolerated.
func LocationValue(v any) model.Location {
	switch loc := v.(type) {
	case model.Location:
		return loc
	case map[string]any:
		return model.Location{
			City:    field(loc, "city"),
			Country: field(loc, "country"),
		}
	case []any:
		var out model.Location
		if len(loc) > 0 {
			out.Country, _ = loc[0].(string)
		}
		if len(loc) > 1 {
			out.City, _ = loc[1].(string)
		}
		return out
	case string:
		return model.Location{City: strings.TrimSpace(loc)}
	default:
		return model.Location{}
	}
}

// Profile assembles the canonical profile from a raw store record.
func Profile(raw model.RawProfile) model.Profile {
	return model.Profile{
		ID:       raw.ID,
		Email:    raw.Email,
		Forename: raw.Forename,
		Surname:  raw.Surname,
		Bio:      raw.Bio,
		Location: LocationValue(FromJSON(raw.Location)),

		Occupation:   Strings(FromJSON(raw.Occupation)),
		Education:    EducationEntries(FromJSON(raw.Education)),
		Certificates: CertificateEntries(FromJSON(raw.Certificates)),
		Tags:         TagList(FromJSON(raw.GenreInstrument)),
		Social:       SocialLinks(FromJSON(raw.Social)),
		VideoLinks:   Strings(FromJSON(raw.VideoLinks)),

		CreatedAt: raw.CreatedAt,
		UpdatedAt: raw.UpdatedAt,
	}
}

// asList coerces a raw value into its element list, handling the
// historical encodings:
//
//   - nil yields an empty list
//   - a single-element array whose sole member is a JSON-encoded array
//     string is unwrapped (double-encoding from historical bugs)
//   - a JSON-encoded array string is decoded
//   - any other string is a single entry
//   - non-array shapes yield an empty list
func asList(v any) []any {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		if len(val) == 1 {
			if s, ok := val[0].(string); ok {
				if inner, ok := parseJSONArray(s); ok {
					return asList(inner)
				}
			}
		}
		return val
	case string:
		if inner, ok := parseJSONArray(val); ok {
			return asList(inner)
		}
		return []any{val}
	default:
		return nil
	}
}

func parseJSONArray(s string) ([]any, bool) {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "[") {
		return nil, false
	}
	var arr []any
	if err := json.Unmarshal([]byte(t), &arr); err != nil {
		return nil, false
	}
	return arr, true
}

// parseCompactTag decodes the legacy compact tag string form. The split
// happens on the first whitespace run only: multi-word genres or
// instruments cannot be round-tripped from this format, so no further
// guessing is done.
func parseCompactTag(s string) (model.Tag, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "[]" {
		return model.Tag{}, false
	}

	var category string
	if strings.HasSuffix(s, ")") {
		if i := strings.LastIndex(s, "("); i > 0 {
			category = strings.TrimSpace(s[i+1 : len(s)-1])
			s = strings.TrimSpace(s[:i])
		}
	}

	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		if category != "" {
			return model.Tag{Genre: s, Category: category}, true
		}
		return model.Tag{Raw: s}, true
	}

	return model.Tag{
		Genre:      s[:i],
		Instrument: strings.TrimLeftFunc(s[i:], unicode.IsSpace),
		Category:   category,
	}, true
}

// field returns the first non-empty string value among alias keys.
func field(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// isSentinel reports whether a string entry is placeholder junk left by
// old clients ("Student" was the default occupation) and must be
// treated as absence of data.
func isSentinel(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "Student", "[]":
		return true
	}
	return false
}
