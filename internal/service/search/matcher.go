package search

import (
	"strings"

	"github.com/kordlan/harmonia_backend/internal/model"
)

// Wildcard is the filter value that matches any tag dimension.
const Wildcard = "any"

// TagFilter is the genre/instrument/category predicate applied to a
// profile's normalized tag list. Empty dimensions count as wildcards.
type TagFilter struct {
	Genre      string
	Instrument string
	Category   string
}

// IsActive reports whether any dimension constrains the search. An
// all-wildcard filter is a no-op pass-through: it matches every
// profile, including ones with an empty tag list.
func (f TagFilter) IsActive() bool {
	return activeDim(f.Genre) || activeDim(f.Instrument) || activeDim(f.Category)
}

// MatchesTags reports whether at least one tag entry satisfies the
// filter: OR across entries, AND across active dimensions within an
// entry, case-insensitive equality per dimension.
func MatchesTags(tags []model.Tag, f TagFilter) bool {
	if !f.IsActive() {
		return true
	}
	for _, tag := range tags {
		if matchesEntry(tag, f) {
			return true
		}
	}
	return false
}

func matchesEntry(tag model.Tag, f TagFilter) bool {
	if tag.Raw != "" {
		return matchesRaw(tag.Raw, f)
	}
	if activeDim(f.Genre) && !strings.EqualFold(tag.Genre, f.Genre) {
		return false
	}
	if activeDim(f.Instrument) && !strings.EqualFold(tag.Instrument, f.Instrument) {
		return false
	}
	if activeDim(f.Category) && !strings.EqualFold(tag.Category, f.Category) {
		return false
	}
	return true
}

// matchesRaw is the degraded mode for legacy string entries that could
// not be decomposed into structured fields: every active filter value
// must be contained in the raw string, case-insensitively.
func matchesRaw(raw string, f TagFilter) bool {
	lower := strings.ToLower(raw)
	for _, dim := range []string{f.Genre, f.Instrument, f.Category} {
		if activeDim(dim) && !strings.Contains(lower, strings.ToLower(dim)) {
			return false
		}
	}
	return true
}

func activeDim(v string) bool {
	return v != "" && !strings.EqualFold(v, Wildcard)
}
