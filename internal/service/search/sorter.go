package search

import (
	"math/rand/v2"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kordlan/harmonia_backend/internal/model"
	"github.com/kordlan/harmonia_backend/internal/normalize"
)

// Sort criteria accepted by the search endpoint.
const (
	SortNameAsc       = "name_asc"
	SortNameDesc      = "name_desc"
	SortEducationDesc = "education_desc"
	SortRandom        = "random"
)

// ValidSort reports whether criterion is one of the supported values.
func ValidSort(criterion string) bool {
	switch criterion {
	case SortNameAsc, SortNameDesc, SortEducationDesc, SortRandom:
		return true
	}
	return false
}

// Ranks is the reference education table keyed by lowercased name.
type Ranks map[string]int

// NewRanks builds the lookup table from reference entries.
func NewRanks(entries []model.EducationRank) Ranks {
	r := make(Ranks, len(entries))
	for _, e := range entries {
		r[strings.ToLower(e.Name)] = e.Rank
	}
	return r
}

// MaxFor returns the highest rank achieved across a profile's
// normalized education entries. Entries are matched case-insensitively,
// first as a whole and then by their degree part; entries with no match
// contribute 0, so a profile with no education sorts at rank 0.
func (r Ranks) MaxFor(p model.Profile) int {
	max := 0
	for _, entry := range p.Education {
		rank, ok := r[strings.ToLower(entry)]
		if !ok {
			rank = r[strings.ToLower(normalize.DegreePart(entry))]
		}
		if rank > max {
			max = rank
		}
	}
	return max
}

// Sort orders profiles by the selected criterion without mutating the
// input. An unknown criterion returns the input order unchanged.
//
// name_desc uses the negated name comparator rather than reversing the
// sorted list: reversal would also flip ties, so ties keep their
// original relative order under both directions independently.
func Sort(profiles []model.Profile, criterion string, ranks Ranks) []model.Profile {
	out := make([]model.Profile, len(profiles))
	copy(out, profiles)

	switch criterion {
	case SortNameAsc:
		c := nameCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].FullName(), out[j].FullName()) < 0
		})
	case SortNameDesc:
		c := nameCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].FullName(), out[j].FullName()) > 0
		})
	case SortEducationDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return ranks.MaxFor(out[i]) > ranks.MaxFor(out[j])
		})
	case SortRandom:
		// a "surprise me" shuffle, not a statistical primitive
		rand.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}

	return out
}

func nameCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}
