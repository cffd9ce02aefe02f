package normalize

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/kordlan/harmonia_backend/internal/model"
)

func TestStrings(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{
			name: "nil input",
			in:   nil,
			want: []string{},
		},
		{
			name: "plain array",
			in:   []any{"Trumpet teacher", "Session musician"},
			want: []string{"Trumpet teacher", "Session musician"},
		},
		{
			name: "sentinel only",
			in:   []any{"Student"},
			want: []string{},
		},
		{
			name: "sentinels mixed with real entries",
			in:   []any{"Trumpet", "Student", "", "  ", "[]"},
			want: []string{"Trumpet"},
		},
		{
			name: "bare string",
			in:   "Composer",
			want: []string{"Composer"},
		},
		{
			name: "JSON-encoded array string",
			in:   `["Composer","Arranger"]`,
			want: []string{"Composer", "Arranger"},
		},
		{
			name: "double-encoded array",
			in:   []any{`["Composer","Arranger"]`},
			want: []string{"Composer", "Arranger"},
		},
		{
			name: "object is not a valid shape",
			in:   map[string]any{"role": "Composer"},
			want: []string{},
		},
		{
			name: "non-string elements skipped",
			in:   []any{"Composer", 3.0, nil},
			want: []string{"Composer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strings(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Strings() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStringsIdempotent(t *testing.T) {
	shapes := []any{
		[]any{"Trumpet", "Student", ""},
		`["Composer","Arranger"]`,
		[]any{`["Composer"]`},
		nil,
	}
	for _, in := range shapes {
		once := Strings(in)
		twice := Strings(any(sliceToAny(once)))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Strings not idempotent for %v: first %v, second %v", in, once, twice)
		}
		// canonical typed form passes through unchanged too
		if got := Strings(once); !reflect.DeepEqual(got, once) {
			t.Errorf("Strings(canonical) = %v, want %v", got, once)
		}
	}
}

func TestEducationEntries(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{
			name: "name/place shape",
			in:   []any{map[string]any{"name": "Master of Music", "place": "Royal Academy"}},
			want: []string{"Master of Music at Royal Academy"},
		},
		{
			name: "degree/school shape",
			in:   []any{map[string]any{"degree": "Bachelor", "school": "Conservatory"}},
			want: []string{"Bachelor at Conservatory"},
		},
		{
			name: "type/school shape",
			in:   []any{map[string]any{"type": "Diploma", "school": "Music School"}},
			want: []string{"Diploma at Music School"},
		},
		{
			name: "name/place wins over degree/school",
			in: []any{map[string]any{
				"name": "Master", "place": "Academy",
				"degree": "stale", "school": "stale",
			}},
			want: []string{"Master at Academy"},
		},
		{
			name: "lone part stands alone",
			in:   []any{map[string]any{"school": "Conservatory"}},
			want: []string{"Conservatory"},
		},
		{
			name: "preformatted string passes through",
			in:   []any{"Bachelor at Conservatory"},
			want: []string{"Bachelor at Conservatory"},
		},
		{
			name: "unknown keys contribute nothing",
			in:   []any{map[string]any{"foo": "bar"}},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EducationEntries(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EducationEntries() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCertificateEntries(t *testing.T) {
	in := []any{
		map[string]any{"name": "Grade 8 Piano", "organization": "ABRSM"},
		map[string]any{"title": "Jazz Diploma", "issuer": "Berklee"},
		"Performance Certificate by Trinity",
	}
	want := []string{
		"Grade 8 Piano by ABRSM",
		"Jazz Diploma by Berklee",
		"Performance Certificate by Trinity",
	}
	got := CertificateEntries(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CertificateEntries() = %v, want %v", got, want)
	}
}

func TestTagList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []model.Tag
	}{
		{
			name: "structured objects",
			in: []any{map[string]any{
				"genre": "Jazz", "instrument": "Piano", "category": "teacher",
			}},
			want: []model.Tag{{Genre: "Jazz", Instrument: "Piano", Category: "teacher"}},
		},
		{
			name: "compact string splits on first whitespace run",
			in:   []any{"Jazz Trumpet", "Rock Guitar"},
			want: []model.Tag{
				{Genre: "Jazz", Instrument: "Trumpet"},
				{Genre: "Rock", Instrument: "Guitar"},
			},
		},
		{
			name: "multi-word instrument keeps remainder intact",
			in:   []any{"Classical Double  Bass"},
			want: []model.Tag{{Genre: "Classical", Instrument: "Double  Bass"}},
		},
		{
			name: "compact string with category suffix",
			in:   []any{"Jazz Piano (teacher)"},
			want: []model.Tag{{Genre: "Jazz", Instrument: "Piano", Category: "teacher"}},
		},
		{
			name: "double-encoded compact strings",
			in:   []any{`["Jazz Trumpet","Rock Guitar"]`},
			want: []model.Tag{
				{Genre: "Jazz", Instrument: "Trumpet"},
				{Genre: "Rock", Instrument: "Guitar"},
			},
		},
		{
			name: "single token kept raw",
			in:   []any{"Vocals"},
			want: []model.Tag{{Raw: "Vocals"}},
		},
		{
			name: "empty and bracket junk skipped",
			in:   []any{"", "[]", "Jazz Piano"},
			want: []model.Tag{{Genre: "Jazz", Instrument: "Piano"}},
		},
		{
			name: "absent field",
			in:   nil,
			want: []model.Tag{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TagList(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TagList() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTagListIdempotent(t *testing.T) {
	once := TagList([]any{"Jazz Trumpet", map[string]any{"genre": "Rock", "instrument": "Guitar"}})
	if got := TagList(once); !reflect.DeepEqual(got, once) {
		t.Errorf("TagList(canonical) = %v, want %v", got, once)
	}

	// canonical value round-tripped through JSON storage re-normalizes unchanged
	raw, err := json.Marshal(once)
	if err != nil {
		t.Fatalf("marshal canonical tags: %v", err)
	}
	if got := TagList(FromJSON(raw)); !reflect.DeepEqual(got, once) {
		t.Errorf("TagList(stored canonical) = %v, want %v", got, once)
	}
}

func TestSocialLinks(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []model.SocialLink
	}{
		{
			name: "list of pairs",
			in: []any{
				map[string]any{"platform": "youtube", "link": "https://youtube.com/@ada"},
			},
			want: []model.SocialLink{{Platform: "youtube", Link: "https://youtube.com/@ada"}},
		},
		{
			name: "legacy object keyed by platform, sorted key order",
			in: map[string]any{
				"youtube":   "https://youtube.com/@ada",
				"instagram": "https://instagram.com/ada",
			},
			want: []model.SocialLink{
				{Platform: "instagram", Link: "https://instagram.com/ada"},
				{Platform: "youtube", Link: "https://youtube.com/@ada"},
			},
		},
		{
			name: "name/url aliases",
			in:   []any{map[string]any{"name": "soundcloud", "url": "https://soundcloud.com/ada"}},
			want: []model.SocialLink{{Platform: "soundcloud", Link: "https://soundcloud.com/ada"}},
		},
		{
			name: "bare link string entry",
			in:   []any{"https://example.com"},
			want: []model.SocialLink{{Link: "https://example.com"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SocialLinks(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SocialLinks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocationValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want model.Location
	}{
		{name: "absent", in: nil, want: model.Location{}},
		{
			name: "object form",
			in:   map[string]any{"city": "Vienna", "country": "AT"},
			want: model.Location{City: "Vienna", Country: "AT"},
		},
		{
			name: "pair form is country then city selector",
			in:   []any{"AT", "vienna"},
			want: model.Location{Country: "AT", City: "vienna"},
		},
		{
			name: "bare string",
			in:   "Vienna",
			want: model.Location{City: "Vienna"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocationValue(tt.in); got != tt.want {
				t.Errorf("LocationValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProfileAssembly(t *testing.T) {
	raw := model.RawProfile{
		ID:              "p1",
		Email:           "ada@example.com",
		Forename:        "Ada",
		Surname:         "Keys",
		Occupation:      json.RawMessage(`["[\"Pianist\",\"Student\"]"]`),
		Education:       json.RawMessage(`[{"degree":"Master","school":"Academy"}]`),
		GenreInstrument: json.RawMessage(`"[\"Jazz Piano\"]"`),
		Social:          json.RawMessage(`{"youtube":"https://youtube.com/@ada"}`),
	}

	p := Profile(raw)

	if want := []string{"Pianist"}; !reflect.DeepEqual(p.Occupation, want) {
		t.Errorf("Occupation = %v, want %v", p.Occupation, want)
	}
	if want := []string{"Master at Academy"}; !reflect.DeepEqual(p.Education, want) {
		t.Errorf("Education = %v, want %v", p.Education, want)
	}
	if want := []model.Tag{{Genre: "Jazz", Instrument: "Piano"}}; !reflect.DeepEqual(p.Tags, want) {
		t.Errorf("Tags = %v, want %v", p.Tags, want)
	}
	if len(p.Social) != 1 || p.Social[0].Platform != "youtube" {
		t.Errorf("Social = %v, want one youtube link", p.Social)
	}
	if p.FullName() != "Ada Keys" {
		t.Errorf("FullName() = %q, want %q", p.FullName(), "Ada Keys")
	}
}

func TestDegreePart(t *testing.T) {
	if got := DegreePart("Master at Academy"); got != "Master" {
		t.Errorf("DegreePart() = %q, want %q", got, "Master")
	}
	if got := DegreePart("Master"); got != "Master" {
		t.Errorf("DegreePart() = %q, want %q", got, "Master")
	}
}

func sliceToAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
