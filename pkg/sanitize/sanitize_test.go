package sanitize

import (
	"strings"
	"testing"
)

func TestQuery(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{name: "plain value untouched", in: "Jazz", want: "Jazz"},
		{name: "control characters stripped", in: "Ja\x00zz\x1b[31m", want: "Jazz[31m"},
		{name: "newlines and tabs stripped", in: "jo\nhn\tsmith", want: "johnsmith"},
		{name: "surrounding whitespace trimmed", in: "  piano  ", want: "piano"},
		{name: "length capped in runes", in: strings.Repeat("ä", 10), maxLen: 4, want: "ääää"},
		{name: "empty stays empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Query(tt.in, tt.maxLen); got != tt.want {
				t.Errorf("Query(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
