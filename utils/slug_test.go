package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "TSF Alpha Club", "tsf-alpha-club"},
		{"already slug", "tsf-alpha", "tsf-alpha"},
		{"punctuation collapsed", "St. Mary's Club!!", "st-mary-s-club"},
		{"surrounding space", "  Debate Society  ", "debate-society"},
		{"repeated separators", "A  --  B", "a-b"},
		{"digits kept", "Club 42", "club-42"},
		{"unicode dropped", "Café Münster", "caf-m-nster"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}
