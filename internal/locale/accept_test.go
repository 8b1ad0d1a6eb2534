package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferredLocale(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"higher q wins regardless of order", "de;q=0.9,en;q=0.95", "en"},
		{"no match falls back", "fr;q=1.0", "en"},
		{"empty header", "", "en"},
		{"whitespace header", "  ", "en"},
		{"region stripped", "de-DE,en;q=0.5", "de"},
		{"upper-case base", "DE-AT", "de"},
		{"equal q keeps header order", "de,en", "de"},
		{"malformed q treated as 1.0", "en;q=0.5,de;q=abc", "de"},
		{"skips unsupported", "fr-FR,fr;q=0.9,de;q=0.8", "de"},
		{"wildcard ignored", "*,de;q=0.1", "de"},
		{"duplicate tag first wins", "de;q=0.5,en;q=0.5,de;q=0.4", "de"},
		{"spaces around params", "en ; q = 0.1 , de ; q = 0.2", "de"},
		{"empty entries", ",,de", "de"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, testSet.PreferredLocale(tt.header))
		})
	}
}

func TestParseAcceptLanguage(t *testing.T) {
	prefs := ParseAcceptLanguage("en-US;q=0.8, de, fr;q=0.8")
	assert.Equal(t, []Preference{
		{Tag: "de", Base: "de", Q: 1.0},
		{Tag: "en-US", Base: "en", Q: 0.8},
		{Tag: "fr", Base: "fr", Q: 0.8},
	}, prefs)
}
