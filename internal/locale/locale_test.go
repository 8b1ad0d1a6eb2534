package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSet = MustSet([]string{"en", "de"}, "en")

func TestNewSet(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := NewSet([]string{"en", "de"}, "en")
		require.NoError(t, err)
		assert.Equal(t, "en", s.Default())
		assert.Equal(t, []string{"en", "de"}, s.Supported())
	})

	tests := []struct {
		name      string
		supported []string
		def       string
		want      error
	}{
		{"empty", nil, "en", ErrNoLocales},
		{"default missing", []string{"en", "de"}, "fr", ErrDefaultNotSupported},
		{"duplicate", []string{"en", "en"}, "en", ErrInvalidLocale},
		{"not a tag", []string{"en", "x_y!"}, "en", ErrInvalidLocale},
		{"empty code", []string{"en", ""}, "en", ErrInvalidLocale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSet(tt.supported, tt.def)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSupported_ReturnsCopy(t *testing.T) {
	got := testSet.Supported()
	got[0] = "xx"
	assert.Equal(t, "en", testSet.Supported()[0])
}

func TestHasLocalePrefix(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/de/docs", true},
		{"/en/", true},
		{"/en", true},
		{"de/docs", true},
		{"/docs", false},
		{"/DE/docs", false},
		{"/", false},
		{"", false},
		{"//de/docs", false},
		{"/fr/docs", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, testSet.HasLocalePrefix(tt.path))
		})
	}
}

func TestLocalizeHref(t *testing.T) {
	tests := []struct {
		href, target, want string
	}{
		{"/docs", "de", "/de/docs"},
		{"/docs/setup?x=1#a", "de", "/de/docs/setup?x=1#a"},
		{"/", "de", "/de/"},
		{"/docs", "en", "/docs"},
		{"/de/docs", "de", "/de/docs"},
		{"/en/docs", "de", "/en/docs"},
		{"https://example.com/x", "de", "https://example.com/x"},
		{"mailto:sales@example.com", "de", "mailto:sales@example.com"},
		{"#top", "de", "#top"},
		{"docs/setup", "de", "docs/setup"},
		{"", "de", ""},
	}
	for _, tt := range tests {
		t.Run(tt.href+"->"+tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, testSet.LocalizeHref(tt.href, tt.target))
		})
	}
}

func TestLocalizeHref_Properties(t *testing.T) {
	paths := []string{"/", "/docs", "/docs/", "/blog/2024/launch/", "/pricing?plan=pro", "/a#b"}

	for _, p := range paths {
		for _, l := range testSet.Supported() {
			once := testSet.LocalizeHref(p, l)
			assert.Equal(t, once, testSet.LocalizeHref(once, l), "idempotence for %q/%q", p, l)
		}
		assert.Equal(t, p, testSet.LocalizeHref(p, testSet.Default()), "default invisibility for %q", p)
	}

	for _, h := range []string{"https://example.com/x", "#top", "tel:+4912345", "HTTP://x"} {
		for _, l := range testSet.Supported() {
			assert.Equal(t, h, testSet.LocalizeHref(h, l))
		}
	}
}

func TestLocaleFromPath(t *testing.T) {
	for _, l := range testSet.Supported() {
		for _, p := range []string{"/", "/docs", "/docs/setup/"} {
			assert.Equal(t, l, testSet.LocaleFromPath("/"+l+p))
		}
	}
	assert.Equal(t, "en", testSet.LocaleFromPath("/fr/docs"))
	assert.Equal(t, "en", testSet.LocaleFromPath("/docs"))
	assert.Equal(t, "en", testSet.LocaleFromPath(""))
}

func TestIsLocaleSegment(t *testing.T) {
	tests := []struct {
		seg  string
		want bool
	}{
		{"en", true},
		{"de", true},
		{"fr", true},
		{"EN", false},
		{"e1", false},
		{"eng", false},
		{"en-us", false},
		{"e", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.seg, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLocaleSegment(tt.seg))
		})
	}
}
