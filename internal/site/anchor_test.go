package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAnchor(t *testing.T) {
	tests := []struct {
		href     string
		base     string
		external bool
		resolved string
	}{
		{"/en/services", "/de/products/", false, "/en/services"},
		{"../pricing/", "/de/products/", false, "/de/pricing/"},
		{"setup/", "/de/docs/", false, "/de/docs/setup/"},
		{"./", "/de/docs/", false, "/de/docs/"},
		{"?tab=2", "/de/docs/", false, "/de/docs/"},
		{"../../../../x", "/de/", false, "/x"},
		{"", "/de/docs/", false, "/de/docs/"},
		{"https://example.com/en/", "/de/", true, ""},
		{"mailto:a@b.c", "/de/", true, ""},
		{"#top", "/de/", true, ""},
		{"//cdn.example.com/en/app.js", "/de/", true, ""},
		{" /en/services", "/de/products/", false, "/en/services"},
		{"/en/services\n", "/de/products/", false, "/en/services"},
		{"\t/en/services", "/de/products/", false, "/en/services"},
		{"/en/serv\nices", "/de/products/", false, "/en/services"},
		{"  https://example.com/en/ ", "/de/", true, ""},
		{" #top", "/de/", true, ""},
		{"../pricing/", "/de/100%/", false, "/de/pricing/"},
		{"./", "/de/a b/", false, "/de/a b/"},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			a := ResolveAnchor(tt.href, tt.base)
			assert.Equal(t, tt.external, a.External)
			assert.Equal(t, tt.resolved, a.Resolved)
			assert.NoError(t, a.Err)
		})
	}
}

func TestResolveAnchor_Malformed(t *testing.T) {
	a := ResolveAnchor("/en/%zz", "/de/")
	assert.True(t, a.External)
	assert.Error(t, a.Err)
}
