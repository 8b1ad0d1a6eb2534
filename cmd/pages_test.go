package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPages(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("pages")
	env.equals(out, "/de/\n/de/pricing/\n/en/\n/en/pricing/\n/")
}

func TestPages_Filters(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"locale", []string{"--locale", "de"}, "/de/\n/de/pricing/"},
		{"unlocalised", []string{"--locale", "-"}, "/"},
		{"prefix", []string{"/en/"}, "/en/\n/en/pricing/"},
		{"direct", []string{"/en/", "--direct"}, "/en/pricing/"},
	}

	env := newTestEnv(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := env.run(append([]string{"pages"}, tc.args...)...)
			env.equals(out, tc.want)
		})
	}
}

func TestPages_Tree(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("pages", "--tree")
	env.equals(out, "/\n"+
		"├── de/ *\n"+
		"│   └── pricing\n"+
		"└── en/ *\n"+
		"    └── pricing")
}

func TestPages_Long(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("pages", "-l", "--locale", "en")
	env.contains(out, "LOCALE  LINKS  MARKERS  URL")
	env.contains(out, "en          3        1  /en/")
}

func TestPages_JSON(t *testing.T) {
	env := newTestEnv(t)

	var pages []struct {
		URL     string   `json:"url"`
		Locale  string   `json:"locale"`
		Links   int      `json:"links"`
		Markers []string `json:"markers"`
		Anchors []string `json:"anchors"`
	}
	env.runJSON(&pages, "pages", "--locale", "de", "--links")
	require.Len(t, pages, 2)
	assert.Equal(t, "/de/", pages[0].URL)
	assert.Equal(t, []string{"de"}, pages[0].Markers)
	assert.Equal(t, []string{"/de/pricing/", "mailto:hello@openticket.ai"}, pages[0].Anchors)
	assert.Equal(t, 1, pages[1].Links)
}

func TestPages_MissingRoot(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runErr("pages", "--root", "nowhere")
	assert.Error(t, err)
}
