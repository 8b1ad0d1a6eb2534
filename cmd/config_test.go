package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("init")
	env.contains(out, "Wrote .sitekit")
	assert.FileExists(t, filepath.Join(env.dir, ".sitekit", "config.yaml"))
	ignore, err := os.ReadFile(filepath.Join(env.dir, ".sitekit", ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(ignore), "history.db")

	out = env.run("config", "site.root")
	env.equals(out, "dist")

	_, err = env.runErr("init")
	assert.Error(t, err, "second init should refuse to overwrite")

	env.run("init", "--force", "--share-history")
	ignore, err = os.ReadFile(filepath.Join(env.dir, ".sitekit", ".gitignore"))
	require.NoError(t, err)
	assert.NotContains(t, string(ignore), "history.db")
}

func TestConfig_GetSet(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"site.root", "build"},
		{"locales.supported", "en,de,fr"},
		{"site.workers", "4"},
		{"redirect.addr", ":8080"},
		{"content.dir", "content"},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			env := newTestEnv(t)

			out := env.run("config", tc.key, tc.value)
			env.contains(out, "(global)")

			out = env.run("config", tc.key)
			env.equals(out, tc.value)
		})
	}
}

func TestConfig_Scopes(t *testing.T) {
	env := newTestEnv(t)

	env.run("config", "site.root", "global-dist")
	assert.FileExists(t, filepath.Join(env.home, ".sitekit", "config.yaml"))

	out := env.run("config", "--local", "site.root", "local-dist")
	env.contains(out, "(local)")

	out = env.run("config", "site.root")
	env.equals(out, "local-dist")
}

func TestConfig_List(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config")
	env.contains(out, "locales.default: en")
	env.contains(out, "site.marker_attribute: data-locale")

	var all map[string]string
	env.runJSON(&all, "config")
	assert.Equal(t, "dist", all["site.root"])
}

func TestConfig_Errors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.runErr("config", "invalid.key", "value")
		assert.Error(t, err)
	})

	t.Run("default outside supported", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.runErr("config", "locales.default", "fr")
		assert.Error(t, err)
	})

	t.Run("bad workers", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.runErr("config", "site.workers", "zero")
		assert.Error(t, err)
	})
}

func TestConfig_InvalidFile(t *testing.T) {
	env := newTestEnv(t)
	env.write(map[string]string{".sitekit/config.yaml": "locales:\n  default: fr\n"})

	_, err := env.runErr("check")
	assert.Error(t, err)

	_, err = env.runErr("config", "--local", "locales.default", "en")
	assert.Error(t, err, "an invalid file must be fixed by hand")

	require.NoError(t, os.Remove(filepath.Join(env.dir, ".sitekit", "config.yaml")))
	env.run("check", "--no-history")
}
