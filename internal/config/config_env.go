// config_env.go applies SITEKIT_* environment overrides on top of the file.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the set of recognised environment overrides. Empty values leave
// the file setting in place.
type Env struct {
	Root           string   `env:"SITEKIT_ROOT"`
	Locales        []string `env:"SITEKIT_LOCALES" envSeparator:","`
	DefaultLocale  string   `env:"SITEKIT_DEFAULT_LOCALE"`
	BrokenLinksLog string   `env:"SITEKIT_BROKEN_LINKS_LOG"`
	Addr           string   `env:"SITEKIT_ADDR"`
	ContentDir     string   `env:"SITEKIT_CONTENT_DIR"`
}

// ParseEnv loads the overrides from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ApplyEnv overlays the process environment onto c.
func (c *Config) ApplyEnv() error {
	e, err := ParseEnv()
	if err != nil {
		return err
	}
	c.Apply(e)
	return nil
}

// Apply overlays the non-empty fields of e onto c.
func (c *Config) Apply(e Env) {
	if e.Root != "" {
		c.Site.Root = e.Root
	}
	if len(e.Locales) > 0 {
		c.Locales.Supported = e.Locales
	}
	if e.DefaultLocale != "" {
		c.Locales.Default = e.DefaultLocale
	}
	if e.BrokenLinksLog != "" {
		c.Site.BrokenLinksLog = e.BrokenLinksLog
	}
	if e.Addr != "" {
		c.Redirect.Addr = e.Addr
	}
	if e.ContentDir != "" {
		c.Content.Dir = e.ContentDir
	}
}
