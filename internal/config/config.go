// Package config provides reading and writing of sitekit configuration.
// Supports both global (~/.sitekit/config.yaml) and local (.sitekit/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
//
// Values resolve in the order flag > environment > file > default. Flags are
// applied by the commands; this package handles the rest.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/openticketai/sitekit/internal/locale"
	"github.com/openticketai/sitekit/internal/site"
	"github.com/openticketai/sitekit/internal/validate"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Dir is the name of the per-project and per-user sitekit directory.
const Dir = ".sitekit"

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.sitekit/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .sitekit/config.yaml
	ScopeLocal
)

// Defaults applied when a value is not configured.
const (
	DefaultLocale     = "en"
	DefaultRoot       = "dist"
	DefaultAddr       = "127.0.0.1:4321"
	DefaultContentDir = "src/content"
	MaxWorkers        = 256
)

// DefaultLocales is the supported set when none is configured.
var DefaultLocales = []string{"en", "de"}

// Locales holds the supported locale set.
type Locales struct {
	Supported []string `yaml:"supported,omitempty"`
	Default   string   `yaml:"default,omitempty"`
}

// Site holds validator settings.
type Site struct {
	Root            string   `yaml:"root,omitempty"`
	BrokenLinksLog  string   `yaml:"broken_links_log,omitempty"`
	MarkerAttribute string   `yaml:"marker_attribute,omitempty"`
	KeyPages        []string `yaml:"key_pages,omitempty"`
	Workers         *int     `yaml:"workers,omitempty"`
}

// Redirect holds preview server settings.
type Redirect struct {
	SkipPrefixes []string `yaml:"skip_prefixes,omitempty"`
	Addr         string   `yaml:"addr,omitempty"`
}

// Content holds the content collection location.
type Content struct {
	Dir string `yaml:"dir,omitempty"`
}

// Config contains configuration for sitekit.
type Config struct {
	Locales  Locales  `yaml:"locales,omitempty"`
	Site     Site     `yaml:"site,omitempty"`
	Redirect Redirect `yaml:"redirect,omitempty"`
	Content  Content  `yaml:"content,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are usable.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if _, err := c.LocaleSet(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	if err := validate.ValidatePatterns(c.KeyPages()); err != nil {
		return fmt.Errorf("%w: site.key_pages: %w", ErrInvalidValue, err)
	}
	if c.Site.Workers != nil {
		if v := *c.Site.Workers; v < 1 || v > MaxWorkers {
			return fmt.Errorf("%w: site.workers must be between 1 and %d, got %d", ErrInvalidValue, MaxWorkers, v)
		}
	}
	if a := c.Site.MarkerAttribute; a != "" && strings.ContainsAny(a, " \t\"'=<>/") {
		return fmt.Errorf("%w: site.marker_attribute %q is not an attribute name", ErrInvalidValue, a)
	}
	for _, p := range c.Redirect.SkipPrefixes {
		if !strings.HasPrefix(p, "/") || !strings.HasSuffix(p, "/") {
			return fmt.Errorf("%w: redirect.skip_prefixes entry %q must start and end with /", ErrInvalidValue, p)
		}
	}
	return nil
}

// SupportedLocales returns the configured locales (defaults to en, de).
func (c *Config) SupportedLocales() []string {
	if len(c.Locales.Supported) == 0 {
		return DefaultLocales
	}
	return c.Locales.Supported
}

// DefaultLocale returns the default locale (defaults to en).
func (c *Config) DefaultLocale() string {
	if c.Locales.Default == "" {
		return DefaultLocale
	}
	return c.Locales.Default
}

// LocaleSet builds the validated locale set.
func (c *Config) LocaleSet() (locale.Set, error) {
	return locale.NewSet(c.SupportedLocales(), c.DefaultLocale())
}

// Root returns the built output directory (defaults to dist).
func (c *Config) Root() string {
	if c.Site.Root == "" {
		return DefaultRoot
	}
	return c.Site.Root
}

// BrokenLinksLog returns the link checker report path (defaults to broken-links.log).
func (c *Config) BrokenLinksLog() string {
	if c.Site.BrokenLinksLog == "" {
		return validate.DefaultBrokenLinksLog
	}
	return c.Site.BrokenLinksLog
}

// MarkerAttribute returns the locale marker attribute (defaults to data-locale).
func (c *Config) MarkerAttribute() string {
	if c.Site.MarkerAttribute == "" {
		return site.DefaultMarkerAttribute
	}
	return c.Site.MarkerAttribute
}

// KeyPages returns the key-page patterns (defaults to every locale's home page).
func (c *Config) KeyPages() []string {
	if len(c.Site.KeyPages) == 0 {
		return validate.DefaultKeyPages
	}
	return c.Site.KeyPages
}

// Workers returns the parser pool size (defaults to the CPU count).
func (c *Config) Workers() int {
	if c.Site.Workers == nil {
		return runtime.NumCPU()
	}
	return *c.Site.Workers
}

// SkipPrefixes returns the redirect skip prefixes.
func (c *Config) SkipPrefixes() []string {
	if len(c.Redirect.SkipPrefixes) == 0 {
		return locale.DefaultSkipPrefixes
	}
	return c.Redirect.SkipPrefixes
}

// Addr returns the preview listen address.
func (c *Config) Addr() string {
	if c.Redirect.Addr == "" {
		return DefaultAddr
	}
	return c.Redirect.Addr
}

// ContentDir returns the content collection directory.
func (c *Config) ContentDir() string {
	if c.Content.Dir == "" {
		return DefaultContentDir
	}
	return c.Content.Dir
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.sitekit/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
// Environment overrides are not applied; see Effective.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// Effective loads configuration and applies environment overrides. Use it
// for everything except editing the config file.
func Effective() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
