// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the CLI and MCP interfaces (e.g. "site.root").
// List values are read and written as comma-separated strings.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"locales.supported", "locales.default",
		"site.root", "site.broken_links_log", "site.marker_attribute", "site.key_pages", "site.workers",
		"redirect.skip_prefixes", "redirect.addr",
		"content.dir",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the effective value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "locales.supported":
		return strings.Join(c.SupportedLocales(), ","), nil
	case "locales.default":
		return c.DefaultLocale(), nil
	case "site.root":
		return c.Root(), nil
	case "site.broken_links_log":
		return c.BrokenLinksLog(), nil
	case "site.marker_attribute":
		return c.MarkerAttribute(), nil
	case "site.key_pages":
		return strings.Join(c.KeyPages(), ","), nil
	case "site.workers":
		return strconv.Itoa(c.Workers()), nil
	case "redirect.skip_prefixes":
		return strings.Join(c.SkipPrefixes(), ","), nil
	case "redirect.addr":
		return c.Addr(), nil
	case "content.dir":
		return c.ContentDir(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key. Callers should Validate the
// whole config afterwards since some keys depend on each other.
func (c *Config) Set(key, value string) error {
	switch key {
	case "locales.supported":
		list := splitList(value)
		if len(list) == 0 {
			return fmt.Errorf("%w: locales.supported must list at least one locale", ErrInvalidValue)
		}
		c.Locales.Supported = list
	case "locales.default":
		c.Locales.Default = strings.TrimSpace(value)
	case "site.root":
		c.Site.Root = value
	case "site.broken_links_log":
		c.Site.BrokenLinksLog = value
	case "site.marker_attribute":
		c.Site.MarkerAttribute = value
	case "site.key_pages":
		c.Site.KeyPages = splitList(value)
	case "site.workers":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: site.workers must be a positive integer", ErrInvalidValue)
		}
		c.Site.Workers = &n
	case "redirect.skip_prefixes":
		c.Redirect.SkipPrefixes = splitList(value)
	case "redirect.addr":
		c.Redirect.Addr = value
	case "content.dir":
		c.Content.Dir = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all effective configuration values as a map.
func (c *Config) All() map[string]string {
	m := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		m[k], _ = c.Get(k)
	}
	return m
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "locales.supported":
		return len(c.Locales.Supported) > 0
	case "locales.default":
		return c.Locales.Default != ""
	case "site.root":
		return c.Site.Root != ""
	case "site.broken_links_log":
		return c.Site.BrokenLinksLog != ""
	case "site.marker_attribute":
		return c.Site.MarkerAttribute != ""
	case "site.key_pages":
		return len(c.Site.KeyPages) > 0
	case "site.workers":
		return c.Site.Workers != nil
	case "redirect.skip_prefixes":
		return len(c.Redirect.SkipPrefixes) > 0
	case "redirect.addr":
		return c.Redirect.Addr != ""
	case "content.dir":
		return c.Content.Dir != ""
	default:
		return false
	}
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
