// Package content loads locale-aware content collections.
//
// A collection is a directory of markdown entries, one subdirectory per
// locale:
//
//	<dir>/<collection>/<locale>/<slug>.md
//
// Each entry starts with YAML (or TOML) front matter. When an entry is
// missing in the requested locale, the default locale's entry is returned
// with Fallback set, so a partially translated site still renders every page.
package content

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/openticketai/sitekit/internal/locale"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// ErrNotFound is returned when an entry exists in neither the requested nor
// the default locale.
var ErrNotFound = errors.New("content entry not found")

const ext = ".md"

// Entry is one content item resolved for a locale.
type Entry struct {
	Collection  string    `json:"collection"`
	Slug        string    `json:"slug"`
	Locale      string    `json:"locale"`    // locale the entry was read from
	Requested   string    `json:"requested"` // locale the caller asked for
	Fallback    bool      `json:"fallback"`  // Locale != Requested
	Path        string    `json:"path"`      // relative to the content directory
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date,omitzero"`
	Draft       bool      `json:"draft,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Body        string    `json:"-"`
}

type frontMatter struct {
	Title       string    `yaml:"title" toml:"title"`
	Description string    `yaml:"description" toml:"description"`
	Date        time.Time `yaml:"date" toml:"date"`
	Draft       bool      `yaml:"draft" toml:"draft"`
	Tags        []string  `yaml:"tags" toml:"tags"`
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// HTML renders the entry body.
func (e Entry) HTML() (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(e.Body), &buf); err != nil {
		return "", fmt.Errorf("rendering %s: %w", e.Path, err)
	}
	return buf.String(), nil
}

// Loader reads collections from one content directory.
type Loader struct {
	fsys    fs.FS
	locales locale.Set
}

// New returns a loader for the content directory dir.
func New(dir string, set locale.Set) *Loader {
	return NewFS(os.DirFS(dir), set)
}

// NewFS returns a loader reading from fsys.
func NewFS(fsys fs.FS, set locale.Set) *Loader {
	return &Loader{fsys: fsys, locales: set}
}

// Collections lists the collection names in sorted order.
func (l *Loader) Collections() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading content directory: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			out = append(out, e.Name())
		}
	}
	return out, nil
}

// resolve maps an unsupported or empty locale to the default.
func (l *Loader) resolve(loc string) string {
	if l.locales.Contains(loc) {
		return loc
	}
	return l.locales.Default()
}

// Get returns the entry slug of collection in loc, falling back to the
// default locale.
func (l *Loader) Get(ctx context.Context, collection, slug, loc string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	requested := l.resolve(loc)
	for _, try := range l.candidates(requested) {
		e, err := l.read(collection, try, slug)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Entry{}, err
		}
		e.Requested = requested
		e.Fallback = try != requested
		return e, nil
	}
	return Entry{}, fmt.Errorf("%w: %s/%s (%s)", ErrNotFound, collection, slug, requested)
}

// List returns every entry of collection visible in loc: the union of slugs
// present in loc and in the default locale, each resolved with fallback.
// Drafts are left out unless drafts is true. Entries are ordered newest
// first, then by slug.
func (l *Loader) List(ctx context.Context, collection, loc string, drafts bool) ([]Entry, error) {
	requested := l.resolve(loc)

	seen := map[string]bool{}
	var slugs []string
	for _, try := range l.candidates(requested) {
		names, err := l.slugs(collection, try)
		if err != nil {
			return nil, err
		}
		for _, s := range names {
			if !seen[s] {
				seen[s] = true
				slugs = append(slugs, s)
			}
		}
	}

	var out []Entry
	for _, s := range slugs {
		e, err := l.Get(ctx, collection, s, requested)
		if err != nil {
			return nil, err
		}
		if e.Draft && !drafts {
			continue
		}
		out = append(out, e)
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Or(b.Date.Compare(a.Date), cmp.Compare(a.Slug, b.Slug))
	})
	return out, nil
}

// candidates is the lookup order for loc.
func (l *Loader) candidates(loc string) []string {
	if loc == l.locales.Default() {
		return []string{loc}
	}
	return []string{loc, l.locales.Default()}
}

// slugs lists the entry slugs in one locale directory. A missing directory
// has no entries.
func (l *Loader) slugs(collection, loc string) ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, path.Join(collection, loc))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s/%s: %w", collection, loc, err)
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
			out = append(out, strings.TrimSuffix(e.Name(), ext))
		}
	}
	return out, nil
}

func (l *Loader) read(collection, loc, slug string) (Entry, error) {
	if !fs.ValidPath(slug) || strings.Contains(slug, "/") {
		return Entry{}, fmt.Errorf("%w: invalid slug %q", ErrNotFound, slug)
	}
	p := path.Join(collection, loc, slug+ext)
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Entry{}, err
	}

	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing front matter of %s: %w", p, err)
	}

	title := fm.Title
	if title == "" {
		title = slug
	}
	return Entry{
		Collection:  collection,
		Slug:        slug,
		Locale:      loc,
		Path:        p,
		Title:       title,
		Description: fm.Description,
		Date:        fm.Date,
		Draft:       fm.Draft,
		Tags:        fm.Tags,
		Body:        string(body),
	}, nil
}
