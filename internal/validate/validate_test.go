package validate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/openticketai/sitekit/internal/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return root
}

func doc(url string, anchors ...string) site.Document {
	return site.Document{URLPath: url, Locale: site.LocaleOfPath(url), Anchors: anchors}
}

func TestLinks(t *testing.T) {
	t.Run("reports a cross-locale link", func(t *testing.T) {
		vs := Links([]site.Document{doc("/de/products/", "/en/services")})
		require.Len(t, vs, 1)
		v := vs[0]
		assert.Equal(t, CheckLinks, v.Check)
		assert.Equal(t, "/de/products/", v.Page)
		assert.Equal(t, "/en/services", v.Href)
		assert.Equal(t, "de", v.Expected)
		require.NotNil(t, v.Found)
		assert.Equal(t, "en", *v.Found)
	})

	t.Run("hrefs with surrounding whitespace", func(t *testing.T) {
		hrefs := []string{" /en/services", "/en/services\n", "\t/en/services", "/en/serv\nices"}
		vs := Links([]site.Document{doc("/de/products/", hrefs...)})
		require.Len(t, vs, len(hrefs))
		for _, v := range vs {
			require.NotNil(t, v.Found)
			assert.Equal(t, "en", *v.Found)
		}
	})

	t.Run("page path with percent sign", func(t *testing.T) {
		vs := Links([]site.Document{doc("/de/100%/", "../../en/")})
		require.Len(t, vs, 1)
		assert.Equal(t, "de", vs[0].Expected)
	})

	t.Run("allows same-locale, unlocalized and external links", func(t *testing.T) {
		vs := Links([]site.Document{doc("/de/products/",
			"/de/services", "../pricing/", "/assets/logo.svg", "/", "https://example.com/en/",
			"#top", "mailto:x@y.z", "//cdn.example.com/en/", "/en/%zz",
		)})
		assert.Empty(t, vs)
	})

	t.Run("relative link escaping into another locale", func(t *testing.T) {
		vs := Links([]site.Document{doc("/de/products/", "../../en/")})
		require.Len(t, vs, 1)
		assert.Equal(t, "../../en/", vs[0].Href)
	})

	t.Run("unlocalized pages are not checked", func(t *testing.T) {
		assert.Empty(t, Links([]site.Document{doc("/", "/en/", "/de/")}))
	})

	t.Run("sorted by page", func(t *testing.T) {
		vs := Links([]site.Document{doc("/en/b/", "/de/"), doc("/de/a/", "/en/")})
		require.Len(t, vs, 2)
		assert.Equal(t, "/de/a/", vs[0].Page)
		assert.Equal(t, "/en/b/", vs[1].Page)
	})
}

func TestMarkers(t *testing.T) {
	page := func(markers ...string) []site.Document {
		d := doc("/en/")
		d.Markers = markers
		return []site.Document{d}
	}

	t.Run("missing marker", func(t *testing.T) {
		vs, err := Markers(page(), DefaultKeyPages, "data-locale")
		require.NoError(t, err)
		require.Len(t, vs, 1)
		assert.Nil(t, vs[0].Found)
		assert.Equal(t, "en", vs[0].Expected)
	})

	t.Run("mismatched marker", func(t *testing.T) {
		vs, err := Markers(page("de"), DefaultKeyPages, "data-locale")
		require.NoError(t, err)
		require.Len(t, vs, 1)
		require.NotNil(t, vs[0].Found)
		assert.Equal(t, "de", *vs[0].Found)
		assert.Equal(t, "en", vs[0].Expected)
	})

	t.Run("matching marker", func(t *testing.T) {
		vs, err := Markers(page("en"), DefaultKeyPages, "data-locale")
		require.NoError(t, err)
		assert.Empty(t, vs)
	})

	t.Run("any matching marker is enough", func(t *testing.T) {
		vs, err := Markers(page("de", "en"), DefaultKeyPages, "data-locale")
		require.NoError(t, err)
		assert.Empty(t, vs)
	})

	t.Run("non-key pages are skipped", func(t *testing.T) {
		vs, err := Markers([]site.Document{doc("/en/blog/"), doc("/")}, DefaultKeyPages, "data-locale")
		require.NoError(t, err)
		assert.Empty(t, vs)
	})

	t.Run("configured section pages", func(t *testing.T) {
		docs := []site.Document{doc("/de/products/"), doc("/de/blog/")}
		vs, err := Markers(docs, []string{"/{locale}/", "/{locale}/products/"}, "data-locale")
		require.NoError(t, err)
		require.Len(t, vs, 1)
		assert.Equal(t, "/de/products/", vs[0].Page)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := Markers(page(), []string{"/{locale}/["}, "data-locale")
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})
}

func TestBrokenLinks(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
		return p
	}

	t.Run("missing log", func(t *testing.T) {
		res, err := BrokenLinks(filepath.Join(dir, "nope.log"))
		require.NoError(t, err)
		assert.True(t, res.Missing)
		assert.Empty(t, res.Violations())
	})

	t.Run("empty and whitespace-only", func(t *testing.T) {
		for _, content := range []string{"", "  \n\t\n\n"} {
			res, err := BrokenLinks(write("empty.log", content))
			require.NoError(t, err)
			assert.False(t, res.Missing)
			assert.Empty(t, res.Entries)
		}
	})

	t.Run("counts entries only", func(t *testing.T) {
		p := write("broken.log", "=====\nhttps://a.example/x\n  404 Not Found\n\tfound on /en/\n-----\nhttps://b.example/y\n\n")
		res, err := BrokenLinks(p)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example/x", "https://b.example/y"}, res.Entries)

		vs := res.Violations()
		require.Len(t, vs, 2)
		assert.Equal(t, CheckBrokenLinks, vs[0].Check)
	})

	t.Run("unreadable log is fatal", func(t *testing.T) {
		_, err := BrokenLinks(dir) // a directory cannot be read as a file
		assert.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	goodSite := map[string]string{
		"en/index.html":          `<body data-locale="en"><a href="/en/docs/">docs</a><a href="/assets/x.pdf">x</a></body>`,
		"de/index.html":          `<body data-locale="de"><a href="docs/">docs</a></body>`,
		"de/products/index.html": `<a href="/de/">home</a>`,
		"index.html":             `<a href="/en/">en</a><a href="/de/">de</a>`,
	}

	t.Run("clean site with log", func(t *testing.T) {
		root := writeSite(t, goodSite)
		log := filepath.Join(t.TempDir(), "broken-links.log")
		require.NoError(t, os.WriteFile(log, []byte("\n"), 0644))

		r, err := Run(context.Background(), Options{Root: root, BrokenLinksLog: log, Workers: 2})
		require.NoError(t, err)
		assert.True(t, r.OK())
		assert.Equal(t, 0, r.ExitCode())
		assert.Len(t, r.Passed, 3)
		assert.Empty(t, r.Warnings)
		assert.Equal(t, 4, r.Pages)
		assert.Equal(t, 3, r.Localized)
		assert.Equal(t, 2, r.KeyPages)
	})

	t.Run("warnings only exits 0", func(t *testing.T) {
		root := writeSite(t, map[string]string{"index.html": "<p>hi</p>"})
		r, err := Run(context.Background(), Options{Root: root, BrokenLinksLog: filepath.Join(root, "missing.log")})
		require.NoError(t, err)
		assert.True(t, r.OK())
		assert.Equal(t, 0, r.ExitCode())
		assert.Len(t, r.Warnings, 3)
	})

	t.Run("violations exit 1", func(t *testing.T) {
		files := map[string]string{
			"de/products/index.html": `<a href="/en/services">services</a>`,
			"en/index.html":          `<body data-locale="de"></body>`,
		}
		root := writeSite(t, files)
		log := filepath.Join(t.TempDir(), "broken-links.log")
		require.NoError(t, os.WriteFile(log, []byte("https://x.example/\n"), 0644))

		r, err := Run(context.Background(), Options{Root: root, BrokenLinksLog: log})
		require.NoError(t, err)
		assert.False(t, r.OK())
		assert.Equal(t, 1, r.ExitCode())
		assert.Len(t, r.Errors, 3)
		assert.Len(t, r.Violations(), 3)
	})

	t.Run("missing root is fatal", func(t *testing.T) {
		_, err := Run(context.Background(), Options{Root: filepath.Join(t.TempDir(), "dist")})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("no root configured", func(t *testing.T) {
		_, err := Run(context.Background(), Options{})
		assert.ErrorIs(t, err, ErrNoRoot)
	})

	t.Run("progress callback", func(t *testing.T) {
		root := writeSite(t, goodSite)
		var total, done int
		_, err := Run(context.Background(), Options{
			Root:    root,
			Workers: 1,
			Progress: func(n int) func() {
				total = n
				return func() { done++ }
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Equal(t, 4, done)
	})
}

func TestViolation_String(t *testing.T) {
	en := "en"
	v := Violation{Check: CheckLinks, Page: "/de/x/", Href: "/en/y", Expected: "de", Found: &en}
	assert.Equal(t, "/de/x/ links to /en/y (page locale de, link locale en)", v.String())

	v = Violation{Check: CheckMarkers, Page: "/en/", Expected: "en"}
	assert.Equal(t, "/en/: locale marker expected en, found absent", v.String())
}
