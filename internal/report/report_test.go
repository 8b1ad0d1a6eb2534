package report

import (
	"bytes"
	"testing"

	"github.com/openticketai/sitekit/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *validate.Report {
	en := "en"
	r := &validate.Report{Root: "dist", Pages: 3, Localized: 2, KeyPages: 1}
	r.Pass(validate.CheckMarkers, "1 key page(s) carry a matching data-locale")
	r.Warn(validate.CheckBrokenLinks, "no broken link log configured")
	r.Fail(validate.CheckLinks, "1 link(s) point into another locale", []validate.Violation{
		{Check: validate.CheckLinks, Page: "/de/products/", Href: "/en/services", Expected: "de", Found: &en},
	})
	return r
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sample(), false))
	out := buf.String()

	assert.Contains(t, out, "Checked 3 page(s) in dist")
	assert.Contains(t, out, "✓ localized-markers")
	assert.Contains(t, out, "! broken-links: no broken link log configured")
	assert.Contains(t, out, "✗ localized-links")
	assert.Contains(t, out, "    /de/products/ links to /en/services")
	assert.Contains(t, out, "FAILED: 1 passed, 1 warning(s), 1 error(s)")
	assert.NotContains(t, out, "\033[")
}

func TestWriteText_Colour(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sample(), true))
	assert.Contains(t, buf.String(), red+"✗"+reset)
	assert.Contains(t, buf.String(), green+"✓"+reset)
}

func TestSummary_OK(t *testing.T) {
	r := &validate.Report{}
	r.Warn(validate.CheckLinks, "no localized pages found")
	assert.Equal(t, "OK: 0 passed, 1 warning(s), 0 error(s)", Summary(r, false))
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sample())
	assert.Contains(t, md, "# Site check")
	assert.Contains(t, md, "## Errors")
	assert.Contains(t, md, "`/de/products/ links to /en/services (page locale de, link locale en)`")
	assert.Less(t, bytes.Index([]byte(md), []byte("## Errors")), bytes.Index([]byte(md), []byte("## Passed")))
}
