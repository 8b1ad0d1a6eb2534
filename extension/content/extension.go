// Package content provides the content extension: reading localised
// content collections with default-locale fallback.
// It registers: content ls, content show.
package content

import (
	"github.com/openticketai/sitekit/extension"
	"github.com/openticketai/sitekit/internal/content"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the content extension.
type Extension struct {
	ctx    extension.Context
	loader *content.Loader
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "content".
func (e *Extension) Name() string { return "content" }

// Init opens the loader on the configured content directory.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	e.loader = content.New(ctx.Config().ContentDir(), ctx.Locales())
	return nil
}

// Commands returns the content command tree.
func (e *Extension) Commands() []*cobra.Command {
	c := &cobra.Command{
		Use:   "content",
		Short: "Read localised content collections",
		Long: `Reads markdown entries from content.dir (default src/content), laid out as
<collection>/<locale>/<slug>.md. Missing translations fall back to the
default locale.`,
	}
	c.AddCommand(e.newLsCmd(), e.newShowCmd())
	return []*cobra.Command{c}
}
