// Package locale provides the locale extension: command-line access to the
// locale resolver.
// It registers: locale classify, localize, detect, prefer, skip.
package locale

import (
	"github.com/openticketai/sitekit/extension"
	"github.com/openticketai/sitekit/internal/locale"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the locale extension.
type Extension struct {
	set     locale.Set
	skipper *locale.Skipper
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "locale".
func (e *Extension) Name() string { return "locale" }

// Init builds the locale set and redirect skipper from the configuration.
func (e *Extension) Init(ctx extension.Context) error {
	e.set = ctx.Locales()
	e.skipper = locale.NewSkipper(ctx.Config().SkipPrefixes())
	return nil
}

// Commands returns the locale command tree.
func (e *Extension) Commands() []*cobra.Command {
	c := &cobra.Command{
		Use:   "locale",
		Short: "Resolve locales for links, paths and requests",
		Long: `Pure locale operations on links, URL paths and Accept-Language headers.

See "sitekit guide locale" for the rules.`,
	}
	c.AddCommand(
		e.newClassifyCmd(),
		e.newLocalizeCmd(),
		e.newDetectCmd(),
		e.newPreferCmd(),
		e.newSkipCmd(),
	)
	return []*cobra.Command{c}
}
