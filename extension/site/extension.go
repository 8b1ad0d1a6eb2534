// Package site provides the site extension: listing and previewing the
// built output.
// It registers: pages, preview.
package site

import (
	"github.com/openticketai/sitekit/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the site extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "site".
func (e *Extension) Name() string { return "site" }

// Init stores the context.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the site commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newPagesCmd(),
		e.newPreviewCmd(),
	}
}
