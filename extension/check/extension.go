// Package check provides the check extension: the post-build site
// validator and its run history.
// It registers: check, check history, check diff, check prune.
package check

import (
	"path/filepath"

	"github.com/openticketai/sitekit/extension"
	"github.com/openticketai/sitekit/internal/config"
	"github.com/openticketai/sitekit/internal/history"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the check extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "check".
func (e *Extension) Name() string { return "check" }

// Init stores the context.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the check command and its history subcommands.
func (e *Extension) Commands() []*cobra.Command {
	c := e.newCheckCmd()
	c.AddCommand(
		e.newHistoryCmd(),
		e.newDiffCmd(),
		e.newPruneCmd(),
	)
	return []*cobra.Command{c}
}

// historyPath is the run history database of the current project.
func historyPath() string {
	return filepath.Join(config.Dir, history.FileName)
}
