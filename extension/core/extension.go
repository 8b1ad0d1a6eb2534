// Package core provides the core extension for sitekit.
// It registers commands: init, config, serve, guide, version.
package core

import (
	"github.com/openticketai/sitekit/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Configless    = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Init stores the context for serve.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newInitCmd(),
		newConfigCmd(),
		e.newServeCmd(),
		newGuideCmd(),
		newVersionCmd(),
	}
}

// NoConfigCommands returns core commands that do not read the effective
// configuration.
func (e *Extension) NoConfigCommands() []string {
	return []string{"version"}
}
