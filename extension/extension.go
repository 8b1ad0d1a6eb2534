// Package extension provides the plugin architecture for sitekit. Extensions
// group related commands and register at init time, so a feature area can be
// added without touching the root command.
package extension

import "github.com/spf13/cobra"

// Extension defines the contract for sitekit extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command
}

// Initializable extensions receive the shared Context before their
// commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Configless is an optional interface for extensions with commands that
// must run without a valid effective configuration. Commands returned by
// NoConfigCommands() do not trigger context initialisation in
// PersistentPreRunE.
//
// Use cases:
// 1. Bootstrap commands (like init) that create the configuration
// 2. Commands that edit a broken configuration file
// 3. Utility commands such as version and guide
type Configless interface {
	NoConfigCommands() []string
}
