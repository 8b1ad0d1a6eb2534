// init_extensions.go handles extension initialisation and command registration.
//
// Extensions register during init() but aren't initialised until first
// command execution. The effective configuration is resolved once and
// shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/openticketai/sitekit/extension"
	"github.com/openticketai/sitekit/internal/config"
	"github.com/openticketai/sitekit/internal/log"
)

// noConfigCommands lists commands that bypass context initialisation.
// Built from bootstrap commands plus extension-declared configless commands.
var noConfigCommands map[string]bool

// buildNoConfigCommands creates the set of commands that skip context
// initialisation. Bootstrap commands are listed here; other extensions
// implement extension.Configless.
func buildNoConfigCommands() map[string]bool {
	cmds := map[string]bool{
		"init":       true,
		"guide":      true,
		"config":     true,
		"help":       true,
		"completion": true,
	}
	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Configless); ok {
			for _, name := range s.NoConfigCommands() {
				cmds[name] = true
			}
		}
	}
	return cmds
}

var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions resolves the effective configuration, applies global
// flags and injects the result into every Initializable extension.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Effective()
		if err != nil {
			initErr = err
			return
		}
		if root != "" {
			cfg.Site.Root = root
		}

		if wd, err := os.Getwd(); err == nil {
			log.SetProject(wd)
		}

		ctx, err := extension.NewContext(cfg)
		if err != nil {
			initErr = err
			return
		}
		extContext = ctx

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
		noConfigCommands = buildNoConfigCommands()
	})
}
