// init.go implements the "sitekit init" command.
//
// Init writes .sitekit/config.yaml with the defaults spelled out, so the
// project has a file to edit and commit. The run history is gitignored
// unless --share-history is given.

package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/openticketai/sitekit/cmd"
	"github.com/openticketai/sitekit/extension"
	"github.com/openticketai/sitekit/internal/config"
	"github.com/openticketai/sitekit/internal/history"
	"github.com/openticketai/sitekit/internal/locale"
	"github.com/openticketai/sitekit/internal/log"
	"github.com/openticketai/sitekit/internal/project"
	"github.com/openticketai/sitekit/internal/site"
	"github.com/openticketai/sitekit/internal/validate"
	"github.com/spf13/cobra"
)

// ErrAlreadyInitialised is returned when a local config already exists.
var ErrAlreadyInitialised = errors.New("already initialised")

func newInitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Write a project configuration with defaults",
		Long: `Creates .sitekit/config.yaml in the current directory and a
.sitekit/.gitignore that keeps the run history out of git.

  sitekit init                    # fails if the file exists
  sitekit init --force            # overwrite
  sitekit init --share-history    # commit .sitekit/history.db`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	c.Flags().Bool(extension.FlagForce, false, "Overwrite an existing configuration")
	c.Flags().Bool(extension.FlagShare, false, "Do not gitignore the run history")
	return c
}

// defaults returns a configuration with every default written out.
func defaults() *config.Config {
	return &config.Config{
		Locales: config.Locales{
			Supported: config.DefaultLocales,
			Default:   config.DefaultLocale,
		},
		Site: config.Site{
			Root:            config.DefaultRoot,
			BrokenLinksLog:  validate.DefaultBrokenLinksLog,
			MarkerAttribute: site.DefaultMarkerAttribute,
			KeyPages:        validate.DefaultKeyPages,
		},
		Redirect: config.Redirect{
			SkipPrefixes: locale.DefaultSkipPrefixes,
			Addr:         config.DefaultAddr,
		},
		Content: config.Content{Dir: config.DefaultContentDir},
	}
}

func runInit(c *cobra.Command, _ []string) error {
	force, _ := c.Flags().GetBool(extension.FlagForce)
	share, _ := c.Flags().GetBool(extension.FlagShare)
	path := config.LocalPath()

	var err error
	if _, statErr := os.Stat(path); statErr == nil && !force {
		err = fmt.Errorf("%w: %s exists (use --force to overwrite)", ErrAlreadyInitialised, path)
	} else if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		err = statErr
	} else {
		err = defaults().SaveScope(config.ScopeLocal)
	}
	if err == nil {
		if share {
			err = project.Unignore(config.Dir, history.FileName)
		} else {
			err = project.Ignore(config.Dir, history.FileName)
		}
	}

	log.Event("core:init", "init").Path(path).Detail("force", force).Detail("share_history", share).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("init: %w", err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"config": path})
	}
	fmt.Fprintf(cmd.Out(), "Wrote %s\n", path)
	return nil
}
