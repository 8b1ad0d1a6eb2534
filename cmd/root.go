// root.go defines the root command and CLI execution entry point.
//
// PersistentPreRunE builds the extension context lazily: only commands that
// need the effective configuration trigger it, so init, guide and config
// keep working when the configuration is missing or broken.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/openticketai/sitekit/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sitekit",
	Short: "Locale tooling and post-build checks for the Open Ticket AI site",
	Long: `Resolves locales for links and requests, validates the built site for
cross-locale links and locale markers, and serves the output with the
locale redirect applied.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		if !noConfigCommands[topLevelCmdName(cmd)] {
			if err := initExtensions(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
				return fmt.Errorf("initialise extensions: %w", err)
			}
		}
		return nil
	},
}

// ExitError carries a process exit status without an error message. The
// command has already reported the failure.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// Exit silences cobra's error and usage output for c and returns an
// ExitError with the given code.
func Exit(c *cobra.Command, code int) error {
	c.SilenceErrors = true
	c.SilenceUsage = true
	return &ExitError{Code: code}
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "sitekit check diff", returns "check".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions and executes the command.
// Failures exit with status 1 unless the command chose another code.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}

	registerExtensions()
	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		var exit *ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
