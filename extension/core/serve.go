// serve.go implements the "sitekit serve" command.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio until the client disconnects.

package core

import (
	"github.com/openticketai/sitekit/internal/log"
	"github.com/openticketai/sitekit/internal/mcp"
	"github.com/spf13/cobra"
)

func (e *Extension) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio.

The server reads the same configuration as the CLI. See "sitekit guide serve"
for the tools it offers.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := e.ctx.Config()
			err := mcp.Serve(cfg)
			log.Event("core:serve", "serve").Path(cfg.Root()).Write(err)
			return err
		},
	}
}
