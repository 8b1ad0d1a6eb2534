// tools_config.go implements the read-only configuration tool.
//
// The server reports the configuration it is running with, environment
// overrides included. Changing it means editing the file and restarting the
// server, so there is no set counterpart.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openticketai/sitekit/internal/log"
)

// configGet handles sitekit_config tool calls.
func (h *handlers) configGet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key := getString(req, "key", "")
	if key == "" {
		log.Event("mcp:sitekit_config", "list").Write(nil)
		return jsonResult(h.cfg.All())
	}

	v, err := h.cfg.Get(key)

	log.Event("mcp:sitekit_config", "get").Detail("key", key).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]string{key: v})
}
