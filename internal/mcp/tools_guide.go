// tools_guide.go implements the MCP tool for accessing help content.

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openticketai/sitekit/guide"
	"github.com/openticketai/sitekit/internal/log"
)

// getGuide handles sitekit_guide tool calls.
func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")

	text, err := guide.Get(topic)

	log.Event("mcp:sitekit_guide", "read").Detail("topic", topic).Write(err)

	if err != nil {
		// If topic not found, return list of available topics
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return jsonResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(text), nil
}
