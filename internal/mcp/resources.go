// resources.go implements MCP resource handlers for content entries.
//
// Resource URIs follow sitekit://content/{collection}/{locale}/{slug}. The
// locale follows the same fallback rules as the sitekit_content tool.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ErrInvalidURI indicates a malformed resource URI.
var ErrInvalidURI = errors.New("invalid URI")

const contentPrefix = "sitekit://content/"

// readContent handles sitekit://content/{collection}/{locale}/{slug}.
func (h *handlers) readContent(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	collection, loc, slug, err := parseContentURI(uri)
	if err != nil {
		return nil, err
	}
	e, err := h.content.Get(ctx, collection, slug, loc)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     e.Body,
		},
	}, nil
}

// parseContentURI splits a content URI into its three parts.
func parseContentURI(uri string) (collection, loc, slug string, err error) {
	rest, ok := strings.CutPrefix(uri, contentPrefix)
	if !ok {
		return "", "", "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", fmt.Errorf("%w: expected %s{collection}/{locale}/{slug}, got %s", ErrInvalidURI, contentPrefix, uri)
	}
	return parts[0], parts[1], parts[2], nil
}
