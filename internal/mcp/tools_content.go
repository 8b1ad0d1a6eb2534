// tools_content.go implements the content collection tool.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openticketai/sitekit/internal/content"
	"github.com/openticketai/sitekit/internal/log"
)

// entryJSON is an entry with its body, optionally rendered.
type entryJSON struct {
	content.Entry
	Body string `json:"body"`
	HTML string `json:"html,omitempty"`
}

func (h *handlers) getContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	collection := getString(req, "collection", "")
	slug := getString(req, "slug", "")
	loc := getString(req, "locale", h.locales.Default())

	if collection == "" {
		names, err := h.content.Collections()
		log.Event("mcp:sitekit_content", "list").Path(h.cfg.ContentDir()).Count(len(names)).Write(err)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(names)
	}

	if slug == "" {
		entries, err := h.content.List(ctx, collection, loc, getBool(req, "drafts", false))
		log.Event("mcp:sitekit_content", "list").Path(collection).Locale(loc).Count(len(entries)).Write(err)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(entries)
	}

	e, err := h.content.Get(ctx, collection, slug, loc)
	if err == nil {
		out := entryJSON{Entry: e, Body: e.Body}
		if getBool(req, "html", false) {
			out.HTML, err = e.HTML()
		}
		if err == nil {
			log.Event("mcp:sitekit_content", "read").Path(e.Path).Locale(e.Locale).Detail("fallback", e.Fallback).Write(nil)
			return jsonResult(out)
		}
	}
	log.Event("mcp:sitekit_content", "read").Path(collection + "/" + slug).Locale(loc).Write(err)
	return mcp.NewToolResultError(err.Error()), nil
}
