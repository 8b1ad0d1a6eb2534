// tools_site.go implements the tools that read the built site.
//
// Page listings are served from the cached document index; sitekit_reload
// drops it after a rebuild. sitekit_check always reads the site afresh,
// since a stale report would be worse than a slow one.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openticketai/sitekit/internal/log"
	"github.com/openticketai/sitekit/internal/site"
	"github.com/openticketai/sitekit/internal/validate"
)

// pageJSON is a document without its anchors unless asked for.
type pageJSON struct {
	URL     string   `json:"url"`
	File    string   `json:"file"`
	Locale  string   `json:"locale,omitempty"`
	Links   int      `json:"links"`
	Markers []string `json:"markers,omitempty"`
	Anchors []string `json:"anchors,omitempty"`
}

func (h *handlers) listPages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f := site.Filter{
		Locale: getString(req, "locale", ""),
		Prefix: getString(req, "prefix", ""),
		Direct: getBool(req, "direct", false),
	}
	withLinks := getBool(req, "links", false)

	docs, err := h.pages.Get(ctx)
	if err != nil {
		log.Event("mcp:sitekit_pages", "list").Path(h.cfg.Root()).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	docs = f.Apply(docs)

	log.Event("mcp:sitekit_pages", "list").Path(h.cfg.Root()).Locale(f.Locale).Count(len(docs)).Write(nil)

	out := make([]pageJSON, len(docs))
	for i, d := range docs {
		out[i] = pageJSON{URL: d.URLPath, File: d.File, Locale: d.Locale, Links: len(d.Anchors), Markers: d.Markers}
		if withLinks {
			out[i].Anchors = d.Anchors
		}
	}
	return jsonResult(out)
}

func (h *handlers) reload(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.pages.Reset()
	docs, err := h.pages.Get(ctx)

	log.Event("mcp:sitekit_reload", "reload").Path(h.cfg.Root()).Count(len(docs)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"pages":     len(docs),
		"localized": len(site.Localized(docs)),
		"state":     h.pages.State().String(),
	})
}

func (h *handlers) check(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := validate.Run(ctx, validate.Options{
		Root:            h.cfg.Root(),
		BrokenLinksLog:  h.cfg.BrokenLinksLog(),
		MarkerAttribute: h.cfg.MarkerAttribute(),
		KeyPages:        h.cfg.KeyPages(),
		Workers:         h.cfg.Workers(),
	})
	if err != nil {
		log.Event("mcp:sitekit_check", "validate").Path(h.cfg.Root()).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Event("mcp:sitekit_check", "validate").
		Path(h.cfg.Root()).
		Count(len(r.Violations())).
		Detail("errors", len(r.Errors)).
		Detail("warnings", len(r.Warnings)).
		Write(nil)

	return jsonResult(map[string]any{
		"ok":        r.OK(),
		"exit_code": r.ExitCode(),
		"report":    r,
	})
}
