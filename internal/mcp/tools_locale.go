// tools_locale.go implements the locale resolver tools. They are pure
// functions of their arguments and the configured locale set.

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openticketai/sitekit/internal/locale"
	"github.com/openticketai/sitekit/internal/log"
	"github.com/openticketai/sitekit/internal/redirect"
)

func (h *handlers) classify(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	href, err := req.RequireString("href")
	if err != nil {
		return mcp.NewToolResultError("href is required"), nil //nolint:nilerr
	}
	kind := locale.ClassifyLink(href)

	log.Event("mcp:sitekit_classify", "classify").Path(href).Detail("kind", kind.String()).Write(nil)

	return jsonResult(map[string]string{"href": href, "kind": kind.String()})
}

func (h *handlers) localize(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	href, err := req.RequireString("href")
	if err != nil {
		return mcp.NewToolResultError("href is required"), nil //nolint:nilerr
	}
	target, err := req.RequireString("locale")
	if err != nil {
		return mcp.NewToolResultError("locale is required"), nil //nolint:nilerr
	}
	if !h.locales.Contains(target) {
		log.Event("mcp:sitekit_localize", "localize").Path(href).Locale(target).Write(locale.ErrInvalidLocale)
		return mcp.NewToolResultError(fmt.Sprintf("unsupported locale %q (supported: %v)", target, h.locales.Supported())), nil
	}
	out := h.locales.LocalizeHref(href, target)

	log.Event("mcp:sitekit_localize", "localize").Path(href).Locale(target).Write(nil)

	return jsonResult(map[string]string{"href": href, "locale": target, "localized": out})
}

func (h *handlers) prefer(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	header := getString(req, "accept_language", "")
	loc := h.locales.PreferredLocale(header)

	log.Event("mcp:sitekit_prefer", "negotiate").Locale(loc).Detail("header", header).Write(nil)

	return jsonResult(map[string]any{
		"locale":      loc,
		"default":     h.locales.Default(),
		"preferences": locale.ParseAcceptLanguage(header),
	})
}

func (h *handlers) skip(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	skipped, rule := h.skipper.Skip(p)

	log.Event("mcp:sitekit_skip", "classify").Path(p).Detail("skip", skipped).Write(nil)

	result := map[string]any{"path": p, "skip": skipped}
	if skipped {
		result["rule"] = rule
	} else if !h.locales.HasLocalePrefix(p) {
		result["redirect_example"] = redirect.Target(p, h.locales.Default())
	}
	return jsonResult(result)
}
