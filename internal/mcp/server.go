// Package mcp implements the Model Context Protocol server, exposing the
// locale resolver, the site validator and the content loader to assistants
// over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/openticketai/sitekit/internal/cache"
	"github.com/openticketai/sitekit/internal/config"
	"github.com/openticketai/sitekit/internal/content"
	"github.com/openticketai/sitekit/internal/locale"
	"github.com/openticketai/sitekit/internal/site"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio.
//
// The document index is built on the first call that needs it, not at
// startup, so the server starts even when the site has not been built yet.
func Serve(cfg *config.Config) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h, err := newHandlers(cfg)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		return err
	}

	s := newServer(h)
	slog.Info("sitekit MCP server ready", "version", Version, "transport", "stdio", "root", cfg.Root())

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with the resolved configuration
// and the shared document index.
type handlers struct {
	cfg     *config.Config
	locales locale.Set
	skipper *locale.Skipper
	pages   *cache.Cache[[]site.Document]
	content *content.Loader
}

func newHandlers(cfg *config.Config) (*handlers, error) {
	set, err := cfg.LocaleSet()
	if err != nil {
		return nil, err
	}
	h := &handlers{
		cfg:     cfg,
		locales: set,
		skipper: locale.NewSkipper(cfg.SkipPrefixes()),
		content: content.New(cfg.ContentDir(), set),
	}
	h.pages = cache.New(func(ctx context.Context) ([]site.Document, error) {
		return site.Load(ctx, cfg.Root(), site.Options{
			MarkerAttribute: cfg.MarkerAttribute(),
			Workers:         cfg.Workers(),
		})
	})
	return h, nil
}

func newServer(h *handlers) *server.MCPServer {
	s := server.NewMCPServer(
		"sitekit",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)
	registerResources(s, h)
	registerTools(s, h)
	return s
}

// registerResources adds URI-based access to content entries.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"sitekit://content/{collection}/{locale}/{slug}",
			"Content entry",
			mcp.WithTemplateDescription("Markdown body of a content entry, falling back to the default locale"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readContent,
	)
}

// registerTools exposes sitekit operations as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("sitekit_classify",
			mcp.WithDescription("Classify a link as external, fragment, internal-absolute or other"),
			mcp.WithString("href", mcp.Required(), mcp.Description("Link to classify")),
		),
		h.classify,
	)

	s.AddTool(
		mcp.NewTool("sitekit_localize",
			mcp.WithDescription("Rewrite a canonical link for a target locale. Links for the default locale stay unprefixed."),
			mcp.WithString("href", mcp.Required(), mcp.Description("Canonical link, e.g. /pricing")),
			mcp.WithString("locale", mcp.Required(), mcp.Description("Target locale")),
		),
		h.localize,
	)

	s.AddTool(
		mcp.NewTool("sitekit_prefer",
			mcp.WithDescription("Pick the supported locale for an Accept-Language header"),
			mcp.WithString("accept_language", mcp.Description("Header value, e.g. 'de;q=0.9,en;q=0.8'")),
		),
		h.prefer,
	)

	s.AddTool(
		mcp.NewTool("sitekit_skip",
			mcp.WithDescription("Report whether a request path bypasses the locale redirect, and which rule matched"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Request path")),
		),
		h.skip,
	)

	s.AddTool(
		mcp.NewTool("sitekit_pages",
			mcp.WithDescription("List pages of the built site with their locale, links and markers"),
			mcp.WithString("locale", mcp.Description("Only pages of this locale ('-' for unlocalised pages)")),
			mcp.WithString("prefix", mcp.Description("Only pages under this URL path")),
			mcp.WithBoolean("direct", mcp.Description("With prefix, only direct children")),
			mcp.WithBoolean("links", mcp.Description("Include each page's anchors (default false)")),
		),
		h.listPages,
	)

	s.AddTool(
		mcp.NewTool("sitekit_reload",
			mcp.WithDescription("Discard the cached page index and re-read the built site"),
		),
		h.reload,
	)

	s.AddTool(
		mcp.NewTool("sitekit_check",
			mcp.WithDescription("Validate the built site: cross-locale links, locale markers on key pages, broken link report"),
		),
		h.check,
	)

	s.AddTool(
		mcp.NewTool("sitekit_content",
			mcp.WithDescription("List a content collection or read one entry, with default-locale fallback"),
			mcp.WithString("collection", mcp.Description("Collection name; empty lists collections")),
			mcp.WithString("slug", mcp.Description("Entry slug; empty lists the collection")),
			mcp.WithString("locale", mcp.Description("Requested locale (default: default locale)")),
			mcp.WithBoolean("html", mcp.Description("Render the entry body to HTML")),
			mcp.WithBoolean("drafts", mcp.Description("Include drafts when listing")),
		),
		h.getContent,
	)

	s.AddTool(
		mcp.NewTool("sitekit_config",
			mcp.WithDescription("Show the configuration the server is running with"),
			mcp.WithString("key", mcp.Description("Config key (e.g. site.root) or empty for all")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("sitekit_guide",
			mcp.WithDescription("Get help/guide content for sitekit commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g. 'check', 'locale') or empty for index")),
		),
		h.getGuide,
	)
}
