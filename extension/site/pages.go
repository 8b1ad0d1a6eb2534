// pages.go implements "sitekit pages", a listing of the built output as the
// validator sees it.

package site

import (
	"fmt"

	"github.com/openticketai/sitekit/cmd"
	"github.com/openticketai/sitekit/extension"
	"github.com/openticketai/sitekit/internal/format"
	"github.com/openticketai/sitekit/internal/log"
	"github.com/openticketai/sitekit/internal/site"
	"github.com/spf13/cobra"
)

func (e *Extension) newPagesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "pages [prefix]",
		Short: "List the pages of the built site",
		Long: `Lists every HTML page under the output root with the URL it is served at.

  sitekit pages                 # all pages
  sitekit pages /de/blog/       # pages under a path
  sitekit pages --locale de     # one locale
  sitekit pages --locale -      # pages without a locale
  sitekit pages -l              # with locale, link and marker counts
  sitekit pages --tree          # as a tree`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runPages,
	}
	c.Flags().String(extension.FlagLocale, "", `Only pages of this locale ("-" for unlocalised)`)
	c.Flags().Bool(extension.FlagDirect, false, "Only pages directly under the prefix")
	c.Flags().BoolP(extension.FlagLong, "l", false, "Long format")
	c.Flags().BoolP(extension.FlagTree, "t", false, "Tree view")
	c.Flags().Bool(extension.FlagLinks, false, "Include anchors in JSON output")
	return c
}

// pageJSON is a document without its anchors unless asked for.
type pageJSON struct {
	URL     string   `json:"url"`
	File    string   `json:"file"`
	Locale  string   `json:"locale,omitempty"`
	Links   int      `json:"links"`
	Markers []string `json:"markers,omitempty"`
	Anchors []string `json:"anchors,omitempty"`
}

func (e *Extension) runPages(c *cobra.Command, args []string) error {
	loc, _ := c.Flags().GetString(extension.FlagLocale)
	direct, _ := c.Flags().GetBool(extension.FlagDirect)
	long, _ := c.Flags().GetBool(extension.FlagLong)
	tree, _ := c.Flags().GetBool(extension.FlagTree)
	links, _ := c.Flags().GetBool(extension.FlagLinks)

	f := site.Filter{Locale: loc, Direct: direct}
	if len(args) > 0 {
		f.Prefix = args[0]
	}

	cfg := e.ctx.Config()
	docs, err := site.Load(c.Context(), cfg.Root(), site.Options{
		MarkerAttribute: cfg.MarkerAttribute(),
		Workers:         cfg.Workers(),
	})
	if err != nil {
		log.Event("site:pages", "list").Path(cfg.Root()).Write(err)
		return cmd.PrintJSONError(fmt.Errorf("pages: %w", err))
	}
	docs = f.Apply(docs)
	log.Event("site:pages", "list").Path(cfg.Root()).Locale(loc).Count(len(docs)).Write(nil)

	if cmd.JSON() {
		res := make([]pageJSON, len(docs))
		for i, d := range docs {
			res[i] = pageJSON{URL: d.URLPath, File: d.File, Locale: d.Locale, Links: len(d.Anchors), Markers: d.Markers}
			if links {
				res[i].Anchors = d.Anchors
			}
		}
		return cmd.PrintJSON(res)
	}

	switch {
	case tree:
		return format.Tree(cmd.Out(), docs)
	case long:
		return format.PagesLong(cmd.Out(), docs)
	default:
		return format.Pages(cmd.Out(), docs)
	}
}
