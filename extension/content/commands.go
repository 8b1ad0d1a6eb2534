// commands.go implements content ls and content show.

package content

import (
	"fmt"

	"github.com/openticketai/sitekit/cmd"
	"github.com/openticketai/sitekit/extension"
	"github.com/openticketai/sitekit/internal/content"
	"github.com/openticketai/sitekit/internal/format"
	"github.com/openticketai/sitekit/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls [collection]",
		Short: "List collections, or the entries of one collection",
		Long: `Without arguments lists the collections. With a collection lists the
entries visible in a locale, newest first. Entries shown from the default
locale are marked with *.

  sitekit content ls
  sitekit content ls blog --locale de
  sitekit content ls blog --drafts`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				names, err := e.loader.Collections()
				log.Event("content:ls", "list").Path(e.ctx.Config().ContentDir()).Count(len(names)).Write(err)
				if err != nil {
					return cmd.PrintJSONError(fmt.Errorf("content ls: %w", err))
				}
				if cmd.JSON() {
					return cmd.PrintJSON(names)
				}
				for _, n := range names {
					fmt.Fprintln(cmd.Out(), n)
				}
				return nil
			}

			loc, _ := c.Flags().GetString(extension.FlagLocale)
			drafts, _ := c.Flags().GetBool(extension.FlagDrafts)
			if loc == "" {
				loc = e.ctx.Locales().Default()
			}

			entries, err := e.loader.List(c.Context(), args[0], loc, drafts)
			log.Event("content:ls", "list").Path(args[0]).Locale(loc).Count(len(entries)).Write(err)
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("content ls: %w", err))
			}
			if cmd.JSON() {
				return cmd.PrintJSON(entries)
			}
			return format.Entries(cmd.Out(), entries)
		},
	}
	c.Flags().String(extension.FlagLocale, "", "Locale to read (defaults to the default locale)")
	c.Flags().Bool(extension.FlagDrafts, false, "Include drafts")
	return c
}

// entryJSON is an entry with its body, optionally rendered.
type entryJSON struct {
	content.Entry
	Body string `json:"body"`
	HTML string `json:"html,omitempty"`
}

func (e *Extension) newShowCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "show <collection> <slug>",
		Short: "Print one entry",
		Long: `Prints the markdown body of an entry, or its HTML with --html.

  sitekit content show blog launch --locale de
  sitekit content show blog launch --html`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			loc, _ := c.Flags().GetString(extension.FlagLocale)
			html, _ := c.Flags().GetBool(extension.FlagHTML)
			if loc == "" {
				loc = e.ctx.Locales().Default()
			}

			entry, err := e.loader.Get(c.Context(), args[0], args[1], loc)
			if err != nil {
				log.Event("content:show", "read").Path(args[0] + "/" + args[1]).Locale(loc).Write(err)
				return cmd.PrintJSONError(fmt.Errorf("content show: %w", err))
			}
			out := entryJSON{Entry: entry, Body: entry.Body}
			if html {
				if out.HTML, err = entry.HTML(); err != nil {
					return cmd.PrintJSONError(fmt.Errorf("content show: %w", err))
				}
			}
			log.Event("content:show", "read").Path(entry.Path).Locale(entry.Locale).Detail("fallback", entry.Fallback).Write(nil)

			if cmd.JSON() {
				return cmd.PrintJSON(out)
			}
			if entry.Fallback {
				fmt.Fprintf(c.ErrOrStderr(), "note: no %s translation, showing %s\n", entry.Requested, entry.Locale)
			}
			if html {
				fmt.Fprint(cmd.Out(), out.HTML)
				return nil
			}
			fmt.Fprint(cmd.Out(), entry.Body)
			return nil
		},
	}
	c.Flags().String(extension.FlagLocale, "", "Locale to read (defaults to the default locale)")
	c.Flags().Bool(extension.FlagHTML, false, "Render to HTML")
	return c
}
