// commands.go implements the locale subcommands. Each takes one or more
// inputs and prints one result per line, or a JSON array with -o json.

package locale

import (
	"fmt"
	"strings"

	"github.com/openticketai/sitekit/cmd"
	"github.com/openticketai/sitekit/internal/locale"
	"github.com/openticketai/sitekit/internal/log"
	"github.com/openticketai/sitekit/internal/redirect"
	"github.com/spf13/cobra"
)

type classified struct {
	Href string `json:"href"`
	Kind string `json:"kind"`
}

func (e *Extension) newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <href>...",
		Short: "Classify links as external, fragment, internal or other",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			res := make([]classified, len(args))
			for i, href := range args {
				res[i] = classified{Href: href, Kind: locale.ClassifyLink(href).String()}
			}
			log.Event("locale:classify", "classify").Count(len(res)).Write(nil)

			if cmd.JSON() {
				return cmd.PrintJSON(res)
			}
			for _, r := range res {
				fmt.Fprintf(cmd.Out(), "%-9s %s\n", r.Kind, r.Href)
			}
			return nil
		},
	}
}

type localized struct {
	Href      string `json:"href"`
	Locale    string `json:"locale"`
	Localized string `json:"localized"`
}

func (e *Extension) newLocalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "localize <locale> <href>...",
		Short: "Localize canonical links for a locale",
		Long: `Prefixes internal links with the locale segment.

  sitekit locale localize de /pricing    # /de/pricing
  sitekit locale localize en /pricing    # /pricing (default locale)
  sitekit locale localize de /de/blog    # /de/blog (already localised)`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			target := args[0]
			if !e.set.Contains(target) {
				err := fmt.Errorf("%w: %q (supported: %s)", locale.ErrInvalidLocale, target, strings.Join(e.set.Supported(), ", "))
				log.Event("locale:localize", "localize").Locale(target).Write(err)
				return cmd.PrintJSONError(err)
			}

			res := make([]localized, 0, len(args)-1)
			for _, href := range args[1:] {
				res = append(res, localized{Href: href, Locale: target, Localized: e.set.LocalizeHref(href, target)})
			}
			log.Event("locale:localize", "localize").Locale(target).Count(len(res)).Write(nil)

			if cmd.JSON() {
				return cmd.PrintJSON(res)
			}
			for _, r := range res {
				fmt.Fprintln(cmd.Out(), r.Localized)
			}
			return nil
		},
	}
}

type detected struct {
	Path     string `json:"path"`
	Locale   string `json:"locale"`
	Explicit bool   `json:"explicit"`
}

func (e *Extension) newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <path>...",
		Short: "Report the locale a URL path is served in",
		Long: `Reports the locale named by the first path segment. Paths without a
supported locale segment are served in the default locale.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			res := make([]detected, len(args))
			for i, p := range args {
				res[i] = detected{Path: p, Locale: e.set.LocaleFromPath(p), Explicit: e.set.HasLocalePrefix(p)}
			}
			log.Event("locale:detect", "detect").Count(len(res)).Write(nil)

			if cmd.JSON() {
				return cmd.PrintJSON(res)
			}
			for _, r := range res {
				suffix := ""
				if !r.Explicit {
					suffix = " (default)"
				}
				fmt.Fprintf(cmd.Out(), "%s%s\t%s\n", r.Locale, suffix, r.Path)
			}
			return nil
		},
	}
}

func (e *Extension) newPreferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefer [accept-language]",
		Short: "Negotiate a locale from an Accept-Language header",
		Long: `Picks the supported locale a browser prefers.

  sitekit locale prefer "de-AT,de;q=0.9,en;q=0.8"    # de
  sitekit locale prefer "fr"                         # default locale
  sitekit locale prefer                              # default locale`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			header := ""
			if len(args) > 0 {
				header = args[0]
			}
			loc := e.set.PreferredLocale(header)
			log.Event("locale:prefer", "negotiate").Locale(loc).Detail("header", header).Write(nil)

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]any{
					"locale":      loc,
					"default":     e.set.Default(),
					"preferences": locale.ParseAcceptLanguage(header),
				})
			}
			fmt.Fprintln(cmd.Out(), loc)
			return nil
		},
	}
}

type skipped struct {
	Path     string `json:"path"`
	Skip     bool   `json:"skip"`
	Rule     string `json:"rule,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

func (e *Extension) newSkipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skip <path>...",
		Short: "Explain whether the locale redirect leaves a path alone",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			res := make([]skipped, len(args))
			for i, p := range args {
				skip, rule := e.skipper.Skip(p)
				res[i] = skipped{Path: p, Skip: skip, Rule: rule}
				if !skip && !e.set.HasLocalePrefix(p) {
					res[i].Redirect = redirect.Target(p, e.set.Default())
				}
			}
			log.Event("locale:skip", "classify").Count(len(res)).Write(nil)

			if cmd.JSON() {
				return cmd.PrintJSON(res)
			}
			for _, r := range res {
				switch {
				case r.Skip:
					fmt.Fprintf(cmd.Out(), "skip      %s (%s)\n", r.Path, r.Rule)
				case r.Redirect != "":
					fmt.Fprintf(cmd.Out(), "redirect  %s -> %s (for the default locale)\n", r.Path, r.Redirect)
				default:
					fmt.Fprintf(cmd.Out(), "serve     %s\n", r.Path)
				}
			}
			return nil
		},
	}
}
