// history.go implements the run history subcommands: history, diff and
// prune.

package check

import (
	"errors"
	"fmt"

	"github.com/openticketai/sitekit/cmd"
	"github.com/openticketai/sitekit/extension"
	"github.com/openticketai/sitekit/internal/diff"
	"github.com/openticketai/sitekit/internal/duration"
	"github.com/openticketai/sitekit/internal/format"
	"github.com/openticketai/sitekit/internal/history"
	"github.com/openticketai/sitekit/internal/log"
	"github.com/spf13/cobra"
)

// ErrNotEnoughRuns is returned by diff when fewer than two runs exist.
var ErrNotEnoughRuns = errors.New("need at least two recorded runs")

func (e *Extension) newHistoryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "List recorded check runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			limit, _ := c.Flags().GetInt(extension.FlagLimit)

			s, err := history.Open(historyPath())
			if err != nil {
				return cmd.PrintJSONError(err)
			}
			defer s.Close()

			runs, err := s.List(c.Context(), limit)
			log.Event("check:history", "list").Count(len(runs)).Write(err)
			if err != nil {
				return cmd.PrintJSONError(err)
			}

			if cmd.JSON() {
				return cmd.PrintJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.Out(), "No runs recorded.")
				return nil
			}
			return format.Runs(cmd.Out(), runs)
		},
	}
	c.Flags().IntP(extension.FlagLimit, "n", 20, "Maximum runs to show (0 for all)")
	return c
}

func (e *Extension) newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff [older] [newer]",
		Short: "Compare two recorded runs",
		Long: `Shows how the report changed between two runs.

  sitekit check diff              # latest run against the one before it
  sitekit check diff 3f2a         # run 3f2a against the latest
  sitekit check diff 3f2a 9b1c    # two runs by id prefix`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := history.Open(historyPath())
			if err != nil {
				return cmd.PrintJSONError(err)
			}
			defer s.Close()

			older, newer, err := pick(c, s, args)
			if err != nil {
				log.Event("check:diff", "diff").Write(err)
				return cmd.PrintJSONError(err)
			}

			res := diff.Runs(older, newer)
			log.Event("check:diff", "diff").Path(older.ID).Detail("newer", newer.ID).Detail("changed", res.Changed).Write(nil)

			if cmd.JSON() {
				return cmd.PrintJSON(res)
			}
			fmt.Fprint(cmd.Out(), res.Format(cmd.Colour()))
			return nil
		},
	}
}

// pick resolves the runs to compare from zero, one or two id prefixes.
func pick(c *cobra.Command, s *history.Store, args []string) (older, newer history.Run, err error) {
	ctx := c.Context()
	switch len(args) {
	case 0:
		runs, err := s.List(ctx, 2)
		if err != nil {
			return older, newer, err
		}
		if len(runs) < 2 {
			return older, newer, ErrNotEnoughRuns
		}
		return runs[1], runs[0], nil
	case 1:
		if older, err = s.Get(ctx, args[0]); err != nil {
			return older, newer, err
		}
		newer, err = s.Latest(ctx)
		return older, newer, err
	default:
		if older, err = s.Get(ctx, args[0]); err != nil {
			return older, newer, err
		}
		newer, err = s.Get(ctx, args[1])
		return older, newer, err
	}
}

func (e *Extension) newPruneCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "prune",
		Short: "Delete recorded runs older than a duration",
		Long: `Deletes runs that started before the given age.

  sitekit check prune --older-than 30d
  sitekit check prune --older-than 12h

Units: h (hours), d (days), w (weeks), m (30-day months), or any Go duration.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			raw, _ := c.Flags().GetString(extension.FlagOlderThan)
			age, err := duration.Parse(raw)
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("--older-than: %w", err))
			}

			s, err := history.Open(historyPath())
			if err != nil {
				return cmd.PrintJSONError(err)
			}
			defer s.Close()

			n, err := s.Prune(c.Context(), age)
			log.Event("check:prune", "prune").Count(int(n)).Detail("older_than", raw).Write(err)
			if err != nil {
				return cmd.PrintJSONError(err)
			}

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]int64{"deleted": n})
			}
			fmt.Fprintf(cmd.Out(), "Deleted %d run(s)\n", n)
			return nil
		},
	}
	c.Flags().String(extension.FlagOlderThan, "30d", "Age threshold")
	return c
}
