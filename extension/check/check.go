// check.go implements "sitekit check", the post-build validator.
//
// The command runs every check against the built output, prints the report
// and exits 1 when any check fails. Unexpected I/O failures abort the run
// and also exit 1, with the error instead of a report.

package check

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/glamour"
	"github.com/openticketai/sitekit/cmd"
	"github.com/openticketai/sitekit/extension"
	"github.com/openticketai/sitekit/internal/history"
	"github.com/openticketai/sitekit/internal/log"
	"github.com/openticketai/sitekit/internal/progress"
	"github.com/openticketai/sitekit/internal/report"
	"github.com/openticketai/sitekit/internal/validate"
	"github.com/spf13/cobra"
)

func (e *Extension) newCheckCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check",
		Short: "Validate the built site",
		Long: `Checks the built output for cross-locale links, missing locale markers on
key pages and entries in the broken links report.

  sitekit check                     # validate site.root
  sitekit check --root build        # another directory
  sitekit check --log links.txt     # another link checker report
  sitekit check --markdown          # markdown report (rendered on a terminal)
  sitekit check -o json             # JSON report

Exits 1 when any check fails. Warnings do not fail the run.
Each run is recorded in .sitekit/history.db unless --no-history is given.`,
		Args: cobra.NoArgs,
		RunE: e.runCheck,
	}
	c.Flags().Bool(extension.FlagMarkdown, false, "Print the report as markdown")
	c.Flags().Bool(extension.FlagNoHistory, false, "Do not record this run")
	c.Flags().String(extension.FlagLog, "", "Broken links report (overrides site.broken_links_log)")
	c.Flags().Int(extension.FlagWorkers, 0, "Parallel parsers (overrides site.workers)")
	return c
}

func (e *Extension) runCheck(c *cobra.Command, _ []string) error {
	markdown, _ := c.Flags().GetBool(extension.FlagMarkdown)
	noHistory, _ := c.Flags().GetBool(extension.FlagNoHistory)
	logPath, _ := c.Flags().GetString(extension.FlagLog)
	workers, _ := c.Flags().GetInt(extension.FlagWorkers)

	cfg := e.ctx.Config()
	if logPath == "" {
		logPath = cfg.BrokenLinksLog()
	}
	if workers <= 0 {
		workers = cfg.Workers()
	}

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt)
	defer stop()

	var prog *progress.Progress
	opts := validate.Options{
		Root:            cfg.Root(),
		BrokenLinksLog:  logPath,
		MarkerAttribute: cfg.MarkerAttribute(),
		KeyPages:        cfg.KeyPages(),
		Workers:         workers,
	}
	if !cmd.JSON() {
		opts.Progress = func(total int) func() {
			prog = progress.New("Parsing", total)
			return prog.Tick
		}
	}

	r, err := validate.Run(ctx, opts)
	if prog != nil {
		prog.Done()
	}
	if err != nil {
		log.Event("check:run", "validate").Path(cfg.Root()).Write(err)
		c.SilenceUsage = true
		if perr := cmd.PrintJSONError(fmt.Errorf("check: %w", err)); perr != nil {
			return perr
		}
		return cmd.Exit(c, 1)
	}

	log.Event("check:run", "validate").
		Path(cfg.Root()).
		Count(len(r.Violations())).
		Detail("errors", len(r.Errors)).
		Detail("warnings", len(r.Warnings)).
		Detail("pages", r.Pages).
		Write(nil)

	if !noHistory {
		if err := record(c, r); err != nil {
			fmt.Fprintf(os.Stderr, "warning: run not recorded: %v\n", err)
		}
	}

	switch {
	case cmd.JSON():
		if err := cmd.PrintJSON(r); err != nil {
			return err
		}
	case markdown:
		md := report.Markdown(r)
		if cmd.Colour() {
			if rendered, err := glamour.Render(md, "dark"); err == nil {
				md = rendered
			}
		}
		fmt.Fprint(cmd.Out(), md)
	default:
		if err := report.WriteText(cmd.Out(), r, cmd.Colour()); err != nil {
			return err
		}
	}

	if code := r.ExitCode(); code != 0 {
		return cmd.Exit(c, code)
	}
	return nil
}

// record stores the run with its plain-text rendering for later diffs.
func record(c *cobra.Command, r *validate.Report) error {
	var buf bytes.Buffer
	if err := report.WriteText(&buf, r, false); err != nil {
		return err
	}
	s, err := history.Open(historyPath())
	if err != nil {
		return err
	}
	defer s.Close()

	run, err := s.Record(c.Context(), r, buf.String())
	log.Event("check:run", "record").Path(run.ID).Write(err)
	return err
}
