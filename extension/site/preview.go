// preview.go implements "sitekit preview", a local server for the built
// output with the production locale redirect.

package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/openticketai/sitekit/cmd"
	"github.com/openticketai/sitekit/extension"
	"github.com/openticketai/sitekit/internal/locale"
	"github.com/openticketai/sitekit/internal/log"
	"github.com/openticketai/sitekit/internal/preview"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func (e *Extension) newPreviewCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "preview",
		Short: "Serve the built site with the locale redirect",
		Long: `Serves the output root over HTTP. Requests without a locale segment are
redirected to the locale the browser prefers; assets pass through.

  sitekit preview                      # redirect.addr, default 127.0.0.1:4321
  sitekit preview --addr :8080
  sitekit preview --root build

Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: e.runPreview,
	}
	c.Flags().String(extension.FlagAddr, "", "Listen address (overrides redirect.addr)")
	return c
}

func (e *Extension) runPreview(c *cobra.Command, _ []string) error {
	addr, _ := c.Flags().GetString(extension.FlagAddr)
	cfg := e.ctx.Config()
	if addr == "" {
		addr = cfg.Addr()
	}
	root := cfg.Root()
	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		if err == nil {
			err = fmt.Errorf("%s is not a directory", root)
		}
		return cmd.PrintJSONError(fmt.Errorf("preview: %w", err))
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	handler := preview.NewRouter(root, e.ctx.Locales(), locale.NewSkipper(cfg.SkipPrefixes()), logger)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Event("site:preview", "listen").Path(root).Detail("addr", addr).Write(err)
		return cmd.PrintJSONError(fmt.Errorf("preview: %w", err))
	}

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt)
	defer stop()

	srv := &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	url := "http://" + ln.Addr().String() + "/"
	if cmd.JSON() {
		_ = cmd.PrintJSON(map[string]string{"url": url, "root": root})
	} else {
		fmt.Fprintf(cmd.Out(), "Serving %s at %s\n", root, url)
	}

	select {
	case err = <-errc:
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err = srv.Shutdown(sctx)
		cancel()
	}
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	log.Event("site:preview", "serve").Path(root).Detail("addr", ln.Addr().String()).Write(err)
	return err
}
