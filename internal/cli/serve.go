package cli

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/matzehuels/toplangs/pkg/config"
	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/integrations/github"
	"github.com/matzehuels/toplangs/pkg/pipeline"
)

// cardPath is the route the rendered card is served under.
const cardPath = "/top-langs.svg"

// shutdownTimeout bounds graceful shutdown after an interrupt.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command: an HTTP server that re-renders
// the card on every request instead of writing it to disk.
func (c *CLI) serveCommand() *cobra.Command {
	var opts generateOpts
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the top-languages card over HTTP",
		Long: `Start an HTTP server that fetches fresh data and renders the card on
every request to ` + cardPath + `. Useful for embedding a live card without
committing the artifact to a repository.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/toplangs/config.toml)")
	cmd.Flags().StringVar(&opts.token, "token", "", "github token (default $"+config.TokenEnvVar+")")
	cmd.Flags().IntVar(&opts.top, "top", 0, "languages shown before the Other bucket (default 5)")
	cmd.Flags().StringVar(&opts.title, "title", "", `card title (default "Top Languages")`)
	cmd.Flags().IntVar(&opts.width, "width", 0, "card width in pixels (default 600)")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "legend column count (default 2)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *generateOpts, addr string) error {
	cfg, err := resolveConfig(opts.configPath, opts.flagConfig())
	if err != nil {
		return err
	}
	if cfg.Token == "" {
		return errors.New(errors.ErrCodeMissingToken,
			"github token is required: pass --token, set %s, or add token to the config file", config.TokenEnvVar)
	}

	runner := pipeline.NewRunner(github.NewClient(cfg.Token), c.Logger)
	// Serve mode always answers: a user with no language data gets an
	// empty card rather than an error page.
	pipeOpts := pipelineOptions(cfg, true)

	router := chi.NewRouter()
	router.Get(cardPath, c.cardHandler(runner, pipeOpts))

	srv := &http.Server{Addr: addr, Handler: router}

	printInfo("Serving card on http://localhost%s%s", addr, cardPath)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
		return ctx.Err()
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeTransport, err, "serve on %s", addr)
	}
}

// cardHandler runs the pipeline for each request and writes the SVG.
func (c *CLI) cardHandler(runner *pipeline.Runner, opts pipeline.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := runner.Execute(r.Context(), opts)
		if err != nil {
			c.Logger.Error("card render failed", "err", err)
			status := http.StatusBadGateway
			if errors.Is(err, errors.ErrCodeInvalidInput) {
				status = http.StatusInternalServerError
			}
			http.Error(w, errors.UserMessage(err), status)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(result.SVG)
	}
}
