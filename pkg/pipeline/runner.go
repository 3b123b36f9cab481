package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/toplangs/pkg/card"
	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/langstats"
)

// Runner executes the fetch → aggregate → rank → render pipeline.
//
// The Runner is stateless apart from its collaborators; multiple goroutines
// can safely use the same Runner with different options, which is what
// serve mode does.
type Runner struct {
	Fetcher Fetcher
	Logger  *log.Logger
}

// NewRunner creates a runner around a fetcher. If logger is nil the default
// logger is used.
func NewRunner(f Fetcher, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Fetcher: f, Logger: logger}
}

// Execute runs the complete pipeline. Any failure at any stage aborts the
// run; nothing is retried and no partial result is returned.
//
// Zero total bytes across all fetched repositories is a degenerate input:
// by default it fails with EMPTY_INPUT, but with Options.AllowEmpty the run
// produces an empty card instead. That policy belongs here, not in the
// ranker, which always just returns an empty ranking.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	fetchStart := time.Now()
	repos, err := r.Fetcher.FetchViewerLanguages(ctx)
	if err != nil {
		return nil, err
	}
	result.Stats.FetchTime = time.Since(fetchStart)
	result.Stats.RepoCount = len(repos)

	opts.Logger.Info("fetched repository languages",
		"repos", len(repos),
		"duration", result.Stats.FetchTime)

	result.Totals = langstats.Aggregate(repos)
	result.Stats.LanguageCount = result.Totals.Len()

	result.Ranking = langstats.Rank(result.Totals, opts.TopN)
	result.Stats.EntryCount = len(result.Ranking)

	if len(result.Ranking) == 0 && !opts.AllowEmpty {
		return nil, errors.New(errors.ErrCodeEmptyInput,
			"no language bytes found across %d repositories", len(repos))
	}

	opts.Logger.Debug("ranked languages",
		"languages", result.Totals.Len(),
		"entries", len(result.Ranking))

	renderStart := time.Now()
	result.SVG = card.Render(result.Ranking, opts.Card)
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered card",
		"bytes", len(result.SVG),
		"duration", result.Stats.RenderTime)

	return result, nil
}
