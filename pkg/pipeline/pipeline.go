// Package pipeline sequences the toplangs core: fetch repository language
// data, aggregate byte totals, rank them, and render the SVG card.
//
// The three core stages (aggregate, rank, render) are pure functions from
// pkg/langstats and pkg/card; this package adds option validation, the
// fetch collaborator boundary, per-stage timing, and the policy decision
// for degenerate (zero-byte) input. Persisting the artifact stays with the
// caller so that no partial output is ever written.
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/toplangs/pkg/card"
	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/langstats"
)

// DefaultTopN is the number of ranked languages shown before the overflow
// bucket.
const DefaultTopN = 5

// Fetcher supplies the raw per-repository language records. Implemented by
// the GitHub GraphQL client; tests substitute fakes.
type Fetcher interface {
	FetchViewerLanguages(ctx context.Context) ([]langstats.RepoLanguages, error)
}

// Options contains all configuration for one pipeline run.
type Options struct {
	// TopN is the number of languages ranked before the overflow bucket.
	// Zero means DefaultTopN.
	TopN int

	// AllowEmpty renders an empty card (title, empty bar, no legend) when
	// the fetched data sums to zero bytes instead of failing the run.
	AllowEmpty bool

	// Card controls the geometry and text of the rendered card.
	Card card.Options

	// Logger receives stage progress. Defaults to a discarding logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks fields and applies defaults. It is
// idempotent; calling it repeatedly has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.TopN < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "top count must not be negative: %d", o.TopN)
	}
	if o.TopN == 0 {
		o.TopN = DefaultTopN
	}
	o.Card.ApplyDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RepoCount     int
	LanguageCount int
	EntryCount    int
	FetchTime     time.Duration
	RenderTime    time.Duration
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Totals is the aggregated per-language byte distribution.
	Totals langstats.Totals

	// Ranking is the percentage-normalized top-N ranking. Empty when the
	// input was degenerate and Options.AllowEmpty was set.
	Ranking []langstats.Entry

	// SVG is the rendered card markup.
	SVG []byte

	// Stats contains timing and size information.
	Stats Stats
}
