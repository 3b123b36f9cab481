package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/toplangs/pkg/card"
	"github.com/matzehuels/toplangs/pkg/config"
	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/integrations/github"
	"github.com/matzehuels/toplangs/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	configPath string
	token      string
	top        int
	output     string
	title      string
	width      int
	columns    int
	allowEmpty bool
}

// flagConfig converts the flag values into a Config overlay; unset flags
// stay zero so file values survive the merge.
func (o *generateOpts) flagConfig() config.Config {
	return config.Config{
		Token:   o.token,
		TopN:    o.top,
		Output:  o.output,
		Title:   o.title,
		Width:   o.width,
		Columns: o.columns,
	}
}

// generateCommand creates the generate command, the main entry point of the
// tool: fetch, aggregate, rank, render, write.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the top-languages SVG card",
		Long: `Fetch the language byte breakdown of your public, non-archived, non-fork
repositories from the GitHub GraphQL API, rank the languages by cumulative
size, and write the rendered SVG card to disk.

A GitHub token with read access to your public repositories is required.
It is resolved from --token, the ` + config.TokenEnvVar + ` environment variable, or the
config file, in that order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/toplangs/config.toml)")
	cmd.Flags().StringVar(&opts.token, "token", "", "github token (default $"+config.TokenEnvVar+")")
	cmd.Flags().IntVar(&opts.top, "top", 0, "languages shown before the Other bucket (default 5)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default "+config.DefaultOutput+")")
	cmd.Flags().StringVar(&opts.title, "title", "", `card title (default "Top Languages")`)
	cmd.Flags().IntVar(&opts.width, "width", 0, "card width in pixels (default 600)")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "legend column count (default 2)")
	cmd.Flags().BoolVar(&opts.allowEmpty, "allow-empty", false, "write an empty card when no language data is found")

	return cmd
}

// runGenerate resolves configuration, runs the pipeline and writes the card.
func (c *CLI) runGenerate(ctx context.Context, opts *generateOpts) error {
	cfg, err := resolveConfig(opts.configPath, opts.flagConfig())
	if err != nil {
		return err
	}
	if cfg.Token == "" {
		return errors.New(errors.ErrCodeMissingToken,
			"github token is required: pass --token, set %s, or add token to the config file", config.TokenEnvVar)
	}

	runner := pipeline.NewRunner(github.NewClient(cfg.Token), c.Logger)

	spinner := newSpinner(ctx, "Fetching repository languages...")
	spinner.Start()
	result, err := runner.Execute(ctx, pipelineOptions(cfg, opts.allowEmpty))
	spinner.Stop()
	if err != nil {
		return err
	}

	if len(result.Ranking) == 0 {
		printWarning("No language data found; writing an empty card")
	}

	if err := writeArtifact(cfg.Output, result.SVG); err != nil {
		return err
	}

	printSuccess("Generated language card")
	printFile(cfg.Output)
	printStats(result.Stats.RepoCount, result.Stats.LanguageCount, len(result.Ranking))
	return nil
}

// resolveConfig merges the config file, environment and flags in ascending
// precedence: the environment token overlays the file, flags win over both.
func resolveConfig(configPath string, flags config.Config) (config.Config, error) {
	path := configPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}

	var cfg config.Config
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
	}

	cfg.ApplyEnv(os.LookupEnv)
	cfg = cfg.Merge(flags)
	if cfg.Output == "" {
		cfg.Output = config.DefaultOutput
	}
	return cfg, nil
}

// pipelineOptions maps resolved configuration onto pipeline options.
func pipelineOptions(cfg config.Config, allowEmpty bool) pipeline.Options {
	return pipeline.Options{
		TopN:       cfg.TopN,
		AllowEmpty: allowEmpty,
		Card: card.Options{
			Width:         cfg.Width,
			Title:         cfg.Title,
			LegendColumns: cfg.Columns,
		},
	}
}

// writeArtifact persists the card, creating parent directories as needed.
// It is only called once the full markup exists, so a failed run never
// leaves a partial artifact behind.
func writeArtifact(path string, svg []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeFileWrite, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "write %s", path)
	}
	return nil
}
