// Package analyze wires the CLI to the batch orchestrator.
package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/jollyroger89816/content-analysis/internal/batch"
	"github.com/jollyroger89816/content-analysis/models"
	"github.com/jollyroger89816/content-analysis/pkg/extract"
	"github.com/jollyroger89816/content-analysis/pkg/fetcher"
	"github.com/jollyroger89816/content-analysis/pkg/quality"
	"github.com/jollyroger89816/content-analysis/pkg/tokenizer"
)

// AnalyzeAction runs a batch analysis from CLI flags and emits the full
// batch output on stdout.
func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	urlsStr := c.String("urls")
	if urlsStr == "" {
		return fmt.Errorf("no URLs provided via --urls flag")
	}
	var urls []string
	for _, u := range strings.Split(urlsStr, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}

	tok, err := tokenizer.New()
	if err != nil {
		return fmt.Errorf("failed to initialize tokenizer: %w", err)
	}

	var primary quality.Scorer
	if ext, extErr := quality.NewExternalScorer(cfg.Scorer); extErr != nil {
		logger.Info("external scorer disabled, using rule engine only", "reason", extErr.Error())
	} else {
		primary = ext
	}
	scorer := quality.NewFallback(primary, quality.NewRuleScorer(), logger)

	source := extract.NewSource(fetcher.NewFetcher(cfg.RequestTimeout()))
	orchestrator := batch.New(cfg, source, scorer, tok, logger)

	ctx := c.Context
	if deadline := c.Duration("deadline"); deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, deadline)
		defer cancel()
	}

	output, err := orchestrator.Run(ctx, urls)
	if err != nil {
		return err
	}

	return emit(output, c.String("format"))
}

// buildConfig overlays CLI flags on the config file (or defaults).
func buildConfig(c *cli.Context) (models.Config, error) {
	cfg := models.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("workers") {
		cfg.MaxWorkers = c.Int("workers")
	}
	if c.IsSet("similarity-threshold") {
		cfg.SimilarityThreshold = c.Float64("similarity-threshold")
	}
	if c.IsSet("duplicate-threshold") {
		cfg.DuplicateThreshold = c.Float64("duplicate-threshold")
	}
	if c.IsSet("count-intra-url") {
		cfg.CountIntraURL = c.Bool("count-intra-url")
	}
	if c.IsSet("timeout") {
		cfg.RequestTimeoutSecs = c.Int("timeout")
	}
	return cfg, nil
}

func emit(output models.BatchOutput, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(data))
	default:
		data, err := yaml.Marshal(output)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Print(string(data))
	}
	return nil
}
