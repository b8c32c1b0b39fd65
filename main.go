package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/jollyroger89816/content-analysis/internal/analyze"
)

func main() {
	// Best-effort env bootstrap for the external scorer credentials.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "content-analysis",
		Usage: "score web pages for SEO content quality: cross-page duplication and suggestive language",
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "analyze a batch of URLs and emit composite scores",
				Action: analyze.AnalyzeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "urls",
						Usage:    "comma-separated list of URLs to analyze",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "path to a YAML config file",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "worker pool size",
					},
					&cli.Float64Flag{
						Name:  "similarity-threshold",
						Usage: "pairwise cosine cutoff for duplicate classification (0-1)",
					},
					&cli.Float64Flag{
						Name:  "duplicate-threshold",
						Usage: "duplicate-rate alarm level in percent",
					},
					&cli.BoolFlag{
						Name:  "count-intra-url",
						Usage: "count same-page paragraph repetition toward the duplicate rate",
					},
					&cli.IntFlag{
						Name:  "timeout",
						Usage: "per-request timeout in seconds",
					},
					&cli.DurationFlag{
						Name:  "deadline",
						Usage: "overall batch deadline (e.g. 2m); unfinished URLs are marked failed",
						Value: 0 * time.Second,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format: yaml or json",
						Value: "yaml",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
