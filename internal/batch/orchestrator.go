// Package batch orchestrates a full analysis run: a bounded worker pool
// extracts and tokenizes paragraphs per URL (phase 1), then vectorization
// and similarity run once over the assembled corpus (phase 2). The phases
// are separated by a hard barrier because IDF weights are only correct
// over the complete document set.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/jollyroger89816/content-analysis/models"
	"github.com/jollyroger89816/content-analysis/pkg/composite"
	"github.com/jollyroger89816/content-analysis/pkg/mapreduce"
	"github.com/jollyroger89816/content-analysis/pkg/quality"
	"github.com/jollyroger89816/content-analysis/pkg/similarity"
	"github.com/jollyroger89816/content-analysis/pkg/vectorizer"
)

// DocumentSource supplies fetched documents. Fetch failures are reported
// inside the returned document.
type DocumentSource interface {
	Fetch(ctx context.Context, url string) models.FetchedDocument
}

// Tokenizer normalizes raw paragraph text into token sequences.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Orchestrator runs batches. Construct once, reuse across batches; all
// per-batch state lives in Run.
type Orchestrator struct {
	cfg       models.Config
	source    DocumentSource
	scorer    quality.Scorer
	tokenizer Tokenizer
	logger    *slog.Logger
}

// New wires an orchestrator. The config is validated on every Run.
func New(cfg models.Config, source DocumentSource, scorer quality.Scorer, tok Tokenizer, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{cfg: cfg, source: source, scorer: scorer, tokenizer: tok, logger: logger}
}

// Run analyzes a URL batch. The output has exactly one entry per distinct
// input URL: a composite result or an error record. Per-URL failures
// never abort the batch; only an invalid configuration does.
func (o *Orchestrator) Run(ctx context.Context, urls []string) (models.BatchOutput, error) {
	if err := o.cfg.Validate(); err != nil {
		return models.BatchOutput{}, fmt.Errorf("invalid configuration: %w", err)
	}

	o.logger.Info("starting extraction phase", "url_count", len(urls), "workers", o.cfg.MaxWorkers)
	results := o.runExtractionPhase(ctx, urls)

	// Barrier: every worker has finished; the corpus is complete. Input
	// order is preserved, and a URL repeated in the input contributes its
	// document once.
	corpus := &models.Corpus{}
	added := make(map[string]struct{}, len(results))
	for _, url := range urls {
		if _, dup := added[url]; dup {
			continue
		}
		added[url] = struct{}{}
		res, ok := results[url]
		if !ok || res.Error != nil {
			continue
		}
		corpus.AddDocument(url, res.Paragraphs, res.Tokens)
	}

	o.logger.Info("starting similarity phase", "paragraphs", corpus.Len())
	reports := computeDuplicates(corpus, o.cfg)

	output := models.BatchOutput{Results: make(map[string]models.URLResult, len(results))}
	for url, res := range results {
		if res.Error != nil {
			output.Results[url] = models.URLResult{Error: &models.ErrorRecord{
				URL:       url,
				ErrorType: res.ErrorType,
				Message:   res.Error.Error(),
			}}
			continue
		}
		report, ok := reports[url]
		if !ok {
			// Succeeded but contributed no paragraphs.
			report = similarity.EmptyReport(url)
		}
		result := composite.Compose(report, res.Quality, o.cfg)
		output.Results[url] = models.URLResult{Result: &result}
	}

	output.Stats = o.buildStats(output.Results, results)
	o.logger.Info("batch complete",
		"succeeded", output.Stats.SucceededURLs,
		"failed", output.Stats.FailedURLs,
		"avg_duplicate_rate", output.Stats.AvgDuplicateRate)
	return output, nil
}

// ComputeDuplicates is the pure accessor for callers needing the
// duplicate signal without the composite pipeline.
func ComputeDuplicates(corpus *models.Corpus, cfg models.Config) map[string]models.DuplicateReport {
	return computeDuplicates(corpus, cfg)
}

func computeDuplicates(corpus *models.Corpus, cfg models.Config) map[string]models.DuplicateReport {
	if corpus.Len() == 0 {
		// Empty corpus is not an error; there is nothing to compare.
		return map[string]models.DuplicateReport{}
	}
	tokenRows := make([][]string, corpus.Len())
	for i, p := range corpus.Paragraphs {
		tokenRows[i] = p.Tokens
	}
	rows := vectorizer.FitTransform(tokenRows)
	matrix := similarity.Compute(rows)
	pairs := similarity.Classify(matrix, corpus, cfg.SimilarityThreshold, cfg.CountIntraURL)
	return similarity.Aggregate(pairs, corpus)
}

// runExtractionPhase fans the batch across the worker pool and waits for
// every job. Workers fetch, tokenize and score quality per URL; quality
// scoring does not depend on the corpus, so it rides along in phase 1.
func (o *Orchestrator) runExtractionPhase(ctx context.Context, urls []string) map[string]Result {
	jobs := make(chan Job, len(urls))
	resultCh := make(chan Result, len(urls))

	var wg sync.WaitGroup
	for w := 1; w <= o.cfg.MaxWorkers; w++ {
		wg.Add(1)
		go o.worker(ctx, w, &wg, jobs, resultCh)
	}

	seen := make(map[string]struct{}, len(urls))
	for _, url := range urls {
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		jobs <- Job{URL: url}
	}
	close(jobs)

	wg.Wait()
	close(resultCh)

	results := make(map[string]Result, len(urls))
	for res := range resultCh {
		results[res.URL] = res
	}
	return results
}

func (o *Orchestrator) worker(ctx context.Context, id int, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		// On deadline, abandon remaining jobs but keep already-completed
		// extractions: partial-batch semantics, not all-or-nothing.
		if ctx.Err() != nil {
			results <- Result{
				URL:       job.URL,
				Error:     fmt.Errorf("batch deadline exceeded: %w", ctx.Err()),
				ErrorType: ErrorTypeTimeout,
			}
			continue
		}

		o.logger.Info("worker started job", "worker_id", id, "url", job.URL)
		results <- o.process(ctx, job.URL)
	}
}

func (o *Orchestrator) process(ctx context.Context, url string) Result {
	doc := o.source.Fetch(ctx, url)
	if !doc.FetchSucceeded {
		msg := doc.Error
		if msg == "" {
			msg = "fetch failed"
		}
		err := errors.New(msg)
		errType := ErrorTypeFetch
		if ctx.Err() != nil {
			errType = ErrorTypeTimeout
		}
		o.logger.Error("failed to fetch document", "url", url, "error", msg)
		return Result{URL: url, Error: err, ErrorType: errType}
	}

	tokens := make([][]string, len(doc.Paragraphs))
	for i, p := range doc.Paragraphs {
		tokens[i] = o.tokenizer.Tokenize(p)
	}

	signal, err := o.scorer.Score(ctx, url, doc.Paragraphs)
	if err != nil {
		// The fallback policy makes this unreachable in practice; a bare
		// scorer without fallback still must not fail the URL.
		o.logger.Warn("quality scoring failed, using neutral signal", "url", url, "error", err)
		signal = models.QualitySignal{Tier: models.TierNone, Source: models.ScorerSourceRules}
	}

	return Result{URL: url, Paragraphs: doc.Paragraphs, Tokens: tokens, Quality: signal}
}

func (o *Orchestrator) buildStats(outcomes map[string]models.URLResult, results map[string]Result) models.BatchStats {
	stats := models.BatchStats{
		TotalURLs:         len(outcomes),
		GradeDistribution: make(map[models.Grade]int),
	}

	var rateSum, scoreSum float64
	var keywordMaps []map[string]int
	for _, outcome := range outcomes {
		if outcome.Error != nil {
			stats.FailedURLs++
			continue
		}
		stats.SucceededURLs++
		r := outcome.Result
		rateSum += r.Duplicate.DuplicateRate
		scoreSum += r.SEOScore
		stats.GradeDistribution[r.Grade]++
		if r.Duplicate.DuplicateRate > o.cfg.DuplicateThreshold {
			stats.HighDuplicateCount++
		}
	}

	if stats.SucceededURLs > 0 {
		stats.AvgDuplicateRate = round2(rateSum / float64(stats.SucceededURLs))
		stats.AvgSEOScore = round2(scoreSum / float64(stats.SucceededURLs))
	}

	for _, res := range results {
		if res.Error == nil && len(res.Tokens) > 0 {
			keywordMaps = append(keywordMaps, mapreduce.Map(res.Tokens))
		}
	}
	if len(keywordMaps) > 0 {
		stats.TopKeywords = mapreduce.TopKeywords(mapreduce.Reduce(keywordMaps), 25)
	}
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
