package batch

import "github.com/jollyroger89816/content-analysis/models"

// Job is one URL handed to a phase-1 worker.
type Job struct {
	URL string
}

// Result is the phase-1 outcome for one URL: either the extracted and
// tokenized paragraphs plus the quality signal, or a failure.
type Result struct {
	URL        string
	Paragraphs []string
	Tokens     [][]string
	Quality    models.QualitySignal
	Error      error
	ErrorType  string
}

// Error type tags carried into the per-URL error records.
const (
	ErrorTypeFetch   = "fetch_error"
	ErrorTypeTimeout = "timeout"
)
