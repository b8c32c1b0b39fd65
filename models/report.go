package models

import "time"

// Tier buckets the 0-10 suggestiveness score.
type Tier string

const (
	TierNone     Tier = "none"
	TierMild     Tier = "mild"
	TierModerate Tier = "moderate"
	TierStrong   Tier = "strong"
)

// TierForScore maps a raw 0-10 suggestiveness score to its tier.
func TierForScore(raw int) Tier {
	switch {
	case raw >= 7:
		return TierStrong
	case raw >= 5:
		return TierModerate
	case raw >= 3:
		return TierMild
	default:
		return TierNone
	}
}

// Quality signal provenance.
const (
	ScorerSourceExternal = "external"
	ScorerSourceRules    = "rules"
)

// QualitySignal is the normalized suggestive-language verdict for one URL.
// The external scorer and the rule fallback both produce exactly this shape
// so downstream scoring is agnostic to the source.
type QualitySignal struct {
	HasImplicitLanguage bool   `json:"has_implicit_language" yaml:"has_implicit_language"`
	RawScore            int    `json:"raw_score" yaml:"raw_score"`
	Tier                Tier   `json:"tier" yaml:"tier"`
	Source              string `json:"source" yaml:"source"`
	Detail              string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// DuplicateReport summarizes cross-URL duplication for one URL.
type DuplicateReport struct {
	URL              string  `json:"url" yaml:"url"`
	TotalParagraphs  int     `json:"total_paragraphs" yaml:"total_paragraphs"`
	DuplicateIndexes []int   `json:"duplicate_indexes" yaml:"duplicate_indexes"`
	DuplicateRate    float64 `json:"duplicate_rate" yaml:"duplicate_rate"`
}

// Grade is the 4-tier quality grade derived from the composite score.
type Grade string

const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradePoor      Grade = "poor"
	GradeVeryPoor  Grade = "very_poor"
)

// GradeForScore maps a 0-100 composite score to its grade. Boundary
// values belong to the higher tier.
func GradeForScore(score float64) Grade {
	switch {
	case score >= 85:
		return GradeExcellent
	case score >= 70:
		return GradeGood
	case score >= 50:
		return GradePoor
	default:
		return GradeVeryPoor
	}
}

// CompositeResult is the final per-URL verdict. Created once per URL per
// batch run and never mutated afterward.
type CompositeResult struct {
	URL             string          `json:"url" yaml:"url"`
	SEOScore        float64         `json:"seo_score" yaml:"seo_score"`
	Grade           Grade           `json:"grade" yaml:"grade"`
	Duplicate       DuplicateReport `json:"duplicate" yaml:"duplicate"`
	Quality         QualitySignal   `json:"quality" yaml:"quality"`
	Recommendations []string        `json:"recommendations" yaml:"recommendations"`
	AnalyzedAt      time.Time       `json:"analyzed_at" yaml:"analyzed_at"`
}

// ErrorRecord describes a per-URL failure with a human-readable cause.
type ErrorRecord struct {
	URL       string `json:"url" yaml:"url"`
	ErrorType string `json:"error_type" yaml:"error_type"`
	Message   string `json:"message" yaml:"message"`
}

// URLResult is either a composite result or an error record, never both.
type URLResult struct {
	Result *CompositeResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error  *ErrorRecord     `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchStats aggregates a whole batch run.
type BatchStats struct {
	TotalURLs          int           `json:"total_urls" yaml:"total_urls"`
	SucceededURLs      int           `json:"succeeded_urls" yaml:"succeeded_urls"`
	FailedURLs         int           `json:"failed_urls" yaml:"failed_urls"`
	HighDuplicateCount int           `json:"high_duplicate_count" yaml:"high_duplicate_count"`
	AvgDuplicateRate   float64       `json:"avg_duplicate_rate" yaml:"avg_duplicate_rate"`
	AvgSEOScore        float64       `json:"avg_seo_score" yaml:"avg_seo_score"`
	GradeDistribution  map[Grade]int `json:"grade_distribution" yaml:"grade_distribution"`
	TopKeywords        []string      `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}

// BatchOutput is the full result of one analyzeBatch invocation: exactly
// one entry per input URL plus the aggregate stats.
type BatchOutput struct {
	Results map[string]URLResult `json:"results" yaml:"results"`
	Stats   BatchStats           `json:"stats" yaml:"stats"`
}
