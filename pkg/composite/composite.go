// Package composite fuses the duplicate-rate and quality signals into a
// single 0-100 score per URL, grades it and derives recommendations.
package composite

import (
	"fmt"
	"math"
	"time"

	"github.com/jollyroger89816/content-analysis/models"
)

// Compose computes the weighted composite result for one URL:
//
//	duplicateScore = max(0, 100 - duplicateRate)
//	qualityScore   = max(0, 100 - rawScore*10)
//	seoScore       = duplicateWeight*duplicateScore + qualityWeight*qualityScore
//
// Deterministic given its inputs; the caller owns config validation.
func Compose(dup models.DuplicateReport, quality models.QualitySignal, cfg models.Config) models.CompositeResult {
	duplicateScore := math.Max(0, 100-dup.DuplicateRate)
	qualityScore := math.Max(0, 100-float64(quality.RawScore)*10)
	seoScore := cfg.DuplicateWeight*duplicateScore + cfg.QualityWeight*qualityScore
	seoScore = math.Round(seoScore*100) / 100

	return models.CompositeResult{
		URL:             dup.URL,
		SEOScore:        seoScore,
		Grade:           models.GradeForScore(seoScore),
		Duplicate:       dup,
		Quality:         quality,
		Recommendations: recommendations(dup, quality, seoScore, cfg),
		AnalyzedAt:      time.Now().UTC(),
	}
}

// recommendations derives an ordered, deterministic advice list: overall
// band first, then the suggestive-language band, then the duplication band.
func recommendations(dup models.DuplicateReport, quality models.QualitySignal, seoScore float64, cfg models.Config) []string {
	recs := make([]string, 0, 3)

	switch {
	case seoScore >= 85:
		recs = append(recs, "page quality is excellent, keep it up")
	case seoScore >= 70:
		recs = append(recs, "page quality is good with room for improvement")
	default:
		recs = append(recs, "page quality needs optimization")
	}

	switch quality.Tier {
	case models.TierStrong:
		recs = append(recs, "strong suggestive language detected, rephrase with explicit statements")
	case models.TierModerate:
		recs = append(recs, "moderate suggestive language detected, consider rewording")
	case models.TierMild:
		recs = append(recs, "mild suggestive language detected, minor wording improvements possible")
	default:
		recs = append(recs, "no suggestive language detected, wording is explicit")
	}

	switch {
	case dup.DuplicateRate > cfg.DuplicateThreshold*2:
		recs = append(recs, fmt.Sprintf("duplicate rate is excessive (%.1f%%), rewrite the duplicated paragraphs", dup.DuplicateRate))
	case dup.DuplicateRate > cfg.DuplicateThreshold:
		recs = append(recs, fmt.Sprintf("duplicate rate is high (%.1f%%), reduce duplicate paragraphs", dup.DuplicateRate))
	case dup.DuplicateRate > 0:
		recs = append(recs, fmt.Sprintf("duplicate rate is within the acceptable range (%.1f%%)", dup.DuplicateRate))
	default:
		recs = append(recs, "content originality is good")
	}

	return recs
}
