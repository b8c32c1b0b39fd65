package quality

import (
	"context"
	"fmt"
	"strings"

	"github.com/jollyroger89816/content-analysis/models"
)

// hedgeKeywords signal suggestive, non-committal language: phrasing that
// implies an answer without stating one.
var hedgeKeywords = []string{
	"might", "maybe", "perhaps", "possibly", "probably", "presumably",
	"in theory", "to some extent", "generally speaking", "it seems",
	"it is said", "some say", "arguably", "cannot be ruled out",
	"可能", "也许", "大概", "估计", "理论上", "某种程度上",
	"一般来说", "通常", "不排除", "有可能",
}

// strongKeywords signal aggressive suggestive claims.
var strongKeywords = []string{
	"strongly recommend", "you must", "guaranteed", "definitely",
	"without a doubt", "absolutely certain",
	"强烈建议", "明确表示", "务必", "必须",
}

// RuleScorer is the deterministic keyword fallback. Pure function of the
// text against a fixed pattern set; no network, always succeeds.
type RuleScorer struct{}

// NewRuleScorer returns the rule engine scorer.
func NewRuleScorer() *RuleScorer { return &RuleScorer{} }

// Score counts hedge and strong-claim occurrences and maps them onto the
// 0-10 scale: any strong claim scores 7, more than three hedges 5, any
// hedge 3, otherwise 0.
func (s *RuleScorer) Score(_ context.Context, _ string, paragraphs []string) (models.QualitySignal, error) {
	text := strings.ToLower(strings.Join(paragraphs, " "))

	hedges := 0
	for _, kw := range hedgeKeywords {
		hedges += strings.Count(text, kw)
	}
	strong := 0
	for _, kw := range strongKeywords {
		strong += strings.Count(text, kw)
	}

	var raw int
	switch {
	case strong > 0:
		raw = 7
	case hedges > 3:
		raw = 5
	case hedges > 0:
		raw = 3
	default:
		raw = 0
	}

	return models.QualitySignal{
		HasImplicitLanguage: raw > 0,
		RawScore:            raw,
		Tier:                models.TierForScore(raw),
		Source:              models.ScorerSourceRules,
		Detail:              fmt.Sprintf("rule scan: %d hedge occurrences, %d strong claims", hedges, strong),
	}, nil
}
