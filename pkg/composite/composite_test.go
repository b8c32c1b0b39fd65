package composite

import (
	"reflect"
	"testing"

	"github.com/jollyroger89816/content-analysis/models"
)

func testConfig() models.Config {
	return models.DefaultConfig()
}

func report(url string, rate float64) models.DuplicateReport {
	return models.DuplicateReport{URL: url, TotalParagraphs: 10, DuplicateRate: rate}
}

func signal(raw int) models.QualitySignal {
	return models.QualitySignal{
		HasImplicitLanguage: raw > 0,
		RawScore:            raw,
		Tier:                models.TierForScore(raw),
		Source:              models.ScorerSourceRules,
	}
}

func TestCompose_WeightedFormula(t *testing.T) {
	// rawScore 7, duplicateRate 0, weights 0.7/0.3:
	// 0.7*100 + 0.3*30 = 79 -> good.
	result := Compose(report("https://a.example", 0), signal(7), testConfig())

	if result.SEOScore != 79 {
		t.Errorf("seo score = %v, want 79", result.SEOScore)
	}
	if result.Grade != models.GradeGood {
		t.Errorf("grade = %q, want %q", result.Grade, models.GradeGood)
	}
}

func TestCompose_PerfectPage(t *testing.T) {
	result := Compose(report("https://a.example", 0), signal(0), testConfig())
	if result.SEOScore != 100 {
		t.Errorf("seo score = %v, want 100", result.SEOScore)
	}
	if result.Grade != models.GradeExcellent {
		t.Errorf("grade = %q, want %q", result.Grade, models.GradeExcellent)
	}
}

func TestCompose_ScoreClampedAtZero(t *testing.T) {
	result := Compose(report("https://a.example", 100), signal(10), testConfig())
	if result.SEOScore != 0 {
		t.Errorf("seo score = %v, want 0", result.SEOScore)
	}
	if result.Grade != models.GradeVeryPoor {
		t.Errorf("grade = %q, want %q", result.Grade, models.GradeVeryPoor)
	}
}

func TestGradeBoundariesInclusive(t *testing.T) {
	cases := []struct {
		score float64
		want  models.Grade
	}{
		{85, models.GradeExcellent},
		{84.999, models.GradeGood},
		{70, models.GradeGood},
		{69.999, models.GradePoor},
		{50, models.GradePoor},
		{49.999, models.GradeVeryPoor},
		{0, models.GradeVeryPoor},
		{100, models.GradeExcellent},
	}
	for _, tc := range cases {
		if got := models.GradeForScore(tc.score); got != tc.want {
			t.Errorf("GradeForScore(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestCompose_MonotoneInDuplicateRate(t *testing.T) {
	cfg := testConfig()
	prev := Compose(report("u", 0), signal(3), cfg).SEOScore
	for rate := 5.0; rate <= 100; rate += 5 {
		cur := Compose(report("u", rate), signal(3), cfg).SEOScore
		if cur > prev {
			t.Fatalf("seo score increased from %v to %v as duplicate rate rose to %v", prev, cur, rate)
		}
		prev = cur
	}
}

func TestCompose_MonotoneInRawScore(t *testing.T) {
	cfg := testConfig()
	prev := Compose(report("u", 20), signal(0), cfg).SEOScore
	for raw := 1; raw <= 10; raw++ {
		cur := Compose(report("u", 20), signal(raw), cfg).SEOScore
		if cur > prev {
			t.Fatalf("seo score increased from %v to %v as raw score rose to %d", prev, cur, raw)
		}
		prev = cur
	}
}

func TestCompose_RecommendationsDeterministic(t *testing.T) {
	cfg := testConfig()
	first := Compose(report("u", 40), signal(7), cfg)
	second := Compose(report("u", 40), signal(7), cfg)
	if !reflect.DeepEqual(first.Recommendations, second.Recommendations) {
		t.Errorf("recommendations not stable: %v vs %v", first.Recommendations, second.Recommendations)
	}
	if len(first.Recommendations) != 3 {
		t.Errorf("recommendation count = %d, want 3", len(first.Recommendations))
	}
}

func TestCompose_DuplicateBandEscalation(t *testing.T) {
	cfg := testConfig() // duplicate threshold 15

	high := Compose(report("u", 20), signal(0), cfg).Recommendations
	excessive := Compose(report("u", 40), signal(0), cfg).Recommendations
	clean := Compose(report("u", 0), signal(0), cfg).Recommendations

	if high[2] == excessive[2] {
		t.Errorf("expected escalated advice above twice the threshold, got %q twice", high[2])
	}
	if clean[2] != "content originality is good" {
		t.Errorf("clean page advice = %q", clean[2])
	}
}
