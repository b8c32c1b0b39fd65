package quality

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jollyroger89816/content-analysis/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRuleScorer_NoSuggestiveLanguage(t *testing.T) {
	signal, err := NewRuleScorer().Score(context.Background(), "https://a.example", []string{
		"The filing deadline is March 15.",
		"The fee is 40 dollars per application.",
	})
	if err != nil {
		t.Fatalf("Score() failed: %v", err)
	}
	if signal.RawScore != 0 {
		t.Errorf("raw score = %d, want 0", signal.RawScore)
	}
	if signal.Tier != models.TierNone {
		t.Errorf("tier = %q, want %q", signal.Tier, models.TierNone)
	}
	if signal.HasImplicitLanguage {
		t.Error("HasImplicitLanguage = true, want false")
	}
	if signal.Source != models.ScorerSourceRules {
		t.Errorf("source = %q, want %q", signal.Source, models.ScorerSourceRules)
	}
}

func TestRuleScorer_Tiers(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		wantRaw  int
		wantTier models.Tier
	}{
		{
			name:     "mild single hedge",
			text:     "This might improve your ranking.",
			wantRaw:  3,
			wantTier: models.TierMild,
		},
		{
			name:     "moderate many hedges",
			text:     "It might work. Maybe it helps. Possibly faster. Perhaps cheaper.",
			wantRaw:  5,
			wantTier: models.TierModerate,
		},
		{
			name:     "strong claim",
			text:     "Results are guaranteed, you must enroll today.",
			wantRaw:  7,
			wantTier: models.TierStrong,
		},
		{
			name:     "strong chinese claim",
			text:     "强烈建议立即购买本课程",
			wantRaw:  7,
			wantTier: models.TierStrong,
		},
	}

	scorer := NewRuleScorer()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			signal, err := scorer.Score(context.Background(), "https://a.example", []string{tc.text})
			if err != nil {
				t.Fatalf("Score() failed: %v", err)
			}
			if signal.RawScore != tc.wantRaw {
				t.Errorf("raw score = %d, want %d", signal.RawScore, tc.wantRaw)
			}
			if signal.Tier != tc.wantTier {
				t.Errorf("tier = %q, want %q", signal.Tier, tc.wantTier)
			}
		})
	}
}

func TestRuleScorer_Deterministic(t *testing.T) {
	scorer := NewRuleScorer()
	paragraphs := []string{"Maybe this works, maybe it does not."}
	first, _ := scorer.Score(context.Background(), "u", paragraphs)
	second, _ := scorer.Score(context.Background(), "u", paragraphs)
	if first != second {
		t.Errorf("rule scorer not deterministic: %+v vs %+v", first, second)
	}
}

type failingScorer struct{}

func (failingScorer) Score(context.Context, string, []string) (models.QualitySignal, error) {
	return models.QualitySignal{}, ErrScorerUnavailable
}

type fixedScorer struct{ signal models.QualitySignal }

func (s fixedScorer) Score(context.Context, string, []string) (models.QualitySignal, error) {
	return s.signal, nil
}

func TestFallback_UsesPrimaryWhenHealthy(t *testing.T) {
	primary := fixedScorer{signal: models.QualitySignal{RawScore: 5, Tier: models.TierModerate, Source: models.ScorerSourceExternal}}
	fb := NewFallback(primary, NewRuleScorer(), discardLogger())

	signal, err := fb.Score(context.Background(), "https://a.example", []string{"text"})
	if err != nil {
		t.Fatalf("Score() failed: %v", err)
	}
	if signal.Source != models.ScorerSourceExternal {
		t.Errorf("source = %q, want %q", signal.Source, models.ScorerSourceExternal)
	}
}

func TestFallback_RecoversFromUnavailable(t *testing.T) {
	fb := NewFallback(failingScorer{}, NewRuleScorer(), discardLogger())

	signal, err := fb.Score(context.Background(), "https://a.example", []string{"plain factual text"})
	if err != nil {
		t.Fatalf("Score() surfaced scorer failure: %v", err)
	}
	if signal.Source != models.ScorerSourceRules {
		t.Errorf("source = %q, want %q", signal.Source, models.ScorerSourceRules)
	}
}

func TestFallback_NilPrimary(t *testing.T) {
	fb := NewFallback(nil, NewRuleScorer(), discardLogger())
	signal, err := fb.Score(context.Background(), "https://a.example", []string{"text"})
	if err != nil {
		t.Fatalf("Score() failed: %v", err)
	}
	if signal.Source != models.ScorerSourceRules {
		t.Errorf("source = %q, want %q", signal.Source, models.ScorerSourceRules)
	}
}

func TestParseModelReply(t *testing.T) {
	cases := []struct {
		reply    string
		wantRaw  int
		wantTier models.Tier
		wantErr  bool
	}{
		{reply: "score=7 level=strong", wantRaw: 7, wantTier: models.TierStrong},
		{reply: "Score: 3, Level: mild", wantRaw: 3, wantTier: models.TierMild},
		{reply: "score=0 level=none", wantRaw: 0, wantTier: models.TierNone},
		{reply: "level=moderate", wantRaw: 5, wantTier: models.TierModerate},
		{reply: "score=42", wantRaw: 10, wantTier: models.TierStrong},
		{reply: "no idea what you mean", wantErr: true},
	}

	for _, tc := range cases {
		signal, err := parseModelReply(tc.reply)
		if tc.wantErr {
			if !errors.Is(err, ErrScorerUnavailable) {
				t.Errorf("parseModelReply(%q) error = %v, want ErrScorerUnavailable", tc.reply, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseModelReply(%q) failed: %v", tc.reply, err)
			continue
		}
		if signal.RawScore != tc.wantRaw {
			t.Errorf("parseModelReply(%q) raw = %d, want %d", tc.reply, signal.RawScore, tc.wantRaw)
		}
		if signal.Tier != tc.wantTier {
			t.Errorf("parseModelReply(%q) tier = %q, want %q", tc.reply, signal.Tier, tc.wantTier)
		}
	}
}
