package quality

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jollyroger89816/content-analysis/models"
)

const scorePrompt = `Analyze the following web page paragraphs for suggestive or manipulative language: phrasing that implies an answer or pushes a conclusion without stating it plainly. Rate the overall degree on a 0-10 scale (0 = none, 3 = mild, 5 = moderate, 7+ = strong).

Respond with exactly one line in this format:
score=<0-10> level=<none|mild|moderate|strong>

Paragraphs:
%s`

var (
	scorePattern = regexp.MustCompile(`score\s*[=:]\s*(\d+)`)
	levelPattern = regexp.MustCompile(`level\s*[=:]\s*(none|mild|moderate|strong)`)
)

// ExternalScorer calls an OpenAI-compatible chat completions endpoint.
// Every failure mode (transport, auth, malformed response) is reported
// as ErrScorerUnavailable so the fallback policy can recover.
type ExternalScorer struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewExternalScorer builds the model-backed scorer from config. The API
// key comes from the environment variable named in the config.
func NewExternalScorer(cfg models.ScorerConfig) (*ExternalScorer, error) {
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("missing API key in env %s", cfg.APIKeyEnv)
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &ExternalScorer{
		baseURL: baseURL,
		apiKey:  key,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (s *ExternalScorer) Score(ctx context.Context, url string, paragraphs []string) (models.QualitySignal, error) {
	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	type reqBody struct {
		Model    string    `json:"model"`
		Messages []message `json:"messages"`
	}

	prompt := fmt.Sprintf(scorePrompt, strings.Join(paragraphs, "\n"))
	data, err := json.Marshal(reqBody{
		Model:    s.model,
		Messages: []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return models.QualitySignal{}, fmt.Errorf("%w: marshal request: %v", ErrScorerUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return models.QualitySignal{}, fmt.Errorf("%w: %v", ErrScorerUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return models.QualitySignal{}, fmt.Errorf("%w: %v", ErrScorerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return models.QualitySignal{}, fmt.Errorf("%w: %s", ErrScorerUnavailable, resp.Status)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.QualitySignal{}, fmt.Errorf("%w: read response: %v", ErrScorerUnavailable, err)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(payload, &out); err != nil || len(out.Choices) == 0 {
		return models.QualitySignal{}, fmt.Errorf("%w: malformed response", ErrScorerUnavailable)
	}

	return parseModelReply(out.Choices[0].Message.Content)
}

// parseModelReply extracts the score from the model's one-line verdict.
// The level keyword is a fallback when the numeric score is missing.
func parseModelReply(reply string) (models.QualitySignal, error) {
	lower := strings.ToLower(reply)

	raw := -1
	if m := scorePattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			raw = v
		}
	}
	if raw < 0 {
		if m := levelPattern.FindStringSubmatch(lower); m != nil {
			switch m[1] {
			case "strong":
				raw = 7
			case "moderate":
				raw = 5
			case "mild":
				raw = 3
			case "none":
				raw = 0
			}
		}
	}
	if raw < 0 {
		return models.QualitySignal{}, fmt.Errorf("%w: unparseable reply %q", ErrScorerUnavailable, reply)
	}
	if raw > 10 {
		raw = 10
	}

	return models.QualitySignal{
		HasImplicitLanguage: raw > 0,
		RawScore:            raw,
		Tier:                models.TierForScore(raw),
		Source:              models.ScorerSourceExternal,
		Detail:              strings.TrimSpace(reply),
	}, nil
}
