// Package models defines shared data structures for the analysis pipeline.
package models

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrWeightsSum          = errors.New("duplicate_weight and quality_weight must sum to 1.0")
	ErrSimilarityThreshold = errors.New("similarity_threshold must be in [0.0, 1.0]")
	ErrDuplicateThreshold  = errors.New("duplicate_threshold must be in [0.0, 100.0]")
	ErrInvalidWorkers      = errors.New("max_workers must be at least 1")
	ErrInvalidTimeout      = errors.New("request_timeout_secs must be at least 1")
)

// ScorerConfig configures the external suggestive-language scorer.
// The API key is read from the environment, never from the file.
type ScorerConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// Config holds all runtime knobs for a batch analysis.
// It is passed explicitly into the batch entry point; nothing reads
// thresholds from ambient global state.
type Config struct {
	// SimilarityThreshold is the pairwise cosine cutoff above which two
	// paragraphs from different URLs count as duplicates.
	SimilarityThreshold float64 `yaml:"similarity_threshold"`

	// DuplicateThreshold is the duplicate-rate alarm level in percent.
	DuplicateThreshold float64 `yaml:"duplicate_threshold"`

	// Scoring weights. Must sum to 1.
	DuplicateWeight float64 `yaml:"duplicate_weight"`
	QualityWeight   float64 `yaml:"quality_weight"`

	// CountIntraURL counts near-identical paragraphs within the same
	// document toward that document's own duplicate rate. Off by default:
	// the signal targets boilerplate shared across pages.
	CountIntraURL bool `yaml:"count_intra_url"`

	MaxWorkers         int `yaml:"max_workers"`
	RequestTimeoutSecs int `yaml:"request_timeout_secs"`

	Scorer ScorerConfig `yaml:"scorer"`
}

// DefaultConfig returns a config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: 0.85,
		DuplicateThreshold:  15.0,
		DuplicateWeight:     0.7,
		QualityWeight:       0.3,
		MaxWorkers:          4,
		RequestTimeoutSecs:  15,
		Scorer: ScorerConfig{
			APIKeyEnv:   "QUALITY_SCORER_API_KEY",
			TimeoutSecs: 30,
		},
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration before a batch runs. A batch must
// never start with an invalid config.
func (c Config) Validate() error {
	if math.Abs(c.DuplicateWeight+c.QualityWeight-1.0) > 1e-9 {
		return fmt.Errorf("%w: got %.3f + %.3f", ErrWeightsSum, c.DuplicateWeight, c.QualityWeight)
	}
	if c.SimilarityThreshold < 0.0 || c.SimilarityThreshold > 1.0 {
		return fmt.Errorf("%w: got %.3f", ErrSimilarityThreshold, c.SimilarityThreshold)
	}
	if c.DuplicateThreshold < 0.0 || c.DuplicateThreshold > 100.0 {
		return fmt.Errorf("%w: got %.1f", ErrDuplicateThreshold, c.DuplicateThreshold)
	}
	if c.MaxWorkers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.MaxWorkers)
	}
	if c.RequestTimeoutSecs < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTimeout, c.RequestTimeoutSecs)
	}
	return nil
}

// RequestTimeout returns the collaborator-facing timeout as a duration.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSecs) * time.Second
}
