package models

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() failed: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{
			name:   "weights not summing to 1",
			mutate: func(c *Config) { c.QualityWeight = 0.5 },
			want:   ErrWeightsSum,
		},
		{
			name:   "similarity threshold above 1",
			mutate: func(c *Config) { c.SimilarityThreshold = 1.5 },
			want:   ErrSimilarityThreshold,
		},
		{
			name:   "negative similarity threshold",
			mutate: func(c *Config) { c.SimilarityThreshold = -0.1 },
			want:   ErrSimilarityThreshold,
		},
		{
			name:   "duplicate threshold above 100",
			mutate: func(c *Config) { c.DuplicateThreshold = 120 },
			want:   ErrDuplicateThreshold,
		},
		{
			name:   "zero workers",
			mutate: func(c *Config) { c.MaxWorkers = 0 },
			want:   ErrInvalidWorkers,
		},
		{
			name:   "zero timeout",
			mutate: func(c *Config) { c.RequestTimeoutSecs = 0 },
			want:   ErrInvalidTimeout,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("similarity_threshold: 0.65\nmax_workers: 8\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.SimilarityThreshold != 0.65 {
		t.Errorf("similarity threshold = %v, want 0.65", cfg.SimilarityThreshold)
	}
	if cfg.MaxWorkers != 8 {
		t.Errorf("max workers = %d, want 8", cfg.MaxWorkers)
	}
	// Untouched fields keep their defaults.
	if cfg.DuplicateWeight != 0.7 {
		t.Errorf("duplicate weight = %v, want default 0.7", cfg.DuplicateWeight)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadConfig() with missing file succeeded, want error")
	}
}

func TestTierForScore(t *testing.T) {
	cases := []struct {
		raw  int
		want Tier
	}{
		{0, TierNone}, {2, TierNone}, {3, TierMild}, {4, TierMild},
		{5, TierModerate}, {6, TierModerate}, {7, TierStrong}, {10, TierStrong},
	}
	for _, tc := range cases {
		if got := TierForScore(tc.raw); got != tc.want {
			t.Errorf("TierForScore(%d) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
