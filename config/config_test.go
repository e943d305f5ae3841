package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Environment != "development" {
		t.Errorf("Expected development environment, got %q", cfg.Environment)
	}
	if cfg.Analysis.MinWordCount != 300 {
		t.Errorf("Expected min word count 300, got %d", cfg.Analysis.MinWordCount)
	}
	if cfg.Analysis.TargetKeywordDensity != 2.0 || cfg.Analysis.MaxKeywordDensity != 3.0 {
		t.Errorf("Unexpected density defaults: %+v", cfg.Analysis)
	}
	if !cfg.Redirect.Enabled || !cfg.Redirect.Log404s || !cfg.Redirect.CaseInsensitive {
		t.Errorf("Unexpected redirect defaults: %+v", cfg.Redirect)
	}
	if cfg.Redirect.MaxRedirectChain != 10 {
		t.Errorf("Expected max chain 10, got %d", cfg.Redirect.MaxRedirectChain)
	}
	if !cfg.Robots.Enabled || !cfg.Robots.IncludeSitemap || cfg.Robots.BlockAICrawlers {
		t.Errorf("Unexpected robots defaults: %+v", cfg.Robots)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SEO_MIN_WORD_COUNT", "500")
	t.Setenv("REDIRECT_MAX_CHAIN", "3")
	t.Setenv("REDIRECT_CASE_INSENSITIVE", "false")
	t.Setenv("ROBOTS_BLOCK_AI_CRAWLERS", "true")

	cfg := Load()

	if cfg.Environment != "production" {
		t.Errorf("Expected production environment, got %q", cfg.Environment)
	}
	if cfg.Analysis.MinWordCount != 500 {
		t.Errorf("Expected min word count 500, got %d", cfg.Analysis.MinWordCount)
	}
	if cfg.Redirect.MaxRedirectChain != 3 {
		t.Errorf("Expected max chain 3, got %d", cfg.Redirect.MaxRedirectChain)
	}
	if cfg.Redirect.CaseInsensitive {
		t.Error("Expected case-insensitive matching to be off")
	}
	if !cfg.Robots.BlockAICrawlers {
		t.Error("Expected AI crawler blocking to be on")
	}
}

func TestLoadIgnoresGarbage(t *testing.T) {
	t.Setenv("SEO_MIN_WORD_COUNT", "not-a-number")
	t.Setenv("REDIRECTS_ENABLED", "maybe")

	cfg := Load()

	if cfg.Analysis.MinWordCount != 300 {
		t.Errorf("Expected fallback to 300, got %d", cfg.Analysis.MinWordCount)
	}
	if !cfg.Redirect.Enabled {
		t.Error("Expected fallback to enabled")
	}
}
