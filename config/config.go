// Package config assembles engine settings from the environment.
//
// Settings are loaded once at startup and passed into engine constructors;
// the engines themselves never read the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/seo-optimizer/core/analyzer"
	"github.com/seo-optimizer/core/redirect"
	"github.com/seo-optimizer/core/robots"
)

// Config holds everything the engines need at construction time.
type Config struct {
	Environment string
	SiteURL     string
	DataDir     string

	Analysis analyzer.Settings
	Redirect redirect.Settings
	Robots   robots.Settings
}

// Load reads configuration from the environment, after loading a .env file
// if one is present. Unset or unparseable variables keep their defaults.
func Load() *Config {
	_ = godotenv.Load()

	analysis := analyzer.DefaultSettings()
	analysis.MinWordCount = getEnvInt("SEO_MIN_WORD_COUNT", analysis.MinWordCount)
	analysis.TargetKeywordDensity = getEnvFloat("SEO_TARGET_DENSITY", analysis.TargetKeywordDensity)
	analysis.MaxKeywordDensity = getEnvFloat("SEO_MAX_DENSITY", analysis.MaxKeywordDensity)

	redirects := redirect.DefaultSettings()
	redirects.Enabled = getEnvBool("REDIRECTS_ENABLED", redirects.Enabled)
	redirects.Log404s = getEnvBool("REDIRECT_LOG_404S", redirects.Log404s)
	redirects.PassQueryString = getEnvBool("REDIRECT_PASS_QUERY", redirects.PassQueryString)
	redirects.CaseInsensitive = getEnvBool("REDIRECT_CASE_INSENSITIVE", redirects.CaseInsensitive)
	redirects.MaxRedirectChain = getEnvInt("REDIRECT_MAX_CHAIN", redirects.MaxRedirectChain)

	robotsSettings := robots.DefaultSettings()
	robotsSettings.Enabled = getEnvBool("ROBOTS_ENABLED", robotsSettings.Enabled)
	robotsSettings.IncludeSitemap = getEnvBool("ROBOTS_INCLUDE_SITEMAP", robotsSettings.IncludeSitemap)
	robotsSettings.BlockAICrawlers = getEnvBool("ROBOTS_BLOCK_AI_CRAWLERS", robotsSettings.BlockAICrawlers)

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		SiteURL:     getEnv("SITE_URL", "http://localhost:8080"),
		DataDir:     getEnv("DATA_DIR", "./data"),
		Analysis:    analysis,
		Redirect:    redirects,
		Robots:      robotsSettings,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
