package robots

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Settings controls generated robots.txt output.
type Settings struct {
	Enabled         bool   `json:"enabled"`
	IncludeSitemap  bool   `json:"include_sitemap"`
	BlockAICrawlers bool   `json:"block_ai_crawlers"`
	CustomRules     string `json:"custom_rules,omitempty"`
}

// DefaultSettings returns the standard robots settings.
func DefaultSettings() Settings {
	return Settings{
		Enabled:        true,
		IncludeSitemap: true,
	}
}

// aiCrawlers are the user agents blocked when BlockAICrawlers is set.
var aiCrawlers = []string{
	"GPTBot",
	"ChatGPT-User",
	"Claude-Web",
	"CCBot",
	"anthropic-ai",
	"Google-Extended",
	"Amazonbot",
	"Bytespider",
	"FacebookBot",
}

// AICrawlers returns the blockable AI crawler user agents.
func AICrawlers() []string {
	out := make([]string, len(aiCrawlers))
	copy(out, aiCrawlers)
	return out
}

// Bot is a known crawler user agent.
type Bot struct {
	UserAgent string `json:"user_agent"`
	Name      string `json:"name"`
}

// CommonBots returns the catalog of well-known crawler user agents.
func CommonBots() []Bot {
	return []Bot{
		{"*", "All robots"},
		{"Googlebot", "Google"},
		{"Googlebot-Image", "Google Images"},
		{"Googlebot-News", "Google News"},
		{"Googlebot-Video", "Google Video"},
		{"Bingbot", "Bing"},
		{"Slurp", "Yahoo"},
		{"DuckDuckBot", "DuckDuckGo"},
		{"Baiduspider", "Baidu"},
		{"YandexBot", "Yandex"},
		{"facebookexternalhit", "Facebook"},
		{"Twitterbot", "Twitter"},
		{"LinkedInBot", "LinkedIn"},
		{"GPTBot", "OpenAI GPT"},
		{"ChatGPT-User", "ChatGPT"},
		{"Claude-Web", "Anthropic Claude"},
		{"CCBot", "Common Crawl"},
		{"Amazonbot", "Amazon"},
	}
}

// Engine generates and inspects robots.txt content for one site.
type Engine struct {
	siteURL  string
	settings Settings
	logger   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine for the given site URL.
func NewEngine(siteURL string, settings Settings, opts ...Option) *Engine {
	e := &Engine{
		siteURL:  strings.TrimRight(siteURL, "/"),
		settings: settings,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate renders the site's robots.txt. An empty string is returned when
// generation is disabled.
func (e *Engine) Generate() string {
	if !e.settings.Enabled {
		return ""
	}

	doc := DefaultDocument()

	if e.settings.BlockAICrawlers {
		for _, crawler := range aiCrawlers {
			doc.AddRule(NewRule(crawler).DisallowPath("/"))
		}
	}

	if e.settings.IncludeSitemap {
		doc.AddSitemap(e.siteURL + "/sitemap_index.xml")
	}

	if e.settings.CustomRules != "" {
		doc.CustomContent = e.settings.CustomRules
	}

	e.logger.Debug("robots.txt generated",
		zap.Int("blocks", len(doc.Rules)),
		zap.Bool("ai_blocked", e.settings.BlockAICrawlers))

	return doc.String()
}

// GenerateCustom renders a caller-supplied document.
func (e *Engine) GenerateCustom(doc *Document) string {
	return doc.String()
}

// ValidationResult reports problems found in a robots.txt document.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Validate parses the content and reports structural problems. An empty
// block list and allow/disallow conflicts are warnings; empty user agents
// and non-http(s) sitemap URLs are errors.
func (e *Engine) Validate(content string) ValidationResult {
	var errors, warnings []string

	doc := Parse(content)

	if len(doc.Rules) == 0 {
		warnings = append(warnings, "No user-agent rules defined")
	}

	for _, rule := range doc.Rules {
		if rule.UserAgent == "" {
			errors = append(errors, "Empty user-agent found")
		}

		// Some crawlers apply allow-overrides-disallow, so a path in both
		// lists is suspicious but not fatal.
		for _, allow := range rule.Allow {
			for _, disallow := range rule.Disallow {
				if allow == disallow {
					warnings = append(warnings, fmt.Sprintf(
						"Conflicting rules for path '%s' in %s", allow, rule.UserAgent))
				}
			}
		}
	}

	for _, sitemap := range doc.Sitemaps {
		if !strings.HasPrefix(sitemap, "http://") && !strings.HasPrefix(sitemap, "https://") {
			errors = append(errors, fmt.Sprintf("Invalid sitemap URL: %s", sitemap))
		}
	}

	return ValidationResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

// IsAllowed parses the content and checks the path for the user agent.
func (e *Engine) IsAllowed(content, path, userAgent string) bool {
	return Parse(content).IsAllowed(path, userAgent)
}

// SitemapURL returns the first sitemap listed in the content.
func (e *Engine) SitemapURL(content string) (string, bool) {
	doc := Parse(content)
	if len(doc.Sitemaps) == 0 {
		return "", false
	}
	return doc.Sitemaps[0], true
}

// MetaTag renders a robots meta tag for the given directives.
func (e *Engine) MetaTag(index, follow bool) string {
	directives := make([]string, 0, 2)
	if index {
		directives = append(directives, "index")
	} else {
		directives = append(directives, "noindex")
	}
	if follow {
		directives = append(directives, "follow")
	} else {
		directives = append(directives, "nofollow")
	}

	return fmt.Sprintf("<meta name=\"robots\" content=\"%s\">", strings.Join(directives, ", "))
}

// CrawlLimiter builds a rate limiter honoring the crawl delay that applies
// to the user agent. Agents without a delay get an unlimited limiter.
func CrawlLimiter(doc *Document, userAgent string) *rate.Limiter {
	delay := doc.CrawlDelay
	if rule := doc.blockFor(userAgent); rule != nil && rule.CrawlDelay > 0 {
		delay = rule.CrawlDelay
	}

	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(time.Duration(delay)*time.Second), 1)
}
