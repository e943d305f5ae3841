package robots

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestGenerate(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		e := NewEngine("https://example.com/", DefaultSettings())
		content := e.Generate()

		if !strings.Contains(content, "User-agent: *") {
			t.Error("Expected a blanket user-agent block")
		}
		if !strings.Contains(content, "Sitemap: https://example.com/sitemap_index.xml") {
			t.Error("Expected a sitemap reference without a doubled slash")
		}
		if !strings.Contains(content, "Disallow: /wp-admin/") {
			t.Error("Expected the stock disallow list")
		}
		if strings.Contains(content, "GPTBot") {
			t.Error("AI crawlers should not be blocked by default")
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		settings := DefaultSettings()
		settings.Enabled = false
		e := NewEngine("https://example.com", settings)

		if got := e.Generate(); got != "" {
			t.Errorf("Expected empty output while disabled, got %q", got)
		}
	})

	t.Run("NoSitemap", func(t *testing.T) {
		settings := DefaultSettings()
		settings.IncludeSitemap = false
		e := NewEngine("https://example.com", settings)

		if strings.Contains(e.Generate(), "Sitemap:") {
			t.Error("Expected no sitemap line")
		}
	})

	t.Run("BlockAICrawlers", func(t *testing.T) {
		settings := DefaultSettings()
		settings.BlockAICrawlers = true
		e := NewEngine("https://example.com", settings)
		content := e.Generate()

		for _, agent := range AICrawlers() {
			if !strings.Contains(content, "User-agent: "+agent) {
				t.Errorf("Expected a block for %s", agent)
			}
		}

		// Each AI block must be a full disallow.
		doc := Parse(content)
		if doc.IsAllowed("/page", "GPTBot") {
			t.Error("Expected GPTBot to be blocked everywhere")
		}
	})

	t.Run("CustomRules", func(t *testing.T) {
		settings := DefaultSettings()
		settings.CustomRules = "# maintained by hand"
		e := NewEngine("https://example.com", settings)

		if !strings.Contains(e.Generate(), "# maintained by hand") {
			t.Error("Expected custom rules to be appended")
		}
	})

	t.Run("GeneratedOutputParses", func(t *testing.T) {
		e := NewEngine("https://example.com", DefaultSettings())
		doc := Parse(e.Generate())

		if len(doc.Rules) != 1 || doc.Rules[0].UserAgent != "*" {
			t.Errorf("Unexpected parsed document: %+v", doc.Rules)
		}
		if len(doc.Sitemaps) != 1 {
			t.Errorf("Expected one sitemap, got %v", doc.Sitemaps)
		}
	})
}

func TestEngineIsAllowed(t *testing.T) {
	e := NewEngine("https://example.com", DefaultSettings())
	content := "User-agent: *\nDisallow: /admin/\nAllow: /"

	if !e.IsAllowed(content, "/page", "Googlebot") {
		t.Error("Expected /page to be allowed")
	}
	if e.IsAllowed(content, "/admin/settings", "Googlebot") {
		t.Error("Expected /admin/settings to be disallowed")
	}
}

func TestValidate(t *testing.T) {
	e := NewEngine("https://example.com", DefaultSettings())

	t.Run("Clean", func(t *testing.T) {
		result := e.Validate("User-agent: *\nDisallow: /admin/\nSitemap: https://example.com/s.xml")

		if !result.Valid || len(result.Errors) != 0 || len(result.Warnings) != 0 {
			t.Errorf("Expected a clean result, got %+v", result)
		}
	})

	t.Run("NoBlocksIsWarning", func(t *testing.T) {
		result := e.Validate("# nothing here")

		if !result.Valid {
			t.Error("A warning alone should not invalidate the document")
		}
		if len(result.Warnings) != 1 {
			t.Errorf("Expected one warning, got %v", result.Warnings)
		}
	})

	t.Run("ConflictIsWarning", func(t *testing.T) {
		result := e.Validate("User-agent: *\nAllow: /both\nDisallow: /both")

		if !result.Valid {
			t.Error("A conflict alone should not invalidate the document")
		}
		if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "/both") {
			t.Errorf("Expected a conflict warning, got %v", result.Warnings)
		}
	})

	t.Run("EmptyUserAgentIsError", func(t *testing.T) {
		result := e.Validate("User-agent:\nDisallow: /x")

		if result.Valid || len(result.Errors) != 1 {
			t.Errorf("Expected an empty user-agent error, got %+v", result)
		}
	})

	t.Run("BadSitemapIsError", func(t *testing.T) {
		result := e.Validate("User-agent: *\nDisallow: /x\nSitemap: ftp://example.com/s.xml")

		if result.Valid || len(result.Errors) != 1 {
			t.Errorf("Expected a sitemap error, got %+v", result)
		}
	})
}

func TestSitemapURL(t *testing.T) {
	e := NewEngine("https://example.com", DefaultSettings())

	url, ok := e.SitemapURL("Sitemap: https://example.com/a.xml\nSitemap: https://example.com/b.xml")
	if !ok || url != "https://example.com/a.xml" {
		t.Errorf("Expected the first sitemap, got %q (%v)", url, ok)
	}

	if _, ok := e.SitemapURL("User-agent: *"); ok {
		t.Error("Expected no sitemap")
	}
}

func TestMetaTag(t *testing.T) {
	e := NewEngine("https://example.com", DefaultSettings())

	tests := []struct {
		index, follow bool
		want          string
	}{
		{true, true, `<meta name="robots" content="index, follow">`},
		{true, false, `<meta name="robots" content="index, nofollow">`},
		{false, true, `<meta name="robots" content="noindex, follow">`},
		{false, false, `<meta name="robots" content="noindex, nofollow">`},
	}

	for _, tt := range tests {
		if got := e.MetaTag(tt.index, tt.follow); got != tt.want {
			t.Errorf("MetaTag(%v, %v) = %q, want %q", tt.index, tt.follow, got, tt.want)
		}
	}
}

func TestCrawlLimiter(t *testing.T) {
	t.Run("BlockDelay", func(t *testing.T) {
		doc := NewDocument()
		doc.AddRule(NewRule("Bingbot").WithCrawlDelay(2))

		limiter := CrawlLimiter(doc, "Bingbot")
		if limiter.Limit() != rate.Every(2*time.Second) {
			t.Errorf("Expected one request per 2s, got %v", limiter.Limit())
		}
	})

	t.Run("DocumentDelayFallback", func(t *testing.T) {
		doc := NewDocument()
		doc.CrawlDelay = 4
		doc.AddRule(NewRule("*"))

		limiter := CrawlLimiter(doc, "Googlebot")
		if limiter.Limit() != rate.Every(4*time.Second) {
			t.Errorf("Expected one request per 4s, got %v", limiter.Limit())
		}
	})

	t.Run("NoDelayIsUnlimited", func(t *testing.T) {
		doc := NewDocument()
		doc.AddRule(NewRule("*"))

		limiter := CrawlLimiter(doc, "*")
		if limiter.Limit() != rate.Inf {
			t.Errorf("Expected an unlimited limiter, got %v", limiter.Limit())
		}
	})
}

func TestCommonBots(t *testing.T) {
	bots := CommonBots()
	if len(bots) == 0 {
		t.Fatal("Expected a non-empty catalog")
	}

	found := false
	for _, bot := range bots {
		if bot.UserAgent == "Googlebot" {
			found = true
		}
	}
	if !found {
		t.Error("Expected Googlebot in the catalog")
	}
}
