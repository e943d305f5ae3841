package page

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/seo-optimizer/core/analyzer"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head>
	<title>  Widgets   Guide  </title>
	<meta name="description" content="Everything about widgets.">
	<meta name="viewport" content="width=device-width">
	<meta name="robots" content="index, follow">
	<meta property="og:title" content="Widgets Guide">
	<meta name="twitter:card" content="summary">
	<link rel="canonical" href="https://example.com/widgets">
	<script type="application/ld+json">{"@type":"Article"}</script>
</head>
<body>
	<h1>Widgets Guide</h1>
	<p>Widgets are everywhere.</p>
	<h2>Buying widgets</h2>
	<p>Visit our <a href="/shop">shop</a> or the
	<a href="https://partner.example" rel="nofollow sponsored">partner site</a>.
	See also <a href="#top">top</a> and <a href="mailto:x@example.com">mail</a>.</p>
	<img src="/widgets.png" alt="A widget">
	<img src="/bare.png">
</body>
</html>`

func TestExtract(t *testing.T) {
	input, err := Extract(sampleHTML, "https://example.com/widgets", "widgets")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	t.Run("TitleAndMeta", func(t *testing.T) {
		if input.Title != "Widgets Guide" {
			t.Errorf("Expected collapsed title, got %q", input.Title)
		}
		if input.MetaDescription != "Everything about widgets." {
			t.Errorf("Unexpected meta description: %q", input.MetaDescription)
		}
	})

	t.Run("ContentRendering", func(t *testing.T) {
		if input.Content == "" {
			t.Fatal("Expected content")
		}
		counts, _ := countHeadings(t, input)
		if counts.h1 != 1 || counts.h2 != 1 {
			t.Errorf("Expected one H1 and one H2 line, got %+v", counts)
		}
		if len(input.Headings) != 2 || input.Headings[0] != "Widgets Guide" {
			t.Errorf("Unexpected headings: %v", input.Headings)
		}
	})

	t.Run("Links", func(t *testing.T) {
		if input.InternalLinks != 1 {
			t.Errorf("Expected 1 internal link, got %d", input.InternalLinks)
		}
		if input.ExternalLinks != 1 {
			t.Errorf("Expected 1 external link, got %d", input.ExternalLinks)
		}
		if input.NofollowLinks != 1 {
			t.Errorf("Expected 1 nofollow link, got %d", input.NofollowLinks)
		}
	})

	t.Run("Images", func(t *testing.T) {
		if len(input.Images) != 2 {
			t.Fatalf("Expected 2 images, got %d", len(input.Images))
		}
		if input.Images[0].Alt != "A widget" || input.Images[1].Alt != "" {
			t.Errorf("Unexpected alt texts: %+v", input.Images)
		}
	})

	t.Run("TechnicalSignals", func(t *testing.T) {
		if !input.HasCanonical || !input.HasRobotsMeta || !input.HasOpenGraph ||
			!input.HasTwitterCard || !input.HasSchema || !input.MobileFriendly {
			t.Errorf("Expected all technical signals set: %+v", input)
		}
	})

	t.Run("FeedsAnalyzer", func(t *testing.T) {
		a := analyzer.New(analyzer.DefaultSettings())
		analysis := a.Analyze(uuid.New(), input)

		if !analysis.Content.HasH1 {
			t.Error("Expected the rendered H1 to be counted")
		}
		if !analysis.Keyword.InHeadings {
			t.Error("Expected the focus keyword to be found in headings")
		}
	})
}

type headingTally struct {
	h1, h2 int
}

func countHeadings(t *testing.T, input analyzer.AnalysisInput) (headingTally, []string) {
	t.Helper()
	var tally headingTally
	var lines []string
	for _, line := range strings.Split(input.Content, "\n") {
		switch {
		case strings.HasPrefix(line, "## "):
			tally.h2++
			lines = append(lines, line)
		case strings.HasPrefix(line, "# "):
			tally.h1++
			lines = append(lines, line)
		}
	}
	return tally, lines
}
