// Package page builds analyzer input from an HTML document.
//
// Extraction is purely syntactic: no network access, no fetching of linked
// resources. Broken-link and image-size detection belong to collaborators
// that actually fetch.
package page

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/seo-optimizer/core/analyzer"
)

// Extract parses an HTML document and assembles the input for the analyzer.
// Headings are rendered as "#"-prefixed lines and paragraphs separated by
// blank lines, matching the text contract the analyzer scores against.
func Extract(html, baseURL, focusKeyword string) (analyzer.AnalysisInput, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return analyzer.AnalysisInput{}, fmt.Errorf("failed to parse html: %w", err)
	}

	input := analyzer.AnalysisInput{
		URL:          baseURL,
		FocusKeyword: focusKeyword,
	}

	input.Title = cleanText(doc.Find("title").First().Text())
	input.MetaDescription = strings.TrimSpace(doc.Find(`meta[name="description"]`).First().AttrOr("content", ""))

	input.Content, input.Headings = extractContent(doc)
	input.InternalLinks, input.ExternalLinks, input.NofollowLinks = classifyLinks(doc, baseURL)
	input.Images = extractImages(doc)

	input.HasCanonical = doc.Find(`link[rel="canonical"]`).Length() > 0
	input.HasRobotsMeta = doc.Find(`meta[name="robots"]`).Length() > 0
	input.HasOpenGraph = doc.Find(`meta[property^="og:"]`).Length() > 0
	input.HasTwitterCard = doc.Find(`meta[name^="twitter:"]`).Length() > 0
	input.HasSchema = doc.Find(`script[type="application/ld+json"]`).Length() > 0
	input.MobileFriendly = doc.Find(`meta[name="viewport"]`).Length() > 0

	return input, nil
}

// cleanText collapses runs of whitespace into single spaces.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// extractContent walks headings and paragraphs in document order and renders
// them as analyzer text. It also returns the plain heading texts.
func extractContent(doc *goquery.Document) (string, []string) {
	var blocks []string
	var headings []string

	doc.Find("h1, h2, h3, h4, p").Each(func(_ int, s *goquery.Selection) {
		text := cleanText(s.Text())
		if text == "" {
			return
		}

		switch goquery.NodeName(s) {
		case "h1":
			blocks = append(blocks, "# "+text)
			headings = append(headings, text)
		case "h2":
			blocks = append(blocks, "## "+text)
			headings = append(headings, text)
		case "h3":
			blocks = append(blocks, "### "+text)
			headings = append(headings, text)
		case "h4":
			blocks = append(blocks, "#### "+text)
			headings = append(headings, text)
		default:
			blocks = append(blocks, text)
		}
	})

	return strings.Join(blocks, "\n\n"), headings
}

// classifyLinks counts internal, external and nofollow links against the
// base URL's host. Fragment, mailto and javascript links are skipped.
func classifyLinks(doc *goquery.Document, baseURL string) (internal, external, nofollow int) {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = &url.URL{}
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)

		if resolved.Host == "" || resolved.Host == base.Host {
			internal++
		} else {
			external++
		}

		if strings.Contains(s.AttrOr("rel", ""), "nofollow") {
			nofollow++
		}
	})

	return internal, external, nofollow
}

func extractImages(doc *goquery.Document) []analyzer.ImageInput {
	var images []analyzer.ImageInput

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src := strings.TrimSpace(s.AttrOr("src", ""))
		if src == "" {
			return
		}
		images = append(images, analyzer.ImageInput{
			Src: src,
			Alt: strings.TrimSpace(s.AttrOr("alt", "")),
		})
	})

	return images
}
