// Package robots parses, generates and queries robots.txt documents.
//
// A parsed Document is immutable by convention: concurrent readers are safe
// as long as no caller mutates it, and replacement is done by swapping the
// pointer.
package robots

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule is the directive block for one user agent.
type Rule struct {
	UserAgent  string   `json:"user_agent"`
	Allow      []string `json:"allow"`
	Disallow   []string `json:"disallow"`
	CrawlDelay int      `json:"crawl_delay,omitempty"` // seconds, 0 means unset
}

// NewRule creates an empty block for the given user agent.
func NewRule(userAgent string) Rule {
	return Rule{UserAgent: userAgent}
}

// AllowPath appends an allow pattern.
func (r Rule) AllowPath(path string) Rule {
	r.Allow = append(r.Allow, path)
	return r
}

// DisallowPath appends a disallow pattern.
func (r Rule) DisallowPath(path string) Rule {
	r.Disallow = append(r.Disallow, path)
	return r
}

// WithCrawlDelay sets the block's crawl delay in seconds.
func (r Rule) WithCrawlDelay(seconds int) Rule {
	r.CrawlDelay = seconds
	return r
}

// Document is a full robots.txt configuration.
type Document struct {
	Rules         []Rule   `json:"rules"`
	Sitemaps      []string `json:"sitemaps"`
	CrawlDelay    int      `json:"crawl_delay,omitempty"` // document-level default
	CustomContent string   `json:"custom_content,omitempty"`
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// stockDisallows are the paths blocked for all bots in a generated document.
var stockDisallows = []string{
	"/wp-admin/",
	"/admin/",
	"/api/",
	"/login",
	"/register",
	"/*?*",
	"/search",
	"/checkout",
	"/cart",
	"/my-account",
}

// DefaultDocument creates a document with the standard blanket block.
func DefaultDocument() *Document {
	doc := NewDocument()
	rule := NewRule("*").AllowPath("/")
	rule.Disallow = append(rule.Disallow, stockDisallows...)
	doc.Rules = append(doc.Rules, rule)
	return doc
}

// AddRule appends a rule block.
func (d *Document) AddRule(rule Rule) {
	d.Rules = append(d.Rules, rule)
}

// AddSitemap appends a sitemap URL unless it is already listed.
func (d *Document) AddSitemap(url string) {
	for _, s := range d.Sitemaps {
		if s == url {
			return
		}
	}
	d.Sitemaps = append(d.Sitemaps, url)
}

// Parse reads robots.txt text into a document. Blank lines, comments and
// unknown directives are skipped; allow/disallow lines before any user-agent
// line are dropped; a crawl-delay outside a block becomes the document-level
// default.
func Parse(content string) *Document {
	doc := NewDocument()
	var current *Rule

	flush := func() {
		if current != nil {
			doc.Rules = append(doc.Rules, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		directive, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		directive = strings.ToLower(strings.TrimSpace(directive))
		value = strings.TrimSpace(value)

		switch directive {
		case "user-agent":
			flush()
			rule := NewRule(value)
			current = &rule
		case "allow":
			if current != nil {
				current.Allow = append(current.Allow, value)
			}
		case "disallow":
			if current != nil {
				current.Disallow = append(current.Disallow, value)
			}
		case "crawl-delay":
			if delay, err := strconv.Atoi(value); err == nil {
				if current != nil {
					current.CrawlDelay = delay
				} else {
					doc.CrawlDelay = delay
				}
			}
		case "sitemap":
			doc.Sitemaps = append(doc.Sitemaps, value)
		}
	}
	flush()

	return doc
}

// String renders the document as robots.txt text. Each block emits its
// User-agent line, then Allow, Disallow and Crawl-delay lines, followed by a
// blank line; sitemaps come after the blocks and any custom content after a
// further blank line.
func (d *Document) String() string {
	var b strings.Builder

	for _, rule := range d.Rules {
		fmt.Fprintf(&b, "User-agent: %s\n", rule.UserAgent)

		for _, allow := range rule.Allow {
			fmt.Fprintf(&b, "Allow: %s\n", allow)
		}
		for _, disallow := range rule.Disallow {
			fmt.Fprintf(&b, "Disallow: %s\n", disallow)
		}

		delay := rule.CrawlDelay
		if delay == 0 {
			delay = d.CrawlDelay
		}
		if delay > 0 {
			fmt.Fprintf(&b, "Crawl-delay: %d\n", delay)
		}

		b.WriteString("\n")
	}

	for _, sitemap := range d.Sitemaps {
		fmt.Fprintf(&b, "Sitemap: %s\n", sitemap)
	}

	if d.CustomContent != "" {
		b.WriteString("\n")
		b.WriteString(d.CustomContent)
		b.WriteString("\n")
	}

	return b.String()
}

// blockFor selects the rule block for a user agent: an exact match first,
// then the "*" wildcard block, else nil.
func (d *Document) blockFor(userAgent string) *Rule {
	for i := range d.Rules {
		if d.Rules[i].UserAgent == userAgent {
			return &d.Rules[i]
		}
	}
	for i := range d.Rules {
		if d.Rules[i].UserAgent == "*" {
			return &d.Rules[i]
		}
	}
	return nil
}

// IsAllowed reports whether the path may be crawled by the user agent.
// Within the selected block, any allow prefix match wins immediately; only
// then are disallow prefixes consulted, with an empty disallow pattern being
// a no-op. Paths matching neither list, and agents without a block, are
// allowed. Allow is checked before disallow regardless of pattern length;
// callers relying on longest-match precedence will not get it here.
func (d *Document) IsAllowed(path, userAgent string) bool {
	rule := d.blockFor(userAgent)
	if rule == nil {
		return true
	}

	for _, allow := range rule.Allow {
		if strings.HasPrefix(path, allow) {
			return true
		}
	}

	for _, disallow := range rule.Disallow {
		if disallow == "" {
			continue // empty disallow blocks nothing
		}
		if strings.HasPrefix(path, disallow) {
			return false
		}
	}

	return true
}
