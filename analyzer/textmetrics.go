package analyzer

import (
	"strings"
)

// Heading is one extracted heading with its level (1-4).
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// wordCount counts whitespace-delimited tokens.
func wordCount(text string) int {
	return len(strings.Fields(text))
}

// sentenceCount counts sentence-ending punctuation, never returning zero so
// downstream averages cannot divide by zero.
func sentenceCount(text string) int {
	n := 0
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			n++
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

// paragraphCount counts non-empty blocks separated by a blank line.
func paragraphCount(text string) int {
	n := 0
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) != "" {
			n++
		}
	}
	return n
}

// firstParagraph returns the text before the first blank line.
func firstParagraph(text string) string {
	if i := strings.Index(text, "\n\n"); i >= 0 {
		return text[:i]
	}
	return text
}

// headingCounts extracts Markdown-style headings (levels 1-4). The marker
// must be followed by a space, so "#hashtag" is not a heading.
func headingCounts(text string) (HeadingCount, []Heading) {
	var counts HeadingCount
	var headings []Heading

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "#### "):
			counts.H4++
			headings = append(headings, Heading{Level: 4, Text: strings.TrimSpace(trimmed[5:])})
		case strings.HasPrefix(trimmed, "### "):
			counts.H3++
			headings = append(headings, Heading{Level: 3, Text: strings.TrimSpace(trimmed[4:])})
		case strings.HasPrefix(trimmed, "## "):
			counts.H2++
			headings = append(headings, Heading{Level: 2, Text: strings.TrimSpace(trimmed[3:])})
		case strings.HasPrefix(trimmed, "# "):
			counts.H1++
			headings = append(headings, Heading{Level: 1, Text: strings.TrimSpace(trimmed[2:])})
		}
	}

	return counts, headings
}

// keywordOccurrences counts case-insensitive substring occurrences.
func keywordOccurrences(text, keyword string) int {
	if keyword == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), strings.ToLower(keyword))
}

// keywordDensity is occurrences per hundred words.
func keywordDensity(occurrences, words int) float64 {
	if words == 0 {
		return 0
	}
	return float64(occurrences) / float64(words) * 100
}
