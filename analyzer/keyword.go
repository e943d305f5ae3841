package analyzer

import (
	"strings"
)

// analyzeKeyword scores focus keyword usage across content, headings and URL.
// Without a focus keyword the result is a fixed 50 with a single warning.
func (a *Analyzer) analyzeKeyword(input AnalysisInput) KeywordAnalysis {
	if input.FocusKeyword == "" {
		return KeywordAnalysis{
			Score: 50,
			Issues: []Issue{newIssue(SeverityWarning,
				"No focus keyword set",
				"Set a focus keyword to optimize your content.")},
		}
	}

	var issues []Issue
	score := 100

	kwLower := strings.ToLower(input.FocusKeyword)
	words := wordCount(input.Content)
	count := keywordOccurrences(input.Content, input.FocusKeyword)
	density := keywordDensity(count, words)

	inFirst := strings.Contains(strings.ToLower(firstParagraph(input.Content)), kwLower)

	inHeadings := false
	for _, h := range input.Headings {
		if strings.Contains(strings.ToLower(h), kwLower) {
			inHeadings = true
			break
		}
	}

	inURL := strings.Contains(strings.ToLower(input.URL), kwLower)

	// Density bands are mutually exclusive; the low check runs before high.
	if count == 0 {
		issues = append(issues, newIssue(SeverityError,
			"Focus keyword not found",
			"The focus keyword doesn't appear in your content."))
		score -= 30
	} else if density < a.settings.TargetKeywordDensity*0.5 {
		issues = append(issues, newIssue(SeverityWarning,
			"Keyword density too low",
			"Consider using your focus keyword more often."))
		score -= 15
	} else if density > a.settings.MaxKeywordDensity {
		issues = append(issues, newIssue(SeverityWarning,
			"Keyword density too high",
			"You may be over-optimizing. Use the keyword more naturally."))
		score -= 10
	}

	if !inFirst {
		issues = append(issues, newIssue(SeverityWarning,
			"Keyword not in first paragraph",
			"Include your focus keyword in the first paragraph."))
		score -= 10
	}

	if !inHeadings {
		issues = append(issues, newIssue(SeverityInfo,
			"Keyword not in subheadings",
			"Consider adding the keyword to at least one subheading."))
		score -= 5
	}

	if !inURL {
		issues = append(issues, newIssue(SeverityInfo,
			"Keyword not in URL",
			"Including the keyword in the URL can help with SEO."))
		score -= 5
	}

	return KeywordAnalysis{
		Score:            clampScore(score),
		FocusKeyword:     input.FocusKeyword,
		KeywordCount:     count,
		KeywordDensity:   density,
		InFirstParagraph: inFirst,
		InHeadings:       inHeadings,
		InURL:            inURL,
		Issues:           issues,
	}
}
