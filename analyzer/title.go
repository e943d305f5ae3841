package analyzer

import (
	"strings"
)

// analyzeTitle scores the title tag against SERP length limits and focus
// keyword placement.
func (a *Analyzer) analyzeTitle(title, focusKeyword string) TitleAnalysis {
	var issues []Issue
	score := 100
	length := len(title)

	if length < 30 {
		issues = append(issues, newIssue(SeverityWarning,
			"Title is too short",
			"The title should be at least 30 characters for better SEO."))
		score -= 15
	} else if length > 60 {
		issues = append(issues, newIssue(SeverityWarning,
			"Title is too long",
			"The title exceeds 60 characters and may be truncated in search results."))
		score -= 10
	}

	hasKeyword := false
	keywordPos := -1
	if focusKeyword != "" {
		pos := strings.Index(strings.ToLower(title), strings.ToLower(focusKeyword))
		if pos >= 0 {
			hasKeyword = true
			keywordPos = pos
		} else {
			issues = append(issues, newIssue(SeverityError,
				"Focus keyword not in title",
				"The focus keyword should appear in the title for better rankings."))
			score -= 25
		}
	}

	if hasKeyword && keywordPos > 20 {
		issues = append(issues, newIssue(SeverityInfo,
			"Keyword not at start of title",
			"Moving the keyword closer to the beginning may improve rankings."))
		score -= 5
	}

	return TitleAnalysis{
		Score:           clampScore(score),
		Title:           title,
		Length:          length,
		HasFocusKeyword: hasKeyword,
		KeywordPosition: keywordPos,
		Issues:          issues,
	}
}
