package analyzer

import (
	"strings"
)

// analyzeMeta scores the meta description. A missing description is scored
// zero outright; the remaining checks are skipped.
func (a *Analyzer) analyzeMeta(description, focusKeyword string) MetaAnalysis {
	if description == "" {
		return MetaAnalysis{
			Score: 0,
			Issues: []Issue{newIssue(SeverityError,
				"No meta description",
				"Add a meta description to control how your page appears in search results.")},
		}
	}

	var issues []Issue
	score := 100
	length := len(description)

	if length < 120 {
		issues = append(issues, newIssue(SeverityWarning,
			"Meta description is too short",
			"The description should be at least 120 characters."))
		score -= 15
	} else if length > 160 {
		issues = append(issues, newIssue(SeverityWarning,
			"Meta description is too long",
			"The description exceeds 160 characters and may be truncated."))
		score -= 10
	}

	hasKeyword := false
	if focusKeyword != "" {
		if strings.Contains(strings.ToLower(description), strings.ToLower(focusKeyword)) {
			hasKeyword = true
		} else {
			issues = append(issues, newIssue(SeverityWarning,
				"Focus keyword not in meta description",
				"Include your focus keyword in the meta description."))
			score -= 15
		}
	}

	return MetaAnalysis{
		Score:           clampScore(score),
		Description:     description,
		Length:          length,
		HasFocusKeyword: hasKeyword,
		Issues:          issues,
	}
}
