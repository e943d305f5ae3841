package analyzer

import (
	"fmt"
)

// analyzeLinks scores the link profile reported by the caller. Broken-link
// detection itself belongs to a fetching collaborator.
func (a *Analyzer) analyzeLinks(input AnalysisInput) LinkAnalysis {
	var issues []Issue
	score := 100

	if input.InternalLinks == 0 {
		issues = append(issues, newIssue(SeverityWarning,
			"No internal links",
			"Add internal links to help visitors discover more content."))
		score -= 20
	} else if input.InternalLinks < 3 {
		issues = append(issues, newIssue(SeverityInfo,
			"Few internal links",
			"Consider adding more internal links."))
		score -= 10
	}

	if input.ExternalLinks == 0 {
		issues = append(issues, newIssue(SeverityInfo,
			"No outbound links",
			"Linking to authoritative sources can improve credibility."))
		score -= 5
	}

	if len(input.BrokenLinks) > 0 {
		issues = append(issues, newIssue(SeverityError,
			"Broken links detected",
			fmt.Sprintf("Fix %d broken links.", len(input.BrokenLinks))))
		score -= 25
	}

	return LinkAnalysis{
		Score:         clampScore(score),
		InternalLinks: input.InternalLinks,
		ExternalLinks: input.ExternalLinks,
		BrokenLinks:   input.BrokenLinks,
		NofollowLinks: input.NofollowLinks,
		Issues:        issues,
	}
}
