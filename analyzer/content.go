package analyzer

import (
	"fmt"
)

// analyzeContent scores body length and heading structure.
func (a *Analyzer) analyzeContent(content string) ContentAnalysis {
	var issues []Issue
	score := 100

	words := wordCount(content)
	if words < a.settings.MinWordCount {
		issues = append(issues, newIssue(SeverityWarning,
			"Content is too short",
			fmt.Sprintf("Add more content. Aim for at least %d words.", a.settings.MinWordCount)))
		score -= 20
	}

	paragraphs := paragraphCount(content)
	sentences := sentenceCount(content)
	headings, _ := headingCounts(content)

	if headings.H1 == 0 {
		issues = append(issues, newIssue(SeverityError,
			"No H1 heading found",
			"Add an H1 heading that includes your focus keyword."))
		score -= 20
	} else if headings.H1 > 1 {
		issues = append(issues, newIssue(SeverityWarning,
			"Multiple H1 headings",
			"Use only one H1 heading per page."))
		score -= 10
	}

	if headings.H2 == 0 && words > 300 {
		issues = append(issues, newIssue(SeverityInfo,
			"No subheadings used",
			"Break up your content with H2 subheadings for better readability."))
		score -= 5
	}

	return ContentAnalysis{
		Score:          clampScore(score),
		WordCount:      words,
		ParagraphCount: paragraphs,
		SentenceCount:  sentences,
		HeadingCount:   headings,
		HasH1:          headings.H1 > 0,
		Issues:         issues,
	}
}
