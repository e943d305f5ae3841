package analyzer

// analyzeTechnical scores technical SEO signals. The four checks are
// independent and may all fire on the same page.
func (a *Analyzer) analyzeTechnical(input AnalysisInput) TechnicalAnalysis {
	var issues []Issue
	score := 100

	if !input.HasCanonical {
		issues = append(issues, newIssue(SeverityWarning,
			"No canonical URL",
			"Set a canonical URL to prevent duplicate content issues."))
		score -= 15
	}

	if !input.HasOpenGraph {
		issues = append(issues, newIssue(SeverityInfo,
			"Missing OpenGraph tags",
			"Add OpenGraph tags for better social sharing."))
		score -= 5
	}

	if !input.HasTwitterCard {
		issues = append(issues, newIssue(SeverityInfo,
			"Missing Twitter Card tags",
			"Add Twitter Card tags for better Twitter sharing."))
		score -= 5
	}

	if !input.HasSchema {
		issues = append(issues, newIssue(SeverityInfo,
			"No schema markup",
			"Add schema.org structured data for rich snippets."))
		score -= 10
	}

	return TechnicalAnalysis{
		Score:          clampScore(score),
		HasCanonical:   input.HasCanonical,
		HasRobotsMeta:  input.HasRobotsMeta,
		HasOpenGraph:   input.HasOpenGraph,
		HasTwitterCard: input.HasTwitterCard,
		HasSchema:      input.HasSchema,
		PageLoadTime:   input.PageLoadTime,
		MobileFriendly: input.MobileFriendly,
		Issues:         issues,
	}
}
