package analyzer

import (
	"fmt"
	"strings"
)

// analyzeImages scores image usage and alt-text coverage. A page without
// images takes a single deduction and skips the alt checks.
func (a *Analyzer) analyzeImages(input AnalysisInput) ImageAnalysis {
	var issues []Issue
	score := 100

	withAlt := 0
	withKeyword := 0
	kwLower := strings.ToLower(input.FocusKeyword)
	for _, img := range input.Images {
		if img.Alt != "" {
			withAlt++
			if input.FocusKeyword != "" && strings.Contains(strings.ToLower(img.Alt), kwLower) {
				withKeyword++
			}
		}
	}

	if len(input.Images) == 0 {
		issues = append(issues, newIssue(SeverityInfo,
			"No images in content",
			"Adding images can improve engagement and SEO."))
		score -= 10
	} else {
		withoutAlt := len(input.Images) - withAlt
		if withoutAlt > 0 {
			issues = append(issues, newIssue(SeverityWarning,
				"Images missing alt text",
				fmt.Sprintf("%d images are missing alt text.", withoutAlt)))
			score -= 15
		}

		if input.FocusKeyword != "" && withKeyword == 0 {
			issues = append(issues, newIssue(SeverityInfo,
				"No images contain focus keyword",
				"Add the focus keyword to at least one image alt text."))
			score -= 5
		}
	}

	return ImageAnalysis{
		Score:             clampScore(score),
		TotalImages:       len(input.Images),
		ImagesWithAlt:     withAlt,
		ImagesWithKeyword: withKeyword,
		LargeImages:       input.LargeImages,
		Issues:            issues,
	}
}
