// Package analyzer scores content for SEO optimization.
//
// The engine is a total function over its input: any AnalysisInput, including
// one with empty or missing fields, produces a defined result. There is no
// error channel; a scorer must never break a content-save flow in the
// surrounding system. The engine holds no mutable state beyond its settings
// and is safe for concurrent use.
package analyzer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Analyzer runs the eight sub-scorers and aggregates their results.
type Analyzer struct {
	settings Settings
	logger   *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// New creates an analyzer with the given settings.
func New(settings Settings, opts ...Option) *Analyzer {
	a := &Analyzer{
		settings: settings,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze performs a complete SEO analysis of the given content snapshot.
func (a *Analyzer) Analyze(contentID uuid.UUID, input AnalysisInput) SeoAnalysis {
	title := a.analyzeTitle(input.Title, input.FocusKeyword)
	meta := a.analyzeMeta(input.MetaDescription, input.FocusKeyword)
	content := a.analyzeContent(input.Content)
	keyword := a.analyzeKeyword(input)
	readability := a.analyzeReadability(input.Content)
	links := a.analyzeLinks(input)
	images := a.analyzeImages(input)
	technical := a.analyzeTechnical(input)

	scores := []int{
		title.Score,
		meta.Score,
		content.Score,
		keyword.Score,
		readability.Score,
		links.Score,
		images.Score,
		technical.Score,
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	overall := NewSeoScore(sum / len(scores))

	suggestions := a.generateSuggestions(title, meta, content, keyword)

	analysis := SeoAnalysis{
		ID:           uuid.New(),
		ContentID:    contentID,
		OverallScore: overall,
		Title:        title,
		Meta:         meta,
		Content:      content,
		Keyword:      keyword,
		Readability:  readability,
		Links:        links,
		Images:       images,
		Technical:    technical,
		Suggestions:  suggestions,
		AnalyzedAt:   time.Now().UTC(),
	}

	a.logger.Debug("content analyzed",
		zap.String("content_id", contentID.String()),
		zap.Int("score", overall.Score),
		zap.String("grade", string(overall.Grade)))

	return analysis
}

// generateSuggestions derives prioritized suggestions from sub-results.
// The trigger table is fixed; scoring reproducibility depends on exactly
// these four rules.
func (a *Analyzer) generateSuggestions(title TitleAnalysis, meta MetaAnalysis, content ContentAnalysis, keyword KeywordAnalysis) []Suggestion {
	var suggestions []Suggestion

	if title.Score < 50 {
		suggestions = append(suggestions, Suggestion{
			Category:    "Title",
			Priority:    PriorityHigh,
			Title:       "Improve your title",
			Description: "Your title needs significant improvement for SEO.",
			Action:      "Add focus keyword and optimize length.",
		})
	}

	if meta.Score < 50 {
		suggestions = append(suggestions, Suggestion{
			Category:    "Meta Description",
			Priority:    PriorityHigh,
			Title:       "Add meta description",
			Description: "A good meta description improves click-through rates.",
			Action:      "Write a compelling 150-160 character description.",
		})
	}

	if content.WordCount < a.settings.MinWordCount {
		suggestions = append(suggestions, Suggestion{
			Category: "Content",
			Priority: PriorityMedium,
			Title:    "Add more content",
			Description: fmt.Sprintf("Your content has %d words. Aim for at least %d.",
				content.WordCount, a.settings.MinWordCount),
		})
	}

	if keyword.FocusKeyword == "" {
		suggestions = append(suggestions, Suggestion{
			Category:    "Keywords",
			Priority:    PriorityMedium,
			Title:       "Set a focus keyword",
			Description: "A focus keyword helps optimize your content.",
		})
	}

	return suggestions
}
