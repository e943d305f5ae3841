package analyzer

import (
	"time"

	"github.com/google/uuid"
)

// SeoAnalysis is the complete analysis result for one content item.
type SeoAnalysis struct {
	ID           uuid.UUID           `json:"id"`
	ContentID    uuid.UUID           `json:"content_id"`
	OverallScore SeoScore            `json:"overall_score"`
	Title        TitleAnalysis       `json:"title_analysis"`
	Meta         MetaAnalysis        `json:"meta_analysis"`
	Content      ContentAnalysis     `json:"content_analysis"`
	Keyword      KeywordAnalysis     `json:"keyword_analysis"`
	Readability  ReadabilityAnalysis `json:"readability_analysis"`
	Links        LinkAnalysis        `json:"link_analysis"`
	Images       ImageAnalysis       `json:"image_analysis"`
	Technical    TechnicalAnalysis   `json:"technical_analysis"`
	Suggestions  []Suggestion        `json:"suggestions"`
	AnalyzedAt   time.Time           `json:"analyzed_at"`
}

// SeoScore is an overall score in [0,100] with its derived grade.
type SeoScore struct {
	Score int      `json:"score"`
	Grade SeoGrade `json:"grade"`
}

// NewSeoScore clamps the score to [0,100] and derives the grade.
func NewSeoScore(score int) SeoScore {
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	var grade SeoGrade
	switch {
	case score >= 90:
		grade = GradeExcellent
	case score >= 70:
		grade = GradeGood
	case score >= 50:
		grade = GradeFair
	case score >= 30:
		grade = GradePoor
	default:
		grade = GradeBad
	}

	return SeoScore{Score: score, Grade: grade}
}

// SeoGrade buckets a score for display.
type SeoGrade string

const (
	GradeExcellent SeoGrade = "Excellent"
	GradeGood      SeoGrade = "Good"
	GradeFair      SeoGrade = "Fair"
	GradePoor      SeoGrade = "Poor"
	GradeBad       SeoGrade = "Bad"
)

// Color returns the display color for the grade.
func (g SeoGrade) Color() string {
	switch g {
	case GradeExcellent:
		return "#00a32a"
	case GradeGood:
		return "#7ad03a"
	case GradeFair:
		return "#ffb900"
	case GradePoor:
		return "#dc3232"
	default:
		return "#8b0000"
	}
}

// IssueSeverity classifies an analysis issue.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
	SeverityInfo    IssueSeverity = "info"
	SeveritySuccess IssueSeverity = "success"
)

// Color returns the display color for the severity.
func (s IssueSeverity) Color() string {
	switch s {
	case SeverityError:
		return "#dc3232"
	case SeverityWarning:
		return "#ffb900"
	case SeverityInfo:
		return "#0073aa"
	default:
		return "#00a32a"
	}
}

// Issue is a single finding reported by a sub-scorer.
type Issue struct {
	Severity    IssueSeverity `json:"severity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
}

func newIssue(severity IssueSeverity, title, description string) Issue {
	return Issue{Severity: severity, Title: title, Description: description}
}

// SuggestionPriority orders suggestions for display.
type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
)

// Suggestion is an actionable improvement derived from sub-scores.
type Suggestion struct {
	Category    string             `json:"category"`
	Priority    SuggestionPriority `json:"priority"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Action      string             `json:"action,omitempty"`
}

// AnalysisInput is the per-analysis snapshot assembled by the caller.
// Empty strings mean the field is unset; the engine never mutates it.
type AnalysisInput struct {
	Title           string       `json:"title"`
	MetaDescription string       `json:"meta_description"`
	Content         string       `json:"content"`
	URL             string       `json:"url"`
	FocusKeyword    string       `json:"focus_keyword"`
	Headings        []string     `json:"headings"`
	InternalLinks   int          `json:"internal_links"`
	ExternalLinks   int          `json:"external_links"`
	NofollowLinks   int          `json:"nofollow_links"`
	BrokenLinks     []string     `json:"broken_links"`
	Images          []ImageInput `json:"images"`
	LargeImages     []string     `json:"large_images"`
	HasCanonical    bool         `json:"has_canonical"`
	HasRobotsMeta   bool         `json:"has_robots_meta"`
	HasOpenGraph    bool         `json:"has_open_graph"`
	HasTwitterCard  bool         `json:"has_twitter_card"`
	HasSchema       bool         `json:"has_schema"`
	PageLoadTime    float64      `json:"page_load_time,omitempty"`
	MobileFriendly  bool         `json:"mobile_friendly"`
}

// ImageInput is one image reference within the analyzed content.
type ImageInput struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// TitleAnalysis scores the title tag.
type TitleAnalysis struct {
	Score           int     `json:"score"`
	Title           string  `json:"title"`
	Length          int     `json:"length"`
	HasFocusKeyword bool    `json:"has_focus_keyword"`
	KeywordPosition int     `json:"keyword_position"` // -1 when absent
	Issues          []Issue `json:"issues"`
}

// MetaAnalysis scores the meta description.
type MetaAnalysis struct {
	Score           int     `json:"score"`
	Description     string  `json:"description"`
	Length          int     `json:"length"`
	HasFocusKeyword bool    `json:"has_focus_keyword"`
	Issues          []Issue `json:"issues"`
}

// HeadingCount holds per-level heading counts.
type HeadingCount struct {
	H1 int `json:"h1"`
	H2 int `json:"h2"`
	H3 int `json:"h3"`
	H4 int `json:"h4"`
	H5 int `json:"h5"`
	H6 int `json:"h6"`
}

// ContentAnalysis scores the body content structure.
type ContentAnalysis struct {
	Score          int          `json:"score"`
	WordCount      int          `json:"word_count"`
	ParagraphCount int          `json:"paragraph_count"`
	SentenceCount  int          `json:"sentence_count"`
	HeadingCount   HeadingCount `json:"heading_count"`
	HasH1          bool         `json:"has_h1"`
	Issues         []Issue      `json:"issues"`
}

// KeywordAnalysis scores focus keyword usage.
type KeywordAnalysis struct {
	Score            int     `json:"score"`
	FocusKeyword     string  `json:"focus_keyword"`
	KeywordCount     int     `json:"keyword_count"`
	KeywordDensity   float64 `json:"keyword_density"`
	InFirstParagraph bool    `json:"in_first_paragraph"`
	InHeadings       bool    `json:"in_headings"`
	InURL            bool    `json:"in_url"`
	Issues           []Issue `json:"issues"`
}

// ReadabilityAnalysis scores readability heuristics.
type ReadabilityAnalysis struct {
	Score                    int     `json:"score"`
	FleschReadingEase        float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade       float64 `json:"flesch_kincaid_grade"`
	AvgSentenceLength        float64 `json:"avg_sentence_length"`
	AvgWordLength            float64 `json:"avg_word_length"`
	PassiveVoicePercentage   float64 `json:"passive_voice_percentage"`
	TransitionWordPercentage float64 `json:"transition_word_percentage"`
	Issues                   []Issue `json:"issues"`
}

// LinkAnalysis scores the link profile.
type LinkAnalysis struct {
	Score         int      `json:"score"`
	InternalLinks int      `json:"internal_links"`
	ExternalLinks int      `json:"external_links"`
	BrokenLinks   []string `json:"broken_links"`
	NofollowLinks int      `json:"nofollow_links"`
	Issues        []Issue  `json:"issues"`
}

// ImageAnalysis scores image usage.
type ImageAnalysis struct {
	Score             int      `json:"score"`
	TotalImages       int      `json:"total_images"`
	ImagesWithAlt     int      `json:"images_with_alt"`
	ImagesWithKeyword int      `json:"images_with_keyword"`
	LargeImages       []string `json:"large_images"`
	Issues            []Issue  `json:"issues"`
}

// TechnicalAnalysis scores technical SEO signals.
type TechnicalAnalysis struct {
	Score          int     `json:"score"`
	HasCanonical   bool    `json:"has_canonical"`
	HasRobotsMeta  bool    `json:"has_robots_meta"`
	HasOpenGraph   bool    `json:"has_open_graph"`
	HasTwitterCard bool    `json:"has_twitter_card"`
	HasSchema      bool    `json:"has_schema"`
	PageLoadTime   float64 `json:"page_load_time,omitempty"`
	MobileFriendly bool    `json:"mobile_friendly"`
	Issues         []Issue `json:"issues"`
}

// Settings configures the analysis engine. Construct once at startup and
// pass to New.
type Settings struct {
	// MinWordCount is the minimum body length before the content scorer
	// flags thin content. Default 300.
	MinWordCount int
	// TargetKeywordDensity is the target keyword density percentage.
	// Densities below half of it are flagged as too low. Default 2.0.
	TargetKeywordDensity float64
	// MaxKeywordDensity is the percentage above which keyword usage is
	// flagged as over-optimization. Default 3.0.
	MaxKeywordDensity float64
}

// DefaultSettings returns the documented default analysis settings.
func DefaultSettings() Settings {
	return Settings{
		MinWordCount:         300,
		TargetKeywordDensity: 2.0,
		MaxKeywordDensity:    3.0,
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	return score
}
