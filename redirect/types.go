// Package redirect implements rule-based URL rewriting with 404 tracking.
//
// Rules are evaluated in insertion order and the first matching rule wins.
// Callers that need priority between overlapping patterns must order their
// rules accordingly.
package redirect

import (
	"time"

	"github.com/google/uuid"
)

// Type identifies the HTTP semantics of a redirect rule.
type Type string

const (
	Permanent         Type = "permanent"
	Temporary         Type = "temporary"
	TemporaryPreserve Type = "temporary_preserve"
	PermanentPreserve Type = "permanent_preserve"
	Gone              Type = "gone"
	LegalRestriction  Type = "legal_restriction"
)

// StatusCode returns the HTTP status code for the redirect type.
func (t Type) StatusCode() int {
	switch t {
	case Temporary:
		return 302
	case TemporaryPreserve:
		return 307
	case PermanentPreserve:
		return 308
	case Gone:
		return 410
	case LegalRestriction:
		return 451
	default:
		return 301
	}
}

// Description returns a human-readable label for the redirect type.
func (t Type) Description() string {
	switch t {
	case Temporary:
		return "302 Found (Temporary)"
	case TemporaryPreserve:
		return "307 Temporary Redirect"
	case PermanentPreserve:
		return "308 Permanent Redirect"
	case Gone:
		return "410 Gone"
	case LegalRestriction:
		return "451 Unavailable for Legal Reasons"
	default:
		return "301 Moved Permanently"
	}
}

// MatchType selects how a rule's source pattern is applied to a URL.
type MatchType string

const (
	MatchExact    MatchType = "exact"
	MatchPrefix   MatchType = "prefix"
	MatchContains MatchType = "contains"
	MatchRegex    MatchType = "regex"
)

// Rule is a single redirect rule.
type Rule struct {
	ID           uuid.UUID  `json:"id"`
	SourceURL    string     `json:"source_url"`
	TargetURL    string     `json:"target_url"`
	Type         Type       `json:"redirect_type"`
	MatchType    MatchType  `json:"match_type"`
	IsActive     bool       `json:"is_active"`
	HitCount     int64      `json:"hit_count"`
	LastAccessed *time.Time `json:"last_accessed,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewRule creates an active exact-match rule with the given type.
func NewRule(source, target string, redirectType Type) Rule {
	now := time.Now().UTC()
	return Rule{
		ID:        uuid.New(),
		SourceURL: source,
		TargetURL: target,
		Type:      redirectType,
		MatchType: MatchExact,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NotFoundEntry is one logged 404 URL. Entries are keyed by normalized URL;
// repeated hits on the same URL bump the counter instead of creating a new
// entry.
type NotFoundEntry struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	Referrer    string    `json:"referrer,omitempty"`
	UserAgent   string    `json:"user_agent,omitempty"`
	HitCount    int64     `json:"hit_count"`
	FirstSeen   time.Time `json:"first_seen"`
	LastSeen    time.Time `json:"last_seen"`
	HasRedirect bool      `json:"has_redirect"`
	IsIgnored   bool      `json:"is_ignored"`
}

// Settings controls matching and 404 logging behavior.
type Settings struct {
	Enabled          bool `json:"enabled"`
	Log404s          bool `json:"log_404s"`
	PassQueryString  bool `json:"pass_query_string"`
	CaseInsensitive  bool `json:"case_insensitive"`
	MaxRedirectChain int  `json:"max_redirect_chain"`
}

// DefaultSettings returns the standard redirect settings.
func DefaultSettings() Settings {
	return Settings{
		Enabled:          true,
		Log404s:          true,
		PassQueryString:  true,
		CaseInsensitive:  true,
		MaxRedirectChain: 10,
	}
}

// Result describes a matched and resolved redirect.
type Result struct {
	RuleID     uuid.UUID `json:"rule_id"`
	TargetURL  string    `json:"target_url"`
	StatusCode int       `json:"status_code"`
}

// ImportResult summarizes a CSV import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// Hop is one step of a resolved redirect chain.
type Hop struct {
	RuleID     uuid.UUID `json:"rule_id"`
	FromURL    string    `json:"from_url"`
	ToURL      string    `json:"to_url"`
	StatusCode int       `json:"status_code"`
}

// TestResult is the outcome of tracing a URL through the rule set.
// LoopDetected is set both when a URL repeats within the chain and when the
// chain exceeds the configured maximum length.
type TestResult struct {
	Matches      bool   `json:"matches"`
	Chain        []Hop  `json:"chain,omitempty"`
	FinalURL     string `json:"final_url"`
	LoopDetected bool   `json:"loop_detected"`
}
