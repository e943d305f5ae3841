package redirect

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seo-optimizer/core/stats"
)

// Service holds the ordered rule set and the 404 log. One lock guards both;
// lookups take the read lock and mutations the write lock.
type Service struct {
	mu       sync.RWMutex
	rules    []Rule
	notFound map[string]*NotFoundEntry
	settings Settings
	logger   *zap.Logger
	stats    *stats.Storage
}

// Option configures a Service.
type Option func(*Service)

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithStats attaches a storage for monthly hit counters.
func WithStats(storage *stats.Storage) Option {
	return func(s *Service) {
		s.stats = storage
	}
}

// NewService creates a redirect service with the given settings.
func NewService(settings Settings, opts ...Option) *Service {
	s := &Service{
		notFound: make(map[string]*NotFoundEntry),
		settings: settings,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// normalizeURL lowercases the URL when case-insensitive matching is on.
// The normalized form is also the 404 log key.
func (s *Service) normalizeURL(url string) string {
	url = strings.TrimSpace(url)
	if s.settings.CaseInsensitive {
		return strings.ToLower(url)
	}
	return url
}

// matches reports whether a rule's source pattern applies to the normalized
// URL. A regex pattern that fails to compile is a non-match, never an error.
func (s *Service) matches(rule *Rule, normalized string) bool {
	source := rule.SourceURL
	if s.settings.CaseInsensitive {
		source = strings.ToLower(source)
	}

	switch rule.MatchType {
	case MatchPrefix:
		return strings.HasPrefix(normalized, source)
	case MatchContains:
		return strings.Contains(normalized, source)
	case MatchRegex:
		re, err := regexp.Compile(rule.SourceURL)
		if err != nil {
			return false
		}
		return re.MatchString(normalized)
	default:
		return normalized == source
	}
}

// findMatch returns the first active rule matching the URL, in insertion
// order. Callers must hold the lock.
func (s *Service) findMatch(url string) *Rule {
	normalized := s.normalizeURL(url)
	for i := range s.rules {
		rule := &s.rules[i]
		if !rule.IsActive {
			continue
		}
		if s.matches(rule, normalized) {
			return rule
		}
	}
	return nil
}

// resolveTarget returns the rule's target for the given URL. Only regex rules
// support capture-group substitution; every other match type returns the
// target verbatim.
func resolveTarget(rule *Rule, url string) string {
	if rule.MatchType == MatchRegex {
		if re, err := regexp.Compile(rule.SourceURL); err == nil {
			return re.ReplaceAllString(url, rule.TargetURL)
		}
	}
	return rule.TargetURL
}

// FindMatch returns a copy of the first active rule matching the URL.
func (s *Service) FindMatch(url string) (Rule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if rule := s.findMatch(url); rule != nil {
		return *rule, true
	}
	return Rule{}, false
}

// ResolveTarget applies the rule's target template to the URL.
func (s *Service) ResolveTarget(rule Rule, url string) string {
	return resolveTarget(&rule, url)
}

// Process finds a redirect for the URL, records the hit and returns the
// resolved target with its status code. The second return is false when no
// active rule matches or redirects are disabled.
func (s *Service) Process(url string) (Result, bool) {
	if !s.settings.Enabled {
		return Result{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rule := s.findMatch(url)
	if rule == nil {
		return Result{}, false
	}

	target := resolveTarget(rule, url)
	rule.HitCount++
	now := time.Now().UTC()
	rule.LastAccessed = &now

	if s.stats != nil {
		s.stats.IncrementStats(1, 0, 0)
	}
	s.logger.Debug("redirect matched",
		zap.String("url", url),
		zap.String("target", target),
		zap.Int("status", rule.Type.StatusCode()))

	return Result{
		RuleID:     rule.ID,
		TargetURL:  target,
		StatusCode: rule.Type.StatusCode(),
	}, true
}

// RecordHit increments a rule's hit counter and bumps its last-accessed time.
func (s *Service) RecordHit(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rules {
		if s.rules[i].ID == id {
			s.rules[i].HitCount++
			now := time.Now().UTC()
			s.rules[i].LastAccessed = &now
			return true
		}
	}
	return false
}

// Add appends a rule to the end of the evaluation order.
func (s *Service) Add(rule Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, rule)
}

// Add301 appends a permanent exact-match redirect.
func (s *Service) Add301(source, target string) Rule {
	rule := NewRule(source, target, Permanent)
	s.Add(rule)
	return rule
}

// Add302 appends a temporary exact-match redirect.
func (s *Service) Add302(source, target string) Rule {
	rule := NewRule(source, target, Temporary)
	s.Add(rule)
	return rule
}

// Remove deletes a rule by ID, preserving the order of the remaining rules.
func (s *Service) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rules {
		if s.rules[i].ID == id {
			s.rules = append(s.rules[:i], s.rules[i+1:]...)
			return true
		}
	}
	return false
}

// Update rewrites a rule's source, target and type. Empty values leave the
// corresponding field unchanged.
func (s *Service) Update(id uuid.UUID, source, target string, redirectType Type) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rules {
		if s.rules[i].ID != id {
			continue
		}
		if source != "" {
			s.rules[i].SourceURL = source
		}
		if target != "" {
			s.rules[i].TargetURL = target
		}
		if redirectType != "" {
			s.rules[i].Type = redirectType
		}
		s.rules[i].UpdatedAt = time.Now().UTC()
		return true
	}
	return false
}

// SetActive enables or disables a rule.
func (s *Service) SetActive(id uuid.UUID, active bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rules {
		if s.rules[i].ID == id {
			s.rules[i].IsActive = active
			s.rules[i].UpdatedAt = time.Now().UTC()
			return true
		}
	}
	return false
}

// Get returns a copy of the rule with the given ID.
func (s *Service) Get(id uuid.UUID) (Rule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.rules {
		if s.rules[i].ID == id {
			return s.rules[i], true
		}
	}
	return Rule{}, false
}

// List returns a copy of all rules in evaluation order.
func (s *Service) List() []Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules := make([]Rule, len(s.rules))
	copy(rules, s.rules)
	return rules
}

// Log404 records a 404 hit. Repeated hits on the same normalized URL bump
// the existing entry instead of creating a new one.
func (s *Service) Log404(url, referrer, userAgent string) {
	if !s.settings.Log404s {
		return
	}

	key := s.normalizeURL(url)

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.notFound[key]; ok {
		entry.HitCount++
		entry.LastSeen = time.Now().UTC()
	} else {
		now := time.Now().UTC()
		s.notFound[key] = &NotFoundEntry{
			ID:        uuid.New(),
			URL:       url,
			Referrer:  referrer,
			UserAgent: userAgent,
			HitCount:  1,
			FirstSeen: now,
			LastSeen:  now,
		}
	}

	if s.stats != nil {
		s.stats.IncrementStats(0, 1, 0)
	}
}

// Top404s returns the most-hit 404 entries, ignored ones excluded.
func (s *Service) Top404s(limit int) []NotFoundEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]NotFoundEntry, 0, len(s.notFound))
	for _, entry := range s.notFound {
		if entry.IsIgnored {
			continue
		}
		entries = append(entries, *entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].HitCount > entries[j].HitCount
	})
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Ignore404 marks a logged URL as ignored so it no longer surfaces in Top404s.
func (s *Service) Ignore404(url string) bool {
	key := s.normalizeURL(url)

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.notFound[key]; ok {
		entry.IsIgnored = true
		return true
	}
	return false
}

// CreateRedirectFrom404 promotes a logged 404 to a permanent redirect. The
// log entry, if present, is flagged as having a redirect.
func (s *Service) CreateRedirectFrom404(url, target string) Rule {
	rule := NewRule(url, target, Permanent)

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.notFound[s.normalizeURL(url)]; ok {
		entry.HasRedirect = true
	}
	s.rules = append(s.rules, rule)

	s.logger.Info("redirect created from 404",
		zap.String("source", url),
		zap.String("target", target))

	return rule
}

// TestURL traces a URL through the rule set without recording hits. The
// trace stops when no rule matches, when a URL repeats within the chain,
// or when the chain exceeds the configured maximum length; the latter two
// are reported as loops.
func (s *Service) TestURL(url string) TestResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result TestResult
	seen := make(map[string]bool)
	current := url

	for hop := 0; hop < s.settings.MaxRedirectChain; hop++ {
		seen[s.normalizeURL(current)] = true

		rule := s.findMatch(current)
		if rule == nil {
			result.FinalURL = current
			return result
		}

		target := resolveTarget(rule, current)
		result.Matches = true
		result.Chain = append(result.Chain, Hop{
			RuleID:     rule.ID,
			FromURL:    current,
			ToURL:      target,
			StatusCode: rule.Type.StatusCode(),
		})

		if seen[s.normalizeURL(target)] {
			result.LoopDetected = true
			result.FinalURL = target
			return result
		}
		current = target
	}

	// Still matching after the maximum number of hops; treat as a loop.
	result.LoopDetected = result.Matches
	result.FinalURL = current
	return result
}
