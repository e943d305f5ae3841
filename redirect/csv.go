package redirect

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// typeFromCode maps a CSV type field to a redirect type. Unrecognized codes
// fall back to Permanent.
func typeFromCode(code string) Type {
	switch strings.TrimSpace(code) {
	case "302", "temporary":
		return Temporary
	case "307":
		return TemporaryPreserve
	case "308":
		return PermanentPreserve
	case "410", "gone":
		return Gone
	default:
		return Permanent
	}
}

// ImportCSV reads redirect rules from CSV text. Each non-empty line that does
// not start with '#' is split on commas: quoted source, quoted target and an
// optional type code. Malformed lines and duplicate source URLs are skipped
// with a line-numbered error message; one bad line never aborts the batch.
func (s *Service) ImportCSV(csv string) ImportResult {
	var result ImportResult

	s.mu.Lock()
	defer s.mu.Unlock()

	for lineNum, line := range strings.Split(csv, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: Invalid format", lineNum+1))
			result.Skipped++
			continue
		}

		source := strings.Trim(strings.TrimSpace(parts[0]), `"`)
		target := strings.Trim(strings.TrimSpace(parts[1]), `"`)

		redirectType := Permanent
		if len(parts) > 2 {
			redirectType = typeFromCode(parts[2])
		}

		duplicate := false
		for i := range s.rules {
			if s.rules[i].SourceURL == source {
				duplicate = true
				break
			}
		}
		if duplicate {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: Duplicate source URL", lineNum+1))
			result.Skipped++
			continue
		}

		s.rules = append(s.rules, NewRule(source, target, redirectType))
		result.Imported++
	}

	if s.stats != nil && result.Imported > 0 {
		s.stats.IncrementStats(0, 0, result.Imported)
	}
	s.logger.Info("csv import finished",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped))

	return result
}

// ExportCSV renders all rules as CSV text with a header row. Source and
// target are quoted; the type is its numeric status code.
func (s *Service) ExportCSV() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	b.WriteString("source,target,type\n")
	for i := range s.rules {
		fmt.Fprintf(&b, "\"%s\",\"%s\",%d\n",
			s.rules[i].SourceURL,
			s.rules[i].TargetURL,
			s.rules[i].Type.StatusCode())
	}
	return b.String()
}
