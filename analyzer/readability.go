package analyzer

import (
	"strings"
)

// Lexical marker sets for the passive-voice and transition-word heuristics.
// These are deliberate approximations, not linguistic parses; the exact sets
// are part of the scoring contract and must not be "improved".
var passiveMarkers = []string{"was ", "were ", "been ", "being ", "is being", "are being"}

var transitionWords = []string{
	"however", "therefore", "moreover", "furthermore", "additionally",
	"consequently", "meanwhile", "nevertheless", "also", "first", "second", "finally",
}

// analyzeReadability computes Flesch-based readability estimates and the
// passive/transition heuristics over the body content.
func (a *Analyzer) analyzeReadability(content string) ReadabilityAnalysis {
	var issues []Issue
	score := 100

	words := strings.Fields(content)
	wc := len(words)
	sentences := sentenceCount(content)

	avgSentence := float64(wc) / float64(sentences)
	if avgSentence > 25.0 {
		issues = append(issues, newIssue(SeverityWarning,
			"Sentences are too long",
			"Try to keep sentences under 20-25 words for better readability."))
		score -= 15
	}

	totalChars := 0
	for _, w := range words {
		totalChars += len(w)
	}
	avgWord := 0.0
	if wc > 0 {
		avgWord = float64(totalChars) / float64(wc)
	}

	// Flesch Reading Ease approximation using average word length in place
	// of syllable counting.
	flesch := 206.835 - (1.015 * avgSentence) - (84.6 * (avgWord / 5.0))
	if flesch < 30.0 {
		issues = append(issues, newIssue(SeverityWarning,
			"Content is very difficult to read",
			"Simplify your language and use shorter sentences."))
		score -= 20
	} else if flesch < 50.0 {
		issues = append(issues, newIssue(SeverityInfo,
			"Content is fairly difficult to read",
			"Consider simplifying some sentences."))
		score -= 10
	}

	grade := 0.39*avgSentence + 11.8*(avgWord/5.0) - 15.59

	lower := strings.ToLower(content)
	passiveCount := 0
	for _, marker := range passiveMarkers {
		passiveCount += strings.Count(lower, marker)
	}
	passivePct := float64(passiveCount) / float64(sentences) * 100
	if passivePct > 20.0 {
		issues = append(issues, newIssue(SeverityInfo,
			"High use of passive voice",
			"Try using more active voice for engaging content."))
		score -= 5
	}

	transitionCount := 0
	for _, word := range transitionWords {
		transitionCount += strings.Count(lower, word)
	}
	transitionPct := float64(transitionCount) / float64(sentences) * 100
	if transitionPct < 20.0 && sentences > 3 {
		issues = append(issues, newIssue(SeverityInfo,
			"Few transition words",
			"Use more transition words to improve flow."))
		score -= 5
	}

	if flesch < 0 {
		flesch = 0
	}
	if grade < 0 {
		grade = 0
	}

	return ReadabilityAnalysis{
		Score:                    clampScore(score),
		FleschReadingEase:        flesch,
		FleschKincaidGrade:       grade,
		AvgSentenceLength:        avgSentence,
		AvgWordLength:            avgWord,
		PassiveVoicePercentage:   passivePct,
		TransitionWordPercentage: transitionPct,
		Issues:                   issues,
	}
}
