package scoring

import (
	"strings"
	"unicode/utf8"

	"github.com/jachren-f4/pageinstead-curator/internal/entities"
)

// Scorer computes the heuristic quality score for one highlight under a
// fixed policy. Scoring is pure: identical input always yields the same
// score, which makes selection reproducible.
type Scorer struct {
	policy Policy
}

func NewScorer(policy Policy) *Scorer {
	return &Scorer{policy: policy}
}

func (s *Scorer) Policy() Policy {
	return s.policy
}

// Score returns the policy score for a highlight. The base score is
// always awarded; every other term is a weighted bonus or penalty.
func (s *Scorer) Score(h entities.Highlight) int {
	w := s.policy.Weights
	text := h.Text
	textLower := strings.ToLower(text)
	length := utf8.RuneCountInString(text)

	score := w.Base

	for _, win := range w.LengthWindows {
		if length >= win.Min && length <= win.Max {
			score += win.Bonus
			break
		}
	}

	if h.Note != "" {
		score += w.Note
	}

	if containsQuoteMark(text) {
		score += w.QuoteMarks
	}

	if w.Inspirational != 0 {
		score += w.Inspirational * countSubstrings(textLower, s.policy.Keywords.Inspirational)
	}
	if w.Reading != 0 {
		score += w.Reading * countSubstrings(textLower, s.policy.Keywords.Reading)
	}

	if s.policy.Kind == KindRealness {
		padded := " " + textLower + " "
		score += w.Verb * countWordsPresent(padded, s.policy.Keywords.Verbs)
		score += w.Pronoun * countWordsPresent(padded, s.policy.Keywords.Pronouns)
		score += w.Conjunction * countWordsPresent(padded, s.policy.Keywords.Conjunctions)
		score += w.Article * countWordOccurrences(padded, s.policy.Keywords.Articles)

		if endsWithTerminal(text) {
			score += w.TerminalPunct
		}
		if w.TooShortUnder > 0 && length < w.TooShortUnder {
			score -= w.TooShort
		}
	}

	if isCompleteSentence(text) {
		score += w.SentenceShape
	}

	if w.Question != 0 && strings.Contains(text, "?") {
		score -= w.Question
	}

	return score
}

// countSubstrings counts how many keywords appear anywhere in the text.
// Substring matching is deliberate: "reader" matches "read".
func countSubstrings(textLower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(textLower, kw) {
			n++
		}
	}
	return n
}

// countWordsPresent counts keywords that occur as standalone words,
// one point per keyword regardless of repetition.
func countWordsPresent(padded string, words []string) int {
	n := 0
	for _, word := range words {
		if strings.Contains(padded, " "+word+" ") {
			n++
		}
	}
	return n
}

// countWordOccurrences counts every standalone occurrence of each word.
func countWordOccurrences(padded string, words []string) int {
	n := 0
	for _, word := range words {
		n += strings.Count(padded, " "+word+" ")
	}
	return n
}

func containsQuoteMark(text string) bool {
	return strings.ContainsAny(text, "\"“”")
}

func endsWithTerminal(text string) bool {
	if text == "" {
		return false
	}
	last := text[len(text)-1]
	return last == '.' || last == '!' || last == '?' || last == '"'
}

func isCompleteSentence(text string) bool {
	if text == "" {
		return false
	}
	first := rune(text[0])
	return first >= 'A' && first <= 'Z' && endsWithTerminal(text)
}
