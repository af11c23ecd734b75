package filter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Chapter/section markers that only ever start headings.
var headingKeywords = []string{
	"chapter ", "part ", "section ", "phase ", "step ",
	"lesson ", "appendix", "introduction", "conclusion",
	"preface", "foreword", "prologue", "epilogue",
}

var (
	numberedHeadingPattern = regexp.MustCompile(`\b(chapter|part|section|phase|step)\s+\d+`)
	leadingNumeralPattern  = regexp.MustCompile(`^\d+[.:]\s+[A-Z]`)
)

// isHeading detects chapter-heading and section-title shapes. Each check
// is a weak signal on its own; together they catch the structural text a
// highlighter sweeps up along with real quotes.
func isHeading(text string, commonVerbs []string) bool {
	stripped := strings.TrimSpace(text)
	if stripped == "" {
		return true
	}
	lower := strings.ToLower(stripped)

	for _, kw := range headingKeywords {
		if strings.HasPrefix(lower, kw) {
			return true
		}
	}

	if numberedHeadingPattern.MatchString(lower) {
		return true
	}

	if leadingNumeralPattern.MatchString(stripped) {
		return true
	}

	length := utf8.RuneCountInString(stripped)

	// Mostly uppercase; only meaningful for short text.
	if length < 100 {
		upper, letters := 0, 0
		for _, c := range stripped {
			if unicode.IsLetter(c) {
				letters++
				if unicode.IsUpper(c) {
					upper++
				}
			}
		}
		if letters > 0 && float64(upper)/float64(letters) > 0.7 {
			return true
		}
	}

	// Title Case with no terminal punctuation.
	words := strings.Fields(stripped)
	if len(words) <= 8 && !endsWithTerminal(stripped) {
		capitalized := 0
		for _, w := range words {
			r := []rune(w)
			if len(r) > 0 && unicode.IsUpper(r[0]) {
				capitalized++
			}
		}
		if float64(capitalized) >= float64(len(words))*0.7 {
			return true
		}
	}

	// Short and verb-less: a fragment, not a sentence.
	if length < 60 {
		tokens := strings.Fields(lower)
		hasVerb := false
		for _, verb := range commonVerbs {
			for _, tok := range tokens {
				if tok == verb {
					hasVerb = true
					break
				}
			}
			if hasVerb {
				break
			}
		}
		if !hasVerb {
			return true
		}
	}

	return false
}

func endsWithTerminal(text string) bool {
	if text == "" {
		return false
	}
	last := text[len(text)-1]
	return last == '.' || last == '!' || last == '?' || last == '"'
}
