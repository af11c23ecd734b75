// Package filter applies hard structural rejection rules to candidate
// quote text. Every rule must pass; failures are counted by reason but
// never surfaced as errors.
package filter

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Reason says why a candidate was rejected, or ReasonNone if it passed.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonTooShort
	ReasonTooLong
	ReasonHeading
	ReasonPoorQuality
)

var digitRunPattern = regexp.MustCompile(`\d+`)

// Rules is the per-policy rejection configuration. Zero-valued limits
// disable the corresponding rule.
type Rules struct {
	MinLength int
	MaxLength int

	// BadPrefixes rejects text starting with structural markers such as
	// chapter/figure/table/URL prefixes (case-insensitive).
	BadPrefixes []string

	MaxDigitRuns  int // runs of consecutive digits, e.g. "42" counts once
	MaxDigitChars int // individual digit characters
	MaxBullets    int // '•' characters
	MaxLineBreaks int // '\n' characters
	MaxDashItems  int // "\n-" list items

	// DetectHeadings enables the chapter-heading shape detector.
	DetectHeadings bool
	// HeadingVerbs is the common-verb list the heading detector uses to
	// spot short verb-less fragments. Injected data, not inline literals.
	HeadingVerbs []string
}

// QualityRules matches the wide-bounds review pipeline.
func QualityRules() Rules {
	return Rules{
		MinLength: 40,
		MaxLength: 500,
		BadPrefixes: []string{
			"chapter ", "figure ", "table ", "see page",
			"according to", "in the year", "references:",
			"http://", "https://", "www.",
		},
		MaxDigitRuns:  3,
		MaxBullets:    2,
		MaxLineBreaks: 3,
	}
}

// RealnessRules adds heading detection and tighter bounds.
func RealnessRules() Rules {
	return Rules{
		MinLength:      25,
		MaxLength:      250,
		BadPrefixes:    []string{"http", "www.", "see page", "figure ", "table "},
		MaxDigitChars:  10,
		MaxBullets:     2,
		MaxLineBreaks:  3,
		MaxDashItems:   2,
		DetectHeadings: true,
		HeadingVerbs: []string{
			"is", "are", "was", "were", "be", "been", "being",
			"have", "has", "had", "do", "does", "did",
			"will", "would", "should", "could", "can", "may",
			"get", "make", "take", "think", "know", "see",
			"come", "go", "say", "find", "give", "tell", "feel",
		},
	}
}

// ShortnessRules keeps only compact list-free text.
func ShortnessRules() Rules {
	return Rules{
		MinLength:     20,
		MaxLength:     300,
		BadPrefixes:   []string{"chapter ", "figure ", "table ", "http", "www."},
		MaxDigitChars: 5,
		MaxLineBreaks: 2,
	}
}

// ForPolicy maps a policy name to its rule set; unknown names get the
// quality rules.
func ForPolicy(name string) Rules {
	switch name {
	case "realness":
		return RealnessRules()
	case "shortness":
		return ShortnessRules()
	default:
		return QualityRules()
	}
}

// Acceptable reports whether the text passes every rule.
func (r Rules) Acceptable(text string) bool {
	return r.Check(text) == ReasonNone
}

// Check returns the first rule the text violates. Length bounds count
// characters, not bytes, so curly quotes and accents don't shift them.
func (r Rules) Check(text string) Reason {
	length := utf8.RuneCountInString(text)
	if r.MinLength > 0 && length < r.MinLength {
		return ReasonTooShort
	}
	if r.MaxLength > 0 && length > r.MaxLength {
		return ReasonTooLong
	}

	if r.DetectHeadings && isHeading(text, r.HeadingVerbs) {
		return ReasonHeading
	}

	textLower := strings.ToLower(text)
	for _, prefix := range r.BadPrefixes {
		if strings.HasPrefix(textLower, prefix) {
			return ReasonPoorQuality
		}
	}

	if r.MaxDigitRuns > 0 && len(digitRunPattern.FindAllString(text, -1)) > r.MaxDigitRuns {
		return ReasonPoorQuality
	}
	if r.MaxDigitChars > 0 && countDigits(text) > r.MaxDigitChars {
		return ReasonPoorQuality
	}
	if r.MaxBullets > 0 && strings.Count(text, "•") > r.MaxBullets {
		return ReasonPoorQuality
	}
	if r.MaxLineBreaks > 0 && strings.Count(text, "\n") > r.MaxLineBreaks {
		return ReasonPoorQuality
	}
	if r.MaxDashItems > 0 && strings.Count(text, "\n-") > r.MaxDashItems {
		return ReasonPoorQuality
	}

	return ReasonNone
}

func countDigits(text string) int {
	n := 0
	for _, c := range text {
		if c >= '0' && c <= '9' {
			n++
		}
	}
	return n
}
