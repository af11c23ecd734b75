// Package tagging derives topical labels from quote text via keyword-set
// membership. Vocabularies are injected data so the three historical
// variants share one extractor, and output is deterministic: sorted,
// deduplicated, capped at three, never empty.
package tagging

import (
	"sort"
	"strings"
)

// MaxTags caps every result; a quote never carries more than three tags.
const MaxTags = 3

// Vocabulary maps a tag name to the keywords that trigger it. Matching
// is case-insensitive substring anywhere in the text.
type Vocabulary map[string][]string

// TitleFallback assigns a tag when the book title contains any of its
// keywords and no content tag matched.
type TitleFallback struct {
	Tag      string
	Keywords []string
}

// Tagger extracts tags under one vocabulary and fallback policy.
type Tagger struct {
	vocab          Vocabulary
	useTitlePass   bool // also scan the book title with the vocabulary
	titleFallbacks []TitleFallback
	defaultTag     string
}

// New builds a tagger. defaultTag is emitted when nothing else matches,
// so the result is never empty.
func New(vocab Vocabulary, defaultTag string) *Tagger {
	return &Tagger{vocab: vocab, defaultTag: defaultTag}
}

// WithTitlePass makes the tagger scan the book title with the same
// vocabulary when the text itself yields no tags.
func (t *Tagger) WithTitlePass() *Tagger {
	t.useTitlePass = true
	return t
}

// WithTitleFallbacks sets the ordered title-keyword fallback chain
// consulted before the default tag.
func (t *Tagger) WithTitleFallbacks(fallbacks []TitleFallback) *Tagger {
	t.titleFallbacks = fallbacks
	return t
}

// Tags returns between 1 and MaxTags sorted, deduplicated tags for the
// text, consulting the book title only as a fallback.
func (t *Tagger) Tags(text, bookTitle string) []string {
	textLower := strings.ToLower(text)

	matched := make(map[string]bool)
	for tag, keywords := range t.vocab {
		for _, kw := range keywords {
			if strings.Contains(textLower, kw) {
				matched[tag] = true
				break
			}
		}
	}

	if len(matched) == 0 && t.useTitlePass && bookTitle != "" {
		titleLower := strings.ToLower(bookTitle)
		for tag, keywords := range t.vocab {
			for _, kw := range keywords {
				if strings.Contains(titleLower, kw) {
					matched[tag] = true
					break
				}
			}
		}
	}

	if len(matched) == 0 {
		titleLower := strings.ToLower(bookTitle)
		for _, fb := range t.titleFallbacks {
			for _, kw := range fb.Keywords {
				if strings.Contains(titleLower, kw) {
					matched[fb.Tag] = true
					break
				}
			}
			if len(matched) > 0 {
				break
			}
		}
	}

	if len(matched) == 0 {
		matched[t.defaultTag] = true
	}

	tags := make([]string, 0, len(matched))
	for tag := range matched {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	if len(tags) > MaxTags {
		tags = tags[:MaxTags]
	}
	return tags
}
