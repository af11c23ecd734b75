// Package curator runs stage 1 of the pipeline: per-book filtering,
// scoring and top-K candidate selection under a single policy.
package curator

import (
	"github.com/jachren-f4/pageinstead-curator/internal/entities"
	"github.com/jachren-f4/pageinstead-curator/internal/filter"
	"github.com/jachren-f4/pageinstead-curator/internal/scoring"
	"github.com/jachren-f4/pageinstead-curator/internal/selection"
)

// Stats counts the fate of every highlight seen during candidate
// selection. Rejections are bookkeeping, never errors.
type Stats struct {
	TotalHighlights  int
	FilteredTooShort int
	FilteredTooLong  int
	FilteredHeadings int
	FilteredPoor     int
	Kept             int
}

// Curator applies one policy's filter rules, scorer and sort key.
type Curator struct {
	policy scoring.Policy
	rules  filter.Rules
	scorer *scoring.Scorer
}

func New(policy scoring.Policy) *Curator {
	// Rule sets follow the scoring kind; the policy's own bounds win so
	// custom policy files can tighten or relax them.
	rules := filter.ForPolicy(string(policy.Kind))
	if policy.MinLength > 0 {
		rules.MinLength = policy.MinLength
	}
	if policy.MaxLength > 0 {
		rules.MaxLength = policy.MaxLength
	}
	return &Curator{
		policy: policy,
		rules:  rules,
		scorer: scoring.NewScorer(policy),
	}
}

// NewWithRules overrides the filter rules, for custom policy files whose
// bounds differ from the built-in rule sets.
func NewWithRules(policy scoring.Policy, rules filter.Rules) *Curator {
	return &Curator{
		policy: policy,
		rules:  rules,
		scorer: scoring.NewScorer(policy),
	}
}

func (c *Curator) Policy() scoring.Policy {
	return c.policy
}

// EligibleBooks keeps groups that match the source-type and group-size
// thresholds. booksOnly keeps book-classified groups; minHighlights drops
// sparsely highlighted sources.
func (c *Curator) EligibleBooks(books []entities.Book, booksOnly bool, minHighlights int) []entities.Book {
	var eligible []entities.Book
	for _, book := range books {
		if booksOnly && book.SourceType != entities.SourceTypeBook {
			continue
		}
		if len(book.Highlights) < minHighlights {
			continue
		}
		eligible = append(eligible, book)
	}
	return eligible
}

// SelectCandidates filters and scores one book's highlights, then keeps
// the policy's candidate limit in sort-key order. The returned stats
// accumulate into the provided counter.
func (c *Curator) SelectCandidates(book entities.Book, stats *Stats) []entities.Highlight {
	var candidates []entities.Highlight

	for _, h := range book.Highlights {
		stats.TotalHighlights++

		switch c.rules.Check(h.Text) {
		case filter.ReasonTooShort:
			stats.FilteredTooShort++
			continue
		case filter.ReasonTooLong:
			stats.FilteredTooLong++
			continue
		case filter.ReasonHeading:
			stats.FilteredHeadings++
			continue
		case filter.ReasonPoorQuality:
			stats.FilteredPoor++
			continue
		}

		h.Score = c.scorer.Score(h)
		candidates = append(candidates, h)
		stats.Kept++
	}

	return selection.TopK(candidates, c.policy.SortKey, c.policy.CandidateLimit)
}
