package curator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jachren-f4/pageinstead-curator/internal/entities"
	"github.com/jachren-f4/pageinstead-curator/internal/scoring"
)

func TestCurator_EligibleBooks(t *testing.T) {
	books := []entities.Book{
		{Title: "Enough Highlights", SourceType: entities.SourceTypeBook, Highlights: make([]entities.Highlight, 5)},
		{Title: "Too Few", SourceType: entities.SourceTypeBook, Highlights: make([]entities.Highlight, 2)},
		{Title: "An Article", SourceType: entities.SourceTypeArticle, Highlights: make([]entities.Highlight, 8)},
	}

	c := New(scoring.Quality())

	eligible := c.EligibleBooks(books, true, 5)
	require.Len(t, eligible, 1)
	assert.Equal(t, "Enough Highlights", eligible[0].Title)

	all := c.EligibleBooks(books, false, 5)
	assert.Len(t, all, 2)
}

func TestCurator_SelectCandidates_FiltersAndScores(t *testing.T) {
	book := entities.Book{
		Title: "Atomic Habits",
		Highlights: []entities.Highlight{
			{Text: "Too short.", Length: 10},
			{Text: "Every action you take is a vote for the type of person you wish to become.", Length: 74},
			{Text: "Chapter 1 covers the surprising power of tiny marginal gains over time.", Length: 71},
		},
	}

	c := New(scoring.Quality())

	var stats Stats
	selected := c.SelectCandidates(book, &stats)

	require.Len(t, selected, 1)
	assert.Equal(t, "Every action you take is a vote for the type of person you wish to become.", selected[0].Text)
	assert.Greater(t, selected[0].Score, 0)

	assert.Equal(t, 3, stats.TotalHighlights)
	assert.Equal(t, 1, stats.FilteredTooShort)
	assert.Equal(t, 1, stats.FilteredPoor)
	assert.Equal(t, 1, stats.Kept)
}

func TestCurator_SelectCandidates_HonorsCandidateLimit(t *testing.T) {
	book := entities.Book{Title: "Prolific"}
	for i := 0; i < 30; i++ {
		text := fmt.Sprintf("A perfectly serviceable sentence about nothing in particular, variant %c.", 'a'+i)
		book.Highlights = append(book.Highlights, entities.Highlight{Text: text, Length: len(text)})
	}

	c := New(scoring.Quality())

	var stats Stats
	selected := c.SelectCandidates(book, &stats)

	assert.Len(t, selected, scoring.Quality().CandidateLimit)
	assert.Equal(t, 30, stats.Kept)
}

func TestCurator_SelectCandidates_CountsHeadings(t *testing.T) {
	book := entities.Book{
		Title: "Headings Everywhere",
		Highlights: []entities.Highlight{
			{Text: "Chapter 7: The Habit Loop and More", Length: 34},
			{Text: "You do not rise to the level of your goals, you fall to the level of your systems.", Length: 83},
		},
	}

	c := New(scoring.Realness())

	var stats Stats
	selected := c.SelectCandidates(book, &stats)

	require.Len(t, selected, 1)
	assert.Equal(t, 1, stats.FilteredHeadings)
}

func TestNew_PolicyBoundsOverrideRuleBounds(t *testing.T) {
	policy := scoring.Quality()
	policy.MinLength = 100
	policy.MaxLength = 200

	c := New(policy)

	book := entities.Book{
		Title: "Bounds",
		Highlights: []entities.Highlight{
			{Text: "Long enough for the default rules but short of the custom minimum.", Length: 66},
		},
	}

	var stats Stats
	assert.Empty(t, c.SelectCandidates(book, &stats))
	assert.Equal(t, 1, stats.FilteredTooShort)
}
