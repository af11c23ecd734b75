package readwise

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jachren-f4/pageinstead-curator/internal/entities"
)

func TestParser_Parse_GroupsByTitle(t *testing.T) {
	input := `Highlight,Book Title,Book Author,Amazon Book ID,Note,Location
"You do not rise to the level of your goals. You fall to the level of your systems.",Atomic Habits,James Clear,B07D23CFGR,,1190
"Every action you take is a vote for the type of person you wish to become.",Atomic Habits,James Clear,B07D23CFGR,great one,612
"The obstacle is the way.",The Obstacle Is the Way,Ryan Holiday,B00G3L1B8K,,88
`

	books, stats, err := NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, books, 2)

	// First-seen title order is preserved.
	assert.Equal(t, "Atomic Habits", books[0].Title)
	assert.Equal(t, "James Clear", books[0].Author)
	assert.Equal(t, "B07D23CFGR", books[0].ASIN)
	assert.Equal(t, entities.SourceTypeBook, books[0].SourceType)
	assert.Len(t, books[0].Highlights, 2)

	assert.Equal(t, "The Obstacle Is the Way", books[1].Title)
	assert.Len(t, books[1].Highlights, 1)

	assert.Equal(t, 3, stats.TotalHighlights)
	assert.Equal(t, 0, stats.SkippedRows)
	assert.Equal(t, 2, stats.SourceCounts[entities.SourceTypeBook])
	assert.Equal(t, 3, stats.HighlightCounts[entities.SourceTypeBook])
}

func TestParser_Parse_NoteAndLocation(t *testing.T) {
	input := `Highlight,Book Title,Book Author,Amazon Book ID,Note,Location
"Every action you take is a vote.",Atomic Habits,James Clear,B07D23CFGR,identity change,612
`

	books, _, err := NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, books, 1)

	h := books[0].Highlights[0]
	assert.Equal(t, "identity change", h.Note)
	assert.Equal(t, "612", h.Location)
	assert.Equal(t, len(h.Text), h.Length)
}

func TestParser_Parse_AlternateHeaderNames(t *testing.T) {
	input := `text,title,author,asin
"A different export variant still parses.",Some Book,Someone,B000000001
`

	books, _, err := NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Some Book", books[0].Title)
	assert.Equal(t, "B000000001", books[0].ASIN)
	assert.Equal(t, "A different export variant still parses.", books[0].Highlights[0].Text)
}

func TestParser_Parse_SkipsIncompleteRows(t *testing.T) {
	input := `Highlight,Book Title,Book Author
"Kept highlight.",Some Book,Someone
,Some Book,Someone
"Orphan highlight without a title.",,Someone
`

	books, stats, err := NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Len(t, books[0].Highlights, 1)
	assert.Equal(t, 2, stats.SkippedRows)
	assert.Equal(t, 1, stats.TotalHighlights)
}

func TestParser_Parse_VariableFieldCounts(t *testing.T) {
	// Trailing columns are optional; short rows must not fail the load.
	input := `Highlight,Book Title,Book Author,Note
"A highlight with no note column value.",Some Book,Someone
`

	books, stats, err := NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, 0, stats.SkippedRows)
	assert.Equal(t, "", books[0].Highlights[0].Note)
}

func TestParser_Parse_LengthCountsCharacters(t *testing.T) {
	input := `Highlight,Book Title,Book Author
"“Être, c’est devenir.”",Pensées Diverses,Quelqu'un
`

	books, _, err := NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, books, 1)

	// 22 characters, 29 bytes.
	assert.Equal(t, 22, books[0].Highlights[0].Length)
}

func TestParser_Parse_EmptyFile(t *testing.T) {
	_, _, err := NewParser().Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParser_Parse_HeaderOnly(t *testing.T) {
	books, stats, err := NewParser().Parse(strings.NewReader("Highlight,Book Title\n"))
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.Equal(t, 0, stats.TotalHighlights)
}
