package pageinstead

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jachren-f4/pageinstead-curator/internal/entities"
)

func datasetOf(perBook map[string]int) []entities.Quote {
	var quotes []entities.Quote
	id := 1
	for _, title := range []string{"Book A", "Book B", "Book C", "Book D"} {
		for i := 0; i < perBook[title]; i++ {
			quotes = append(quotes, entities.Quote{
				ID:        id,
				Text:      fmt.Sprintf("%s quote %d", title, i+1),
				BookTitle: title,
			})
			id++
		}
	}
	return quotes
}

func TestShuffle_PreservesQuotesAndReassignsDenseIDs(t *testing.T) {
	input := datasetOf(map[string]int{"Book A": 3, "Book B": 3, "Book C": 2, "Book D": 1})
	shuffled := Shuffle(input, rand.New(rand.NewSource(42)))

	require.Len(t, shuffled, len(input))

	seenIDs := make(map[int]bool)
	seenTexts := make(map[string]bool)
	for i, q := range shuffled {
		assert.Equal(t, i+1, q.ID)
		seenIDs[q.ID] = true
		seenTexts[q.Text] = true
	}
	assert.Len(t, seenIDs, len(input))

	for _, q := range input {
		assert.True(t, seenTexts[q.Text], q.Text)
	}
}

func TestShuffle_FirstPassCoversEveryBook(t *testing.T) {
	input := datasetOf(map[string]int{"Book A": 5, "Book B": 5, "Book C": 5, "Book D": 5})
	shuffled := Shuffle(input, rand.New(rand.NewSource(7)))

	// The first four slots hold one quote from each of the four books.
	titles := make(map[string]bool)
	for _, q := range shuffled[:4] {
		titles[q.BookTitle] = true
	}
	assert.Len(t, titles, 4)
}

func TestShuffle_ReproducibleWithSeed(t *testing.T) {
	input := datasetOf(map[string]int{"Book A": 4, "Book B": 4, "Book C": 4, "Book D": 4})

	first := Shuffle(input, rand.New(rand.NewSource(99)))
	second := Shuffle(input, rand.New(rand.NewSource(99)))

	assert.Equal(t, first, second)
}

func TestMinSameBookDistance(t *testing.T) {
	quotes := []entities.Quote{
		{BookTitle: "Book A"},
		{BookTitle: "Book B"},
		{BookTitle: "Book A"},
		{BookTitle: "Book C"},
		{BookTitle: "Book B"},
	}
	assert.Equal(t, 2, MinSameBookDistance(quotes))

	unique := []entities.Quote{{BookTitle: "Book A"}, {BookTitle: "Book B"}}
	assert.Equal(t, 0, MinSameBookDistance(unique))
}

func TestShuffle_Empty(t *testing.T) {
	assert.Empty(t, Shuffle(nil, rand.New(rand.NewSource(1))))
}
