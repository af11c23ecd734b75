package pageinstead

import (
	"math/rand"

	"github.com/jachren-f4/pageinstead-curator/internal/entities"
)

// Shuffle interleaves quotes so that quotes from the same book end up far
// apart: one pass takes the first quote of every book in random order, a
// second pass drains the rest. Ids are reassigned densely afterwards so
// the output still satisfies the 1..N contract.
func Shuffle(quotes []entities.Quote, rng *rand.Rand) []entities.Quote {
	byBook := make(map[string][]entities.Quote)
	var titles []string
	for _, q := range quotes {
		if _, seen := byBook[q.BookTitle]; !seen {
			titles = append(titles, q.BookTitle)
		}
		byBook[q.BookTitle] = append(byBook[q.BookTitle], q)
	}

	shuffled := make([]entities.Quote, 0, len(quotes))

	order := append([]string(nil), titles...)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	for _, title := range order {
		if len(byBook[title]) > 0 {
			shuffled = append(shuffled, byBook[title][0])
			byBook[title] = byBook[title][1:]
		}
	}

	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	for _, title := range order {
		for len(byBook[title]) > 0 {
			shuffled = append(shuffled, byBook[title][0])
			byBook[title] = byBook[title][1:]
		}
	}

	for i := range shuffled {
		shuffled[i].ID = i + 1
	}
	return shuffled
}

// MinSameBookDistance reports the smallest index gap between two quotes
// of the same book, for post-shuffle verification. Returns 0 when no book
// appears twice.
func MinSameBookDistance(quotes []entities.Quote) int {
	lastSeen := make(map[string]int)
	min := 0
	for i, q := range quotes {
		if prev, ok := lastSeen[q.BookTitle]; ok {
			if gap := i - prev; min == 0 || gap < min {
				min = gap
			}
		}
		lastSeen[q.BookTitle] = i
	}
	return min
}
