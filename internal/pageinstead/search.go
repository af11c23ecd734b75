package pageinstead

import (
	"strings"

	"github.com/jachren-f4/pageinstead-curator/internal/entities"
)

// Search returns quotes whose text, book title or author contains the
// query, case-insensitive.
func Search(quotes []entities.Quote, query string) []entities.Quote {
	queryLower := strings.ToLower(query)

	var matches []entities.Quote
	for _, q := range quotes {
		if strings.Contains(strings.ToLower(q.Text), queryLower) ||
			strings.Contains(strings.ToLower(q.BookTitle), queryLower) ||
			strings.Contains(strings.ToLower(q.Author), queryLower) {
			matches = append(matches, q)
		}
	}
	return matches
}
