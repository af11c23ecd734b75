// Package pageinstead assembles curated quotes into the quotes.json
// dataset consumed by the PageInstead app, and provides the utilities
// that operate on an existing dataset (shuffle, search, retag support).
package pageinstead

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/jachren-f4/pageinstead-curator/internal/entities"
)

// FormatVersion is the dataset schema version stamped on every export.
const FormatVersion = 1

const coverURLTemplate = "https://m.media-amazon.com/images/P/%s.jpg"

const dateLayout = "2006-01-02"

// Assemble maps curated quotes into the output schema. Ids are assigned
// sequentially in input order, 1-based and dense. Every quote in one run
// shares the same dateAdded stamp.
func Assemble(quotes []entities.CuratedQuote, now time.Time) entities.QuoteFile {
	stamp := now.Format(dateLayout)

	out := make([]entities.Quote, 0, len(quotes))
	for i, q := range quotes {
		author := q.Author
		if author == "" {
			author = "Unknown"
		}

		tags := q.Tags
		if len(tags) > 3 {
			tags = tags[:3]
		}

		out = append(out, entities.Quote{
			ID:            i + 1,
			Text:          q.Text,
			Author:        author,
			BookTitle:     q.BookTitle,
			BookID:        BookID(author, q.BookTitle),
			ASIN:          q.ASIN,
			CoverImageURL: CoverURL(q.ASIN),
			IsActive:      true,
			Tags:          tags,
			DateAdded:     stamp,
		})
	}

	return entities.QuoteFile{
		Version:     FormatVersion,
		LastUpdated: stamp,
		Quotes:      out,
	}
}

// BookID derives a stable book identifier from author and title:
// author slug plus a 4-digit suffix. The suffix is FNV-1a 32-bit of the
// title mod 10000 — a documented, portable hash, fixed so that the same
// (author, title) always re-derives the same id across runs and machines.
func BookID(author, title string) string {
	return fmt.Sprintf("%s_%04d", AuthorSlug(author), titleHash(title)%10000)
}

// AuthorSlug lowercases the author name, replaces spaces with
// underscores, and strips periods and apostrophes.
func AuthorSlug(author string) string {
	if author == "" {
		return "unknown"
	}
	slug := strings.ToLower(author)
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, ".", "")
	slug = strings.ReplaceAll(slug, "'", "")
	return slug
}

// CoverURL returns the Amazon cover image URL for an ASIN, or empty when
// the source has none.
func CoverURL(asin string) string {
	if asin == "" {
		return ""
	}
	return fmt.Sprintf(coverURLTemplate, asin)
}

func titleHash(title string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(title))
	return h.Sum32()
}
