// Package classify labels grouped highlights as book, article, tweet or
// other based on title, author and ASIN. The rules are heuristic; a wrong
// label is never an error, downstream filtering just works on less data.
package classify

import (
	"strings"

	"github.com/jachren-f4/pageinstead-curator/internal/entities"
)

// Heuristic cutoffs. Arbitrary but stable: changing them changes which
// sources count as books/articles, so they live here as named constants
// rather than inline literals.
const (
	asinLength         = 10
	minArticleTitleLen = 10
)

// Detect classifies a source by (title, author, asin). First match wins:
// the categories are not mutually exclusive by content alone, so order
// matters (a tweet export can carry an author and a long title).
func Detect(title, author, asin string) entities.SourceType {
	titleLower := strings.ToLower(title)

	if strings.Contains(titleLower, "tweet from") || strings.Contains(titleLower, "tweets from") {
		return entities.SourceTypeTweet
	}

	if len(asin) == asinLength {
		return entities.SourceTypeBook
	}

	if asin == "" && author != "" && len(title) > minArticleTitleLen {
		return entities.SourceTypeArticle
	}

	return entities.SourceTypeOther
}
