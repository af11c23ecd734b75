package pageinstead

import (
	"regexp"
	"strings"
)

var (
	parentheticalSuffix = regexp.MustCompile(`\s*\([^)]+\)\s*$`)
	editionSuffix       = regexp.MustCompile(`(?i),?\s+(Enhanced|Expanded|Revised|Updated|Anniversary|Special) Edition.*$`)
)

// CleanTitle strips subtitles and marketing suffixes from a book title
// so the dataset shows "Atomic Habits" instead of the full store listing.
// Applied before BookID derivation, so cleaning changes the id.
func CleanTitle(title string) string {
	// Everything after a colon is a subtitle.
	if idx := strings.Index(title, ":"); idx >= 0 {
		title = strings.TrimSpace(title[:idx])
	}

	// A dash splits off a subtitle only when the tail is long enough to
	// be one, not an author name or series marker.
	if parts := strings.Split(title, " - "); len(parts) == 2 && len(parts[1]) > 10 {
		title = strings.TrimSpace(parts[0])
	}

	title = parentheticalSuffix.ReplaceAllString(title, "")
	title = editionSuffix.ReplaceAllString(title, "")

	return strings.TrimSpace(title)
}
