package config

// Defaults for the curation pipeline and its file artifacts.
const (
	// DefaultPolicy is the scoring policy used when none is requested.
	DefaultPolicy = "quality"

	// DefaultMinHighlights is the minimum highlight count for a book to
	// enter curation; sparsely highlighted sources rarely yield quotes.
	DefaultMinHighlights = 5

	// DefaultTopQuotes is how many quotes per book reach the final dataset.
	DefaultTopQuotes = 2

	// DefaultReviewPath is where the manual-review JSON is written.
	DefaultReviewPath = "kindle_highlights_review.json"

	// DefaultCurationPath is where the editable curation file is written.
	DefaultCurationPath = "QUOTES_TO_CURATE.txt"

	// DefaultFinalPath is where the final quotes dataset is written.
	DefaultFinalPath = "kindle_quotes_final.json"
)
