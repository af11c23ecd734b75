package entities

// SourceType categorizes where a group of highlights came from.
// Classification is heuristic; misclassification is expected and tolerated.
type SourceType string

const (
	SourceTypeBook    SourceType = "book"
	SourceTypeArticle SourceType = "article"
	SourceTypeTweet   SourceType = "tweet"
	SourceTypeOther   SourceType = "other"
)

// Highlight is one extracted unit of source text with its metadata.
type Highlight struct {
	Text     string
	Author   string
	ASIN     string
	Note     string
	Location string
	Length   int // character count of Text, derived at load time
	Score    int // set by the quality scorer during stage 1
}

// Book groups all highlights sharing a source title.
type Book struct {
	Title      string
	Author     string
	ASIN       string
	SourceType SourceType
	Highlights []Highlight
}

// CuratedQuote is a highlight that survived filtering and selection,
// annotated with tags for the final dataset.
type CuratedQuote struct {
	BookTitle string
	Author    string
	ASIN      string
	Text      string
	Score     int
	Tags      []string
	Note      string
}

// Quote is one entry in the PageInstead quotes.json dataset. Field names
// and types are a hard compatibility contract with the mobile app.
type Quote struct {
	ID            int      `json:"id"`
	Text          string   `json:"text"`
	Author        string   `json:"author"`
	BookTitle     string   `json:"bookTitle"`
	BookID        string   `json:"bookId"`
	ASIN          string   `json:"asin,omitempty"`
	CoverImageURL string   `json:"coverImageURL,omitempty"`
	IsActive      bool     `json:"isActive"`
	Tags          []string `json:"tags"`
	DateAdded     string   `json:"dateAdded"`
}

// QuoteFile is the envelope written to quotes.json.
type QuoteFile struct {
	Version     int     `json:"version"`
	LastUpdated string  `json:"lastUpdated"`
	Quotes      []Quote `json:"quotes"`
}

// ReviewCandidate is one scored quote candidate in the manual-review export.
type ReviewCandidate struct {
	Text     string `json:"text"`
	Score    int    `json:"score"`
	Length   int    `json:"length"`
	Note     string `json:"note"`
	Selected bool   `json:"selected"`
}

// ReviewBook is one book section in the manual-review export.
type ReviewBook struct {
	BookTitle      string            `json:"book_title"`
	Author         string            `json:"author"`
	ASIN           string            `json:"asin"`
	HighlightCount int               `json:"highlight_count"`
	Candidates     []ReviewCandidate `json:"candidates"`
}

// SelectedQuote is the input record for direct JSON conversion, produced
// by external review tooling.
type SelectedQuote struct {
	BookTitle string `json:"book_title"`
	Author    string `json:"author"`
	Highlight string `json:"highlight"`
	ASIN      string `json:"asin"`
	Score     int    `json:"score,omitempty"`
}
