// Package readwise parses Readwise CSV exports into grouped highlights.
// Column names vary across export versions, so every logical field is
// resolved through an ordered list of header aliases.
package readwise

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jachren-f4/pageinstead-curator/internal/classify"
	"github.com/jachren-f4/pageinstead-curator/internal/entities"
)

// FieldAliases maps a logical field to the header names it may appear
// under, in preference order. Matching is case-insensitive.
type FieldAliases struct {
	Title    []string
	Author   []string
	Text     []string
	Note     []string
	Location []string
	ASIN     []string
}

// DefaultAliases covers the Readwise export variants observed in the wild.
func DefaultAliases() FieldAliases {
	return FieldAliases{
		Title:    []string{"Book Title", "Title", "book_title", "title"},
		Author:   []string{"Book Author", "Author", "author"},
		Text:     []string{"Highlight", "Text", "highlight", "text"},
		Note:     []string{"Note", "note", "Notes"},
		Location: []string{"Location", "location"},
		ASIN:     []string{"Amazon Book ID", "ASIN", "asin", "Book ID"},
	}
}

// Stats summarizes a load: how many rows were seen, how many were skipped
// for missing required fields, and the per-source-type breakdown.
type Stats struct {
	TotalRows       int
	SkippedRows     int
	TotalHighlights int
	Headers         []string
	SourceCounts    map[entities.SourceType]int
	HighlightCounts map[entities.SourceType]int
}

// Parser reads a Readwise CSV export and groups highlights by book title.
type Parser struct {
	aliases FieldAliases
}

func NewParser() *Parser {
	return &Parser{aliases: DefaultAliases()}
}

// NewParserWithAliases lets callers supply their own header alias lists.
func NewParserWithAliases(aliases FieldAliases) *Parser {
	return &Parser{aliases: aliases}
}

// Parse reads the full CSV and returns groups in first-seen title order.
// Rows missing a title or highlight text are skipped silently; that is
// expected noise in bulk exports, not a failure.
func (p *Parser) Parse(r io.Reader) ([]entities.Book, Stats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to read header: %w", err)
	}

	headerIndex := make(map[string]int, len(header))
	for i, h := range header {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}

	stats := Stats{
		Headers:         header,
		SourceCounts:    make(map[entities.SourceType]int),
		HighlightCounts: make(map[entities.SourceType]int),
	}

	bookMap := make(map[string]*entities.Book)
	var bookOrder []string

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed row is skipped, same as a row missing fields.
			stats.SkippedRows++
			continue
		}
		stats.TotalRows++

		title := getValue(record, headerIndex, p.aliases.Title)
		text := getValue(record, headerIndex, p.aliases.Text)
		if title == "" || text == "" {
			stats.SkippedRows++
			continue
		}

		author := getValue(record, headerIndex, p.aliases.Author)
		asin := getValue(record, headerIndex, p.aliases.ASIN)

		stats.TotalHighlights++

		book, exists := bookMap[title]
		if !exists {
			book = &entities.Book{
				Title:      title,
				Author:     author,
				ASIN:       asin,
				SourceType: classify.Detect(title, author, asin),
			}
			bookMap[title] = book
			bookOrder = append(bookOrder, title)
		}

		book.Highlights = append(book.Highlights, entities.Highlight{
			Text:     text,
			Author:   author,
			ASIN:     asin,
			Note:     getValue(record, headerIndex, p.aliases.Note),
			Location: getValue(record, headerIndex, p.aliases.Location),
			Length:   utf8.RuneCountInString(text),
		})
	}

	books := make([]entities.Book, 0, len(bookOrder))
	for _, title := range bookOrder {
		book := bookMap[title]
		stats.SourceCounts[book.SourceType]++
		stats.HighlightCounts[book.SourceType] += len(book.Highlights)
		books = append(books, *book)
	}

	return books, stats, nil
}

// getValue returns the first non-empty value among the aliased columns,
// trimmed of surrounding whitespace.
func getValue(record []string, headerIndex map[string]int, aliases []string) string {
	for _, name := range aliases {
		if idx, ok := headerIndex[strings.ToLower(name)]; ok && idx < len(record) {
			if v := strings.TrimSpace(record[idx]); v != "" {
				return v
			}
		}
	}
	return ""
}
