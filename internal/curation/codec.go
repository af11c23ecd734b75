// Package curation reads and writes the human-editable curation text
// format. The file is written by the pipeline, hand-edited (quote blocks
// deleted, tags adjusted, text fixed up), then read back; the reader must
// survive arbitrary edits and silently drop incomplete blocks.
package curation

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const lineWidth = 80

var (
	bannerLine    = strings.Repeat("=", lineWidth)
	sectionLine   = strings.Repeat("-", lineWidth)
	scorePattern  = regexp.MustCompile(`QUALITY SCORE:\s*(\d+)`)
	lengthPattern = regexp.MustCompile(`^LENGTH:`)
	quotePattern  = regexp.MustCompile(`^QUOTE \d+:`)
)

// Quote is one quote block within a section.
type Quote struct {
	Text  string
	Score int
	Tags  []string
	Note  string
}

// Section is one book's block in the curation file.
type Section struct {
	BookTitle string
	Author    string
	ASIN      string
	Quotes    []Quote
}

// WriteOptions controls the instruction header.
type WriteOptions struct {
	Title       string
	KeepPerBook int
	Notes       []string
	TagOptions  []string
	FinalizeCmd string
}

// Write emits the curation file: an instruction header between banner
// lines, then one section per book (alphabetical), each terminated by an
// 80-dash line. Quote text is written verbatim, embedded newlines intact.
func Write(w io.Writer, sections []Section, opts WriteOptions) error {
	bw := bufio.NewWriter(w)

	title := opts.Title
	if title == "" {
		title = "KINDLE QUOTES - MANUAL CURATION"
	}
	finalizeCmd := opts.FinalizeCmd
	if finalizeCmd == "" {
		finalizeCmd = "pageinstead-curator finalize -file <this file>"
	}

	fmt.Fprintln(bw, bannerLine)
	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, bannerLine)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "INSTRUCTIONS:")
	fmt.Fprintln(bw, "1. Review the candidate quotes for each book (sorted by quality)")
	fmt.Fprintln(bw, "2. Edit/approve the suggested TAGS for each quote")
	fmt.Fprintf(bw, "3. DELETE the quotes you don't want (keep only %d per book)\n", opts.KeepPerBook)
	fmt.Fprintln(bw, "4. Save this file")
	fmt.Fprintf(bw, "5. Run: %s\n", finalizeCmd)
	fmt.Fprintln(bw)

	if len(opts.Notes) > 0 {
		for _, note := range opts.Notes {
			fmt.Fprintln(bw, note)
		}
		fmt.Fprintln(bw)
	}

	if len(opts.TagOptions) > 0 {
		fmt.Fprintln(bw, "TAG OPTIONS:")
		for _, line := range wrapWords(opts.TagOptions, 70) {
			fmt.Fprintln(bw, line)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, bannerLine)
	fmt.Fprintln(bw)

	ordered := make([]Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].BookTitle < ordered[j].BookTitle
	})

	for _, section := range ordered {
		if len(section.Quotes) == 0 {
			continue
		}

		fmt.Fprintf(bw, "BOOK: %s\n", section.BookTitle)
		fmt.Fprintf(bw, "AUTHOR: %s\n", section.Author)
		fmt.Fprintf(bw, "ASIN: %s\n", section.ASIN)
		fmt.Fprintln(bw)

		for i, q := range section.Quotes {
			fmt.Fprintf(bw, "QUOTE %d:\n", i+1)
			fmt.Fprintln(bw, q.Text)
			fmt.Fprintln(bw)
			length := utf8.RuneCountInString(q.Text)
			if q.Score > 0 {
				fmt.Fprintf(bw, "LENGTH: %d chars | QUALITY SCORE: %d\n", length, q.Score)
			} else {
				fmt.Fprintf(bw, "LENGTH: %d chars\n", length)
			}
			fmt.Fprintf(bw, "TAGS: %s\n", strings.Join(q.Tags, ", "))
			if q.Note != "" {
				fmt.Fprintf(bw, "YOUR NOTE: %s\n", q.Note)
			}
			fmt.Fprintln(bw)
		}

		fmt.Fprintln(bw, sectionLine)
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// Read parses a (possibly hand-edited) curation file back into sections.
// It re-splits on the 80-dash delimiter, scans each section line by line
// for the BOOK/AUTHOR/ASIN headers (last-seen value wins) and QUOTE
// markers, and drops any block missing text, book title or author. A
// stray incomplete block is expected of a hand-edited file, not an error.
// The instruction header shares its chunk with the first section (the
// header ends on a banner, not a dash delimiter); its lines match no
// marker, so the chunk parses like any other.
func Read(r io.Reader) ([]Section, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read curation file: %w", err)
	}

	var sections []Section
	for _, chunk := range strings.Split(string(data), sectionLine) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		section := parseSection(strings.Split(chunk, "\n"))
		if section.BookTitle == "" || section.Author == "" || len(section.Quotes) == 0 {
			continue
		}
		sections = append(sections, section)
	}

	return sections, nil
}

func parseSection(lines []string) Section {
	var section Section

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		switch {
		case strings.HasPrefix(line, "BOOK:"):
			section.BookTitle = strings.TrimSpace(strings.TrimPrefix(line, "BOOK:"))
		case strings.HasPrefix(line, "AUTHOR:"):
			section.Author = strings.TrimSpace(strings.TrimPrefix(line, "AUTHOR:"))
		case strings.HasPrefix(line, "ASIN:"):
			section.ASIN = strings.TrimSpace(strings.TrimPrefix(line, "ASIN:"))
		case quotePattern.MatchString(line):
			quote, next := parseQuote(lines, i+1)
			i = next
			if quote.Text != "" {
				section.Quotes = append(section.Quotes, quote)
			}
		}
	}

	return section
}

// parseQuote collects the quote body starting at lines[start]: all
// non-blank lines until a LENGTH: or TAGS: marker form the text, then the
// scan continues to the TAGS: line for the tag list. Returns the index of
// the last consumed line.
func parseQuote(lines []string, start int) (Quote, int) {
	var quote Quote
	var textLines []string

	i := start
	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if lengthPattern.MatchString(trimmed) || strings.HasPrefix(trimmed, "TAGS:") {
			break
		}
		// The next quote's marker means this quote's metadata lines were
		// deleted; hand the marker back to the section scan.
		if quotePattern.MatchString(trimmed) {
			quote.Text = strings.TrimSpace(strings.Join(textLines, "\n"))
			return quote, i - 1
		}
		if trimmed != "" {
			textLines = append(textLines, lines[i])
		}
	}
	quote.Text = strings.TrimSpace(strings.Join(textLines, "\n"))

	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if lengthPattern.MatchString(trimmed) {
			if m := scorePattern.FindStringSubmatch(trimmed); m != nil {
				quote.Score = atoiSafe(m[1])
			}
			continue
		}
		if strings.HasPrefix(trimmed, "TAGS:") {
			quote.Tags = splitTags(strings.TrimPrefix(trimmed, "TAGS:"))
			break
		}
		// A new QUOTE marker before TAGS means the user deleted the
		// metadata lines; stop so the outer scan sees the marker.
		if quotePattern.MatchString(trimmed) {
			i--
			break
		}
	}

	return quote, i
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func atoiSafe(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

func wrapWords(words []string, width int) []string {
	var lines []string
	var current string
	for _, w := range words {
		if current == "" {
			current = w
			continue
		}
		if len(current)+len(w)+2 > width {
			lines = append(lines, current+",")
			current = w
			continue
		}
		current += ", " + w
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
