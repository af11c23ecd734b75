package cli

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jachren-f4/pageinstead-curator/internal/entities"
)

// AnalyzeCommand inspects a Readwise CSV export without curating it:
// header layout, source breakdown, highlight length distribution and
// the most-highlighted sources.
type AnalyzeCommand struct {
	FilePath string
}

func NewAnalyzeCommand() *AnalyzeCommand {
	return &AnalyzeCommand{}
}

func (cmd *AnalyzeCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the Readwise CSV export (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s analyze -file <csv>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Inspect an export before curating: columns, source types,\n")
		fmt.Fprintf(os.Stderr, "highlight lengths and the most-highlighted books.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	return nil
}

func (cmd *AnalyzeCommand) Run() error {
	books, stats, err := loadCSV(cmd.FilePath)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Columns ===")
	fmt.Printf("  %s\n", strings.Join(stats.Headers, ", "))

	printSourceBreakdown(stats)

	minLen, maxLen, total, count := 0, 0, 0, 0
	for _, book := range books {
		for _, h := range book.Highlights {
			if count == 0 || h.Length < minLen {
				minLen = h.Length
			}
			if h.Length > maxLen {
				maxLen = h.Length
			}
			total += h.Length
			count++
		}
	}

	fmt.Println("\n=== Highlight Lengths ===")
	if count > 0 {
		fmt.Printf("  Min: %d chars\n", minLen)
		fmt.Printf("  Max: %d chars\n", maxLen)
		fmt.Printf("  Avg: %d chars\n", total/count)
	} else {
		fmt.Println("  No highlights found")
	}

	sorted := make([]entities.Book, len(books))
	copy(sorted, books)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Highlights) > len(sorted[j].Highlights)
	})
	if len(sorted) > 10 {
		sorted = sorted[:10]
	}

	fmt.Println("\n=== Most Highlighted ===")
	for _, book := range sorted {
		fmt.Printf("  %4d  %s (%s)\n", len(book.Highlights), book.Title, book.SourceType)
	}

	return nil
}
