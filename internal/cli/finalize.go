package cli

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/jachren-f4/pageinstead-curator/internal/config"
	"github.com/jachren-f4/pageinstead-curator/internal/curation"
	"github.com/jachren-f4/pageinstead-curator/internal/entities"
	"github.com/jachren-f4/pageinstead-curator/internal/pageinstead"
)

// FinalizeCommand reads the hand-edited curation file back and assembles
// the final quotes dataset from whatever blocks survived the edit.
type FinalizeCommand struct {
	FilePath   string
	SelectTop  int
	OutputPath string

	cfg *config.Config
}

func NewFinalizeCommand() *FinalizeCommand {
	return &FinalizeCommand{cfg: config.NewConfig()}
}

func (cmd *FinalizeCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("finalize", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", cmd.cfg.Output.CurationPath, "Path to the edited curation file")
	fs.IntVar(&cmd.SelectTop, "select-top", 0,
		"Keep only the N highest-scoring quotes per book (0 keeps everything)")
	fs.StringVar(&cmd.OutputPath, "out", cmd.cfg.Output.FinalPath, "Output dataset path")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s finalize [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Convert the edited curation file into the final quotes dataset.\n")
		fmt.Fprintf(os.Stderr, "Quote blocks you deleted from the file simply don't appear; use\n")
		fmt.Fprintf(os.Stderr, "-select-top to cut further by score instead of editing by hand.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.SelectTop < 0 {
		return fmt.Errorf("-select-top must not be negative")
	}
	return nil
}

func (cmd *FinalizeCommand) Run() error {
	f, err := os.Open(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to open curation file: %w", err)
	}
	defer f.Close()

	fmt.Println("Finalize Curated Quotes")
	fmt.Println("=======================")
	fmt.Printf("Reading %s...\n", cmd.FilePath)

	sections, err := curation.Read(f)
	if err != nil {
		return err
	}
	if len(sections) == 0 {
		return fmt.Errorf("no complete quote blocks found in %s", cmd.FilePath)
	}

	var curated []entities.CuratedQuote
	for _, section := range sections {
		quotes := section.Quotes
		if cmd.SelectTop > 0 {
			sorted := make([]curation.Quote, len(quotes))
			copy(sorted, quotes)
			sort.SliceStable(sorted, func(i, j int) bool {
				return sorted[i].Score > sorted[j].Score
			})
			if len(sorted) > cmd.SelectTop {
				sorted = sorted[:cmd.SelectTop]
			}
			quotes = sorted
		}

		title := pageinstead.CleanTitle(section.BookTitle)
		for _, q := range quotes {
			tags := q.Tags
			if len(tags) == 0 {
				tags = []string{"wisdom"}
			}
			curated = append(curated, entities.CuratedQuote{
				BookTitle: title,
				Author:    section.Author,
				ASIN:      section.ASIN,
				Text:      q.Text,
				Score:     q.Score,
				Tags:      tags,
				Note:      q.Note,
			})
		}
	}

	file := pageinstead.Assemble(curated, time.Now())
	if err := pageinstead.SaveDataset(cmd.OutputPath, file); err != nil {
		return err
	}

	printDatasetSummary(file)
	fmt.Printf("\nExported to %s\n", cmd.OutputPath)
	return nil
}

func printDatasetSummary(file entities.QuoteFile) {
	books := make(map[string]bool)
	totalLength := 0
	for _, q := range file.Quotes {
		books[q.BookTitle] = true
		totalLength += utf8.RuneCountInString(q.Text)
	}

	fmt.Println("\n=== Dataset Summary ===")
	fmt.Printf("  Quotes:       %d\n", len(file.Quotes))
	fmt.Printf("  Unique books: %d\n", len(books))
	if len(file.Quotes) > 0 {
		fmt.Printf("  Avg length:   %d chars\n", totalLength/len(file.Quotes))
	}

	titles := make([]string, 0, len(books))
	for t := range books {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	if len(titles) > 5 {
		titles = titles[:5]
	}
	fmt.Println("  Sample books:")
	for _, t := range titles {
		fmt.Printf("    - %s\n", t)
	}
}
