package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jachren-f4/pageinstead-curator/internal/entities"
	"github.com/jachren-f4/pageinstead-curator/internal/pageinstead"
	"github.com/jachren-f4/pageinstead-curator/internal/tagging"
)

// ConvertCommand turns an externally produced selection JSON straight
// into the quotes dataset, bypassing the curation text file.
type ConvertCommand struct {
	FilePath   string
	OutputPath string
}

func NewConvertCommand() *ConvertCommand {
	return &ConvertCommand{}
}

func (cmd *ConvertCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the selection JSON (required)")
	fs.StringVar(&cmd.OutputPath, "out", "", "Output dataset path (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s convert -file <selection.json> -out <quotes.json>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Convert a JSON array of selected quotes into the quotes dataset.\n")
		fmt.Fprintf(os.Stderr, "Tags are derived automatically from the quote text.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	if cmd.OutputPath == "" {
		return fmt.Errorf("required flag -out not provided")
	}
	return nil
}

func (cmd *ConvertCommand) Run() error {
	selected, err := pageinstead.LoadSelection(cmd.FilePath)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return fmt.Errorf("no quotes found in %s", cmd.FilePath)
	}

	fmt.Printf("Converting %d selected quotes...\n", len(selected))

	tagger := tagging.Basic()
	curated := make([]entities.CuratedQuote, 0, len(selected))
	for _, s := range selected {
		curated = append(curated, entities.CuratedQuote{
			BookTitle: pageinstead.CleanTitle(s.BookTitle),
			Author:    s.Author,
			ASIN:      s.ASIN,
			Text:      s.Highlight,
			Score:     s.Score,
			Tags:      tagger.Tags(s.Highlight, ""),
		})
	}

	file := pageinstead.Assemble(curated, time.Now())
	if err := pageinstead.SaveDataset(cmd.OutputPath, file); err != nil {
		return err
	}

	printDatasetSummary(file)
	fmt.Printf("\nExported to %s\n", cmd.OutputPath)
	return nil
}
