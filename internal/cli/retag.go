package cli

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/jachren-f4/pageinstead-curator/internal/entities"
	"github.com/jachren-f4/pageinstead-curator/internal/pageinstead"
	"github.com/jachren-f4/pageinstead-curator/internal/tagging"
)

// RetagCommand re-derives tags for every quote in an existing dataset
// with the comprehensive vocabulary, writing a backup of the original
// file first.
type RetagCommand struct {
	FilePath string
}

func NewRetagCommand() *RetagCommand {
	return &RetagCommand{}
}

func (cmd *RetagCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("retag", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the quotes dataset (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s retag -file <quotes.json>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Re-tag every quote in place with the comprehensive vocabulary.\n")
		fmt.Fprintf(os.Stderr, "The original file is kept as <file>.before-retag.\n\n")
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

func (cmd *RetagCommand) Run() error {
	file, err := pageinstead.LoadDataset(cmd.FilePath)
	if err != nil {
		return err
	}

	// Backup before rewriting in place.
	backupPath := cmd.FilePath + ".before-retag"
	if err := pageinstead.SaveDataset(backupPath, file); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	fmt.Printf("Backed up original to %s\n", backupPath)

	tagger := tagging.Comprehensive()
	changed := 0
	for i, q := range file.Quotes {
		tags := tagger.Tags(q.Text, q.BookTitle)
		if !equalTags(q.Tags, tags) {
			changed++
		}
		file.Quotes[i].Tags = tags
	}

	if err := pageinstead.SaveDataset(cmd.FilePath, file); err != nil {
		return err
	}

	fmt.Printf("Re-tagged %d quotes (%d changed)\n", len(file.Quotes), changed)
	printTagDistribution(file.Quotes)
	return nil
}

func equalTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func printTagDistribution(quotes []entities.Quote) {
	counts := make(map[string]int)
	for _, q := range quotes {
		for _, t := range q.Tags {
			counts[t]++
		}
	}

	tags := make([]string, 0, len(counts))
	for t := range counts {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})

	fmt.Println("\n=== Tag Distribution ===")
	for _, t := range tags {
		fmt.Printf("  %-15s %d\n", t, counts[t])
	}
}
