package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jachren-f4/pageinstead-curator/internal/config"
	"github.com/jachren-f4/pageinstead-curator/internal/pageinstead"
)

// SearchCommand looks up quotes in an existing dataset by substring
// match over text, book title and author.
type SearchCommand struct {
	FilePath string
	Query    string

	cfg *config.Config
}

func NewSearchCommand() *SearchCommand {
	return &SearchCommand{cfg: config.NewConfig()}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", cmd.cfg.Output.FinalPath, "Path to the quotes dataset")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search [options] <query>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Search quote text, book titles and authors, case-insensitive.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s search habits\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.Query = strings.TrimSpace(strings.Join(fs.Args(), " "))
	if cmd.Query == "" {
		return fmt.Errorf("no search query provided")
	}
	return nil
}

func (cmd *SearchCommand) Run() error {
	file, err := pageinstead.LoadDataset(cmd.FilePath)
	if err != nil {
		return err
	}

	matches := pageinstead.Search(file.Quotes, cmd.Query)
	if len(matches) == 0 {
		fmt.Printf("No quotes matching %q\n", cmd.Query)
		return nil
	}

	fmt.Printf("Found %d quote(s) matching %q:\n", len(matches), cmd.Query)
	for _, q := range matches {
		fmt.Printf("\n[%d] %s\n", q.ID, q.Text)
		fmt.Printf("    - %s, %s\n", q.Author, q.BookTitle)
		if len(q.Tags) > 0 {
			fmt.Printf("    tags: %s\n", strings.Join(q.Tags, ", "))
		}
	}
	return nil
}
