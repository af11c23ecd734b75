package cli

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jachren-f4/pageinstead-curator/internal/config"
	"github.com/jachren-f4/pageinstead-curator/internal/curation"
	"github.com/jachren-f4/pageinstead-curator/internal/curator"
	"github.com/jachren-f4/pageinstead-curator/internal/entities"
	"github.com/jachren-f4/pageinstead-curator/internal/pageinstead"
	"github.com/jachren-f4/pageinstead-curator/internal/readwise"
	"github.com/jachren-f4/pageinstead-curator/internal/scoring"
	"github.com/jachren-f4/pageinstead-curator/internal/tagging"
)

// CurateCommand runs the multi-stage pipeline: load the CSV, classify
// sources, filter and score highlights, select top candidates per book,
// then export for review, for manual curation, or straight to the final
// dataset in automatic mode.
type CurateCommand struct {
	CSVPath       string
	PolicyName    string
	Auto          bool
	AllSources    bool
	MinHighlights int
	OutputPath    string

	cfg *config.Config
}

func NewCurateCommand() *CurateCommand {
	return &CurateCommand{cfg: config.NewConfig()}
}

func (cmd *CurateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("curate", flag.ExitOnError)

	fs.StringVar(&cmd.CSVPath, "file", "", "Path to the Readwise CSV export (required)")
	fs.StringVar(&cmd.PolicyName, "policy", cmd.cfg.Curation.Policy,
		"Scoring policy: quality, realness, shortness, or a path to a .yaml policy file")
	fs.BoolVar(&cmd.Auto, "auto", false, "Skip manual review and select the top quotes automatically")
	fs.BoolVar(&cmd.AllSources, "all-sources", false, "Include articles/tweets, not just books")
	fs.IntVar(&cmd.MinHighlights, "min-highlights", cmd.cfg.Curation.MinHighlights,
		"Minimum highlights per book")
	fs.StringVar(&cmd.OutputPath, "out", "", "Output path (defaults per mode)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s curate -file <csv> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Curate quotes from a Readwise highlights export.\n\n")
		fmt.Fprintf(os.Stderr, "With the quality policy the candidates are exported as JSON for\n")
		fmt.Fprintf(os.Stderr, "external review, or directly to the final dataset with -auto.\n")
		fmt.Fprintf(os.Stderr, "The realness and shortness policies export an editable text file;\n")
		fmt.Fprintf(os.Stderr, "edit it down and run 'finalize' afterwards.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s curate -file readwise.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s curate -file readwise.csv -auto\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s curate -file readwise.csv -policy realness -min-highlights 10\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.CSVPath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	if cmd.MinHighlights < 0 {
		return fmt.Errorf("-min-highlights must not be negative")
	}

	return nil
}

func (cmd *CurateCommand) Run() error {
	policy, err := resolvePolicy(cmd.PolicyName)
	if err != nil {
		return err
	}

	fmt.Println("Quote Curation")
	fmt.Println("==============")
	fmt.Printf("Policy: %s\n", policy.Name)

	books, stats, err := loadCSV(cmd.CSVPath)
	if err != nil {
		return err
	}

	printSourceBreakdown(stats)

	cur := curator.New(policy)
	eligible := cur.EligibleBooks(books, !cmd.AllSources, cmd.MinHighlights)
	if cmd.AllSources {
		fmt.Printf("\nUsing all %d sources with %d+ highlights\n", len(eligible), cmd.MinHighlights)
	} else {
		fmt.Printf("\nUsing %d books with %d+ highlights\n", len(eligible), cmd.MinHighlights)
	}

	var curationStats curator.Stats
	candidatesByBook := make(map[string][]entities.Highlight, len(eligible))
	for _, book := range eligible {
		candidatesByBook[book.Title] = cur.SelectCandidates(book, &curationStats)
	}

	printFilteringStats(curationStats, len(eligible))

	switch {
	case cmd.Auto:
		return cmd.exportFinal(eligible, candidatesByBook, policy)
	case policy.Kind == scoring.KindQuality:
		return cmd.exportReview(eligible, candidatesByBook)
	default:
		return cmd.exportCuration(eligible, candidatesByBook, policy)
	}
}

// exportFinal is the automatic mode: top quotes per book straight into
// the final dataset, no manual step.
func (cmd *CurateCommand) exportFinal(books []entities.Book, candidates map[string][]entities.Highlight, policy scoring.Policy) error {
	outPath := cmd.OutputPath
	if outPath == "" {
		outPath = cmd.cfg.Output.FinalPath
	}

	tagger := tagging.ForPolicy(string(policy.Kind))
	topQuotes := cmd.cfg.Curation.TopQuotes

	var curated []entities.CuratedQuote
	for _, book := range sortedByTitle(books) {
		selected := candidates[book.Title]
		if len(selected) > topQuotes {
			selected = selected[:topQuotes]
		}
		for _, h := range selected {
			curated = append(curated, entities.CuratedQuote{
				BookTitle: book.Title,
				Author:    h.Author,
				ASIN:      h.ASIN,
				Text:      h.Text,
				Score:     h.Score,
				Tags:      tagger.Tags(h.Text, book.Title),
				Note:      h.Note,
			})
		}
	}

	file := pageinstead.Assemble(curated, time.Now())
	if err := pageinstead.SaveDataset(outPath, file); err != nil {
		return err
	}

	fmt.Printf("\nSelected %d final quotes (%d per book)\n", len(file.Quotes), topQuotes)
	fmt.Printf("Exported to %s\n", outPath)
	return nil
}

// exportReview writes the candidates as JSON for external review tooling.
func (cmd *CurateCommand) exportReview(books []entities.Book, candidates map[string][]entities.Highlight) error {
	outPath := cmd.OutputPath
	if outPath == "" {
		outPath = cmd.cfg.Output.ReviewPath
	}

	var review []entities.ReviewBook
	for _, book := range sortedByTitle(books) {
		selected := candidates[book.Title]
		if len(selected) == 0 {
			continue
		}

		entry := entities.ReviewBook{
			BookTitle:      book.Title,
			Author:         book.Author,
			ASIN:           book.ASIN,
			HighlightCount: len(book.Highlights),
		}
		for _, h := range selected {
			entry.Candidates = append(entry.Candidates, entities.ReviewCandidate{
				Text:   h.Text,
				Score:  h.Score,
				Length: h.Length,
				Note:   h.Note,
			})
		}
		review = append(review, entry)
	}

	if err := pageinstead.SaveReview(outPath, review); err != nil {
		return err
	}

	totalCandidates := 0
	for _, b := range review {
		totalCandidates += len(b.Candidates)
	}
	fmt.Printf("\nExported %d books with %d candidate quotes to %s\n", len(review), totalCandidates, outPath)
	fmt.Println("\nNext steps:")
	fmt.Printf("1. Review %s and mark your favorites (set \"selected\": true)\n", outPath)
	fmt.Printf("2. Run: %s convert -file <selection.json> -out quotes.json\n", os.Args[0])
	return nil
}

// exportCuration writes the human-editable curation text file.
func (cmd *CurateCommand) exportCuration(books []entities.Book, candidates map[string][]entities.Highlight, policy scoring.Policy) error {
	outPath := cmd.OutputPath
	if outPath == "" {
		outPath = cmd.cfg.Output.CurationPath
	}

	tagger := tagging.ForPolicy(string(policy.Kind))

	var sections []curation.Section
	for _, book := range books {
		selected := candidates[book.Title]
		if len(selected) == 0 {
			continue
		}

		section := curation.Section{
			BookTitle: book.Title,
			Author:    book.Author,
			ASIN:      book.ASIN,
		}
		for _, h := range selected {
			section.Quotes = append(section.Quotes, curation.Quote{
				Text:  h.Text,
				Score: h.Score,
				Tags:  tagger.Tags(h.Text, book.Title),
				Note:  h.Note,
			})
		}
		sections = append(sections, section)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create curation file: %w", err)
	}
	defer f.Close()

	opts := curation.WriteOptions{
		KeepPerBook: cmd.cfg.Curation.TopQuotes,
		TagOptions:  tagging.TagNames(tagger),
		FinalizeCmd: fmt.Sprintf("%s finalize -file %s", os.Args[0], outPath),
	}
	if policy.Kind == scoring.KindRealness {
		opts.Title = "KINDLE QUOTES - MANUAL CURATION (REAL QUOTES ONLY)"
		opts.Notes = []string{
			"NOTE: Chapter headings and section titles have been filtered out.",
			"These are real quotes that scored high on 'realness' metrics:",
			"- Complete sentences with verbs",
			"- Natural language (articles, pronouns, conjunctions)",
			"- Optimal length",
			"- Your highlights that meant something to you",
		}
	}

	if err := curation.Write(f, sections, opts); err != nil {
		return err
	}

	total := 0
	for _, s := range sections {
		total += len(s.Quotes)
	}
	fmt.Printf("\nExported %d quotes to %s\n", total, outPath)
	fmt.Println("\nNext steps:")
	fmt.Printf("1. Open: %s\n", outPath)
	fmt.Printf("2. Keep %d quotes per book, delete the rest\n", cmd.cfg.Curation.TopQuotes)
	fmt.Println("3. Edit tags as needed")
	fmt.Printf("4. Run: %s finalize -file %s\n", os.Args[0], outPath)
	return nil
}

func resolvePolicy(name string) (scoring.Policy, error) {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return scoring.LoadPolicyFile(name)
	}
	return scoring.Builtin(name)
}

func loadCSV(path string) ([]entities.Book, readwise.Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, readwise.Stats{}, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	fmt.Printf("\nLoading %s...\n", path)
	books, stats, err := readwise.NewParser().Parse(f)
	if err != nil {
		return nil, readwise.Stats{}, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return books, stats, nil
}

func printSourceBreakdown(stats readwise.Stats) {
	fmt.Println("\n=== Source Breakdown ===")
	for _, st := range []entities.SourceType{
		entities.SourceTypeBook,
		entities.SourceTypeArticle,
		entities.SourceTypeTweet,
		entities.SourceTypeOther,
	} {
		fmt.Printf("  %-8s %4d sources, %6d highlights\n", st, stats.SourceCounts[st], stats.HighlightCounts[st])
	}
	fmt.Printf("Total highlights: %d (skipped %d incomplete rows)\n", stats.TotalHighlights, stats.SkippedRows)
}

func printFilteringStats(stats curator.Stats, bookCount int) {
	fmt.Println("\n=== Filtering Stats ===")
	fmt.Printf("  Highlights processed:  %d\n", stats.TotalHighlights)
	fmt.Printf("  Filtered too short:    %d\n", stats.FilteredTooShort)
	fmt.Printf("  Filtered too long:     %d\n", stats.FilteredTooLong)
	fmt.Printf("  Filtered headings:     %d\n", stats.FilteredHeadings)
	fmt.Printf("  Filtered poor quality: %d\n", stats.FilteredPoor)
	fmt.Printf("  Kept:                  %d\n", stats.Kept)
	if bookCount > 0 {
		fmt.Printf("  ~%.1f candidates per book after selection\n", float64(stats.Kept)/float64(bookCount))
	}
}

func sortedByTitle(books []entities.Book) []entities.Book {
	sorted := make([]entities.Book, len(books))
	copy(sorted, books)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Title < sorted[j].Title
	})
	return sorted
}
