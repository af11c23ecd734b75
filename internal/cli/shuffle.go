package cli

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jachren-f4/pageinstead-curator/internal/pageinstead"
)

// ShuffleCommand reorders an existing dataset so quotes from the same
// book are spread apart, reassigning dense ids afterwards.
type ShuffleCommand struct {
	FilePath   string
	OutputPath string
	Seed       int64
}

func NewShuffleCommand() *ShuffleCommand {
	return &ShuffleCommand{}
}

func (cmd *ShuffleCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("shuffle", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the quotes dataset (required)")
	fs.StringVar(&cmd.OutputPath, "out", "", "Output path (defaults to the input file)")
	fs.Int64Var(&cmd.Seed, "seed", 0, "Random seed for a reproducible order (0 uses the clock)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s shuffle -file <quotes.json> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Interleave the dataset so consecutive quotes come from different\n")
		fmt.Fprintf(os.Stderr, "books. Ids are reassigned densely from 1.\n\n")
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

func (cmd *ShuffleCommand) Run() error {
	file, err := pageinstead.LoadDataset(cmd.FilePath)
	if err != nil {
		return err
	}

	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	file.Quotes = pageinstead.Shuffle(file.Quotes, rng)

	outPath := cmd.OutputPath
	if outPath == "" {
		outPath = cmd.FilePath
	}
	if err := pageinstead.SaveDataset(outPath, file); err != nil {
		return err
	}

	fmt.Printf("Shuffled %d quotes\n", len(file.Quotes))
	if gap := pageinstead.MinSameBookDistance(file.Quotes); gap > 0 {
		fmt.Printf("Closest same-book pair is %d positions apart\n", gap)
	}
	fmt.Printf("Written to %s\n", outPath)
	return nil
}
