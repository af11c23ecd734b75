package pageinstead

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jachren-f4/pageinstead-curator/internal/entities"
)

// LoadDataset reads an existing quotes.json.
func LoadDataset(path string) (entities.QuoteFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.QuoteFile{}, fmt.Errorf("failed to read dataset: %w", err)
	}

	var file entities.QuoteFile
	if err := json.Unmarshal(data, &file); err != nil {
		return entities.QuoteFile{}, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return file, nil
}

// SaveDataset writes a quotes.json with two-space indentation, matching
// the format the app bundles.
func SaveDataset(path string, file entities.QuoteFile) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}

// SaveReview writes the manual-review JSON artifact.
func SaveReview(path string, books []entities.ReviewBook) error {
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode review file: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write review file: %w", err)
	}
	return nil
}

// LoadSelection reads a JSON array of externally selected quotes, the
// input of the direct-conversion entry point.
func LoadSelection(path string) ([]entities.SelectedQuote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}

	var selected []entities.SelectedQuote
	if err := json.Unmarshal(data, &selected); err != nil {
		return nil, fmt.Errorf("failed to parse selection %s: %w", path, err)
	}
	return selected, nil
}
