package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DefaultPolicy, cfg.Curation.Policy)
	assert.Equal(t, DefaultMinHighlights, cfg.Curation.MinHighlights)
	assert.Equal(t, DefaultTopQuotes, cfg.Curation.TopQuotes)
	assert.Equal(t, DefaultReviewPath, cfg.Output.ReviewPath)
	assert.Equal(t, DefaultCurationPath, cfg.Output.CurationPath)
	assert.Equal(t, DefaultFinalPath, cfg.Output.FinalPath)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CURATION_POLICY", "realness")
	t.Setenv("MIN_HIGHLIGHTS", "10")
	t.Setenv("FINAL_PATH", "custom_quotes.json")

	cfg := NewConfig()

	assert.Equal(t, "realness", cfg.Curation.Policy)
	assert.Equal(t, 10, cfg.Curation.MinHighlights)
	assert.Equal(t, "custom_quotes.json", cfg.Output.FinalPath)

	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultTopQuotes, cfg.Curation.TopQuotes)
}
