package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Curation
		Output
	}

	Curation struct {
		Policy        string // default scoring policy name
		MinHighlights int    // minimum highlights per book to be curated
		TopQuotes     int    // quotes per book in the final dataset
	}

	Output struct {
		ReviewPath   string
		CurationPath string
		FinalPath    string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("curation_policy", DefaultPolicy)
	v.SetDefault("min_highlights", DefaultMinHighlights)
	v.SetDefault("top_quotes", DefaultTopQuotes)
	v.SetDefault("review_path", DefaultReviewPath)
	v.SetDefault("curation_path", DefaultCurationPath)
	v.SetDefault("final_path", DefaultFinalPath)

	return &Config{
		Curation: Curation{
			Policy:        v.GetString("CURATION_POLICY"),
			MinHighlights: v.GetInt("MIN_HIGHLIGHTS"),
			TopQuotes:     v.GetInt("TOP_QUOTES"),
		},
		Output: Output{
			ReviewPath:   v.GetString("REVIEW_PATH"),
			CurationPath: v.GetString("CURATION_PATH"),
			FinalPath:    v.GetString("FINAL_PATH"),
		},
	}
}
