// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers/internal/pubmed"
	"github.com/pdiddy/get-papers/pkg/types"
)

const (
	defaultTimeout    = 60 * time.Second
	defaultUserAgent  = "get-papers/0.1"
	defaultTool       = "get-papers"
	defaultMaxResults = 200
	defaultBatchSize  = 100
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("eutils.base_url", pubmed.DefaultBaseURL)
	v.SetDefault("eutils.timeout", defaultTimeout)
	v.SetDefault("eutils.user_agent", defaultUserAgent)
	v.SetDefault("eutils.tool", defaultTool)
	v.SetDefault("eutils.email", "")
	v.SetDefault("eutils.api_key", "")
	v.SetDefault("search.max_results", defaultMaxResults)
	v.SetDefault("search.batch_size", defaultBatchSize)
	v.SetDefault("classifier.keywords_file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "auto")
}

// loadConfig reads the pipeline configuration from v. Zero or negative
// sizes fall back to the defaults.
func loadConfig(v *viper.Viper) types.PipelineConfig {
	cfg := types.PipelineConfig{
		Eutils: types.EutilsConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("eutils.timeout"),
				UserAgent: v.GetString("eutils.user_agent"),
			},
			BaseURL: v.GetString("eutils.base_url"),
			APIKey:  v.GetString("eutils.api_key"),
			Tool:    v.GetString("eutils.tool"),
			Email:   v.GetString("eutils.email"),
		},
		Screening: types.ScreeningConfig{
			MaxResults: v.GetInt("search.max_results"),
			BatchSize:  v.GetInt("search.batch_size"),
		},
		Classifier: types.ClassifierConfig{
			KeywordsFile: v.GetString("classifier.keywords_file"),
		},
		Log: types.LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if cfg.Eutils.Timeout <= 0 {
		cfg.Eutils.Timeout = defaultTimeout
	}
	if cfg.Screening.MaxResults <= 0 {
		cfg.Screening.MaxResults = defaultMaxResults
	}
	if cfg.Screening.BatchSize <= 0 {
		cfg.Screening.BatchSize = defaultBatchSize
	}
	return cfg
}
