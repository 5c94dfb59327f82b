// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "get-papers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EutilsConfig holds settings for the NCBI E-utilities transport.
type EutilsConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the E-utilities root, ending in a slash
	// (default "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Tool and Email identify the caller to NCBI. Both are optional.
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// ScreeningConfig holds settings for the search-fetch-screen pipeline.
type ScreeningConfig struct {
	// MaxResults caps the number of PMIDs requested from esearch (default 200).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// BatchSize is the number of PMIDs fetched per efetch call (default 100).
	BatchSize int `json:"batch_size" yaml:"batch_size"`
}

// ClassifierConfig points the affiliation classifier at an optional
// keyword override file.
type ClassifierConfig struct {
	// KeywordsFile is a YAML file replacing the built-in keyword lists.
	KeywordsFile string `json:"keywords_file,omitempty" yaml:"keywords_file,omitempty"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is debug, info, warn, or error (default info).
	Level string `json:"level" yaml:"level"`

	// Format is text, json, or auto (default auto).
	Format string `json:"format" yaml:"format"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Eutils     EutilsConfig     `json:"eutils" yaml:"eutils"`
	Screening  ScreeningConfig  `json:"search" yaml:"search"`
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier"`
	Log        LogConfig        `json:"log" yaml:"log"`
}
