// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI, which finds
// PubMed papers with at least one pharmaceutical or biotech author.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the get-papers-list CLI.
var rootCmd = &cobra.Command{
	Use:   "get-papers-list QUERY",
	Short: "Fetch pharma/biotech research papers from PubMed",
	Long: `get-papers-list searches PubMed with a full query string, fetches the
matching records in batches, and keeps the papers that list at least one author
affiliated with a pharmaceutical or biotech company.

Results are written as CSV to stdout, or to the file given with --file.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().String("config", "", "config file (default: get-papers.yaml in . or ~/.config/get-papers/)")

	rootCmd.Flags().StringP("file", "f", "", "path to save the output; prints to console if not provided")
	rootCmd.Flags().BoolP("debug", "d", false, "enable debug-level logging")
	rootCmd.Flags().String("format", "csv", "output format: csv, table, json, yaml, or csl")
	rootCmd.Flags().String("keywords", "", "YAML file overriding the affiliation keyword lists")
	rootCmd.Flags().Int("max-results", 0, "maximum number of PubMed IDs to search (default 200)")

	viper.BindPFlag("classifier.keywords_file", rootCmd.Flags().Lookup("keywords"))
	viper.BindPFlag("search.max_results", rootCmd.Flags().Lookup("max-results"))
	setDefaults(viper.GetViper())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-papers")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-papers"))
		}
	}

	viper.SetEnvPrefix("GET_PAPERS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
