// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers/internal/affiliation"
	"github.com/pdiddy/get-papers/internal/logging"
	"github.com/pdiddy/get-papers/internal/pubmed"
	"github.com/pdiddy/get-papers/internal/report"
	"github.com/pdiddy/get-papers/internal/screen"
	"github.com/pdiddy/get-papers/internal/secrets"
	"github.com/pdiddy/get-papers/pkg/types"
)

const secretsDir = ".secrets/"

func runRoot(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	debug, _ := cmd.Flags().GetBool("debug")
	formatName, _ := cmd.Flags().GetString("format")

	cfg := loadConfig(viper.GetViper())
	if debug {
		cfg.Log.Level = "debug"
	}

	log, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	s, err := secrets.Load(secretsDir, log)
	if err != nil {
		return err
	}
	secrets.Apply(&cfg.Eutils, s)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := findPapers(ctx, args[0], cfg, format, file, cmd.OutOrStdout(), log); err != nil {
		log.Error("an unexpected error occurred", "error", err)
		return err
	}
	return nil
}

// findPapers runs the pipeline for query and writes the report to file, or
// to stdout when file is empty. Nothing is written when no paper matches.
func findPapers(ctx context.Context, query string, cfg types.PipelineConfig, format report.Format, file string, stdout io.Writer, log *slog.Logger) error {
	kw := affiliation.DefaultKeywords()
	if cfg.Classifier.KeywordsFile != "" {
		loaded, err := affiliation.LoadKeywords(cfg.Classifier.KeywordsFile)
		if err != nil {
			return err
		}
		kw = loaded
	}

	pl := &screen.Pipeline{
		Source:    pubmed.NewClient(cfg.Eutils, log),
		Processor: &screen.Processor{Classifier: affiliation.New(kw)},
		Cfg:       cfg.Screening,
		Log:       log,
	}

	var results []*types.Paper
	for paper, err := range pl.Run(ctx, query) {
		if err != nil {
			return fmt.Errorf("screening papers: %w", err)
		}
		results = append(results, paper)
	}

	if len(results) == 0 {
		log.Info("no matching papers with company affiliations were found")
		return nil
	}
	log.Info("found papers with company affiliations, preparing output", "count", len(results))

	if file == "" {
		return report.Write(stdout, format, results)
	}
	if err := writeFile(file, format, results); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Results successfully saved to %s\n", file)
	return nil
}

func writeFile(path string, format report.Format, papers []*types.Paper) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := report.Write(f, format, papers); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
