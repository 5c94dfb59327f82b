// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package screen finds PubMed papers with at least one company-affiliated
// author. A Pipeline searches, fetches records in batches, parses them, and
// streams the papers the Processor accepts.
package screen

import (
	"context"
	"iter"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/pdiddy/get-papers/internal/pubmed"
	"github.com/pdiddy/get-papers/pkg/types"
)

const (
	defaultMaxResults = 200
	defaultBatchSize  = 100
)

// Source is the literature database transport. Implementations log their
// own failures and report them as empty results.
type Source interface {
	Search(ctx context.Context, query string, maxResults int) []string
	FetchDetails(ctx context.Context, ids []string) []byte
}

// Pipeline drives search, batched fetch, parse, and screening.
type Pipeline struct {
	Source    Source
	Processor *Processor
	Cfg       types.ScreeningConfig
	Log       *slog.Logger
}

// Run returns a single-pass sequence of accepted papers for query. Nothing
// happens until the sequence is ranged over, and each range re-runs the
// search. Batches are fetched only as the consumer asks for more papers, so
// breaking out of the loop stops further requests.
//
// The error half of the pair is non-nil only when ctx is done; it is yielded
// once and ends the sequence. A fetch that comes back empty because ctx was
// cancelled mid-request is reported the same way, so a partial run never
// looks complete.
func (pl *Pipeline) Run(ctx context.Context, query string) iter.Seq2[*types.Paper, error] {
	return func(yield func(*types.Paper, error) bool) {
		log := pl.Log.With("run_id", uuid.NewString())

		ids := pl.Source.Search(ctx, query, pl.maxResults())
		if len(ids) == 0 {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			log.Warn("no papers found for the query", "query", query)
			return
		}

		size := pl.batchSize()
		batch := 0
		for chunk := range slices.Chunk(ids, size) {
			batch++
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			log.Debug("fetching batch", "batch", batch, "size", len(chunk))
			data := pl.Source.FetchDetails(ctx, chunk)
			if len(data) == 0 {
				if err := ctx.Err(); err != nil {
					yield(nil, err)
					return
				}
				log.Debug("batch returned no content, skipping", "batch", batch)
				continue
			}

			for _, paper := range pubmed.Parse(data, log) {
				if !pl.Processor.Process(paper) {
					continue
				}
				log.Debug("paper has company affiliation", "pmid", paper.PMID)
				if !yield(paper, nil) {
					return
				}
			}
		}
	}
}

func (pl *Pipeline) maxResults() int {
	if pl.Cfg.MaxResults > 0 {
		return pl.Cfg.MaxResults
	}
	return defaultMaxResults
}

func (pl *Pipeline) batchSize() int {
	if pl.Cfg.BatchSize > 0 {
		return pl.Cfg.BatchSize
	}
	return defaultBatchSize
}
