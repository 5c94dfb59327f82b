// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/get-papers/pkg/types"
)

// --- fake transport ---

type fakeSource struct {
	ids     []string
	fetch   func(ids []string) []byte
	queries []string
	fetches [][]string
}

func (f *fakeSource) Search(_ context.Context, query string, _ int) []string {
	f.queries = append(f.queries, query)
	return f.ids
}

func (f *fakeSource) FetchDetails(_ context.Context, ids []string) []byte {
	f.fetches = append(f.fetches, ids)
	if f.fetch == nil {
		return nil
	}
	return f.fetch(ids)
}

type record struct {
	pmid        string
	affiliation string
}

func articleSet(records ...record) []byte {
	var b strings.Builder
	b.WriteString("<PubmedArticleSet>")
	for _, r := range records {
		fmt.Fprintf(&b, `<PubmedArticle><MedlineCitation><PMID>%s</PMID><Article>`+
			`<Journal><JournalIssue><PubDate><Year>2024</Year><Month>Jan</Month><Day>02</Day></PubDate></JournalIssue></Journal>`+
			`<ArticleTitle>Paper %s</ArticleTitle>`+
			`<AuthorList><Author><LastName>Author%s</LastName><ForeName>Test</ForeName>`+
			`<AffiliationInfo><Affiliation>%s</Affiliation></AffiliationInfo></Author></AuthorList>`+
			`</Article></MedlineCitation></PubmedArticle>`, r.pmid, r.pmid, r.pmid, r.affiliation)
	}
	b.WriteString("</PubmedArticleSet>")
	return []byte(b.String())
}

func numberedIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i + 1)
	}
	return ids
}

func testPipeline(src Source) (*Pipeline, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Pipeline{
		Source:    src,
		Processor: testProcessor(),
		Log:       slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}, &buf
}

func collect(t *testing.T, pl *Pipeline, query string) []*types.Paper {
	t.Helper()
	var out []*types.Paper
	for p, err := range pl.Run(context.Background(), query) {
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

// --- Run ---

func TestRunBatchesInOrder(t *testing.T) {
	src := &fakeSource{ids: numberedIDs(250)}
	pl, _ := testPipeline(src)

	papers := collect(t, pl, "q")
	assert.Empty(t, papers)

	require.Len(t, src.fetches, 3)
	assert.Len(t, src.fetches[0], 100)
	assert.Len(t, src.fetches[1], 100)
	assert.Len(t, src.fetches[2], 50)
	assert.Equal(t, "1", src.fetches[0][0])
	assert.Equal(t, "100", src.fetches[0][99])
	assert.Equal(t, "101", src.fetches[1][0])
	assert.Equal(t, "201", src.fetches[2][0])
	assert.Equal(t, "250", src.fetches[2][49])
}

func TestRunEndToEnd(t *testing.T) {
	src := &fakeSource{
		ids: []string{"1", "2"},
		fetch: func(ids []string) []byte {
			return articleSet(
				record{"1", "Department of Medicine, University of Michigan"},
				record{"2", "Pfizer Inc."},
			)
		},
	}
	pl, _ := testPipeline(src)

	papers := collect(t, pl, "oncology")
	require.Len(t, papers, 1)
	assert.Equal(t, "2", papers[0].PMID)
	assert.Equal(t, "Paper 2", papers[0].Title)
	assert.Equal(t, "2024-Jan-02", papers[0].PublicationDate)
	assert.Equal(t, []string{"Pfizer Inc."}, papers[0].CompanyAffiliations)
	assert.Equal(t, []string{"Test Author2"}, papers[0].NonAcademicAuthors)
	assert.Equal(t, []string{"oncology"}, src.queries)
	assert.Equal(t, [][]string{{"1", "2"}}, src.fetches)
}

func TestRunNoResults(t *testing.T) {
	src := &fakeSource{}
	pl, buf := testPipeline(src)

	assert.Empty(t, collect(t, pl, "nothing"))
	assert.Empty(t, src.fetches)
	assert.Equal(t, 1, strings.Count(buf.String(), "no papers found for the query"))
}

func TestRunSkipsEmptyAndMalformedBatches(t *testing.T) {
	src := &fakeSource{
		ids: numberedIDs(3),
		fetch: func(ids []string) []byte {
			switch ids[0] {
			case "1":
				return nil
			case "2":
				return []byte("<PubmedArticleSet><PubmedArticle>")
			default:
				return articleSet(record{"3", "Novartis AG, Basel"})
			}
		},
	}
	pl, buf := testPipeline(src)
	pl.Cfg.BatchSize = 1

	papers := collect(t, pl, "q")
	require.Len(t, papers, 1)
	assert.Equal(t, "3", papers[0].PMID)
	assert.Len(t, src.fetches, 3)
	assert.Contains(t, buf.String(), "failed to parse XML")
}

func TestRunStreamsAndStopsEarly(t *testing.T) {
	src := &fakeSource{
		ids: numberedIDs(5),
		fetch: func(ids []string) []byte {
			recs := make([]record, len(ids))
			for i, id := range ids {
				recs[i] = record{id, "Roche Diagnostics GmbH"}
			}
			return articleSet(recs...)
		},
	}
	pl, _ := testPipeline(src)
	pl.Cfg.BatchSize = 2

	var got []string
	for p, err := range pl.Run(context.Background(), "q") {
		require.NoError(t, err)
		got = append(got, p.PMID)
		if len(got) == 3 {
			break
		}
	}

	assert.Equal(t, []string{"1", "2", "3"}, got)
	// The third batch (id 5) is never requested.
	assert.Len(t, src.fetches, 2)
}

func TestRunIsLazyAndRestartable(t *testing.T) {
	src := &fakeSource{
		ids:   []string{"7"},
		fetch: func([]string) []byte { return articleSet(record{"7", "Bayer AG Pharmaceuticals"}) },
	}
	pl, _ := testPipeline(src)

	seq := pl.Run(context.Background(), "q")
	assert.Empty(t, src.queries, "no work before iteration")

	for range seq {
	}
	for range seq {
	}
	assert.Len(t, src.queries, 2)
	assert.Len(t, src.fetches, 2)
}

func TestRunCancelledContext(t *testing.T) {
	src := &fakeSource{
		ids:   numberedIDs(10),
		fetch: func([]string) []byte { return articleSet() },
	}
	pl, _ := testPipeline(src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var errs []error
	for p, err := range pl.Run(ctx, "q") {
		assert.Nil(t, p)
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], context.Canceled)
	assert.Empty(t, src.fetches)
}

func TestRunCancelledDuringLastFetch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := &fakeSource{
		ids: numberedIDs(2),
		fetch: func(ids []string) []byte {
			if ids[0] == "2" {
				cancel()
				return nil
			}
			return articleSet(record{"1", "Pfizer Inc."})
		},
	}
	pl, _ := testPipeline(src)
	pl.Cfg.BatchSize = 1

	var papers []*types.Paper
	var errs []error
	for p, err := range pl.Run(ctx, "q") {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		papers = append(papers, p)
	}

	require.Len(t, papers, 1)
	assert.Equal(t, "1", papers[0].PMID)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], context.Canceled)
	assert.Len(t, src.fetches, 2)
}

func TestRunUsesConfiguredMaxResults(t *testing.T) {
	var gotMax int
	src := &maxRecorder{max: &gotMax}
	pl, _ := testPipeline(src)

	collect(t, pl, "q")
	assert.Equal(t, 200, gotMax)

	pl.Cfg.MaxResults = 25
	collect(t, pl, "q")
	assert.Equal(t, 25, gotMax)
}

type maxRecorder struct{ max *int }

func (m *maxRecorder) Search(_ context.Context, _ string, maxResults int) []string {
	*m.max = maxResults
	return nil
}

func (m *maxRecorder) FetchDetails(context.Context, []string) []byte { return nil }
