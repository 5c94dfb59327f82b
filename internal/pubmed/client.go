// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed talks to the NCBI E-utilities API and decodes the PubMed
// efetch XML it returns.
//
// The Client never returns transport errors to its caller: failures are
// logged and turned into empty results so that one bad request costs at most
// one batch of records.
package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/get-papers/internal/httputil"
	"github.com/pdiddy/get-papers/pkg/types"
)

// DefaultBaseURL is the E-utilities root.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/"

// DefaultMaxResults is the esearch retmax used when none is configured.
const DefaultMaxResults = 200

// Client queries esearch and efetch for the pubmed database.
type Client struct {
	HTTP *http.Client
	Cfg  types.EutilsConfig
	Log  *slog.Logger
}

// NewClient returns a Client with an HTTP client honoring cfg.Timeout.
func NewClient(cfg types.EutilsConfig, log *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		HTTP: &http.Client{Timeout: cfg.Timeout},
		Cfg:  cfg,
		Log:  log,
	}
}

// Search runs an esearch query and returns up to maxResults PMIDs in
// relevance order. Any failure is logged and yields nil.
func (c *Client) Search(ctx context.Context, query string, maxResults int) []string {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	c.Log.Info("searching PubMed", "query", query)

	ids, err := c.esearch(ctx, query, maxResults)
	if err != nil {
		c.Log.Error("API search request failed", "error", err)
		return nil
	}
	c.Log.Info("found PMIDs", "count", len(ids))
	return ids
}

// FetchDetails posts the PMIDs to efetch and returns the raw XML. An empty
// id list returns nil without a request. Any failure is logged and yields nil.
func (c *Client) FetchDetails(ctx context.Context, ids []string) []byte {
	if len(ids) == 0 {
		return nil
	}
	c.Log.Info("fetching details", "pmids", len(ids))

	body, err := c.efetch(ctx, ids)
	if err != nil {
		c.Log.Error("API fetch request failed", "error", err)
		return nil
	}
	return body
}

func (c *Client) esearch(ctx context.Context, query string, maxResults int) ([]string, error) {
	params := c.baseParams()
	params.Set("term", query)
	params.Set("retmax", strconv.Itoa(maxResults))
	params.Set("usehistory", "y")
	params.Set("retmode", "json")

	reqURL := c.endpoint("esearch.fcgi") + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	body, err := httputil.ReadBody(c.HTTP, req, c.Cfg.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("esearch request: %w", err)
	}

	var resp esearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}
	if resp.Result.Error != "" {
		return nil, fmt.Errorf("esearch error: %s", resp.Result.Error)
	}
	c.Log.Debug("esearch result", "count", resp.Result.Count, "returned", len(resp.Result.IDList))
	return resp.Result.IDList, nil
}

func (c *Client) efetch(ctx context.Context, ids []string) ([]byte, error) {
	params := c.baseParams()
	params.Set("retmode", "xml")
	params.Set("rettype", "abstract")

	// POST keeps long id lists out of the URL.
	form := url.Values{"id": {strings.Join(ids, ",")}}
	reqURL := c.endpoint("efetch.fcgi") + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := httputil.ReadBody(c.HTTP, req, c.Cfg.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("efetch request: %w", err)
	}
	return body, nil
}

func (c *Client) baseParams() url.Values {
	params := url.Values{"db": {"pubmed"}}
	if c.Cfg.APIKey != "" {
		params.Set("api_key", c.Cfg.APIKey)
	}
	if c.Cfg.Tool != "" {
		params.Set("tool", c.Cfg.Tool)
	}
	if c.Cfg.Email != "" {
		params.Set("email", c.Cfg.Email)
	}
	return params
}

func (c *Client) endpoint(name string) string {
	base := c.Cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + name
}

// esearch JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
	Error  string   `json:"ERROR"`
}
