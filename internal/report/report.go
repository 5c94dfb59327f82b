// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders screened papers as rows with a fixed column order.
// The CSV header is a compatibility surface for downstream consumers.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/get-papers/pkg/types"
)

// Format selects the report encoding.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSL   Format = "csl"
)

// ParseFormat validates a user-supplied format name. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatTable, FormatJSON, FormatYAML, FormatCSL:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use csv, table, json, yaml, or csl", s)
	}
}

// Header is the column header row, in output order.
var Header = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

const (
	listSeparator = "; "
	missingEmail  = "N/A"
)

// Row is one report line.
type Row struct {
	PMID                string `json:"pubmed_id" yaml:"pubmed_id"`
	Title               string `json:"title" yaml:"title"`
	PublicationDate     string `json:"publication_date" yaml:"publication_date"`
	NonAcademicAuthors  string `json:"non_academic_authors" yaml:"non_academic_authors"`
	CompanyAffiliations string `json:"company_affiliations" yaml:"company_affiliations"`
	CorrespondingEmail  string `json:"corresponding_author_email" yaml:"corresponding_author_email"`
}

// NewRow flattens a screened paper into report columns.
func NewRow(p *types.Paper) Row {
	email := p.CorrespondingEmail
	if email == "" {
		email = missingEmail
	}
	return Row{
		PMID:                p.PMID,
		Title:               p.Title,
		PublicationDate:     p.PublicationDate,
		NonAcademicAuthors:  strings.Join(p.NonAcademicAuthors, listSeparator),
		CompanyAffiliations: strings.Join(p.CompanyAffiliations, listSeparator),
		CorrespondingEmail:  email,
	}
}

// Fields returns the row's values in Header order.
func (r Row) Fields() []string {
	return []string{
		r.PMID, r.Title, r.PublicationDate,
		r.NonAcademicAuthors, r.CompanyAffiliations, r.CorrespondingEmail,
	}
}

// Write renders papers to w in the given format.
func Write(w io.Writer, format Format, papers []*types.Paper) error {
	rows := make([]Row, len(papers))
	for i, p := range papers {
		rows[i] = NewRow(p)
	}

	switch format {
	case FormatCSV, "":
		return writeCSV(w, rows)
	case FormatTable:
		return writeTable(w, rows)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case FormatCSL:
		return writeCSL(w, papers)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.Fields()); err != nil {
			return fmt.Errorf("writing CSV row %s: %w", r.PMID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTable(w io.Writer, rows []Row) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, r := range rows {
		fields := r.Fields()
		row := make(table.Row, len(fields))
		for i, f := range fields {
			row[i] = f
		}
		tw.AppendRow(row)
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 60},
		{Number: 4, WidthMax: 40},
		{Number: 5, WidthMax: 50},
	})

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}
