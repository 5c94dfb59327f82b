// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/get-papers/pkg/types"
)

// CSLItem is a bibliographic entry in CSL-YAML form, readable by Pandoc and
// reference managers. Company affiliations are carried in the note field.
type CSLItem struct {
	ID     string    `yaml:"id"`
	Type   string    `yaml:"type"`
	Title  string    `yaml:"title"`
	Author []CSLName `yaml:"author,omitempty"`
	Issued *CSLDate  `yaml:"issued,omitempty"`
	PMID   string    `yaml:"PMID,omitempty"`
	Note   string    `yaml:"note,omitempty"`
}

// CSLName is a person's name in CSL form.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate holds date-parts; trailing unknown parts are omitted.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

func writeCSL(w io.Writer, papers []*types.Paper) error {
	items := make([]CSLItem, len(papers))
	for i, p := range papers {
		items[i] = toCSLItem(p)
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encoding CSL: %w", err)
	}
	return enc.Close()
}

func toCSLItem(p *types.Paper) CSLItem {
	item := CSLItem{
		ID:     "pmid:" + p.PMID,
		Type:   "article-journal",
		Title:  p.Title,
		Issued: cslDate(p.PublicationDate),
		PMID:   p.PMID,
	}
	for _, a := range p.Authors {
		if name := cslName(a); name != (CSLName{}) {
			item.Author = append(item.Author, name)
		}
	}
	if len(p.CompanyAffiliations) > 0 {
		item.Note = "Company affiliations: " + strings.Join(p.CompanyAffiliations, listSeparator)
	}
	return item
}

func cslName(a types.Author) CSLName {
	family := strings.TrimSpace(a.LastName)
	given := strings.TrimSpace(a.ForeName)
	if family == "" && given != "" {
		return CSLName{Literal: given}
	}
	return CSLName{Family: family, Given: given}
}

// cslDate converts a "YYYY-Mon-DD" publication date. Month may be a name or
// a number. Parsing stops at the first unknown part.
func cslDate(date string) *CSLDate {
	parts := strings.SplitN(date, "-", 3)
	var nums []int
	for i, part := range parts {
		n, ok := datePart(i, part)
		if !ok {
			break
		}
		nums = append(nums, n)
	}
	if len(nums) == 0 {
		return nil
	}
	return &CSLDate{DateParts: [][]int{nums}}
}

func datePart(i int, s string) (int, bool) {
	if i == 1 {
		if m, ok := monthNumbers[strings.ToLower(s)]; ok {
			return m, true
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
