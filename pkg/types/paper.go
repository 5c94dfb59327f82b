// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the get-papers pipeline:
// the parsed PubMed record (Paper, Author) and the configuration structs
// consumed by the transport, classifier, and screening stages.
package types

import "strings"

const (
	// NoTitle replaces an absent or blank article title.
	NoTitle = "[No Title]"

	// NotAvailable renders a missing publication date part.
	NotAvailable = "N/A"
)

// Author is one entry of a record's author list. Empty strings stand for
// fields the record did not carry.
type Author struct {
	LastName string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	ForeName string `json:"fore_name,omitempty" yaml:"fore_name,omitempty"`
	Initials string `json:"initials,omitempty" yaml:"initials,omitempty"`

	// Affiliation is the text of the author's first affiliation only.
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}

// FullName returns "ForeName LastName" trimmed, or "" when both are absent.
func (a Author) FullName() string {
	return strings.TrimSpace(a.ForeName + " " + a.LastName)
}

// Paper holds the bibliographic fields of a PubMed record plus the fields
// filled in by screening.
type Paper struct {
	// PMID is the PubMed identifier.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is whitespace-normalized; NoTitle when the record has none.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is always "{year}-{month}-{day}" with NotAvailable
	// standing in for missing parts.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// Authors lists the record's authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// NonAcademicAuthors holds the sorted, deduplicated full names of
	// company-affiliated authors.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations holds the sorted, deduplicated company
	// affiliation strings.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is the first email found in the author
	// affiliations, or "" when none was found.
	CorrespondingEmail string `json:"corresponding_email,omitempty" yaml:"corresponding_email,omitempty"`
}

// NormalizeTitle collapses whitespace runs to single spaces and trims the
// result. Blank titles become NoTitle.
func NormalizeTitle(title string) string {
	cleaned := strings.Join(strings.Fields(title), " ")
	if cleaned == "" {
		return NoTitle
	}
	return cleaned
}

// FormatDate joins year, month, and day with dashes, substituting
// NotAvailable for empty parts.
func FormatDate(year, month, day string) string {
	parts := []string{year, month, day}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			p = NotAvailable
		}
		parts[i] = p
	}
	return strings.Join(parts, "-")
}
