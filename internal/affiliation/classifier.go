// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package affiliation decides whether a free-text author affiliation names a
// company (pharmaceutical or biotech) rather than an academic institution.
//
// Matching is plain substring containment on the lower-cased text, so a
// keyword can match inside a longer word ("inc" inside "Lincoln"). Academic
// keywords always win over company keywords, and affiliations matching
// neither list are rejected.
package affiliation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Classifier applies a fixed set of Keywords. It holds no mutable state.
type Classifier struct {
	academic []string
	company  []string
}

// New returns a Classifier over kw. Known company names and generic company
// keywords are matched the same way, so they are merged here.
func New(kw Keywords) *Classifier {
	company := make([]string, 0, len(kw.KnownCompanies)+len(kw.Company))
	company = append(company, kw.KnownCompanies...)
	company = append(company, kw.Company...)
	return &Classifier{
		academic: clone(kw.Academic),
		company:  company,
	}
}

// Classify returns the affiliation unchanged and true when it looks like a
// company, or "" and false otherwise (including for empty input).
func (c *Classifier) Classify(affiliation string) (string, bool) {
	if affiliation == "" {
		return "", false
	}

	lower := cases.Lower(language.Und).String(affiliation)

	if containsAny(lower, c.academic) {
		return "", false
	}
	if containsAny(lower, c.company) {
		return affiliation, true
	}
	return "", false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
