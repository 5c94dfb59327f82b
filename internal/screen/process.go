// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import (
	"slices"

	"github.com/pdiddy/get-papers/pkg/types"
)

// Classifier reports whether an affiliation names a company, returning the
// affiliation to record when it does.
type Classifier interface {
	Classify(affiliation string) (string, bool)
}

// Processor fills in the screening fields of a parsed paper.
type Processor struct {
	Classifier Classifier
}

// Process runs email extraction and classifies every author's affiliation.
// It reports whether the paper has at least one company affiliation; only
// then are NonAcademicAuthors and CompanyAffiliations set, both sorted and
// deduplicated.
func (pr *Processor) Process(p *types.Paper) bool {
	FindCorrespondingEmail(p)

	authors := make(map[string]struct{})
	companies := make(map[string]struct{})
	for _, a := range p.Authors {
		company, ok := pr.Classifier.Classify(a.Affiliation)
		if !ok {
			continue
		}
		companies[company] = struct{}{}
		if name := a.FullName(); name != "" {
			authors[name] = struct{}{}
		}
	}

	if len(companies) == 0 {
		return false
	}
	p.NonAcademicAuthors = sortedKeys(authors)
	p.CompanyAffiliations = sortedKeys(companies)
	return true
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
