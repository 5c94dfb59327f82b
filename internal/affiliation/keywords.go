// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package affiliation

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Keywords holds the three substring lists the classifier matches against.
// All entries are lower case. A Keywords value is not modified after it is
// handed to New.
type Keywords struct {
	Academic       []string `yaml:"academic"`
	Company        []string `yaml:"company"`
	KnownCompanies []string `yaml:"known_companies"`
}

var (
	defaultAcademic = []string{
		"university", "college", "institute", "hospital", "school of medicine",
		"department of", "academy", "center for", "centre for", "medical center",
		"research council",
	}
	defaultCompany = []string{
		"inc", "ltd", "corp", "llc", "pharmaceuticals", "pharma", "biotech",
		"therapeutics", "diagnostics", "ventures",
	}
	defaultKnownCompanies = []string{
		"pfizer", "novartis", "roche", "genentech", "merck", "gsk",
		"glaxosmithkline", "astrazeneca", "sanofi", "bayer", "amgen", "gilead",
		"regeneron", "moderna", "biontech",
	}
)

// DefaultKeywords returns a fresh copy of the built-in keyword lists.
func DefaultKeywords() Keywords {
	return Keywords{
		Academic:       clone(defaultAcademic),
		Company:        clone(defaultCompany),
		KnownCompanies: clone(defaultKnownCompanies),
	}
}

// LoadKeywords reads a YAML keyword file. Lists missing from the file keep
// their built-in values.
func LoadKeywords(path string) (Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Keywords{}, fmt.Errorf("reading keywords file: %w", err)
	}

	var file Keywords
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Keywords{}, fmt.Errorf("parsing keywords file %s: %w", path, err)
	}

	kw := DefaultKeywords()
	if file.Academic != nil {
		kw.Academic = normalize(file.Academic)
	}
	if file.Company != nil {
		kw.Company = normalize(file.Company)
	}
	if file.KnownCompanies != nil {
		kw.KnownCompanies = normalize(file.KnownCompanies)
	}
	return kw, nil
}

// normalize lower-cases and trims entries, dropping blanks. A blank entry
// would match every affiliation.
func normalize(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
