//go:build mage

package main

import "github.com/magefile/mage/mg"

// Search builds the CLI and screens PubMed for query, printing a table.
func Search(query string) error {
	mg.Deps(Build)
	return runBinary("--format", "table", query)
}

// Report builds the CLI and writes CSV results for query to out.
func Report(query, out string) error {
	mg.Deps(Build)
	return runBinary("--file", out, query)
}
