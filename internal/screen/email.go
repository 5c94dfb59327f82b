// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import (
	"regexp"
	"strings"

	"github.com/pdiddy/get-papers/pkg/types"
)

// Word characters are any Unicode letter or digit plus underscore.
var emailPattern = regexp.MustCompile(`[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+`)

// FindCorrespondingEmail scans author affiliations in author order and
// records the first email address found as p.CorrespondingEmail. Scanning
// stops at the first author whose affiliation contains a match. One trailing
// period, usually the end of the affiliation sentence, is stripped.
func FindCorrespondingEmail(p *types.Paper) string {
	for _, a := range p.Authors {
		if a.Affiliation == "" {
			continue
		}
		email := emailPattern.FindString(a.Affiliation)
		if email == "" {
			continue
		}
		email = strings.TrimSuffix(email, ".")
		p.CorrespondingEmail = email
		return email
	}
	return ""
}
