package console

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/csg33k/employee-console/internal/domain"
)

// NormalizeTerm trims, NFC-normalizes and case-folds a search term.
func NormalizeTerm(term string) string {
	return fold(strings.TrimSpace(term))
}

// fold builds a fresh Caser per call since Casers may carry state.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Filter returns the records where the term is a case-insensitive substring
// of the first name, last name, email, role or decimal id. An empty term
// returns records unchanged. records itself is never modified.
func Filter(records []domain.Employee, term string) []domain.Employee {
	t := NormalizeTerm(term)
	if t == "" {
		return records
	}
	out := make([]domain.Employee, 0, len(records))
	for _, e := range records {
		if matches(e, t) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e domain.Employee, folded string) bool {
	for _, field := range []string{e.FirstName, e.LastName, e.Email, e.Role} {
		if strings.Contains(fold(field), folded) {
			return true
		}
	}
	return strings.Contains(strconv.FormatInt(e.ID, 10), folded)
}
