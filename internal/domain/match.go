package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normalizes s for substring matching: combining marks are removed and
// case is folded, so "MARÍA" and "maria" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}

// ContainsFold reports whether needle (already folded) occurs in haystack.
func ContainsFold(haystack, foldedNeedle string) bool {
	if foldedNeedle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), foldedNeedle)
}

// Filter selects certificates for Search.
type Filter struct {
	query  string
	course string
}

// NewFilter prepares a filter. An empty query matches every record; an empty
// course disables the exact course filter.
func NewFilter(query, course string) Filter {
	return Filter{query: Fold(query), course: course}
}

// Match applies the query to student name, course name, certificate id and
// discord handle, and the course filter to the exact course name.
func (f Filter) Match(c Certificate) bool {
	if f.course != "" && c.CourseName != f.course {
		return false
	}
	if f.query == "" {
		return true
	}
	if ContainsFold(c.StudentName, f.query) ||
		ContainsFold(c.CourseName, f.query) ||
		ContainsFold(c.CertificateID, f.query) {
		return true
	}
	return c.DiscordHandle != nil && ContainsFold(*c.DiscordHandle, f.query)
}
