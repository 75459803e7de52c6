// Package normalize canonicalises free-text identifying fields so that two
// independently maintained record sets can be joined on exact key equality.
package normalize

import "strings"

// Normalize uppercases the input, strips leading and trailing whitespace and
// collapses internal whitespace runs to a single space. It is idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
