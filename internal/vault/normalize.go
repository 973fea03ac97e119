package vault

import "strings"

// Normalize produces the canonical form a value is identified by:
// lower-cased, interior whitespace collapsed to single spaces, outer
// whitespace removed. "  Jan   JANSEN " and "jan jansen" are the same
// vault entry.
func Normalize(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}
