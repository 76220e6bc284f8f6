package lexicon

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator orders strings for output. Implementations need not be safe for
// concurrent use.
type Collator interface {
	CompareString(a, b string) int
}

// NewCollator returns a Unicode collator for the language. language.Und gives
// the root (DUCET) order, which sorts polytonic Greek alphabetically with
// accents as secondary differences.
func NewCollator(tag language.Tag) Collator {
	return collate.New(tag)
}

// SortedKeys returns the map's keys in collation order. Keys that collate
// equal are ordered by their bytes so output is stable.
func SortedKeys[V any](m map[string]V, c Collator) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	SortStrings(keys, c)
	return keys
}

// SortStrings sorts s in place in collation order.
func SortStrings(s []string, c Collator) {
	sort.SliceStable(s, func(i, j int) bool {
		if n := c.CompareString(s[i], s[j]); n != 0 {
			return n < 0
		}
		return s[i] < s[j]
	})
}
