package utils

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NameComparer compares entry names the way a file manager shows them:
// locale-aware, ignoring case, accents and width. Names that collate equal
// fall back to byte order so sorting stays total.
//
// A NameComparer is not safe for concurrent use; create one per sort.
type NameComparer struct {
	c *collate.Collator
}

// NewNameComparer returns a comparer for the root locale
func NewNameComparer() *NameComparer {
	return &NameComparer{c: collate.New(language.Und, collate.Loose)}
}

// Compare returns -1, 0 or 1
func (n *NameComparer) Compare(a, b string) int {
	if r := n.c.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// Equal reports whether a and b collate equal, ignoring the byte tie-break
func (n *NameComparer) Equal(a, b string) bool {
	return n.c.CompareString(a, b) == 0
}
