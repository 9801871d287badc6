package ibge

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentStripper decomposes characters and drops combining marks, so
// "João" and "joao" hit the same API resource.
var accentStripper = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName lowercases, trims, and strips accents from a queried name
// before it is used as a request path segment.
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	stripped, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return stripped
}
