package parsers

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticStripper decomposes to NFD, drops combining marks, and
// recomposes, turning e.g. "Ngày đối soát" into "Ngay đoi soat".
// đ/Đ carry no combining mark and are substituted separately.
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeHeader maps a raw column label to its canonical field key:
// lower-cased, diacritics stripped, đ→d, every character outside
// [a-z0-9_ ] dropped, whitespace collapsed to underscores. The function
// is pure, total and idempotent; malformed headers degrade to
// best-effort keys (possibly empty) rather than erroring.
func NormalizeHeader(header string) string {
	s := strings.ToLower(header)
	if stripped, _, err := transform.String(diacriticStripper, s); err == nil {
		s = stripped
	}
	s = strings.ReplaceAll(s, "đ", "d")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), "_")
}
