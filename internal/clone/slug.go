package clone

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// turkishFold maps the Turkish letters that NFD folding alone would get
// wrong (dotless ı has no combining mark to strip).
var turkishFold = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
	"Ç", "c", "Ğ", "g", "İ", "i", "Ö", "o", "Ş", "s", "Ü", "u",
)

// Slug derives a URL- and filesystem-safe directory name from a hotel name.
// The same name always yields the same slug; an empty or fully stripped name
// yields "hotel".
func Slug(name string) string {
	s := turkishFold.Replace(strings.TrimSpace(name))
	s = strings.ToLower(s)
	s = removeDiacritics(s)

	var sb strings.Builder
	prevHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			prevHyphen = false
		case r == ' ', r == '-', r == '_', r == '/':
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
				prevHyphen = true
			}
		default:
			// punctuation such as .,'"() drops out entirely
		}
	}
	out := strings.Trim(sb.String(), "-")
	if out == "" {
		return "hotel"
	}
	return out
}

// removeDiacritics strips combining marks after NFD decomposition, so
// "café" folds to "cafe".
func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
