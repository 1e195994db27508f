package clone

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Attributes that commonly carry brand text or brand URLs.
var matchAttrs = []string{"href", "src", "alt", "title", "placeholder"}

// ReplaceWholeWord substitutes every whole-word occurrence of the given terms
// in the document's text nodes with replacement, and every substring
// occurrence inside href/src/alt/title/placeholder attribute values.
//
// Terms are processed longest-first so a multi-word phrase wins over its own
// fragments. Matching is case-insensitive. Re-running with the same inputs is
// a no-op once all terms are gone.
func ReplaceWholeWord(doc *goquery.Document, replacement string, terms []string) {
	sorted := make([]string, 0, len(terms))
	for _, t := range terms {
		if strings.TrimSpace(t) != "" {
			sorted = append(sorted, t)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	root := doc.Get(0)
	if root == nil {
		return
	}
	for _, term := range sorted {
		subRe := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
		lower := strings.ToLower(term)

		walkTextNodes(root, func(t *html.Node) {
			if strings.Contains(strings.ToLower(t.Data), lower) {
				t.Data = replaceWordMatches(t.Data, replacement, subRe)
			}
		})
		walkElements(root, func(n *html.Node) {
			for _, key := range matchAttrs {
				if v := attrVal(n, key); v != "" && strings.Contains(strings.ToLower(v), lower) {
					// URLs and paths rarely tokenize on word boundaries,
					// so attributes get plain substring replacement.
					setAttr(n, key, subRe.ReplaceAllLiteralString(v, replacement))
				}
			}
		})
	}
}

// replaceWordMatches substitutes every match of subRe whose neighbours are
// not word runes. Boundaries are checked against the Unicode letter and digit
// classes rather than regexp's ASCII-only \b, so terms like "Çırağan" match
// as whole words too.
func replaceWordMatches(s, repl string, subRe *regexp.Regexp) string {
	locs := subRe.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return s
	}
	var sb strings.Builder
	last := 0
	for _, loc := range locs {
		if !wordBoundary(s, loc[0], loc[1]) {
			continue
		}
		sb.WriteString(s[last:loc[0]])
		sb.WriteString(repl)
		last = loc[1]
	}
	sb.WriteString(s[last:])
	return sb.String()
}

func wordBoundary(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func walkElements(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkElements(c, fn)
	}
}
