package clone

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// SlotKind names one semantic region of a source page.
type SlotKind string

const (
	SlotTitle       SlotKind = "title"
	SlotHeading     SlotKind = "heading"
	SlotPhone       SlotKind = "phone"
	SlotEmail       SlotKind = "email"
	SlotAddress     SlotKind = "address"
	SlotDescription SlotKind = "description"
	SlotLogo        SlotKind = "logo"
	SlotWebsite     SlotKind = "website"
	SlotSocial      SlotKind = "social"
	SlotStars       SlotKind = "stars"
	SlotGallery     SlotKind = "gallery"
	SlotCheckIn     SlotKind = "check_in"
	SlotCheckOut    SlotKind = "check_out"
)

// SlotMatch binds a located page node to the slot it will carry.
// Attr == "" means the node's text content is the target; otherwise the named
// attribute is. Key disambiguates multi-valued slots (the social network, the
// gallery position).
type SlotMatch struct {
	Kind SlotKind
	Node *html.Node
	Attr string
	Key  string
}

var (
	phoneRe = regexp.MustCompile(`(\+?\d[\d\s\-\(\)\.]{7,}\d)`)
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	timeRe  = regexp.MustCompile(`\b\d{1,2}[:.]\d{2}\b`)
	starRe  = regexp.MustCompile(`^[★☆\s]+$`)
)

// socialHosts maps URL fragments to the canonical network key. Aliases such
// as fb.com and x.com resolve to the primary network.
var socialHosts = []struct{ frag, key string }{
	{"facebook.com", "facebook"},
	{"fb.com", "facebook"},
	{"instagram.com", "instagram"},
	{"twitter.com", "twitter"},
	{"x.com", "twitter"},
	{"linkedin.com", "linkedin"},
	{"youtube.com", "youtube"},
	{"youtu.be", "youtube"},
}

// locator runs the fixed rule order over one parsed document. Rules claim
// nodes as they match; a claimed node is never handed to a later rule, so
// rule order is the priority order.
type locator struct {
	doc     *goquery.Document
	lang    string
	claimed map[*html.Node]bool
	matches []SlotMatch
}

// LocateSlots scans the document and returns every slot it can identify,
// in rule-priority order. The document is not modified.
func LocateSlots(doc *goquery.Document, language string) []SlotMatch {
	l := &locator{doc: doc, lang: language, claimed: map[*html.Node]bool{}}

	l.title()
	l.headings()
	l.telLinks()
	l.mailtoLinks()
	l.phoneText()
	l.emailText()
	l.address()
	l.description()
	l.logo()
	l.websiteLinks()
	l.socialLinks()
	l.stars()
	l.gallery()
	l.checkTimes()

	return l.matches
}

func (l *locator) claim(m SlotMatch) {
	if m.Attr == "" && l.claimed[m.Node] {
		return
	}
	if m.Attr == "" {
		l.claimed[m.Node] = true
	}
	l.matches = append(l.matches, m)
}

func (l *locator) title() {
	l.doc.Find("title").Each(func(_ int, s *goquery.Selection) {
		l.claim(SlotMatch{Kind: SlotTitle, Node: s.Get(0)})
	})
}

// headings claims every <h1> as a brand heading; h2/h3 only qualify when
// their own text carries a hospitality keyword.
func (l *locator) headings() {
	l.doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if !l.claimed[n] {
			l.claim(SlotMatch{Kind: SlotHeading, Node: n})
		}
	})
	kws := keywordsFor(hotelKeywords, l.lang)
	l.doc.Find("h2, h3").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if l.claimed[n] {
			return
		}
		if containsAny(nodeText(n), kws) {
			l.claim(SlotMatch{Kind: SlotHeading, Node: n})
		}
	})
}

func (l *locator) telLinks() {
	l.doc.Find(`a[href^="tel:"]`).Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		l.claim(SlotMatch{Kind: SlotPhone, Node: n, Attr: "href"})
		if !l.claimed[n] {
			l.claim(SlotMatch{Kind: SlotPhone, Node: n})
		}
	})
}

func (l *locator) mailtoLinks() {
	l.doc.Find(`a[href^="mailto:"]`).Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		l.claim(SlotMatch{Kind: SlotEmail, Node: n, Attr: "href"})
		if !l.claimed[n] {
			l.claim(SlotMatch{Kind: SlotEmail, Node: n})
		}
	})
}

// phoneText catches phone numbers in plain text that no tel: link covered.
// Only leaf-ish elements are considered so a whole <footer> is never claimed
// for one number inside it.
func (l *locator) phoneText() {
	root := l.doc.Get(0)
	if root == nil {
		return
	}
	kws := keywordsFor(phoneKeywords, l.lang)
	walkElements(root, func(n *html.Node) {
		if l.claimed[n] || !isLeafText(n) {
			return
		}
		t := nodeText(n)
		if phoneRe.MatchString(t) && (containsAny(t, kws) || looksLikePhone(t)) {
			l.claim(SlotMatch{Kind: SlotPhone, Node: n})
		}
	})
}

// emailText claims leaves that carry an address or advertise one with an
// email keyword. Keyword-only leaves still rewrite safely: substitution
// touches nothing unless an address is present.
func (l *locator) emailText() {
	root := l.doc.Get(0)
	if root == nil {
		return
	}
	kws := keywordsFor(emailKeywords, l.lang)
	walkElements(root, func(n *html.Node) {
		if l.claimed[n] || !isLeafText(n) {
			return
		}
		t := nodeText(n)
		if emailRe.MatchString(t) || containsAny(t, kws) {
			l.claim(SlotMatch{Kind: SlotEmail, Node: n})
		}
	})
}

// address prefers the semantic <address> element, then any leaf element whose
// class/id or text mentions an address keyword.
func (l *locator) address() {
	found := false
	l.doc.Find("address").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if l.claimed[n] {
			return
		}
		l.claim(SlotMatch{Kind: SlotAddress, Node: n})
		found = true
	})
	if found {
		return
	}
	kws := keywordsFor(addressKeywords, l.lang)
	root := l.doc.Get(0)
	if root == nil {
		return
	}
	walkElements(root, func(n *html.Node) {
		if found || l.claimed[n] || !isLeafText(n) {
			return
		}
		hint := attrVal(n, "class") + " " + attrVal(n, "id")
		if containsAny(hint, kws) || containsAny(nodeText(n), kws) {
			l.claim(SlotMatch{Kind: SlotAddress, Node: n})
			found = true
		}
	})
}

// description takes the first paragraph-like element hinted by a description
// keyword, falling back to the longest early <p> on the page.
func (l *locator) description() {
	kws := keywordsFor(descriptionKeywords, l.lang)
	var match *html.Node
	l.doc.Find("p, div, section").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		n := s.Get(0)
		if l.claimed[n] {
			return true
		}
		hint := attrVal(n, "class") + " " + attrVal(n, "id")
		if (containsAny(hint, kws) || containsAny(nodeText(n), kws)) && isLeafText(n) {
			match = n
			return false
		}
		return true
	})
	if match == nil {
		// Longest of the first few paragraphs stands in for an "about" block.
		best := 0
		l.doc.Find("p").EachWithBreak(func(i int, s *goquery.Selection) bool {
			if i >= 5 {
				return false
			}
			n := s.Get(0)
			if l.claimed[n] {
				return true
			}
			if t := nodeText(n); len(t) > best && len(t) >= 80 {
				best, match = len(t), n
			}
			return true
		})
	}
	if match != nil {
		l.claim(SlotMatch{Kind: SlotDescription, Node: match})
	}
}

// logo matches the first <img> whose class, id, alt or src mentions "logo"
// or "brand", then falls back to the first image inside a header or nav.
func (l *locator) logo() {
	var match *html.Node
	l.doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		n := s.Get(0)
		hint := strings.ToLower(attrVal(n, "class") + " " + attrVal(n, "id") + " " + attrVal(n, "alt") + " " + attrVal(n, "src"))
		if strings.Contains(hint, "logo") || strings.Contains(hint, "brand") {
			match = n
			return false
		}
		return true
	})
	if match == nil {
		l.doc.Find("header img, nav img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			match = s.Get(0)
			return false
		})
	}
	if match != nil {
		l.claim(SlotMatch{Kind: SlotLogo, Node: match, Attr: "src"})
	}
}

// websiteLinks claims outbound http(s) anchors that are neither tel/mailto
// nor a social network; they get re-pointed at the hotel's own website.
func (l *locator) websiteLinks() {
	l.doc.Find(`a[href^="http"]`).Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		href := strings.ToLower(attrVal(n, "href"))
		for _, sh := range socialHosts {
			if strings.Contains(href, sh.frag) {
				return
			}
		}
		l.claim(SlotMatch{Kind: SlotWebsite, Node: n, Attr: "href"})
	})
}

func (l *locator) socialLinks() {
	seen := map[string]bool{}
	l.doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		href := strings.ToLower(attrVal(n, "href"))
		for _, sh := range socialHosts {
			if strings.Contains(href, sh.frag) {
				if !seen[sh.key] {
					seen[sh.key] = true
				}
				l.claim(SlotMatch{Kind: SlotSocial, Node: n, Attr: "href", Key: sh.key})
				return
			}
		}
	})
}

// stars matches elements whose visible text is purely star glyphs, or that a
// "star"/"rating" class hint marks.
func (l *locator) stars() {
	root := l.doc.Get(0)
	if root == nil {
		return
	}
	walkElements(root, func(n *html.Node) {
		if l.claimed[n] || !isLeafText(n) {
			return
		}
		t := nodeText(n)
		hint := strings.ToLower(attrVal(n, "class") + " " + attrVal(n, "id"))
		if t != "" && starRe.MatchString(t) {
			l.claim(SlotMatch{Kind: SlotStars, Node: n})
			return
		}
		if strings.Contains(hint, "star") || strings.Contains(hint, "rating") {
			lt := strings.ToLower(t)
			if strings.ContainsAny(t, "★☆") || strings.Contains(lt, "star") || strings.Contains(lt, "rating") {
				l.claim(SlotMatch{Kind: SlotStars, Node: n})
			}
		}
	})
}

// gallery collects content images in document order: first images whose own
// class or alt is hinted, then images inside hinted containers; if none are
// hinted at all, every unclaimed body <img> qualifies.
func (l *locator) gallery() {
	taken := map[*html.Node]bool{}
	add := func(n *html.Node) {
		if taken[n] || l.claimed[n] {
			return
		}
		taken[n] = true
		l.claim(SlotMatch{Kind: SlotGallery, Node: n, Attr: "src"})
	}
	galleryHints := []string{"gallery", "slider", "hero", "banner", "carousel"}
	l.doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		hint := strings.ToLower(attrVal(n, "class") + " " + attrVal(n, "alt"))
		for _, g := range galleryHints {
			if strings.Contains(hint, g) {
				add(n)
				return
			}
		}
	})
	l.doc.Find(`[class*="gallery"] img, [id*="gallery"] img, [class*="slider"] img, [class*="hero"] img, [class*="banner"] img, [class*="carousel"] img`).Each(func(_ int, s *goquery.Selection) {
		add(s.Get(0))
	})
	if len(taken) > 0 {
		return
	}
	l.doc.Find("body img").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		// The logo never doubles as a gallery image.
		for _, m := range l.matches {
			if m.Kind == SlotLogo && m.Node == n {
				return
			}
		}
		add(n)
	})
}

// checkTimes matches elements that pair a check-in/check-out keyword with a
// HH:MM literal; rewrite substitutes only the time portion.
func (l *locator) checkTimes() {
	root := l.doc.Get(0)
	if root == nil {
		return
	}
	inKws := keywordsFor(checkInKeywords, l.lang)
	outKws := keywordsFor(checkOutKeywords, l.lang)
	walkElements(root, func(n *html.Node) {
		if l.claimed[n] || !isLeafText(n) {
			return
		}
		t := nodeText(n)
		if !timeRe.MatchString(t) {
			return
		}
		switch {
		case containsAny(t, outKws):
			l.claim(SlotMatch{Kind: SlotCheckOut, Node: n})
		case containsAny(t, inKws):
			l.claim(SlotMatch{Kind: SlotCheckIn, Node: n})
		}
	})
}

// looksLikePhone guards the bare-text phone rule against dates and prices:
// a leading + is enough, otherwise ten digits are required.
func looksLikePhone(t string) bool {
	m := strings.TrimSpace(phoneRe.FindString(t))
	if m == "" {
		return false
	}
	digits := 0
	for _, r := range m {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if strings.HasPrefix(m, "+") {
		return digits >= 8
	}
	return digits >= 10
}

// isLeafText reports whether the element holds text without nested block
// structure, which keeps slot claims tight around the value they rewrite.
func isLeafText(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "html", "head", "body", "script", "style", "title", "img", "br", "hr", "meta", "link":
		return false
	}
	children := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "span", "b", "i", "strong", "em", "a", "br", "small":
				// inline content is fine
			default:
				return false
			}
		}
		children++
	}
	return children > 0
}
