package clone

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"hotel_builder/internal/domain"
)

// ApplyHotel rewrites every located slot with the hotel's values, in match
// order. An empty hotel field leaves its slot untouched, so a sparse record
// degrades to a partially rewritten page instead of a blanked one.
func ApplyHotel(doc *goquery.Document, matches []SlotMatch, h domain.Hotel) {
	galleryIdx := 0
	for _, m := range matches {
		switch m.Kind {
		case SlotTitle:
			if t := firstNonEmpty(h.Meta.Title, h.Name); t != "" {
				setText(m.Node, t)
			}
		case SlotHeading:
			if h.Name != "" {
				setText(m.Node, h.Name)
			}
		case SlotPhone:
			if h.Phone == "" {
				continue
			}
			if m.Attr == "href" {
				setAttr(m.Node, "href", "tel:"+h.Phone)
			} else {
				replaceInText(m.Node, phoneRe, h.Phone)
			}
		case SlotEmail:
			if h.Email == "" {
				continue
			}
			if m.Attr == "href" {
				setAttr(m.Node, "href", "mailto:"+h.Email)
			} else {
				replaceInText(m.Node, emailRe, h.Email)
			}
		case SlotAddress:
			if h.Address != "" {
				setText(m.Node, h.Address)
			}
		case SlotDescription:
			if h.Description != "" {
				setText(m.Node, h.Description)
			}
		case SlotLogo:
			if h.LogoURL != "" {
				setAttr(m.Node, "src", h.LogoURL)
				if h.Name != "" {
					setAttr(m.Node, "alt", h.Name)
				}
			}
		case SlotWebsite:
			if h.Website != "" {
				setAttr(m.Node, "href", h.Website)
			}
		case SlotSocial:
			if url := socialURL(h.Social, m.Key); url != "" {
				setAttr(m.Node, "href", url)
			}
		case SlotStars:
			if g := StarGlyphs(h.StarRating); g != "" {
				setText(m.Node, g)
			}
		case SlotGallery:
			imgs := h.GalleryImages
			if len(imgs) == 0 {
				imgs = h.SliderImages
			}
			// Positional pairing: slot i takes image i. Slots past the last
			// image keep the source page's picture.
			if galleryIdx < len(imgs) {
				setAttr(m.Node, "src", imgs[galleryIdx])
				if h.Name != "" {
					setAttr(m.Node, "alt", h.Name)
				}
				galleryIdx++
			}
		case SlotCheckIn:
			if h.CheckInTime != "" {
				replaceInText(m.Node, timeRe, h.CheckInTime)
			}
		case SlotCheckOut:
			if h.CheckOutTime != "" {
				replaceInText(m.Node, timeRe, h.CheckOutTime)
			}
		}
	}

	applyMeta(doc, h)
	applyAmenities(doc, h)
	applyRooms(doc, h)
	applyFacilities(doc, h)
}

// StarGlyphs renders a 1..5 rating as filled stars padded with hollow ones
// to a fixed run of five. Out-of-range ratings render nothing.
func StarGlyphs(rating int) string {
	if rating < 1 || rating > 5 {
		return ""
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func socialURL(s domain.Social, key string) string {
	switch key {
	case "facebook":
		return s.Facebook
	case "instagram":
		return s.Instagram
	case "twitter":
		return s.Twitter
	case "linkedin":
		return s.LinkedIn
	case "youtube":
		return s.YouTube
	}
	return ""
}

// applyMeta rewrites the head metadata, creating the OG tags when the source
// page lacks them.
func applyMeta(doc *goquery.Document, h domain.Hotel) {
	title := firstNonEmpty(h.Meta.Title, h.Name)
	desc := firstNonEmpty(h.Meta.Description, h.Description)

	setMetaContent(doc, `meta[name="description"]`, "name", "description", desc, false)
	setMetaContent(doc, `meta[name="keywords"]`, "name", "keywords", h.Meta.Keywords, false)
	setMetaContent(doc, `meta[property="og:title"]`, "property", "og:title", title, true)
	setMetaContent(doc, `meta[property="og:description"]`, "property", "og:description", desc, true)
	setMetaContent(doc, `meta[property="og:url"]`, "property", "og:url", h.Website, true)
}

// setMetaContent updates an existing meta tag's content, appending a new tag
// to <head> when create is set and the tag is absent. Empty values are a
// no-op either way.
func setMetaContent(doc *goquery.Document, selector, keyAttr, keyVal, content string, create bool) {
	if content == "" {
		return
	}
	sel := doc.Find(selector)
	if sel.Length() > 0 {
		sel.Each(func(_ int, s *goquery.Selection) {
			setAttr(s.Get(0), "content", content)
		})
		return
	}
	if !create {
		return
	}
	head := doc.Find("head")
	if head.Length() == 0 {
		return
	}
	head.Get(0).AppendChild(&html.Node{
		Type: html.ElementNode,
		Data: "meta",
		Attr: []html.Attribute{
			{Key: keyAttr, Val: keyVal},
			{Key: "content", Val: content},
		},
	})
}

// applyAmenities fills amenity-hinted elements. Lists get one item per
// amenity; leaf elements get the comma-joined string.
func applyAmenities(doc *goquery.Document, h domain.Hotel) {
	if len(h.Amenities) == 0 {
		return
	}
	joined := strings.Join(h.Amenities, ", ")
	doc.Find(`[class*="amenit"], [id*="amenit"]`).Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		switch {
		case n.Data == "ul" || n.Data == "ol":
			for c := n.FirstChild; c != nil; {
				next := c.NextSibling
				n.RemoveChild(c)
				c = next
			}
			for _, a := range h.Amenities {
				li := &html.Node{Type: html.ElementNode, Data: "li"}
				li.AppendChild(&html.Node{Type: html.TextNode, Data: a})
				n.AppendChild(li)
			}
		case isLeafText(n):
			setText(n, joined)
		}
	})
}

// applyRooms pairs room-section headings with the hotel's rooms positionally.
func applyRooms(doc *goquery.Document, h domain.Hotel) {
	if len(h.Rooms) == 0 {
		return
	}
	i := 0
	doc.Find(`[class*="room"] h3, [class*="room"] h4, [class*="room-name"]`).Each(func(_ int, s *goquery.Selection) {
		if i >= len(h.Rooms) {
			return
		}
		setText(s.Get(0), h.Rooms[i].Type)
		i++
	})
}

// applyFacilities pairs facility list items with the hotel's facilities.
func applyFacilities(doc *goquery.Document, h domain.Hotel) {
	if len(h.Facilities) == 0 {
		return
	}
	i := 0
	doc.Find(`[class*="facilit"] li, [id*="facilit"] li`).Each(func(_ int, s *goquery.Selection) {
		if i >= len(h.Facilities) {
			return
		}
		setText(s.Get(0), h.Facilities[i].Name)
		i++
	})
}

func replaceInText(n *html.Node, re *regexp.Regexp, val string) {
	walkTextNodes(n, func(t *html.Node) {
		if re.MatchString(t.Data) {
			t.Data = re.ReplaceAllLiteralString(t.Data, val)
		}
	})
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
