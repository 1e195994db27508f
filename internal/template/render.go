package template

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"hotel_builder/internal/domain"
)

// Fallbacks used when a hotel record leaves a slot empty, so rendered pages
// never ship broken images or dead-looking blanks.
const (
	placeholderImage = "https://via.placeholder.com/800x600?text=Hotel+Image"
	placeholderLogo  = "https://via.placeholder.com/200x80?text=Hotel+Logo"
	placeholderLink  = "#"
)

const galleryTokenSlots = 5

// Render fills a template with the hotel's values. Two mechanisms run in
// order: {{TOKEN}} markers are substituted as plain strings, then elements
// carrying well-known ids (hotel-name, hotel-phone, gallery-image-1 and so
// on) are filled structurally. A template may use either or both.
func Render(tpl string, h domain.Hotel) (string, error) {
	out := replaceTokens(tpl, h)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}
	fillIDs(doc, h)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc.Get(0)); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

func replaceTokens(tpl string, h domain.Hotel) string {
	pairs := []string{
		"{{HOTEL_NAME}}", h.Name,
		"{{HOTEL_PHONE}}", h.Phone,
		"{{HOTEL_EMAIL}}", h.Email,
		"{{HOTEL_ADDRESS}}", h.Address,
		"{{HOTEL_DESCRIPTION}}", h.Description,
		"{{HOTEL_WEBSITE}}", h.Website,
		"{{LOGO_URL}}", orDefault(h.LogoURL, placeholderLogo),
		"{{CHECK_IN}}", orDefault(h.CheckInTime, "14:00"),
		"{{CHECK_OUT}}", orDefault(h.CheckOutTime, "12:00"),
		"{{STAR_RATING}}", starGlyphs(h.StarRating),
		"{{AMENITIES}}", strings.Join(h.Amenities, ", "),
		"{{FACEBOOK_URL}}", orDefault(h.Social.Facebook, placeholderLink),
		"{{INSTAGRAM_URL}}", orDefault(h.Social.Instagram, placeholderLink),
		"{{TWITTER_URL}}", orDefault(h.Social.Twitter, placeholderLink),
		"{{LINKEDIN_URL}}", orDefault(h.Social.LinkedIn, placeholderLink),
		"{{YOUTUBE_URL}}", orDefault(h.Social.YouTube, placeholderLink),
	}
	for i := 1; i <= galleryTokenSlots; i++ {
		pairs = append(pairs, fmt.Sprintf("{{GALLERY_IMAGE_%d}}", i), galleryImage(h, i-1))
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

func fillIDs(doc *goquery.Document, h domain.Hotel) {
	setIDText(doc, "hotel-name", h.Name)
	setIDText(doc, "hotel-address", h.Address)
	setIDText(doc, "hotel-description", h.Description)
	setIDText(doc, "hotel-amenities", strings.Join(h.Amenities, ", "))
	setIDText(doc, "hotel-stars", starGlyphs(h.StarRating))
	setIDText(doc, "check-in-time", orDefault(h.CheckInTime, "14:00"))
	setIDText(doc, "check-out-time", orDefault(h.CheckOutTime, "12:00"))

	setIDAttr(doc, "hotel-logo", "src", orDefault(h.LogoURL, placeholderLogo))
	if h.Name != "" {
		setIDAttr(doc, "hotel-logo", "alt", h.Name)
	}

	if h.Phone != "" {
		setIDText(doc, "hotel-phone", h.Phone)
		setIDAttr(doc, "hotel-phone", "href", "tel:"+h.Phone)
	}
	if h.Email != "" {
		setIDText(doc, "hotel-email", h.Email)
		setIDAttr(doc, "hotel-email", "href", "mailto:"+h.Email)
	}

	for i := 1; i <= galleryTokenSlots; i++ {
		id := fmt.Sprintf("gallery-image-%d", i)
		setIDAttr(doc, id, "src", galleryImage(h, i-1))
		if h.Name != "" {
			setIDAttr(doc, id, "alt", h.Name)
		}
	}

	setIDAttr(doc, "facebook-link", "href", orDefault(h.Social.Facebook, placeholderLink))
	setIDAttr(doc, "instagram-link", "href", orDefault(h.Social.Instagram, placeholderLink))
	setIDAttr(doc, "twitter-link", "href", orDefault(h.Social.Twitter, placeholderLink))
	setIDAttr(doc, "linkedin-link", "href", orDefault(h.Social.LinkedIn, placeholderLink))
	setIDAttr(doc, "youtube-link", "href", orDefault(h.Social.YouTube, placeholderLink))

	if doc.Find("title").Length() > 0 && h.Name != "" {
		doc.Find("title").SetText(h.Name)
	}
}

func setIDText(doc *goquery.Document, id, text string) {
	if text == "" {
		return
	}
	doc.Find("#" + id).SetText(text)
}

func setIDAttr(doc *goquery.Document, id, attr, val string) {
	if val == "" {
		return
	}
	doc.Find("#" + id).SetAttr(attr, val)
}

// galleryImage returns the i-th gallery image, borrowing from the slider set
// before falling back to a placeholder.
func galleryImage(h domain.Hotel, i int) string {
	if i < len(h.GalleryImages) {
		return h.GalleryImages[i]
	}
	if j := i - len(h.GalleryImages); j < len(h.SliderImages) {
		return h.SliderImages[j]
	}
	return placeholderImage
}

func starGlyphs(rating int) string {
	if rating < 1 || rating > 5 {
		return ""
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
