package app

import (
	"strings"

	"hotel_builder/internal/domain"
)

// SimpleHotelData is the flat request shape the HTTP and CLI surfaces
// accept. It mirrors the fields non-technical callers actually fill in;
// ToHotel folds it into the canonical record.
type SimpleHotelData struct {
	HotelName    string `json:"hotelName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Website      string `json:"website"`
	LogoURL      string `json:"logoUrl"`
	Description  string `json:"description"`
	CheckInTime  string `json:"checkInTime"`
	CheckOutTime string `json:"checkOutTime"`
	StarRating   int    `json:"starRating"`
	Currency     string `json:"currency"`
	Language     string `json:"language"`

	GalleryImages []string `json:"galleryImages"`
	SliderImages  []string `json:"sliderImages"`
	Amenities     []string `json:"amenities"`

	FacebookURL  string `json:"facebookUrl"`
	InstagramURL string `json:"instagramUrl"`
	TwitterURL   string `json:"twitterUrl"`
	LinkedInURL  string `json:"linkedinUrl"`
	YouTubeURL   string `json:"youtubeUrl"`

	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	MetaKeywords    string `json:"metaKeywords"`
}

func (d SimpleHotelData) ToHotel() domain.Hotel {
	return domain.Hotel{
		Name:          strings.TrimSpace(d.HotelName),
		Phone:         strings.TrimSpace(d.Phone),
		Email:         strings.TrimSpace(d.Email),
		Address:       strings.TrimSpace(d.Address),
		Website:       strings.TrimSpace(d.Website),
		LogoURL:       strings.TrimSpace(d.LogoURL),
		Description:   strings.TrimSpace(d.Description),
		CheckInTime:   strings.TrimSpace(d.CheckInTime),
		CheckOutTime:  strings.TrimSpace(d.CheckOutTime),
		StarRating:    d.StarRating,
		Currency:      d.Currency,
		Language:      strings.ToLower(strings.TrimSpace(d.Language)),
		GalleryImages: d.GalleryImages,
		SliderImages:  d.SliderImages,
		Amenities:     d.Amenities,
		Social: domain.Social{
			Facebook:  d.FacebookURL,
			Instagram: d.InstagramURL,
			Twitter:   d.TwitterURL,
			LinkedIn:  d.LinkedInURL,
			YouTube:   d.YouTubeURL,
		},
		Meta: domain.Meta{
			Title:       d.MetaTitle,
			Description: d.MetaDescription,
			Keywords:    d.MetaKeywords,
		},
	}
}
