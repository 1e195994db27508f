package clone

import (
	"fmt"
	"os"
	"path/filepath"

	"hotel_builder/internal/domain"
)

// SiteDir is the output directory a hotel's site materializes into. Slug
// derivation is deterministic, so asset localization and the final HTML
// write always land in the same place for the same hotel.
func SiteDir(sitesDir, hotelName string) (slug, dir string) {
	slug = Slug(hotelName)
	return slug, filepath.Join(sitesDir, slug)
}

// Materialize writes the finished page to <sitesDir>/<slug>/index.html and
// returns the artifact describing it. Assets are written before this is
// called; index.html lands last so a directory with an index is always a
// complete site. A filesystem failure still yields a structured artifact,
// with Success unset and the error message carried in Message.
func Materialize(sitesDir string, h domain.Hotel, htmlContent, strategy string) (domain.SiteArtifact, error) {
	slug, dir := SiteDir(sitesDir, h.Name)
	fail := func(err error) (domain.SiteArtifact, error) {
		return domain.SiteArtifact{
			Slug:      slug,
			OutputDir: dir,
			HotelName: h.Name,
			Strategy:  strategy,
			Message:   err.Error(),
		}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fail(fmt.Errorf("create site dir: %w", err))
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(htmlContent), 0o644); err != nil {
		return fail(fmt.Errorf("write index.html: %w", err))
	}
	return domain.SiteArtifact{
		Slug:      slug,
		OutputDir: dir,
		SiteURL:   "/sites/" + slug + "/index.html",
		HTML:      htmlContent,
		HotelName: h.Name,
		Strategy:  strategy,
		Success:   true,
		Message:   "site generated",
	}, nil
}
