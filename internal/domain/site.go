package domain

// Strategy names returned in a SiteArtifact.
const (
	StrategyClone    = "clone"
	StrategyTemplate = "template"
)

// SiteArtifact is the result of one clone/build operation. A repeat run for
// the same hotel overwrites the artifact at the same slug path.
type SiteArtifact struct {
	Slug      string `json:"slug"`
	OutputDir string `json:"output_dir"`
	SiteURL   string `json:"site_url"` // /sites/<slug>/index.html
	HTML      string `json:"html"`
	HotelName string `json:"hotel_name"`
	Strategy  string `json:"strategy"`
	Success   bool   `json:"success"`
	Message   string `json:"message"`
}
