package domain

// Hotel is the canonical record every build/clone operation consumes.
// Name, Phone, Email and Address must be non-empty for a usable record;
// everything else is optional and simply leaves its slot untouched.
type Hotel struct {
	ID          int64
	Name        string
	Phone       string
	Email       string
	Address     string
	Website     string
	LogoURL     string
	Description string

	CheckInTime  string // "14:00" style
	CheckOutTime string
	StarRating   int
	Currency     string
	Language     string // en|tr

	GalleryImages []string
	SliderImages  []string
	Amenities     []string
	Rooms         []Room
	Facilities    []Facility

	Social Social
	Meta   Meta

	Lat, Lon *float64
}

type Room struct {
	Type        string
	Description string
	Price       float64
	Capacity    int
	Features    []string
	Images      []string
	Available   bool
}

type Facility struct {
	Name        string
	Description string
	Icon        string
	Available   bool
}

type Social struct {
	Facebook  string
	Instagram string
	Twitter   string
	LinkedIn  string
	YouTube   string
}

type Meta struct {
	Title       string
	Description string
	Keywords    string
}

// Usable reports whether the record carries the mandatory contact fields.
func (h Hotel) Usable() bool {
	return h.Name != "" && h.Phone != "" && h.Email != "" && h.Address != ""
}
