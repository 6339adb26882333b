package provider

// Provider represents a healthcare provider listed in the catalog.
// Catalog records are static for the lifetime of the process.
type Provider struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Title        string            `json:"title"`
	Organization string            `json:"organization"`
	Specialty    string            `json:"specialty"`
	Image        string            `json:"image"`
	Verified     bool              `json:"verified"`
	Featured     bool              `json:"featured"`
	Rating       float64           `json:"rating"`
	ReviewCount  int               `json:"reviewCount"`
	Experience   int               `json:"experience"`
	Languages    []string          `json:"languages"`
	Location     string            `json:"location"`
	About        string            `json:"about"`
	Procedures   []Procedure       `json:"procedures"`
	Clinics      []Clinic          `json:"clinics"`
	Reviews      []Review          `json:"reviews"`
	BeforeAfter  []BeforeAfter     `json:"beforeAfter"`
	Testimonials []Testimonial     `json:"testimonials"`
	Availability []AvailabilityDay `json:"availability"`
}

// Procedure is a treatment offered by exactly one provider.
// Price is in positive integer currency units.
type Procedure struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Clinic is a physical location a provider operates from
type Clinic struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	IsPrimary bool     `json:"isPrimary"`
	Amenities []string `json:"amenities"`
}

// Review is a patient review of a provider. Rating is whole stars, 1-5.
type Review struct {
	ID          string `json:"id"`
	PatientName string `json:"patientName"`
	Rating      int    `json:"rating"`
	Date        string `json:"date"`
	Procedure   string `json:"procedure"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Verified    bool   `json:"verified"`
}

// BeforeAfter is a pair of treatment outcome images
type BeforeAfter struct {
	ID          string `json:"id"`
	Procedure   string `json:"procedure"`
	BeforeImage string `json:"beforeImage"`
	AfterImage  string `json:"afterImage"`
	Description string `json:"description"`
}

// Testimonial is a recorded patient story
type Testimonial struct {
	ID             string `json:"id"`
	PatientName    string `json:"patientName"`
	Title          string `json:"title"`
	VideoThumbnail string `json:"videoThumbnail"`
	Duration       string `json:"duration"`
}

// AvailabilityDay holds the open consultation slots for one date
type AvailabilityDay struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// MinProcedurePrice returns the cheapest procedure price, or 0 when the
// provider lists none. Used by the price sort key.
func (p *Provider) MinProcedurePrice() int64 {
	var min int64
	for i, proc := range p.Procedures {
		if i == 0 || proc.Price < min {
			min = proc.Price
		}
	}
	return min
}
