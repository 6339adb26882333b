package client

// User represents an account in the registry
type User struct {
	ID                string   `json:"id"`
	Email             string   `json:"email"`
	Role              string   `json:"role"`
	FirstName         string   `json:"firstName,omitempty"`
	LastName          string   `json:"lastName,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Country           string   `json:"country,omitempty"`
	PreferredLanguage string   `json:"preferredLanguage,omitempty"`
	Languages         []string `json:"languages,omitempty"`
	PhotoURL          string   `json:"photoUrl,omitempty"`
	Verified          bool     `json:"isVerified"`
}

// Procedure is one treatment a provider offers
type Procedure struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Provider is a catalog entry
type Provider struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Title        string      `json:"title"`
	Organization string      `json:"organization"`
	Specialty    string      `json:"specialty"`
	Image        string      `json:"image"`
	Verified     bool        `json:"verified"`
	Featured     bool        `json:"featured"`
	Rating       float64     `json:"rating"`
	ReviewCount  int         `json:"reviewCount"`
	Experience   int         `json:"experience"`
	Languages    []string    `json:"languages"`
	Location     string      `json:"location"`
	About        string      `json:"about"`
	Procedures   []Procedure `json:"procedures"`
}

// Destination is a medical-travel city
type Destination struct {
	Country    string   `json:"country"`
	City       string   `json:"city"`
	Image      string   `json:"image"`
	Procedures []string `json:"procedures"`
	Savings    string   `json:"savings"`
	Providers  int      `json:"providers"`
}
