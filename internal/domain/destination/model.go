package destination

import "context"

// Destination is a medical-travel city shown on the home page
type Destination struct {
	Country    string   `json:"country"`
	City       string   `json:"city"`
	Image      string   `json:"image"`
	Procedures []string `json:"procedures"`
	Savings    string   `json:"savings"`
	Providers  int      `json:"providers"`
}

// Repository defines read access to the destination reference data
type Repository interface {
	List(ctx context.Context) ([]*Destination, error)
}
