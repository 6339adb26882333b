package memory

import (
	"context"

	"github.com/trustmed/trustmed/internal/domain/destination"
)

// DestinationList holds the static destination reference data.
type DestinationList struct {
	destinations []*destination.Destination
}

// NewDestinationList creates a list seeded with the demo destinations.
func NewDestinationList() *DestinationList {
	return &DestinationList{destinations: seedDestinations()}
}

// List returns every destination in insertion order.
func (l *DestinationList) List(ctx context.Context) ([]*destination.Destination, error) {
	out := make([]*destination.Destination, len(l.destinations))
	copy(out, l.destinations)
	return out, nil
}

func seedDestinations() []*destination.Destination {
	return []*destination.Destination{
		{
			Country:    "Colombia",
			City:       "Bogotá",
			Image:      "https://images.pexels.com/photos/1586298/pexels-photo-1586298.jpeg?auto=compress&cs=tinysrgb&w=600",
			Procedures: []string{"Dental", "Cirugía Cosmética", "Cirugía Bariátrica"},
			Savings:    "Hasta 60%",
			Providers:  45,
		},
		{
			Country:    "Colombia",
			City:       "Medellín",
			Image:      "https://images.pexels.com/photos/1007410/pexels-photo-1007410.jpeg?auto=compress&cs=tinysrgb&w=600",
			Procedures: []string{"Dental", "Cirugía Cosmética", "Cirugía Cardíaca"},
			Savings:    "Hasta 65%",
			Providers:  62,
		},
		{
			Country:    "Colombia",
			City:       "Cali",
			Image:      "https://images.pexels.com/photos/1524107/pexels-photo-1524107.jpeg?auto=compress&cs=tinysrgb&w=600",
			Procedures: []string{"Trasplante Capilar", "Cirugía Ocular", "Dental"},
			Savings:    "Hasta 55%",
			Providers:  38,
		},
	}
}
