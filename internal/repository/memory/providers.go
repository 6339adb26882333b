package memory

import (
	"context"

	"github.com/trustmed/trustmed/internal/domain/provider"
	"github.com/trustmed/trustmed/internal/pkg/errors"
)

// ProviderCatalog holds the static provider records. The catalog never
// changes after construction; List preserves insertion order.
type ProviderCatalog struct {
	providers []*provider.Provider
	byID      map[string]*provider.Provider
}

// NewProviderCatalog creates a catalog seeded with the demo providers.
func NewProviderCatalog() *ProviderCatalog {
	return newProviderCatalog(seedProviders())
}

// NewProviderCatalogWith creates a catalog over the given records.
func NewProviderCatalogWith(providers []*provider.Provider) *ProviderCatalog {
	return newProviderCatalog(providers)
}

func newProviderCatalog(providers []*provider.Provider) *ProviderCatalog {
	byID := make(map[string]*provider.Provider, len(providers))
	for _, p := range providers {
		byID[p.ID] = p
	}
	return &ProviderCatalog{providers: providers, byID: byID}
}

// List returns every provider in insertion order.
func (c *ProviderCatalog) List(ctx context.Context) ([]*provider.Provider, error) {
	out := make([]*provider.Provider, len(c.providers))
	copy(out, c.providers)
	return out, nil
}

// GetByID retrieves a single provider profile.
func (c *ProviderCatalog) GetByID(ctx context.Context, id string) (*provider.Provider, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, errors.NotFound("provider")
	}
	return p, nil
}

// Featured returns the providers flagged for the home page.
func (c *ProviderCatalog) Featured(ctx context.Context) ([]*provider.Provider, error) {
	var out []*provider.Provider
	for _, p := range c.providers {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func seedProviders() []*provider.Provider {
	return []*provider.Provider{
		{
			ID:           "1",
			Name:         "Dr. Carlos Mendoza",
			Title:        "Cirujano Plástico Certificado",
			Organization: "Centro Médico Bogotá",
			Specialty:    "Cosmetic Surgery",
			Image:        "https://images.pexels.com/photos/5215024/pexels-photo-5215024.jpeg?auto=compress&cs=tinysrgb&w=600",
			Verified:     true,
			Featured:     true,
			Rating:       4.9,
			ReviewCount:  234,
			Experience:   15,
			Languages:    []string{"Spanish", "English"},
			Location:     "Bogotá, Colombia",
			About: "Dr. Carlos Mendoza es un cirujano plástico certificado con más de 15 años de experiencia en cirugía cosmética y reconstructiva. " +
				"Se especializa en rejuvenecimiento facial, aumento de senos, contorno corporal y procedimientos reconstructivos. " +
				"Ha realizado más de 3,000 cirugías exitosas y es miembro de la Sociedad Colombiana de Cirugía Plástica.",
			Procedures: []provider.Procedure{
				{Name: "Rinoplastia", Price: 8000000, Duration: "2-3 horas", Description: "Cirugía de remodelación nasal"},
				{Name: "Aumento de Senos", Price: 12000000, Duration: "1-2 horas", Description: "Aumento mamario con implantes"},
				{Name: "Liposucción", Price: 7000000, Duration: "1-3 horas", Description: "Eliminación de grasa y contorno corporal"},
				{Name: "Abdominoplastia", Price: 15000000, Duration: "2-4 horas", Description: "Contorno abdominal"},
			},
			Clinics: []provider.Clinic{
				{
					ID:        "1",
					Name:      "Centro Médico Bogotá",
					Address:   "Carrera 15 #93-47, Chapinero, Bogotá",
					Phone:     "+57 1 234-5678",
					Email:     "info@centromedicobogota.com",
					IsPrimary: true,
					Amenities: []string{"Quirófanos", "Salas de Recuperación", "Consultorios", "Farmacia", "Parqueadero"},
				},
			},
			Reviews: []provider.Review{
				{
					ID:          "1",
					PatientName: "María S.",
					Rating:      5,
					Date:        "2024-12-15",
					Procedure:   "Rinoplastia",
					Title:       "Resultados increíbles, atención profesional",
					Content:     "Dr. Mendoza superó mis expectativas. Todo el proceso fue muy profesional, desde la consulta hasta la recuperación.",
					Verified:    true,
				},
				{
					ID:          "2",
					PatientName: "Ana L.",
					Rating:      5,
					Date:        "2024-12-08",
					Procedure:   "Aumento de Senos",
					Title:       "Profesional y cuidadoso",
					Content:     "Excelente cirujano con muy buen trato. Se tomó el tiempo de explicar todo y me hizo sentir cómoda durante todo el proceso.",
					Verified:    true,
				},
			},
			BeforeAfter: []provider.BeforeAfter{
				{
					ID:          "1",
					Procedure:   "Rinoplastia",
					BeforeImage: "https://images.pexels.com/photos/3762800/pexels-photo-3762800.jpeg?auto=compress&cs=tinysrgb&w=400",
					AfterImage:  "https://images.pexels.com/photos/3762799/pexels-photo-3762799.jpeg?auto=compress&cs=tinysrgb&w=400",
					Description: "6 meses post-rinoplastia",
				},
			},
			Testimonials: []provider.Testimonial{
				{
					ID:             "1",
					PatientName:    "Laura R.",
					Title:          "Experiencia que cambió mi vida",
					VideoThumbnail: "https://images.pexels.com/photos/3845744/pexels-photo-3845744.jpeg?auto=compress&cs=tinysrgb&w=400",
					Duration:       "2:34",
				},
			},
			Availability: []provider.AvailabilityDay{
				{Date: "2025-01-20", Slots: []string{"09:00", "14:00"}},
				{Date: "2025-01-22", Slots: []string{"10:00", "15:00"}},
				{Date: "2025-01-25", Slots: []string{"09:00", "11:00", "16:00"}},
			},
		},
		{
			ID:           "2",
			Name:         "Clínica Dental Medellín",
			Title:        "Centro Odontológico Especializado",
			Organization: "Clínica Dental Medellín",
			Specialty:    "Dentistry",
			Image:        "https://images.pexels.com/photos/3845810/pexels-photo-3845810.jpeg?auto=compress&cs=tinysrgb&w=600",
			Verified:     true,
			Featured:     false,
			Rating:       4.8,
			ReviewCount:  456,
			Experience:   20,
			Languages:    []string{"Spanish", "English"},
			Location:     "Medellín, Colombia",
			About: "Clínica Dental Medellín es una institución odontológica líder con más de 20 años de experiencia. " +
				"Nuestro equipo de especialistas brinda atención dental integral utilizando la última tecnología.",
			Procedures: []provider.Procedure{
				{Name: "Implantes Dentales", Price: 2000000, Duration: "1-2 horas", Description: "Reemplazo completo de dientes con implantes de titanio"},
				{Name: "Carillas", Price: 800000, Duration: "1 hora", Description: "Carillas de porcelana para mejorar la sonrisa"},
				{Name: "Blanqueamiento", Price: 400000, Duration: "1 hora", Description: "Blanqueamiento dental profesional con láser"},
			},
			Clinics: []provider.Clinic{
				{
					ID:        "2",
					Name:      "Clínica Dental Medellín",
					Address:   "Carrera 43A #16-15, El Poblado, Medellín",
					Phone:     "+57 4 234-5678",
					Email:     "info@clinicadentalmedellin.com",
					IsPrimary: true,
					Amenities: []string{"Rayos X Digitales", "Tratamiento Láser", "Sedación", "Salas de Recuperación"},
				},
			},
			Reviews: []provider.Review{
				{
					ID:          "3",
					PatientName: "Juan D.",
					Rating:      5,
					Date:        "2024-12-10",
					Procedure:   "Implantes Dentales",
					Title:       "Excelente servicio y resultados",
					Content:     "Personal profesional, instalaciones modernas y excelentes resultados. Los implantes se ven y se sienten naturales.",
					Verified:    true,
				},
			},
			Availability: []provider.AvailabilityDay{
				{Date: "2025-01-15", Slots: []string{"09:00", "11:00", "14:00"}},
				{Date: "2025-01-16", Slots: []string{"10:00", "15:00"}},
			},
		},
		{
			ID:           "3",
			Name:         "Dr. Andrea Vargas",
			Title:        "Especialista en Trasplante Capilar",
			Organization: "Clínica Capilar Cali",
			Specialty:    "Trasplante Capilar",
			Image:        "https://images.pexels.com/photos/6129507/pexels-photo-6129507.jpeg?auto=compress&cs=tinysrgb&w=600",
			Verified:     true,
			Featured:     true,
			Rating:       4.9,
			ReviewCount:  189,
			Experience:   12,
			Languages:    []string{"Spanish", "English"},
			Location:     "Cali, Colombia",
			About: "Dr. Andrea Vargas es una especialista reconocida en trasplante capilar con más de 12 años de experiencia. " +
				"Ha realizado miles de procedimientos FUE exitosos.",
			Procedures: []provider.Procedure{
				{Name: "Trasplante Capilar FUE", Price: 6000000, Duration: "6-8 horas", Description: "Trasplante capilar por extracción de unidades foliculares"},
				{Name: "Trasplante de Barba", Price: 4500000, Duration: "4-6 horas", Description: "Restauración de vello facial"},
			},
			Clinics: []provider.Clinic{
				{
					ID:        "3",
					Name:      "Clínica Capilar Cali",
					Address:   "Avenida 6N #23-45, Granada, Cali",
					Phone:     "+57 2 345-6789",
					Email:     "info@clinicacapilarcali.com",
					IsPrimary: true,
					Amenities: []string{"Microscopios", "Ambiente Estéril", "Área de Recuperación", "Consultorios"},
				},
			},
			Reviews: []provider.Review{
				{
					ID:          "4",
					PatientName: "Miguel K.",
					Rating:      5,
					Date:        "2024-11-28",
					Procedure:   "Trasplante Capilar FUE",
					Title:       "Transformación increíble",
					Content:     "Dr. Vargas es una verdadera artista. Los resultados superaron mis expectativas. Equipo profesional y excelente cuidado post-operatorio.",
					Verified:    true,
				},
			},
			BeforeAfter: []provider.BeforeAfter{
				{
					ID:          "2",
					Procedure:   "Trasplante Capilar FUE",
					BeforeImage: "https://images.pexels.com/photos/3762798/pexels-photo-3762798.jpeg?auto=compress&cs=tinysrgb&w=400",
					AfterImage:  "https://images.pexels.com/photos/3762797/pexels-photo-3762797.jpeg?auto=compress&cs=tinysrgb&w=400",
					Description: "12 meses post-trasplante FUE",
				},
			},
			Availability: []provider.AvailabilityDay{
				{Date: "2025-01-18", Slots: []string{"09:00"}},
				{Date: "2025-01-20", Slots: []string{"09:00"}},
			},
		},
	}
}
