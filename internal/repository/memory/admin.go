package memory

import (
	"context"

	"github.com/trustmed/trustmed/internal/domain/admin"
)

// AdminData holds the static admin console datasets.
type AdminData struct {
	stats         *admin.Stats
	verifications []*admin.PendingVerification
	activity      []*admin.Activity
}

// NewAdminData creates admin data seeded with the demo records.
func NewAdminData() *AdminData {
	return &AdminData{
		stats: &admin.Stats{
			TotalUsers:           12450,
			ActiveProviders:      234,
			PendingVerifications: 18,
			MonthlyBookings:      1890,
			TotalRevenue:         245670,
			DisputesOpen:         7,
		},
		verifications: seedVerifications(),
		activity:      seedActivity(),
	}
}

// Stats returns the platform overview.
func (d *AdminData) Stats(ctx context.Context) (*admin.Stats, error) {
	cp := *d.stats
	return &cp, nil
}

// PendingVerifications returns provider applications awaiting review.
func (d *AdminData) PendingVerifications(ctx context.Context) ([]*admin.PendingVerification, error) {
	out := make([]*admin.PendingVerification, len(d.verifications))
	copy(out, d.verifications)
	return out, nil
}

// RecentActivity returns the admin activity feed.
func (d *AdminData) RecentActivity(ctx context.Context) ([]*admin.Activity, error) {
	out := make([]*admin.Activity, len(d.activity))
	copy(out, d.activity)
	return out, nil
}

func seedVerifications() []*admin.PendingVerification {
	return []*admin.PendingVerification{
		{
			ID:             "1",
			ProviderName:   "Dr. Patricia Herrera",
			Organization:   "Clínica Dental Herrera",
			Location:       "Cartagena, Colombia",
			SubmittedDate:  "2025-01-15",
			DocumentsCount: 8,
			Status:         admin.VerificationUnderReview,
		},
		{
			ID:             "2",
			ProviderName:   "Centro Oftalmológico Barranquilla",
			Organization:   "Grupo Médico del Caribe",
			Location:       "Barranquilla, Colombia",
			SubmittedDate:  "2025-01-14",
			DocumentsCount: 12,
			Status:         admin.VerificationPending,
		},
	}
}

func seedActivity() []*admin.Activity {
	return []*admin.Activity{
		{
			ID:          "1",
			Type:        admin.ActivityProviderApproved,
			Description: "Dr. Carlos Mendoza aprobado para cirugía cosmética",
			Timestamp:   "hace 2 horas",
			Actor:       "Usuario Admin",
		},
		{
			ID:          "2",
			Type:        admin.ActivityDisputeResolved,
			Description: "Disputa de reserva #1234 resuelta a favor del paciente",
			Timestamp:   "hace 4 horas",
			Actor:       "Equipo de Soporte",
		},
		{
			ID:          "3",
			Type:        admin.ActivitySanctionApplied,
			Description: "Advertencia emitida a Clínica Medellín por respuesta tardía",
			Timestamp:   "hace 1 día",
			Actor:       "Equipo de Calidad",
		},
	}
}
