package memory

import (
	"context"

	"github.com/trustmed/trustmed/internal/domain/dashboard"
)

// DashboardData holds the static patient dashboard datasets.
type DashboardData struct {
	appointments []*dashboard.Appointment
	messages     []*dashboard.Message
	history      []*dashboard.BookingRecord
}

// NewDashboardData creates dashboard data seeded with the demo records.
func NewDashboardData() *DashboardData {
	return &DashboardData{
		appointments: seedAppointments(),
		messages:     seedMessages(),
		history:      seedBookingHistory(),
	}
}

// UpcomingAppointments returns the pending and confirmed visits.
func (d *DashboardData) UpcomingAppointments(ctx context.Context) ([]*dashboard.Appointment, error) {
	out := make([]*dashboard.Appointment, len(d.appointments))
	copy(out, d.appointments)
	return out, nil
}

// RecentMessages returns the latest conversation previews.
func (d *DashboardData) RecentMessages(ctx context.Context) ([]*dashboard.Message, error) {
	out := make([]*dashboard.Message, len(d.messages))
	copy(out, d.messages)
	return out, nil
}

// BookingHistory returns completed and cancelled bookings.
func (d *DashboardData) BookingHistory(ctx context.Context) ([]*dashboard.BookingRecord, error) {
	out := make([]*dashboard.BookingRecord, len(d.history))
	copy(out, d.history)
	return out, nil
}

func seedAppointments() []*dashboard.Appointment {
	return []*dashboard.Appointment{
		{
			ID:            "1",
			ProviderName:  "Dr. Carlos Mendoza",
			Specialty:     "Cirugía Cosmética",
			Procedure:     "Consulta Rinoplastia",
			Date:          "2025-01-20",
			Time:          "14:00",
			Type:          dashboard.AppointmentVirtual,
			Location:      "Bogotá, Colombia",
			Status:        dashboard.StatusConfirmed,
			ProviderImage: "https://images.pexels.com/photos/5215024/pexels-photo-5215024.jpeg?auto=compress&cs=tinysrgb&w=300",
		},
		{
			ID:            "2",
			ProviderName:  "Clínica Dental Medellín",
			Specialty:     "Odontología",
			Procedure:     "Consulta Implantes Dentales",
			Date:          "2025-01-25",
			Time:          "10:00",
			Type:          dashboard.AppointmentInPerson,
			Location:      "Medellín, Colombia",
			Status:        dashboard.StatusPending,
			ProviderImage: "https://images.pexels.com/photos/3845810/pexels-photo-3845810.jpeg?auto=compress&cs=tinysrgb&w=300",
		},
	}
}

func seedMessages() []*dashboard.Message {
	return []*dashboard.Message{
		{
			ID:            "1",
			ProviderName:  "Dr. Carlos Mendoza",
			LastMessage:   "Gracias por sus preguntas. Le he enviado las instrucciones pre-quirúrgicas.",
			Timestamp:     "hace 2 horas",
			Unread:        true,
			ProviderImage: "https://images.pexels.com/photos/5215024/pexels-photo-5215024.jpeg?auto=compress&cs=tinysrgb&w=300",
		},
		{
			ID:            "2",
			ProviderName:  "Clínica Dental Medellín",
			LastMessage:   "Su consulta está confirmada para la próxima semana. Por favor traiga sus radiografías.",
			Timestamp:     "hace 1 día",
			Unread:        false,
			ProviderImage: "https://images.pexels.com/photos/3845810/pexels-photo-3845810.jpeg?auto=compress&cs=tinysrgb&w=300",
		},
	}
}

func seedBookingHistory() []*dashboard.BookingRecord {
	return []*dashboard.BookingRecord{
		{
			ID:           "1",
			ProviderName: "Dr. Luis García",
			Procedure:    "Consulta Cardiológica",
			Date:         "2024-12-15",
			Status:       dashboard.StatusCompleted,
			Amount:       350000,
			CanReview:    true,
		},
		{
			ID:           "2",
			ProviderName: "Clínica Capilar Cali",
			Procedure:    "Consulta Trasplante Capilar",
			Date:         "2024-11-28",
			Status:       dashboard.StatusCompleted,
			Amount:       250000,
			CanReview:    false,
		},
	}
}
