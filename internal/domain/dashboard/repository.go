package dashboard

import "context"

// Repository defines read access to the dashboard datasets
type Repository interface {
	// UpcomingAppointments returns the pending and confirmed visits
	UpcomingAppointments(ctx context.Context) ([]*Appointment, error)

	// RecentMessages returns the latest conversation previews
	RecentMessages(ctx context.Context) ([]*Message, error)

	// BookingHistory returns completed and cancelled bookings
	BookingHistory(ctx context.Context) ([]*BookingRecord, error)
}
