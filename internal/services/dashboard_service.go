package services

import (
	"context"

	"github.com/trustmed/trustmed/internal/domain/dashboard"
	"github.com/trustmed/trustmed/internal/pkg/logger"
)

// DashboardView bundles everything the patient dashboard renders.
type DashboardView struct {
	UpcomingAppointments []*dashboard.Appointment   `json:"upcomingAppointments"`
	RecentMessages       []*dashboard.Message       `json:"recentMessages"`
	BookingHistory       []*dashboard.BookingRecord `json:"bookingHistory"`
}

// DashboardService assembles the patient dashboard from its datasets.
type DashboardService struct {
	repo   dashboard.Repository
	logger *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo dashboard.Repository, log *logger.Logger) *DashboardService {
	return &DashboardService{
		repo:   repo,
		logger: log,
	}
}

// Overview collects the three dashboard datasets into one view.
func (s *DashboardService) Overview(ctx context.Context) (*DashboardView, error) {
	appointments, err := s.repo.UpcomingAppointments(ctx)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to load upcoming appointments")
		return nil, err
	}
	messages, err := s.repo.RecentMessages(ctx)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to load recent messages")
		return nil, err
	}
	history, err := s.repo.BookingHistory(ctx)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to load booking history")
		return nil, err
	}
	return &DashboardView{
		UpcomingAppointments: appointments,
		RecentMessages:       messages,
		BookingHistory:       history,
	}, nil
}

// UpcomingAppointments returns the pending and confirmed visits
func (s *DashboardService) UpcomingAppointments(ctx context.Context) ([]*dashboard.Appointment, error) {
	return s.repo.UpcomingAppointments(ctx)
}

// RecentMessages returns the latest conversation previews
func (s *DashboardService) RecentMessages(ctx context.Context) ([]*dashboard.Message, error) {
	return s.repo.RecentMessages(ctx)
}

// BookingHistory returns completed and cancelled bookings
func (s *DashboardService) BookingHistory(ctx context.Context) ([]*dashboard.BookingRecord, error) {
	return s.repo.BookingHistory(ctx)
}
