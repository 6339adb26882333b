package services

import (
	"context"

	"github.com/trustmed/trustmed/internal/domain/admin"
	"github.com/trustmed/trustmed/internal/domain/user"
	"github.com/trustmed/trustmed/internal/pkg/logger"
)

// AdminService assembles the admin console datasets. Live figures come
// from the registry; the rest is reference data.
type AdminService struct {
	repo     admin.Repository
	registry user.Registry
	logger   *logger.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(repo admin.Repository, registry user.Registry, log *logger.Logger) *AdminService {
	return &AdminService{
		repo:     repo,
		registry: registry,
		logger:   log,
	}
}

// Stats returns the platform totals, with the user count taken live from
// the registry so sign-ups show up immediately.
func (s *AdminService) Stats(ctx context.Context) (*admin.Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to load admin stats")
		return nil, err
	}
	count, err := s.registry.Count(ctx)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to count registered users")
		return nil, err
	}
	stats.TotalUsers = count
	return stats, nil
}

// PendingVerifications returns providers awaiting review
func (s *AdminService) PendingVerifications(ctx context.Context) ([]*admin.PendingVerification, error) {
	return s.repo.PendingVerifications(ctx)
}

// RecentActivity returns the latest platform events
func (s *AdminService) RecentActivity(ctx context.Context) ([]*admin.Activity, error) {
	return s.repo.RecentActivity(ctx)
}
