package services

import (
	"context"

	"github.com/trustmed/trustmed/internal/domain/provider"
	"github.com/trustmed/trustmed/internal/pkg/errors"
	"github.com/trustmed/trustmed/internal/pkg/logger"
	"github.com/trustmed/trustmed/internal/pkg/metrics"
	"github.com/trustmed/trustmed/internal/search"
)

// ProviderService implements provider.Service over the static catalog.
type ProviderService struct {
	catalog provider.Catalog
	engine  *search.Engine
	logger  *logger.Logger
}

// NewProviderService creates a new provider service
func NewProviderService(catalog provider.Catalog, engine *search.Engine, log *logger.Logger) provider.Service {
	return &ProviderService{
		catalog: catalog,
		engine:  engine,
		logger:  log,
	}
}

// Search narrows the catalog to providers matching the criteria. An invalid
// sort key is rejected before the catalog is touched; empty criteria return
// the full catalog in insertion order.
func (s *ProviderService) Search(ctx context.Context, criteria provider.Criteria) ([]*provider.Provider, error) {
	if criteria.Sort == "" {
		criteria.Sort = provider.SortRelevance
	}
	if !criteria.Sort.Valid() {
		return nil, errors.BadRequest("unknown sort key: " + string(criteria.Sort))
	}

	catalog, err := s.catalog.List(ctx)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to list provider catalog")
		return nil, err
	}

	results := s.engine.Filter(catalog, criteria)

	metrics.RecordSearch(string(criteria.Sort), len(results))
	s.logger.WithFields(map[string]interface{}{
		"procedure": criteria.Procedure,
		"location":  criteria.Location,
		"sort":      criteria.Sort,
		"results":   len(results),
	}).Debug("Catalog search")

	return results, nil
}

// GetByID retrieves a single provider profile
func (s *ProviderService) GetByID(ctx context.Context, id string) (*provider.Provider, error) {
	return s.catalog.GetByID(ctx, id)
}

// Featured returns the providers flagged for the home page
func (s *ProviderService) Featured(ctx context.Context) ([]*provider.Provider, error) {
	return s.catalog.Featured(ctx)
}
