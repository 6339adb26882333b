package provider

import "context"

// Catalog defines read access to the static provider catalog.
// No create, update or delete operations exist in this scope.
type Catalog interface {
	// List returns every provider in insertion order
	List(ctx context.Context) ([]*Provider, error)

	// GetByID retrieves a single provider profile
	GetByID(ctx context.Context, id string) (*Provider, error)

	// Featured returns the providers flagged for the home page
	Featured(ctx context.Context) ([]*Provider, error)
}

// Service defines the catalog operations exposed to the API surface.
type Service interface {
	// Search narrows the catalog to providers matching the criteria,
	// ordered by the criteria's sort key
	Search(ctx context.Context, criteria Criteria) ([]*Provider, error)

	// GetByID retrieves a single provider profile
	GetByID(ctx context.Context, id string) (*Provider, error)

	// Featured returns the providers flagged for the home page
	Featured(ctx context.Context) ([]*Provider, error)
}
