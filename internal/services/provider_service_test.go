package services

import (
	"context"
	"testing"

	"github.com/trustmed/trustmed/internal/domain/provider"
	"github.com/trustmed/trustmed/internal/pkg/errors"
	"github.com/trustmed/trustmed/internal/repository/memory"
	"github.com/trustmed/trustmed/internal/search"
	"github.com/trustmed/trustmed/internal/testutil"
)

func newTestProviderService() provider.Service {
	return NewProviderService(memory.NewProviderCatalog(), search.New(), testutil.NewTestLogger())
}

func TestProviderService_Search(t *testing.T) {
	svc := newTestProviderService()
	ctx := context.Background()

	tests := []struct {
		name      string
		criteria  provider.Criteria
		wantCount int
		wantFirst string
	}{
		{
			name:      "empty criteria return the full catalog",
			criteria:  provider.Criteria{},
			wantCount: 3,
			wantFirst: "Dr. Carlos Mendoza",
		},
		{
			name:      "procedure narrows to dentistry",
			criteria:  provider.Criteria{Procedure: "dent"},
			wantCount: 1,
			wantFirst: "Clínica Dental Medellín",
		},
		{
			name:      "location narrows to cali",
			criteria:  provider.Criteria{Location: "cali"},
			wantCount: 1,
			wantFirst: "Dr. Andrés Vargas",
		},
		{
			name:      "price sort puts the cheapest catalog entry first",
			criteria:  provider.Criteria{Sort: provider.SortPrice},
			wantCount: 3,
			wantFirst: "Clínica Dental Medellín",
		},
		{
			name:      "impossible combination is empty, not an error",
			criteria:  provider.Criteria{Procedure: "dent", Location: "cali"},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(ctx, tt.criteria)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(got) != tt.wantCount {
				t.Fatalf("Search() returned %d providers, want %d", len(got), tt.wantCount)
			}
			if tt.wantCount > 0 && got[0].Name != tt.wantFirst {
				t.Errorf("Search() first = %v, want %v", got[0].Name, tt.wantFirst)
			}
		})
	}
}

func TestProviderService_SearchRejectsUnknownSort(t *testing.T) {
	svc := newTestProviderService()

	_, err := svc.Search(context.Background(), provider.Criteria{Sort: "alphabetical"})
	if !errors.IsCode(err, errors.ErrCodeBadRequest) {
		t.Errorf("Search() error = %v, want bad request", err)
	}
}

func TestProviderService_GetByID(t *testing.T) {
	svc := newTestProviderService()
	ctx := context.Background()

	p, err := svc.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if p.Name != "Dr. Carlos Mendoza" {
		t.Errorf("GetByID() name = %v, want Dr. Carlos Mendoza", p.Name)
	}

	if _, err := svc.GetByID(ctx, "999"); !errors.IsCode(err, errors.ErrCodeNotFound) {
		t.Errorf("GetByID(999) error = %v, want not found", err)
	}
}

func TestProviderService_Featured(t *testing.T) {
	svc := newTestProviderService()

	featured, err := svc.Featured(context.Background())
	if err != nil {
		t.Fatalf("Featured() error = %v", err)
	}
	if len(featured) != 2 {
		t.Fatalf("Featured() returned %d providers, want 2", len(featured))
	}
	for _, p := range featured {
		if !p.Featured {
			t.Errorf("Featured() included non-featured provider %s", p.ID)
		}
	}
}
