package search

import (
	"testing"

	"github.com/trustmed/trustmed/internal/domain/provider"
)

func testCatalog() []*provider.Provider {
	return []*provider.Provider{
		{
			ID:         "1",
			Name:       "Dr. Carlos Mendoza",
			Specialty:  "Cosmetic Surgery",
			Location:   "Bogotá, Colombia",
			Rating:     4.9,
			Experience: 15,
			Languages:  []string{"Spanish", "English"},
			Procedures: []provider.Procedure{
				{Name: "Rinoplastia", Price: 8000000},
				{Name: "Liposucción", Price: 7000000},
			},
		},
		{
			ID:         "2",
			Name:       "Clínica Dental Medellín",
			Specialty:  "Dentistry",
			Location:   "Medellín, Colombia",
			Rating:     4.7,
			Experience: 10,
			Languages:  []string{"Spanish"},
			Procedures: []provider.Procedure{
				{Name: "Implante Dental", Price: 2500000},
			},
		},
		{
			ID:         "3",
			Name:       "Dr. Andrés Vargas",
			Specialty:  "Trasplante Capilar",
			Location:   "Cali, Colombia",
			Rating:     4.8,
			Experience: 12,
			Languages:  []string{"Spanish", "English", "Portuguese"},
			Procedures: []provider.Procedure{
				{Name: "Trasplante FUE", Price: 9000000},
			},
		},
	}
}

func ids(providers []*provider.Provider) []string {
	out := make([]string, len(providers))
	for i, p := range providers {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEngine_Filter(t *testing.T) {
	engine := New()

	tests := []struct {
		name     string
		criteria provider.Criteria
		wantIDs  []string
	}{
		{
			name:     "empty criteria return full catalog in order",
			criteria: provider.Criteria{},
			wantIDs:  []string{"1", "2", "3"},
		},
		{
			name:     "procedure substring is case insensitive",
			criteria: provider.Criteria{Procedure: "dent"},
			wantIDs:  []string{"2"},
		},
		{
			name:     "location substring",
			criteria: provider.Criteria{Location: "cali"},
			wantIDs:  []string{"3"},
		},
		{
			name:     "location substring matches multiple",
			criteria: provider.Criteria{Location: "colombia"},
			wantIDs:  []string{"1", "2", "3"},
		},
		{
			name:     "price range keeps any matching procedure",
			criteria: provider.Criteria{PriceMin: 2000000, PriceMax: 3000000},
			wantIDs:  []string{"2"},
		},
		{
			name:     "open upper bound",
			criteria: provider.Criteria{PriceMin: 8500000},
			wantIDs:  []string{"3"},
		},
		{
			name:     "minimum rating",
			criteria: provider.Criteria{MinRating: 4.8},
			wantIDs:  []string{"1", "3"},
		},
		{
			name:     "all required languages must be spoken",
			criteria: provider.Criteria{Languages: []string{"english", "portuguese"}},
			wantIDs:  []string{"3"},
		},
		{
			name:     "specialty set",
			criteria: provider.Criteria{Specialties: []string{"Dentistry", "Trasplante Capilar"}},
			wantIDs:  []string{"2", "3"},
		},
		{
			name: "criteria combine conjunctively",
			criteria: provider.Criteria{
				Location:  "colombia",
				MinRating: 4.8,
				Languages: []string{"English"},
			},
			wantIDs: []string{"1", "3"},
		},
		{
			name: "impossible combination yields empty result",
			criteria: provider.Criteria{
				Procedure: "dent",
				Location:  "cali",
			},
			wantIDs: []string{},
		},
		{
			name:     "sort by price ascending",
			criteria: provider.Criteria{Sort: provider.SortPrice},
			wantIDs:  []string{"2", "1", "3"},
		},
		{
			name:     "sort by rating descending",
			criteria: provider.Criteria{Sort: provider.SortRating},
			wantIDs:  []string{"1", "3", "2"},
		},
		{
			name:     "sort by experience descending",
			criteria: provider.Criteria{Sort: provider.SortExperience},
			wantIDs:  []string{"1", "3", "2"},
		},
		{
			name:     "relevance keeps catalog order after filtering",
			criteria: provider.Criteria{MinRating: 4.7, Sort: provider.SortRelevance},
			wantIDs:  []string{"1", "2", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Filter(testCatalog(), tt.criteria)
			if got == nil {
				t.Fatal("Filter() returned nil, want empty slice for no matches")
			}
			if !equalIDs(ids(got), tt.wantIDs) {
				t.Errorf("Filter() = %v, want %v", ids(got), tt.wantIDs)
			}
		})
	}
}

func TestEngine_FilterDoesNotMutateCatalog(t *testing.T) {
	engine := New()
	catalog := testCatalog()

	engine.Filter(catalog, provider.Criteria{Sort: provider.SortPrice})

	if !equalIDs(ids(catalog), []string{"1", "2", "3"}) {
		t.Errorf("catalog order changed to %v", ids(catalog))
	}
}

func TestMatchesPriceRange(t *testing.T) {
	noProcedures := &provider.Provider{}

	if !matchesPriceRange(noProcedures, 0, 0) {
		t.Error("provider without procedures should match an unconstrained range")
	}
	if matchesPriceRange(noProcedures, 1, 0) {
		t.Error("provider without procedures should not match a constrained range")
	}
}
