package search

import (
	"sort"
	"strings"

	"github.com/trustmed/trustmed/internal/domain/provider"
)

// Engine narrows a provider catalog to the records matching a set of
// criteria and orders the result. The engine is stateless; every call
// re-evaluates against the full catalog.
type Engine struct{}

// New creates a search engine.
func New() *Engine {
	return &Engine{}
}

// Filter applies each active criterion as an independent narrowing
// predicate over the catalog, then sorts by the criteria's sort key.
// An empty result is a value, never an error.
func (e *Engine) Filter(catalog []*provider.Provider, c provider.Criteria) []*provider.Provider {
	matched := make([]*provider.Provider, 0, len(catalog))
	for _, p := range catalog {
		if e.matches(p, c) {
			matched = append(matched, p)
		}
	}

	sortKey := c.Sort
	if sortKey == "" {
		sortKey = provider.SortRelevance
	}
	sortProviders(matched, sortKey)

	return matched
}

func (e *Engine) matches(p *provider.Provider, c provider.Criteria) bool {
	if c.Procedure != "" &&
		!strings.Contains(strings.ToLower(p.Specialty), strings.ToLower(c.Procedure)) {
		return false
	}

	if c.Location != "" &&
		!strings.Contains(strings.ToLower(p.Location), strings.ToLower(c.Location)) {
		return false
	}

	if !matchesPriceRange(p, c.PriceMin, c.PriceMax) {
		return false
	}

	if c.MinRating > 0 && p.Rating < c.MinRating {
		return false
	}

	if !speaksAll(p.Languages, c.Languages) {
		return false
	}

	if len(c.Specialties) > 0 && !containsFold(c.Specialties, p.Specialty) {
		return false
	}

	return true
}

// matchesPriceRange reports whether any procedure price falls in
// [min, max]. A max of zero leaves the upper bound open; a provider
// with no procedures only matches an unconstrained range.
func matchesPriceRange(p *provider.Provider, min, max int64) bool {
	if min == 0 && max == 0 {
		return true
	}
	for _, proc := range p.Procedures {
		if proc.Price >= min && (max == 0 || proc.Price <= max) {
			return true
		}
	}
	return false
}

// speaksAll reports whether every required language is spoken.
func speaksAll(spoken, required []string) bool {
	for _, want := range required {
		if !containsFold(spoken, want) {
			return false
		}
	}
	return true
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

// sortProviders orders the slice stably by the given key. Relevance is
// the catalog's insertion order, which the filtering pass preserved.
func sortProviders(providers []*provider.Provider, key provider.SortKey) {
	switch key {
	case provider.SortPrice:
		sort.SliceStable(providers, func(i, j int) bool {
			return providers[i].MinProcedurePrice() < providers[j].MinProcedurePrice()
		})
	case provider.SortRating:
		sort.SliceStable(providers, func(i, j int) bool {
			return providers[i].Rating > providers[j].Rating
		})
	case provider.SortExperience:
		sort.SliceStable(providers, func(i, j int) bool {
			return providers[i].Experience > providers[j].Experience
		})
	case provider.SortRelevance:
		// keep catalog order
	}
}
