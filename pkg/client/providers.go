package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ProviderService provides access to the catalog and search endpoints
type ProviderService struct {
	client *Client
}

// SearchOptions narrow a catalog search. Zero values are inactive.
type SearchOptions struct {
	Procedure   string
	Location    string
	PriceMin    int64
	PriceMax    int64
	MinRating   float64
	Languages   []string
	Specialties []string
	Sort        string // relevance, price, rating or experience
}

func (o SearchOptions) query() string {
	q := url.Values{}
	if o.Procedure != "" {
		q.Set("procedure", o.Procedure)
	}
	if o.Location != "" {
		q.Set("location", o.Location)
	}
	if o.PriceMin > 0 {
		q.Set("priceMin", strconv.FormatInt(o.PriceMin, 10))
	}
	if o.PriceMax > 0 {
		q.Set("priceMax", strconv.FormatInt(o.PriceMax, 10))
	}
	if o.MinRating > 0 {
		q.Set("minRating", strconv.FormatFloat(o.MinRating, 'f', -1, 64))
	}
	if len(o.Languages) > 0 {
		q.Set("languages", joinList(o.Languages))
	}
	if len(o.Specialties) > 0 {
		q.Set("specialties", joinList(o.Specialties))
	}
	if o.Sort != "" {
		q.Set("sort", o.Sort)
	}
	if enc := q.Encode(); enc != "" {
		return "?" + enc
	}
	return ""
}

func joinList(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ","
		}
		out += item
	}
	return out
}

// SearchResult wraps search results with their count
type SearchResult struct {
	Providers []Provider `json:"providers"`
	Total     int        `json:"total"`
}

// Search narrows the catalog by the given options
func (s *ProviderService) Search(ctx context.Context, opts SearchOptions) (*SearchResult, error) {
	var result SearchResult
	if err := s.client.doRequest(ctx, "GET", "/api/v1/providers/search"+opts.query(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns the full catalog
func (s *ProviderService) List(ctx context.Context) (*SearchResult, error) {
	var result SearchResult
	if err := s.client.doRequest(ctx, "GET", "/api/v1/providers", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get returns one provider profile
func (s *ProviderService) Get(ctx context.Context, id string) (*Provider, error) {
	var p Provider
	if err := s.client.doRequest(ctx, "GET", fmt.Sprintf("/api/v1/providers/%s", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Featured returns the home page providers
func (s *ProviderService) Featured(ctx context.Context) (*SearchResult, error) {
	var result SearchResult
	if err := s.client.doRequest(ctx, "GET", "/api/v1/providers/featured", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
