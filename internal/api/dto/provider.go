package dto

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/trustmed/trustmed/internal/domain/provider"
)

// SearchRequest mirrors the search query parameters.
type SearchRequest struct {
	Procedure   string  `json:"procedure,omitempty"`
	Location    string  `json:"location,omitempty"`
	PriceMin    int64   `json:"priceMin,omitempty" validate:"omitempty,min=0"`
	PriceMax    int64   `json:"priceMax,omitempty" validate:"omitempty,min=0"`
	MinRating   float64 `json:"minRating,omitempty" validate:"omitempty,min=0,max=5"`
	Languages   string  `json:"languages,omitempty"`
	Specialties string  `json:"specialties,omitempty"`
	Sort        string  `json:"sort,omitempty" validate:"omitempty,oneof=relevance price rating experience"`
}

// ParseSearchRequest reads the search parameters from the query string.
// Malformed numbers surface as errors rather than being treated as zero.
func ParseSearchRequest(r *http.Request) (SearchRequest, error) {
	q := r.URL.Query()
	req := SearchRequest{
		Procedure:   q.Get("procedure"),
		Location:    q.Get("location"),
		Languages:   q.Get("languages"),
		Specialties: q.Get("specialties"),
		Sort:        q.Get("sort"),
	}

	var err error
	if req.PriceMin, err = parseInt64(q.Get("priceMin")); err != nil {
		return req, err
	}
	if req.PriceMax, err = parseInt64(q.Get("priceMax")); err != nil {
		return req, err
	}
	if v := q.Get("minRating"); v != "" {
		if req.MinRating, err = strconv.ParseFloat(v, 64); err != nil {
			return req, err
		}
	}
	return req, nil
}

func parseInt64(v string) (int64, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

// Criteria converts the request into domain search criteria.
func (req SearchRequest) Criteria() provider.Criteria {
	return provider.Criteria{
		Procedure:   req.Procedure,
		Location:    req.Location,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		MinRating:   req.MinRating,
		Languages:   splitList(req.Languages),
		Specialties: splitList(req.Specialties),
		Sort:        provider.SortKey(req.Sort),
	}
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SearchResponse wraps search results with their count.
type SearchResponse struct {
	Providers []*provider.Provider `json:"providers"`
	Total     int                  `json:"total"`
}
