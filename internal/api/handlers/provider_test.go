package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustmed/trustmed/internal/domain/provider"
	"github.com/trustmed/trustmed/internal/pkg/validator"
	"github.com/trustmed/trustmed/internal/repository/memory"
	"github.com/trustmed/trustmed/internal/search"
	"github.com/trustmed/trustmed/internal/services"
	"github.com/trustmed/trustmed/internal/testutil"
)

func newProviderHandler() *ProviderHandler {
	svc := services.NewProviderService(memory.NewProviderCatalog(), search.New(), testutil.NewTestLogger())
	return NewProviderHandler(svc, testutil.NewTestLogger(), validator.New())
}

func decodeSearch(t *testing.T, rr *httptest.ResponseRecorder) (int, []*provider.Provider) {
	t.Helper()
	var resp struct {
		Data struct {
			Providers []*provider.Provider `json:"providers"`
			Total     int                  `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Data.Total, resp.Data.Providers
}

func TestProviderHandler_Search(t *testing.T) {
	handler := newProviderHandler()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantTotal  int
		wantFirst  string
	}{
		{
			name:       "no filters return the catalog",
			query:      "",
			wantStatus: http.StatusOK,
			wantTotal:  3,
			wantFirst:  "Dr. Carlos Mendoza",
		},
		{
			name:       "procedure filter",
			query:      "?procedure=dent",
			wantStatus: http.StatusOK,
			wantTotal:  1,
			wantFirst:  "Clínica Dental Medellín",
		},
		{
			name:       "location filter",
			query:      "?location=cali",
			wantStatus: http.StatusOK,
			wantTotal:  1,
			wantFirst:  "Dr. Andrés Vargas",
		},
		{
			name:       "price sort",
			query:      "?sort=price",
			wantStatus: http.StatusOK,
			wantTotal:  3,
			wantFirst:  "Clínica Dental Medellín",
		},
		{
			name:       "language filter",
			query:      "?languages=English,Spanish",
			wantStatus: http.StatusOK,
			wantTotal:  2,
			wantFirst:  "Dr. Carlos Mendoza",
		},
		{
			name:       "empty result is a success",
			query:      "?procedure=dent&location=cali",
			wantStatus: http.StatusOK,
			wantTotal:  0,
		},
		{
			name:       "unknown sort rejected",
			query:      "?sort=alphabetical",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed price rejected",
			query:      "?priceMin=cheap",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative rating rejected",
			query:      "?minRating=-1",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/providers/search"+tt.query, nil)
			rr := httptest.NewRecorder()

			handler.Search(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			total, providers := decodeSearch(t, rr)
			assert.Equal(t, tt.wantTotal, total)
			if tt.wantTotal > 0 {
				assert.Equal(t, tt.wantFirst, providers[0].Name)
			}
		})
	}
}

func TestProviderHandler_Get(t *testing.T) {
	handler := newProviderHandler()

	newRequest := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/providers/"+id, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	rr := httptest.NewRecorder()
	handler.Get(rr, newRequest("2"))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data *provider.Provider `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Clínica Dental Medellín", resp.Data.Name)
	assert.Equal(t, "Dentistry", resp.Data.Specialty)

	rr = httptest.NewRecorder()
	handler.Get(rr, newRequest("999"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProviderHandler_Featured(t *testing.T) {
	handler := newProviderHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/providers/featured", nil)
	rr := httptest.NewRecorder()
	handler.Featured(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	total, providers := decodeSearch(t, rr)
	assert.Equal(t, 2, total)
	for _, p := range providers {
		assert.True(t, p.Featured)
	}
}
