package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trustmed/trustmed/internal/api/dto"
	"github.com/trustmed/trustmed/internal/domain/provider"
	"github.com/trustmed/trustmed/internal/pkg/errors"
	"github.com/trustmed/trustmed/internal/pkg/logger"
	"github.com/trustmed/trustmed/internal/pkg/utils"
	"github.com/trustmed/trustmed/internal/pkg/validator"
)

// ProviderHandler handles catalog and search requests
type ProviderHandler struct {
	service   provider.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(service provider.Service, log *logger.Logger, val *validator.Validator) *ProviderHandler {
	return &ProviderHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// Search handles catalog searches
// @Summary Search providers
// @Description Narrow the catalog by procedure, location, price, rating, languages and specialties
// @Tags Providers
// @Produce json
// @Param procedure query string false "Procedure or specialty substring"
// @Param location query string false "Location substring"
// @Param priceMin query int false "Minimum procedure price"
// @Param priceMax query int false "Maximum procedure price, 0 leaves the bound open"
// @Param minRating query number false "Minimum rating"
// @Param languages query string false "Comma-separated required languages"
// @Param specialties query string false "Comma-separated specialty set"
// @Param sort query string false "relevance, price, rating or experience"
// @Success 200 {object} dto.SearchResponse "Matching providers"
// @Failure 400 {object} utils.ErrorResponse "Malformed parameters"
// @Router /providers/search [get]
func (h *ProviderHandler) Search(w http.ResponseWriter, r *http.Request) {
	req, err := dto.ParseSearchRequest(r)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Malformed search parameters"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	results, err := h.service.Search(r.Context(), req.Criteria())
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.SearchResponse{
		Providers: results,
		Total:     len(results),
	})
}

// List handles listing the full catalog
// @Summary List providers
// @Description Return the full provider catalog
// @Tags Providers
// @Produce json
// @Success 200 {object} dto.SearchResponse "All providers"
// @Router /providers [get]
func (h *ProviderHandler) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.Search(r.Context(), provider.Criteria{})
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.SearchResponse{
		Providers: results,
		Total:     len(results),
	})
}

// Get handles fetching a single provider profile
// @Summary Get provider
// @Description Return one provider profile by ID
// @Tags Providers
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} utils.SuccessResponse "Provider profile"
// @Failure 404 {object} utils.ErrorResponse "Unknown provider"
// @Router /providers/{id} [get]
func (h *ProviderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, p)
}

// Featured handles the home page provider strip
// @Summary Featured providers
// @Description Return the providers flagged for the home page
// @Tags Providers
// @Produce json
// @Success 200 {object} dto.SearchResponse "Featured providers"
// @Router /providers/featured [get]
func (h *ProviderHandler) Featured(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.Featured(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.SearchResponse{
		Providers: results,
		Total:     len(results),
	})
}

func (h *ProviderHandler) writeError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		utils.WriteError(w, appErr)
		return
	}
	h.logger.ErrorWithErr(err, "Provider request failed")
	utils.WriteError(w, errors.Internal("Request failed", err))
}
