package handlers

import (
	"net/http"

	"github.com/trustmed/trustmed/internal/domain/destination"
	"github.com/trustmed/trustmed/internal/pkg/errors"
	"github.com/trustmed/trustmed/internal/pkg/logger"
	"github.com/trustmed/trustmed/internal/pkg/utils"
)

// DestinationHandler serves the destination reference data
type DestinationHandler struct {
	repo   destination.Repository
	logger *logger.Logger
}

// NewDestinationHandler creates a new destination handler
func NewDestinationHandler(repo destination.Repository, log *logger.Logger) *DestinationHandler {
	return &DestinationHandler{
		repo:   repo,
		logger: log,
	}
}

// List handles listing medical-travel destinations
// @Summary List destinations
// @Description Return the destination cities shown on the home page
// @Tags Destinations
// @Produce json
// @Success 200 {object} utils.SuccessResponse "Destinations"
// @Router /destinations [get]
func (h *DestinationHandler) List(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list destinations")
		utils.WriteError(w, errors.Internal("Request failed", err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, destinations)
}
