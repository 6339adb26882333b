package handlers

import (
	"net/http"

	"github.com/trustmed/trustmed/internal/pkg/errors"
	"github.com/trustmed/trustmed/internal/pkg/logger"
	"github.com/trustmed/trustmed/internal/pkg/utils"
	"github.com/trustmed/trustmed/internal/services"
)

// AdminHandler serves the admin console datasets
type AdminHandler struct {
	service *services.AdminService
	logger  *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service *services.AdminService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  log,
	}
}

// Stats handles the platform overview
// @Summary Platform stats
// @Description Return the admin console totals
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse "Platform stats"
// @Failure 401 {object} utils.ErrorResponse "Not signed in"
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, stats)
}

// Verifications handles the pending provider applications
// @Summary Pending verifications
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse "Pending verifications"
// @Router /admin/verifications [get]
func (h *AdminHandler) Verifications(w http.ResponseWriter, r *http.Request) {
	pending, err := h.service.PendingVerifications(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, pending)
}

// Activity handles the recent platform activity feed
// @Summary Recent activity
// @Tags Admin
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Items per page"
// @Success 200 {object} utils.SuccessResponse "Activity feed"
// @Router /admin/activity [get]
func (h *AdminHandler) Activity(w http.ResponseWriter, r *http.Request) {
	params := utils.ParsePaginationParams(r)

	activity, err := h.service.RecentActivity(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	total := int64(len(activity))
	start := params.Offset
	if start > len(activity) {
		start = len(activity)
	}
	end := start + params.PageSize
	if end > len(activity) {
		end = len(activity)
	}

	utils.WriteSuccess(w, http.StatusOK,
		utils.NewPaginatedResponse(activity[start:end], params.Page, params.PageSize, total))
}

func (h *AdminHandler) writeError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		utils.WriteError(w, appErr)
		return
	}
	h.logger.ErrorWithErr(err, "Admin request failed")
	utils.WriteError(w, errors.Internal("Request failed", err))
}
