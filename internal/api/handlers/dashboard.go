package handlers

import (
	"net/http"

	"github.com/trustmed/trustmed/internal/pkg/errors"
	"github.com/trustmed/trustmed/internal/pkg/logger"
	"github.com/trustmed/trustmed/internal/pkg/utils"
	"github.com/trustmed/trustmed/internal/services"
)

// DashboardHandler serves the patient dashboard datasets
type DashboardHandler struct {
	service *services.DashboardService
	logger  *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service *services.DashboardService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  log,
	}
}

// Overview handles the combined dashboard view
// @Summary Dashboard overview
// @Description Return upcoming appointments, recent messages and booking history
// @Tags Dashboard
// @Produce json
// @Success 200 {object} services.DashboardView "Dashboard datasets"
// @Failure 401 {object} utils.ErrorResponse "Not signed in"
// @Router /dashboard [get]
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Overview(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, view)
}

// Appointments handles the upcoming appointments list
// @Summary Upcoming appointments
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse "Appointments"
// @Router /dashboard/appointments [get]
func (h *DashboardHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.service.UpcomingAppointments(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, appointments)
}

// Messages handles the recent messages list
// @Summary Recent messages
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse "Messages"
// @Router /dashboard/messages [get]
func (h *DashboardHandler) Messages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.RecentMessages(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, messages)
}

// History handles the booking history list
// @Summary Booking history
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse "Booking history"
// @Router /dashboard/history [get]
func (h *DashboardHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.service.BookingHistory(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, history)
}

func (h *DashboardHandler) writeError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		utils.WriteError(w, appErr)
		return
	}
	h.logger.ErrorWithErr(err, "Dashboard request failed")
	utils.WriteError(w, errors.Internal("Request failed", err))
}
