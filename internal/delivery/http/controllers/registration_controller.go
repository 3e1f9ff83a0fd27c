package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "gatherly/internal/delivery/http/helpers"
	"gatherly/internal/delivery/http/middleware"
	"gatherly/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register the current user for a free event
// @Description Direct registration is only available for free events; paid events return 402 and require the payment flow.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 201 {object} helpers.APIResponse "data contains the registration"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 402 {object} helpers.APIResponse "error.code: payment_required"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/inscriptions [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}

	reg, err := c.Service.RegisterDirect(r.Context(), eventID, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrPaymentRequired):
			h.WriteJSONError(w, http.StatusPaymentRequired, h.ErrCodePaymentRequired, "this event is paid; complete the payment first")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "already registered for this event")
		default:
			c.Logger.ErrorContext(r.Context(), "registration failed", "event_id", eventID, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
		}
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// ListEventAttendees godoc
// @Summary List an event's registrations
// @Description Only the event owner may list attendees.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the attendee list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations [get]
func (c *RegistrationController) ListEventAttendees(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}

	attendees, err := c.Service.ListEventAttendees(r.Context(), eventID, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrForbidden):
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "only the organizer can list registrations")
		default:
			c.Logger.ErrorContext(r.Context(), "list attendees failed", "event_id", eventID, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
		}
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, attendees)
}

// ListMyRegistrations godoc
// @Summary List the current user's registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains registrations with their events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/registrations [get]
func (c *RegistrationController) ListMyRegistrations(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	regs, err := c.Service.ListMyRegistrations(r.Context(), claims.UserID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list registrations failed", "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, regs)
}
