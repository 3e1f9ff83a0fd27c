package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "gatherly/internal/delivery/http/helpers"
	"gatherly/internal/delivery/http/middleware"
	"gatherly/internal/domain"
)

type CommentController struct {
	Logger  *slog.Logger
	Service domain.CommentService
}

func NewCommentController(logger *slog.Logger, svc domain.CommentService) *CommentController {
	return &CommentController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateCommentRequest is the request body for POST /events/{eventID}/comments.
type CreateCommentRequest struct {
	Body string `json:"body"`
}

// Validate implements helpers.Validator.
func (c CreateCommentRequest) Validate() []string {
	if strings.TrimSpace(c.Body) == "" {
		return []string{"body is required"}
	}
	return nil
}

// List godoc
// @Summary List an event's comments
// @Description Returns comments with the author's first name, newest first.
// @Tags comments
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the comment list"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/comments [get]
func (c *CommentController) List(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing eventID")
		return
	}
	comments, err := c.Service.ListByEventID(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list comments failed", "event_id", eventID, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, comments)
}

// Create godoc
// @Summary Add a comment to an event
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body CreateCommentRequest true "Comment body"
// @Success 201 {object} helpers.APIResponse "data contains the created comment"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/comments [post]
func (c *CommentController) Create(w http.ResponseWriter, r *http.Request) {
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
	var req CreateCommentRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}

	comment, err := c.Service.Create(r.Context(), eventID, claims.UserID, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrInvalidInput):
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "create comment failed", "event_id", eventID, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
		}
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, comment)
}
