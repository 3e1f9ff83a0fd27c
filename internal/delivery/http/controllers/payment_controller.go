package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	h "gatherly/internal/delivery/http/helpers"
	"gatherly/internal/delivery/http/middleware"
	"gatherly/internal/domain"
)

// signatureHeader carries the gateway's payload signature.
const signatureHeader = "Stripe-Signature"

// maxWebhookBody bounds webhook payload reads.
const maxWebhookBody = 1 << 16

type PaymentController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewPaymentController(logger *slog.Logger, svc domain.RegistrationService) *PaymentController {
	return &PaymentController{
		Logger:  logger,
		Service: svc,
	}
}

// CreatePaymentIntentRequest is the request body for POST /payments/create-payment-intent.
type CreatePaymentIntentRequest struct {
	EventID string `json:"event_id"`
}

// Validate implements helpers.Validator.
func (c CreatePaymentIntentRequest) Validate() []string {
	if strings.TrimSpace(c.EventID) == "" {
		return []string{"event_id is required"}
	}
	return nil
}

// CreatePaymentIntentResponse is the response body for POST /payments/create-payment-intent.
type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// CreatePaymentIntent godoc
// @Summary Create a payment intent for a paid event
// @Description Returns the client secret needed to complete payment. Registration happens asynchronously via the webhook.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreatePaymentIntentRequest true "Event to pay for"
// @Success 200 {object} helpers.APIResponse "data contains the client secret"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /payments/create-payment-intent [post]
func (c *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req CreatePaymentIntentRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}

	clientSecret, err := c.Service.CreatePaymentIntent(r.Context(), req.EventID, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrInvalidInput):
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid amount for this event")
		default:
			c.Logger.ErrorContext(r.Context(), "create payment intent failed", "event_id", req.EventID, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
		}
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, CreatePaymentIntentResponse{ClientSecret: clientSecret})
}

// Webhook godoc
// @Summary Payment gateway webhook
// @Description Signature-verified endpoint called by the gateway. The raw body is required for verification; no bearer token.
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} helpers.APIResponse "delivery acknowledged"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (signature rejected)"
// @Router /payments/webhook [post]
func (c *PaymentController) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "unreadable payload")
		return
	}

	if err := c.Service.ConfirmPayment(r.Context(), payload, r.Header.Get(signatureHeader)); err != nil {
		// May be misconfiguration or malicious traffic; reject and log, never crash.
		c.Logger.WarnContext(r.Context(), "webhook rejected", "err", err)
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "webhook signature verification failed")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"received": true})
}
