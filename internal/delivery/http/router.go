package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"gatherly/internal/delivery/http/controllers"
	"gatherly/internal/delivery/http/helpers"
	"gatherly/internal/delivery/http/middleware"
	"gatherly/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	registrationController *controllers.RegistrationController,
	commentController *controllers.CommentController,
	paymentController *controllers.PaymentController,
) *http.ServeMux {
	mux := http.NewServeMux()
	protected := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /api/auth/signup", authController.SignUp)
	mux.HandleFunc("POST /api/auth/login", authController.Login)

	// Events
	mux.HandleFunc("GET /api/events", eventController.List)
	mux.HandleFunc("GET /api/events/{eventID}", eventController.Get)
	mux.HandleFunc("POST /api/events", protected(eventController.Create))
	mux.HandleFunc("PUT /api/events/{eventID}", protected(eventController.Update))
	mux.HandleFunc("DELETE /api/events/{eventID}", protected(eventController.Delete))

	// Registrations
	mux.HandleFunc("POST /api/events/{eventID}/inscriptions", protected(registrationController.Register))
	mux.HandleFunc("GET /api/events/{eventID}/registrations", protected(registrationController.ListEventAttendees))
	mux.HandleFunc("GET /api/me/registrations", protected(registrationController.ListMyRegistrations))

	// Comments
	mux.HandleFunc("GET /api/events/{eventID}/comments", commentController.List)
	mux.HandleFunc("POST /api/events/{eventID}/comments", protected(commentController.Create))

	// Payments. The webhook authenticates by payload signature, not bearer token.
	mux.HandleFunc("POST /api/payments/create-payment-intent", protected(paymentController.CreatePaymentIntent))
	mux.HandleFunc("POST /api/payments/webhook", paymentController.Webhook)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Liveness
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}
