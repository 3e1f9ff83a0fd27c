package domain

import (
	"context"
	"errors"
	"time"
)

// ErrAlreadyRegistered is returned when a registration already exists for
// the (user, event) pair. The registrations table enforces this with a
// unique constraint; the repository translates the violation.
var ErrAlreadyRegistered = errors.New("already registered for this event")

// ErrPaymentRequired is returned when a user tries to register directly
// for a paid event. Payment must precede registration.
var ErrPaymentRequired = errors.New("event requires payment before registration")

// Registration links a user to an event they attend. It is created once
// and never updated or deleted.
// swagger:model Registration
type Registration struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRegistration returns a new Registration. ID is set by the repository on create.
func NewRegistration(eventID, userID string, createdAt time.Time) *Registration {
	return &Registration{
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: createdAt,
	}
}

// Attendee is a registration joined with account details, for organizer
// listings.
// swagger:model Attendee
type Attendee struct {
	UserID       string    `json:"user_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

// RegistrationWithEvent pairs a registration with its event for
// attendee-facing listings.
type RegistrationWithEvent struct {
	Registration *Registration `json:"registration"`
	Event        *Event        `json:"event"`
}

// RegistrationRepository defines the interface for registration storage.
// Create must rely on the storage-level unique constraint on
// (user_id, event_id) and return ErrAlreadyRegistered on violation;
// callers never guard with a prior existence check.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	ListByEventID(ctx context.Context, eventID string) ([]*Attendee, error)
	ListByUserID(ctx context.Context, userID string) ([]*Registration, error)
}

// RegistrationService governs a user's relationship to an event across
// the direct path and the payment-webhook path.
type RegistrationService interface {
	RegisterDirect(ctx context.Context, eventID, userID string) (*Registration, error)
	CreatePaymentIntent(ctx context.Context, eventID, userID string) (clientSecret string, err error)
	ConfirmPayment(ctx context.Context, payload []byte, signature string) error
	ListEventAttendees(ctx context.Context, eventID, callerID string) ([]*Attendee, error)
	ListMyRegistrations(ctx context.Context, userID string) ([]*RegistrationWithEvent, error)
}
