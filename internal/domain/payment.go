package domain

import (
	"context"
	"errors"
)

// PaymentSucceeded is the gateway event type that confirms a payment and
// triggers registration. Other event types are acknowledged and ignored.
const PaymentSucceeded = "payment_intent.succeeded"

// ErrInvalidSignature is returned when a webhook payload fails signature
// verification.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// IntentMetadata is attached to a payment intent when it is created and
// echoed back verbatim on the webhook, linking the payment to a
// (user, event) pair.
type IntentMetadata struct {
	EventID   string
	UserID    string
	EventName string
}

// PaymentEvent is a webhook notification that passed signature
// verification. Metadata is populated only for payment-intent events.
type PaymentEvent struct {
	Type     string
	IntentID string
	Metadata IntentMetadata
}

// PaymentGateway creates payment intents and authenticates inbound
// webhooks (infrastructure port).
type PaymentGateway interface {
	// CreateIntent requests a payment intent for amount in the currency's
	// minor unit and returns the client secret needed to complete payment.
	CreateIntent(ctx context.Context, amount int64, currency string, meta IntentMetadata) (clientSecret string, err error)
	// VerifyWebhook checks payload integrity against the raw request body
	// and the signature header. It returns ErrInvalidSignature on mismatch.
	VerifyWebhook(payload []byte, signature string) (*PaymentEvent, error)
}
