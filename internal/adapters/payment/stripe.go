package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/webhook"

	"gatherly/internal/domain"
)

type stripeGateway struct {
	webhookSecret string
}

// NewStripeGateway configures the Stripe client key and returns a
// PaymentGateway backed by Stripe payment intents.
func NewStripeGateway(secretKey, webhookSecret string) domain.PaymentGateway {
	stripe.Key = secretKey
	return &stripeGateway{webhookSecret: webhookSecret}
}

func (g *stripeGateway) CreateIntent(ctx context.Context, amount int64, currency string, meta domain.IntentMetadata) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	params.AddMetadata("eventId", meta.EventID)
	params.AddMetadata("userId", meta.UserID)
	params.AddMetadata("eventName", meta.EventName)
	params.SetIdempotencyKey(uuid.NewString())

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}

func (g *stripeGateway) VerifyWebhook(payload []byte, signature string) (*domain.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}

	out := &domain.PaymentEvent{Type: string(event.Type)}
	if event.Type == stripe.EventTypePaymentIntentSucceeded {
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("decode payment intent: %w", err)
		}
		out.IntentID = pi.ID
		out.Metadata = domain.IntentMetadata{
			EventID:   pi.Metadata["eventId"],
			UserID:    pi.Metadata["userId"],
			EventName: pi.Metadata["eventName"],
		}
	}
	return out, nil
}
