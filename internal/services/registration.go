package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"gatherly/internal/domain"
)

// paymentCurrency is a zero-decimal currency: the charged amount equals
// the stored price rounded to an integer.
const paymentCurrency = "xof"

type registrationService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	userRepo         domain.UserRepository
	gateway          domain.PaymentGateway
	emailService     domain.EmailService
	logger           *slog.Logger
}

// NewRegistrationService creates a RegistrationService with the given
// repositories, payment gateway, and optional email service.
func NewRegistrationService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	userRepo domain.UserRepository,
	gateway domain.PaymentGateway,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		gateway:          gateway,
		emailService:     emailService,
		logger:           logger,
	}
}

// RegisterDirect registers the user for a free event. There is no
// existence pre-check: the insert races against webhook confirmations
// for the same pair, and the unique constraint is the only authority on
// duplicates.
func (s *registrationService) RegisterDirect(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !event.IsFree {
		return nil, domain.ErrPaymentRequired
	}

	reg := domain.NewRegistration(eventID, userID, time.Now())
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.sendConfirmation(ctx, userID, event)
	return reg, nil
}

func (s *registrationService) CreatePaymentIntent(ctx context.Context, eventID, userID string) (string, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get event: %w", err)
	}
	if event.Price == nil || *event.Price <= 0 {
		return "", fmt.Errorf("%w: event has no valid price", domain.ErrInvalidInput)
	}

	amount := int64(math.Round(*event.Price))
	meta := domain.IntentMetadata{
		EventID:   event.ID,
		UserID:    userID,
		EventName: event.Name,
	}
	clientSecret, err := s.gateway.CreateIntent(ctx, amount, paymentCurrency, meta)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return clientSecret, nil
}

// ConfirmPayment handles a gateway webhook. It returns an error only
// when signature verification fails; once the payload is authenticated
// the delivery is acknowledged regardless of internal outcome, so the
// gateway does not retry-storm. Internal failures are logged.
func (s *registrationService) ConfirmPayment(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			return err
		}
		// The signature checked out but the payload could not be decoded.
		// Acknowledge so the gateway does not redeliver a payload we will
		// never be able to parse.
		s.logger.ErrorContext(ctx, "authenticated webhook payload unusable", "err", err)
		return nil
	}

	if event.Type != domain.PaymentSucceeded {
		return nil
	}

	eventID := event.Metadata.EventID
	userID := event.Metadata.UserID
	if eventID == "" || userID == "" {
		s.logger.ErrorContext(ctx, "payment confirmed without registration metadata",
			"intent_id", event.IntentID)
		return nil
	}

	reg := domain.NewRegistration(eventID, userID, time.Now())
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			// Webhook redelivery or a concurrent direct registration; the
			// pair is registered either way.
			s.logger.InfoContext(ctx, "registration already exists, webhook acknowledged",
				"event_id", eventID, "user_id", userID)
			return nil
		}
		s.logger.ErrorContext(ctx, "failed to register after confirmed payment",
			"event_id", eventID, "user_id", userID, "err", err)
		return nil
	}

	s.logger.InfoContext(ctx, "registration created from payment webhook",
		"event_id", eventID, "user_id", userID)

	ev, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		s.logger.WarnContext(ctx, "registered event not found for confirmation email", "event_id", eventID)
		return nil
	}
	s.sendConfirmation(ctx, userID, ev)
	return nil
}

func (s *registrationService) ListEventAttendees(ctx context.Context, eventID, callerID string) ([]*domain.Attendee, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OwnerID != callerID {
		return nil, domain.ErrForbidden
	}
	attendees, err := s.registrationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	return attendees, nil
}

func (s *registrationService) ListMyRegistrations(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error) {
	regs, err := s.registrationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	result := make([]*domain.RegistrationWithEvent, 0, len(regs))
	for _, reg := range regs {
		ev, err := s.eventRepo.GetByID(ctx, reg.EventID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Event deleted but registration remains; skip this entry.
				continue
			}
			return nil, fmt.Errorf("get event for registration: %w", err)
		}
		result = append(result, &domain.RegistrationWithEvent{
			Registration: reg,
			Event:        ev,
		})
	}
	return result, nil
}

// sendConfirmation emails the attendee about their registration.
// Best effort: failures are logged and never surfaced.
func (s *registrationService) sendConfirmation(ctx context.Context, userID string, event *domain.Event) {
	if s.emailService == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "user not found for confirmation email", "user_id", userID)
		return
	}
	data := &domain.RegistrationEmailData{
		Email:     user.Email,
		FirstName: user.FirstName,
		EventName: event.Name,
		EventDate: event.Date,
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "failed to send confirmation email",
			"user_id", userID, "event_id", event.ID, "err", err)
	}
}
