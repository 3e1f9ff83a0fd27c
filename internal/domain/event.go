package domain

import (
	"context"
	"time"
)

// Event represents a published event
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    *string   `json:"location"`
	IsFree      bool      `json:"is_free"`
	Price       *float64  `json:"price"`
	OwnerID     string    `json:"owner_id"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(name, description string, date time.Time, ownerID string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:        name,
		Description: description,
		Date:        date,
		OwnerID:     ownerID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventSummary is the projection returned by event listings.
// swagger:model EventSummary
type EventSummary struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Location *string   `json:"location"`
	IsFree   bool      `json:"is_free"`
	Price    *float64  `json:"price"`
	ImageURL *string   `json:"image_url"`
}

// EventUpdate carries the fields of a partial update. Nil fields keep
// their stored value.
type EventUpdate struct {
	Name        *string
	Description *string
	Date        *time.Time
	Location    *string
	IsFree      *bool
	Price       *float64
	ImageURL    *string
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*EventSummary, error)
	Update(ctx context.Context, id string, upd *EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for event CRUD. Mutations are
// restricted to the event owner.
type EventService interface {
	List(ctx context.Context) ([]*EventSummary, error)
	Get(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, eventID, ownerID string, upd *EventUpdate) (*Event, error)
	Delete(ctx context.Context, eventID, ownerID string) error
}
