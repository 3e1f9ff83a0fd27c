package domain

import (
	"context"
	"time"
)

// Comment is an immutable message left on an event.
// swagger:model Comment
type Comment struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Body      string    `json:"body"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment returns a new Comment. ID and CreatedAt are set by the repository on create.
func NewComment(eventID, userID, body string) *Comment {
	return &Comment{
		EventID: eventID,
		UserID:  userID,
		Body:    body,
	}
}

// CommentRepository defines the interface for comment storage.
// Create must surface a missing event (foreign key violation) as
// ErrNotFound, not a generic failure.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByEventID(ctx context.Context, eventID string) ([]*Comment, error)
}

// CommentService defines the business logic for event comments.
type CommentService interface {
	Create(ctx context.Context, eventID, userID, body string) (*Comment, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Comment, error)
}
