package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"gatherly/internal/domain"
)

type commentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) domain.CommentRepository {
	return &commentRepository{
		DB: db,
	}
}

// Create inserts a comment. A foreign key violation on event_id means
// the event does not exist and is returned as domain.ErrNotFound.
func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `
		INSERT INTO comments (event_id, user_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query, c.EventID, c.UserID, c.Body).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *commentRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Comment, error) {
	query := `
		SELECT c.id, c.event_id, c.user_id, c.body, u.first_name, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.event_id = $1
		ORDER BY c.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		c := &domain.Comment{}
		if err := rows.Scan(&c.ID, &c.EventID, &c.UserID, &c.Body, &c.Author, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
