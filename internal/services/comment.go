package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gatherly/internal/domain"
)

type commentService struct {
	commentRepo domain.CommentRepository
}

// NewCommentService creates a CommentService with the given repository.
func NewCommentService(commentRepo domain.CommentRepository) domain.CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) Create(ctx context.Context, eventID, userID, body string) (*domain.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("%w: comment body is required", domain.ErrInvalidInput)
	}

	comment := domain.NewComment(eventID, userID, body)
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) ListByEventID(ctx context.Context, eventID string) ([]*domain.Comment, error) {
	comments, err := s.commentRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
