package services

import (
	"context"
	"errors"
	"testing"

	"gatherly/internal/domain"
)

type mockCommentRepository struct {
	created   []*domain.Comment
	createErr error
	comments  []*domain.Comment
	err       error
}

func (m *mockCommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	if m.createErr != nil {
		return m.createErr
	}
	c.ID = "c-1"
	m.created = append(m.created, c)
	return nil
}

func (m *mockCommentRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Comment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.comments, nil
}

func TestCommentService_Create(t *testing.T) {
	tests := []struct {
		name    string
		repo    *mockCommentRepository
		body    string
		wantErr error
	}{
		{
			name: "success trims body",
			repo: &mockCommentRepository{},
			body: "  Great lineup  ",
		},
		{
			name:    "blank body",
			repo:    &mockCommentRepository{},
			body:    "   ",
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "event does not exist",
			repo:    &mockCommentRepository{createErr: domain.ErrNotFound},
			body:    "hello",
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCommentService(tt.repo)

			got, err := svc.Create(context.Background(), "e1", "u1", tt.body)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Body != "Great lineup" {
				t.Fatalf("expected trimmed body, got %q", got.Body)
			}
			if got.EventID != "e1" || got.UserID != "u1" {
				t.Fatalf("comment has wrong pair: %+v", got)
			}
		})
	}
}

func TestCommentService_ListByEventID(t *testing.T) {
	repo := &mockCommentRepository{comments: []*domain.Comment{
		{ID: "c-1", EventID: "e1", Body: "First", Author: "Ada"},
	}}
	svc := NewCommentService(repo)

	got, err := svc.ListByEventID(context.Background(), "e1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Author != "Ada" {
		t.Fatalf("unexpected comments: %+v", got)
	}
}
