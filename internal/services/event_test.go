package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gatherly/internal/domain"
)

func TestEventService_Create(t *testing.T) {
	price := 5000.0
	date := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *domain.Event
		wantErr error
	}{
		{
			name:  "free event",
			event: &domain.Event{Name: "Meetup", Description: "Talks", Date: date, IsFree: true, OwnerID: "u1"},
		},
		{
			name:  "paid event with price",
			event: &domain.Event{Name: "Conf", Description: "Talks", Date: date, Price: &price, OwnerID: "u1"},
		},
		{
			name:    "missing name",
			event:   &domain.Event{Description: "Talks", Date: date, IsFree: true, OwnerID: "u1"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "missing owner",
			event:   &domain.Event{Name: "Meetup", Description: "Talks", Date: date, IsFree: true},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "paid event without price",
			event:   &domain.Event{Name: "Conf", Description: "Talks", Date: date, OwnerID: "u1"},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEventService(&mockEventRepository{events: map[string]*domain.Event{}}, time.Second)

			err := svc.Create(context.Background(), tt.event)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.event.ID == "" {
				t.Fatal("expected ID to be set on create")
			}
			if tt.event.CreatedAt.IsZero() || tt.event.UpdatedAt.IsZero() {
				t.Fatal("expected timestamps to be set")
			}
		})
	}
}

func TestEventService_Update(t *testing.T) {
	name := "Renamed"

	tests := []struct {
		name    string
		ownerID string
		eventID string
		wantErr error
	}{
		{name: "owner updates", ownerID: "owner1", eventID: "e1"},
		{name: "non-owner is forbidden", ownerID: "u2", eventID: "e1", wantErr: domain.ErrForbidden},
		{name: "event not found", ownerID: "owner1", eventID: "e-none", wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEventRepository{events: map[string]*domain.Event{
				"e1": {ID: "e1", Name: "Meetup", OwnerID: "owner1"},
			}}
			svc := NewEventService(repo, time.Second)

			got, err := svc.Update(context.Background(), tt.eventID, tt.ownerID, &domain.EventUpdate{Name: &name})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Name != "Renamed" {
				t.Fatalf("expected updated name, got %q", got.Name)
			}
			if repo.upd == nil || repo.upd.Description != nil {
				t.Fatal("expected a partial update carrying only the name")
			}
		})
	}
}

func TestEventService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		ownerID string
		eventID string
		wantErr error
	}{
		{name: "owner deletes", ownerID: "owner1", eventID: "e1"},
		{name: "non-owner is forbidden", ownerID: "u2", eventID: "e1", wantErr: domain.ErrForbidden},
		{name: "event not found", ownerID: "owner1", eventID: "e-none", wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEventRepository{events: map[string]*domain.Event{
				"e1": {ID: "e1", Name: "Meetup", OwnerID: "owner1"},
			}}
			svc := NewEventService(repo, time.Second)

			err := svc.Delete(context.Background(), tt.eventID, tt.ownerID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := repo.events["e1"]; ok {
				t.Fatal("expected event to be removed")
			}
		})
	}
}

func TestEventService_Get(t *testing.T) {
	repo := &mockEventRepository{events: map[string]*domain.Event{
		"e1": {ID: "e1", Name: "Meetup", OwnerID: "owner1"},
	}}
	svc := NewEventService(repo, time.Second)

	got, err := svc.Get(context.Background(), "e1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "e1" {
		t.Fatalf("expected e1, got %q", got.ID)
	}

	if _, err := svc.Get(context.Background(), "e-none"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
