package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gatherly/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, description, date, location, is_free, price, owner_id, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Name, e.Description, e.Date, e.Location, e.IsFree, e.Price, e.OwnerID, e.ImageURL, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, name, description, date, location, is_free, price, owner_id, image_url, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var locNull, imgNull sql.NullString
	var priceNull sql.NullFloat64
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Description, &e.Date, &locNull, &e.IsFree, &priceNull, &e.OwnerID, &imgNull, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if locNull.Valid {
		e.Location = &locNull.String
	}
	if priceNull.Valid {
		e.Price = &priceNull.Float64
	}
	if imgNull.Valid {
		e.ImageURL = &imgNull.String
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.EventSummary, error) {
	query := `
		SELECT id, name, date, location, is_free, price, image_url
		FROM events
		ORDER BY date DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.EventSummary, 0)
	for rows.Next() {
		e := &domain.EventSummary{}
		var locNull, imgNull sql.NullString
		var priceNull sql.NullFloat64
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &locNull, &e.IsFree, &priceNull, &imgNull); err != nil {
			return nil, err
		}
		if locNull.Valid {
			e.Location = &locNull.String
		}
		if priceNull.Valid {
			e.Price = &priceNull.Float64
		}
		if imgNull.Valid {
			e.ImageURL = &imgNull.String
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, id string, upd *domain.EventUpdate) (*domain.Event, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if upd.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", n))
		args = append(args, *upd.Name)
		n++
	}
	if upd.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", n))
		args = append(args, *upd.Description)
		n++
	}
	if upd.Date != nil {
		setClauses = append(setClauses, fmt.Sprintf("date = $%d", n))
		args = append(args, *upd.Date)
		n++
	}
	if upd.Location != nil {
		setClauses = append(setClauses, fmt.Sprintf("location = $%d", n))
		args = append(args, *upd.Location)
		n++
	}
	if upd.IsFree != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_free = $%d", n))
		args = append(args, *upd.IsFree)
		n++
	}
	if upd.Price != nil {
		setClauses = append(setClauses, fmt.Sprintf("price = $%d", n))
		args = append(args, *upd.Price)
		n++
	}
	if upd.ImageURL != nil {
		setClauses = append(setClauses, fmt.Sprintf("image_url = $%d", n))
		args = append(args, *upd.ImageURL)
		n++
	}

	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING id, name, description, date, location, is_free, price, owner_id, image_url, created_at, updated_at
	`, strings.Join(setClauses, ", "), n)
	args = append(args, id)

	e := &domain.Event{}
	var locNull, imgNull sql.NullString
	var priceNull sql.NullFloat64
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&e.ID, &e.Name, &e.Description, &e.Date, &locNull, &e.IsFree, &priceNull, &e.OwnerID, &imgNull, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if locNull.Valid {
		e.Location = &locNull.String
	}
	if priceNull.Valid {
		e.Price = &priceNull.Float64
	}
	if imgNull.Valid {
		e.ImageURL = &imgNull.String
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
