package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gatherly/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	price := 5000.0

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			event: &domain.Event{
				Name:        "Tech Meetup",
				Description: "An evening of talks",
				Date:        time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
				IsFree:      false,
				Price:       &price,
				OwnerID:     "user-uuid-1",
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(name, description, date, location, is_free, price, owner_id, image_url, created_at, updated_at\)`).
					WithArgs("Tech Meetup", "An evening of talks", time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC), nil, false, 5000.0, "user-uuid-1", nil, now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))
			},
			wantID: "ev-uuid-1",
		},
		{
			name: "db error",
			event: &domain.Event{
				Name:      "Meetup",
				OwnerID:   "user-1",
				CreatedAt: now,
				UpdatedAt: now,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		wantErr error
	}{
		{
			name: "success with null optionals",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, description, date, location, is_free, price, owner_id, image_url, created_at, updated_at`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "date", "location", "is_free", "price", "owner_id", "image_url", "created_at", "updated_at"}).
						AddRow("ev-1", "Meetup", "Talks", now, nil, true, nil, "user-1", nil, now, now))
			},
			want: &domain.Event{
				ID:          "ev-1",
				Name:        "Meetup",
				Description: "Talks",
				Date:        now,
				IsFree:      true,
				OwnerID:     "user-1",
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
		{
			name: "not found",
			id:   "ev-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, description, date, location, is_free, price, owner_id, image_url, created_at, updated_at`).
					WithArgs("ev-missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	later := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, date, location, is_free, price, image_url`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "date", "location", "is_free", "price", "image_url"}).
			AddRow("ev-2", "Later", later, nil, true, nil, nil).
			AddRow("ev-1", "Earlier", earlier, "Paris", false, 5000.0, nil))

	repo := NewEventRepository(db)
	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "ev-2", events[0].ID)
	require.Nil(t, events[0].Price)
	require.Equal(t, "Paris", *events[1].Location)
	require.Equal(t, 5000.0, *events[1].Price)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update_partial(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	name := "Renamed"

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Only name supplied: the SET clause carries updated_at and name.
	mock.ExpectQuery(`UPDATE events SET updated_at = NOW\(\), name = \$1`).
		WithArgs(name, "ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "date", "location", "is_free", "price", "owner_id", "image_url", "created_at", "updated_at"}).
			AddRow("ev-1", "Renamed", "Talks", now, nil, true, nil, "user-1", nil, now, now))

	repo := NewEventRepository(db)
	updated, err := repo.Update(ctx, "ev-1", &domain.EventUpdate{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, "Talks", updated.Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs("ev-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewEventRepository(db)
		require.NoError(t, repo.Delete(ctx, "ev-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs("ev-missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewEventRepository(db)
		require.ErrorIs(t, repo.Delete(ctx, "ev-missing"), domain.ErrNotFound)
	})
}
