package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gatherly/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		reg     *domain.Registration
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			reg: &domain.Registration{
				EventID:   "ev-uuid-1",
				UserID:    "user-uuid-1",
				CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations \(event_id, user_id, created_at\)`).
					WithArgs("ev-uuid-1", "user-uuid-1", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("reg-uuid-1"))
			},
			wantID: "reg-uuid-1",
		},
		{
			name: "duplicate pair returns ErrAlreadyRegistered",
			reg: &domain.Registration{
				EventID:   "ev-1",
				UserID:    "user-1",
				CreatedAt: time.Now(),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrAlreadyRegistered,
		},
		{
			name: "missing event or user returns ErrNotFound",
			reg: &domain.Registration{
				EventID:   "ev-missing",
				UserID:    "user-1",
				CreatedAt: time.Now(),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WillReturnError(&pq.Error{Code: "23503"})
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			reg: &domain.Registration{
				EventID:   "ev-1",
				UserID:    "user-1",
				CreatedAt: time.Now(),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO registrations`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			err = repo.Create(ctx, tt.reg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.reg.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	registeredAt := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT r.user_id, u.first_name, u.last_name, u.email, r.created_at`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "first_name", "last_name", "email", "created_at"}).
			AddRow("user-2", "Ada", "Lovelace", "ada@example.com", registeredAt))

	repo := NewRegistrationRepository(db)
	attendees, err := repo.ListByEventID(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, attendees, 1)
	require.Equal(t, "user-2", attendees[0].UserID)
	require.Equal(t, "Ada", attendees[0].FirstName)
	require.Equal(t, registeredAt, attendees[0].RegisteredAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepository_ListByUserID_empty(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, event_id, user_id, created_at`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "user_id", "created_at"}))

	repo := NewRegistrationRepository(db)
	regs, err := repo.ListByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, regs)
	require.Empty(t, regs)
	require.NoError(t, mock.ExpectationsWereMet())
}
