package postgres

import (
	"context"
	"testing"
	"time"

	"go-internhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func TestStudentRepo_Create_OK_and_UniqueViolation(t *testing.T) {
	mock := newDB(t)
	defer mock.Close()
	r := NewStudentRepository(mock)
	ctx := context.Background()
	now := time.Now()
	s := &domain.Student{
		ID:           "stu-1",
		Name:         "Nimal Perera",
		Email:        "nimal@example.com",
		PasswordHash: "$2a$12$hash",
		CV:           "https://cv.example.com/nimal.pdf",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec(`INSERT INTO students`).
		WithArgs(s.ID, s.Name, s.Email, s.PasswordHash, s.CV, s.CreatedAt, s.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, s))

	mock.ExpectExec(`INSERT INTO students`).
		WithArgs(s.ID, s.Name, s.Email, s.PasswordHash, s.CV, s.CreatedAt, s.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	err := r.Create(ctx, s)
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepo_GetByEmail(t *testing.T) {
	mock := newDB(t)
	defer mock.Close()
	r := NewStudentRepository(mock)
	ctx := context.Background()
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "cv", "created_at", "updated_at"}).
		AddRow("stu-1", "Nimal Perera", "nimal@example.com", "$2a$12$hash", "", now, now)

	mock.ExpectQuery(`SELECT (.+) FROM students WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("Nimal@Example.com").
		WillReturnRows(rows)
	s, err := r.GetByEmail(ctx, "Nimal@Example.com")
	require.NoError(t, err)
	require.Equal(t, "stu-1", s.ID)

	mock.ExpectQuery(`SELECT (.+) FROM students WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepo_Update_NotFound(t *testing.T) {
	mock := newDB(t)
	defer mock.Close()
	r := NewStudentRepository(mock)
	ctx := context.Background()
	now := time.Now()
	s := &domain.Student{ID: "missing", Name: "Ghost", UpdatedAt: now}

	mock.ExpectExec(`UPDATE students SET`).
		WithArgs(s.ID, s.Name, s.CV, s.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err := r.Update(ctx, s)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
