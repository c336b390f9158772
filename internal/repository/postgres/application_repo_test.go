package postgres

import (
	"context"
	"testing"
	"time"

	"go-internhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock
}

func sampleApplication() *domain.Application {
	now := time.Now()
	letter := "I would love to join"
	return &domain.Application{
		ID:          "app-1",
		PostingType: domain.PostingVacancy,
		PostingID:   "vac-1",
		StudentID:   "stu-1",
		Status:      domain.ApplicationStatusPending,
		CoverLetter: &letter,
		AppliedAt:   now,
		UpdatedAt:   now,
	}
}

func TestApplicationRepo_Create_OK_and_Duplicate(t *testing.T) {
	mock := newDB(t)
	defer mock.Close()
	r := NewApplicationRepository(mock)
	ctx := context.Background()
	app := sampleApplication()

	mock.ExpectExec(`INSERT INTO applications`).
		WithArgs(app.ID, app.PostingType, app.PostingID, app.StudentID,
			app.Status, app.CoverLetter, app.AppliedAt, app.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, app))

	// Second submission hits ON CONFLICT DO NOTHING: zero rows affected.
	mock.ExpectExec(`INSERT INTO applications`).
		WithArgs(app.ID, app.PostingType, app.PostingID, app.StudentID,
			app.Status, app.CoverLetter, app.AppliedAt, app.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	err := r.Create(ctx, app)
	require.ErrorIs(t, err, domain.ErrDuplicateApplication)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepo_GetByPostingAndStudent(t *testing.T) {
	mock := newDB(t)
	defer mock.Close()
	r := NewApplicationRepository(mock)
	ctx := context.Background()
	app := sampleApplication()

	rows := pgxmock.NewRows([]string{
		"id", "posting_type", "posting_id", "student_id", "status",
		"cover_letter", "applied_at", "updated_at",
	}).AddRow(app.ID, app.PostingType, app.PostingID, app.StudentID,
		app.Status, app.CoverLetter, app.AppliedAt, app.UpdatedAt)

	mock.ExpectQuery(`SELECT (.+) FROM applications`).
		WithArgs(app.PostingType, app.PostingID, app.StudentID).
		WillReturnRows(rows)
	got, err := r.GetByPostingAndStudent(ctx, app.PostingType, app.PostingID, app.StudentID)
	require.NoError(t, err)
	require.Equal(t, app.ID, got.ID)
	require.Equal(t, domain.ApplicationStatusPending, got.Status)

	mock.ExpectQuery(`SELECT (.+) FROM applications`).
		WithArgs(app.PostingType, app.PostingID, "stranger").
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByPostingAndStudent(ctx, app.PostingType, app.PostingID, "stranger")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepo_UpdateStatus(t *testing.T) {
	mock := newDB(t)
	defer mock.Close()
	r := NewApplicationRepository(mock)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE applications SET status`).
		WithArgs("app-1", domain.ApplicationStatusReviewed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.UpdateStatus(ctx, "app-1", domain.ApplicationStatusReviewed))

	mock.ExpectExec(`UPDATE applications SET status`).
		WithArgs("missing", domain.ApplicationStatusReviewed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err := r.UpdateStatus(ctx, "missing", domain.ApplicationStatusReviewed)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
