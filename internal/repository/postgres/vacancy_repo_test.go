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

func TestVacancyRepo_GetByIDForCompany_ScopesOwnership(t *testing.T) {
	mock := newDB(t)
	defer mock.Close()
	r := NewVacancyRepository(mock)
	ctx := context.Background()
	now := time.Now()

	rows := pgxmock.NewRows([]string{
		"id", "company_id", "title", "description", "requirements", "location",
		"salary", "type", "status", "posted_at", "updated_at",
	}).AddRow("vac-1", "com-1", "Backend Engineer", "Build APIs", "Go", "Colombo",
		nil, domain.EmploymentFullTime, domain.VacancyStatusActive, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM vacancies WHERE id = \$1 AND company_id = \$2`).
		WithArgs("vac-1", "com-1").
		WillReturnRows(rows)
	v, err := r.GetByIDForCompany(ctx, "vac-1", "com-1")
	require.NoError(t, err)
	require.Equal(t, "com-1", v.CompanyID)

	// A foreign company's lookup reads as NotFound.
	mock.ExpectQuery(`SELECT (.+) FROM vacancies WHERE id = \$1 AND company_id = \$2`).
		WithArgs("vac-1", "com-2").
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByIDForCompany(ctx, "vac-1", "com-2")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVacancyRepo_Delete_ScopesOwnership(t *testing.T) {
	mock := newDB(t)
	defer mock.Close()
	r := NewVacancyRepository(mock)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM vacancies WHERE id = \$1 AND company_id = \$2`).
		WithArgs("vac-1", "com-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(ctx, "vac-1", "com-1"))

	mock.ExpectExec(`DELETE FROM vacancies WHERE id = \$1 AND company_id = \$2`).
		WithArgs("vac-1", "com-2").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	err := r.Delete(ctx, "vac-1", "com-2")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVacancyRepo_UpdateStatus(t *testing.T) {
	mock := newDB(t)
	defer mock.Close()
	r := NewVacancyRepository(mock)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE vacancies SET status`).
		WithArgs("vac-1", domain.VacancyStatusClosed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.UpdateStatus(ctx, "vac-1", domain.VacancyStatusClosed))

	mock.ExpectExec(`UPDATE vacancies SET status`).
		WithArgs("missing", domain.VacancyStatusClosed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err := r.UpdateStatus(ctx, "missing", domain.VacancyStatusClosed)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
