package postgres

import (
	"context"
	"errors"

	"go-internhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

const applicationColumns = `id, posting_type, posting_id, student_id, status, cover_letter, applied_at, updated_at`

type applicationRepo struct {
	db PgxPool
}

func NewApplicationRepository(db PgxPool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create relies on the unique constraint over (posting_type, posting_id,
// student_id): the insert is a no-op when a duplicate exists, so two
// concurrent submissions can never both win.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (` + applicationColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
              ON CONFLICT (posting_type, posting_id, student_id) DO NOTHING`
	tag, err := r.db.Exec(ctx, query,
		app.ID, app.PostingType, app.PostingID, app.StudentID,
		app.Status, app.CoverLetter, app.AppliedAt, app.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDuplicateApplication
	}
	return nil
}

func (r *applicationRepo) GetByPostingAndStudent(ctx context.Context, postingType domain.PostingType, postingID, studentID string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
              WHERE posting_type = $1 AND posting_id = $2 AND student_id = $3`
	var a domain.Application
	err := r.db.QueryRow(ctx, query, postingType, postingID, studentID).Scan(
		&a.ID, &a.PostingType, &a.PostingID, &a.StudentID,
		&a.Status, &a.CoverLetter, &a.AppliedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepo) FetchByStudent(ctx context.Context, studentID string) ([]domain.ApplicationWithPosting, error) {
	query := `SELECT a.id, a.posting_type, a.posting_id, a.student_id, a.status,
                     a.cover_letter, a.applied_at, a.updated_at,
                     COALESCE(v.title, i.title) AS posting_title,
                     c.name AS company_name
              FROM applications a
              LEFT JOIN vacancies v ON a.posting_type = 'vacancy' AND v.id = a.posting_id
              LEFT JOIN internships i ON a.posting_type = 'internship' AND i.id = a.posting_id
              JOIN companies c ON c.id = COALESCE(v.company_id, i.company_id)
              WHERE a.student_id = $1
              ORDER BY a.applied_at DESC`
	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := make([]domain.ApplicationWithPosting, 0)
	for rows.Next() {
		var a domain.ApplicationWithPosting
		if err := rows.Scan(
			&a.ID, &a.PostingType, &a.PostingID, &a.StudentID, &a.Status,
			&a.CoverLetter, &a.AppliedAt, &a.UpdatedAt,
			&a.PostingTitle, &a.CompanyName,
		); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) FetchByPosting(ctx context.Context, postingType domain.PostingType, postingID string) ([]domain.ApplicationWithStudent, error) {
	query := `SELECT a.id, a.posting_type, a.posting_id, a.student_id, a.status,
                     a.cover_letter, a.applied_at, a.updated_at,
                     s.name, s.email, s.cv
              FROM applications a
              JOIN students s ON s.id = a.student_id
              WHERE a.posting_type = $1 AND a.posting_id = $2
              ORDER BY a.applied_at DESC`
	rows, err := r.db.Query(ctx, query, postingType, postingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := make([]domain.ApplicationWithStudent, 0)
	for rows.Next() {
		var a domain.ApplicationWithStudent
		if err := rows.Scan(
			&a.ID, &a.PostingType, &a.PostingID, &a.StudentID, &a.Status,
			&a.CoverLetter, &a.AppliedAt, &a.UpdatedAt,
			&a.StudentName, &a.StudentEmail, &a.StudentCV,
		); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	query := `UPDATE applications SET status = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
