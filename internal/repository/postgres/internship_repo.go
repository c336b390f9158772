package postgres

import (
	"context"
	"errors"

	"go-internhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

const internshipColumns = `id, company_id, title, description, location, duration, stipend, requirements, created_at, updated_at`

type internshipRepo struct {
	db PgxPool
}

func NewInternshipRepository(db PgxPool) domain.InternshipRepository {
	return &internshipRepo{db: db}
}

func (r *internshipRepo) Create(ctx context.Context, internship *domain.Internship) error {
	query := `INSERT INTO internships (` + internshipColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		internship.ID, internship.CompanyID, internship.Title, internship.Description,
		internship.Location, internship.Duration, internship.Stipend,
		pq.Array(internship.Requirements), internship.CreatedAt, internship.UpdatedAt,
	)
	return err
}

func (r *internshipRepo) GetByID(ctx context.Context, id string) (*domain.Internship, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships WHERE id = $1`
	var i domain.Internship
	err := r.db.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.CompanyID, &i.Title, &i.Description, &i.Location,
		&i.Duration, &i.Stipend, pq.Array(&i.Requirements), &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *internshipRepo) GetByIDWithCompany(ctx context.Context, id string) (*domain.InternshipWithCompany, error) {
	query := `SELECT i.id, i.company_id, i.title, i.description, i.location, i.duration,
                     i.stipend, i.requirements, i.created_at, i.updated_at,
                     c.name, c.email, c.address
              FROM internships i
              JOIN companies c ON c.id = i.company_id
              WHERE i.id = $1`
	var i domain.InternshipWithCompany
	err := r.db.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.CompanyID, &i.Title, &i.Description, &i.Location,
		&i.Duration, &i.Stipend, pq.Array(&i.Requirements), &i.CreatedAt, &i.UpdatedAt,
		&i.CompanyName, &i.CompanyEmail, &i.CompanyAddress,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *internshipRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.InternshipWithCompany, int64, error) {
	query := `SELECT i.id, i.company_id, i.title, i.description, i.location, i.duration,
                     i.stipend, i.requirements, i.created_at, i.updated_at,
                     c.name, c.email, c.address
              FROM internships i
              JOIN companies c ON c.id = i.company_id
              ORDER BY i.created_at DESC
              LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	internships := make([]domain.InternshipWithCompany, 0)
	for rows.Next() {
		var i domain.InternshipWithCompany
		if err := rows.Scan(
			&i.ID, &i.CompanyID, &i.Title, &i.Description, &i.Location,
			&i.Duration, &i.Stipend, pq.Array(&i.Requirements), &i.CreatedAt, &i.UpdatedAt,
			&i.CompanyName, &i.CompanyEmail, &i.CompanyAddress,
		); err != nil {
			return nil, 0, err
		}
		internships = append(internships, i)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM internships`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return internships, total, nil
}

func (r *internshipRepo) FetchByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.Internship, int64, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships
              WHERE company_id = $1
              ORDER BY created_at DESC
              LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	internships := make([]domain.Internship, 0)
	for rows.Next() {
		var i domain.Internship
		if err := rows.Scan(
			&i.ID, &i.CompanyID, &i.Title, &i.Description, &i.Location,
			&i.Duration, &i.Stipend, pq.Array(&i.Requirements), &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		internships = append(internships, i)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM internships WHERE company_id = $1`
	if err := r.db.QueryRow(ctx, countQuery, companyID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return internships, total, nil
}

func (r *internshipRepo) Update(ctx context.Context, internship *domain.Internship) error {
	query := `UPDATE internships
              SET title = $2, description = $3, location = $4, duration = $5,
                  stipend = $6, requirements = $7, updated_at = $8
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		internship.ID, internship.Title, internship.Description, internship.Location,
		internship.Duration, internship.Stipend, pq.Array(internship.Requirements),
		internship.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *internshipRepo) Delete(ctx context.Context, id, companyID string) error {
	query := `DELETE FROM internships WHERE id = $1 AND company_id = $2`
	tag, err := r.db.Exec(ctx, query, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
