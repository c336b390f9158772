package postgres

import (
	"context"
	"errors"

	"go-internhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

const vacancyColumns = `id, company_id, title, description, requirements, location, salary, type, status, posted_at, updated_at`

type vacancyRepo struct {
	db PgxPool
}

func NewVacancyRepository(db PgxPool) domain.VacancyRepository {
	return &vacancyRepo{db: db}
}

func (r *vacancyRepo) Create(ctx context.Context, vacancy *domain.Vacancy) error {
	query := `INSERT INTO vacancies (` + vacancyColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		vacancy.ID, vacancy.CompanyID, vacancy.Title, vacancy.Description,
		vacancy.Requirements, vacancy.Location, vacancy.Salary,
		vacancy.Type, vacancy.Status, vacancy.PostedAt, vacancy.UpdatedAt,
	)
	return err
}

func (r *vacancyRepo) GetByID(ctx context.Context, id string) (*domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *vacancyRepo) GetByIDForCompany(ctx context.Context, id, companyID string) (*domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies WHERE id = $1 AND company_id = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, id, companyID))
}

func (r *vacancyRepo) scanOne(row pgx.Row) (*domain.Vacancy, error) {
	var v domain.Vacancy
	err := row.Scan(
		&v.ID, &v.CompanyID, &v.Title, &v.Description, &v.Requirements,
		&v.Location, &v.Salary, &v.Type, &v.Status, &v.PostedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *vacancyRepo) FetchByCompany(ctx context.Context, companyID string) ([]domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM vacancies WHERE company_id = $1 ORDER BY posted_at DESC`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vacancies := make([]domain.Vacancy, 0)
	for rows.Next() {
		var v domain.Vacancy
		if err := rows.Scan(
			&v.ID, &v.CompanyID, &v.Title, &v.Description, &v.Requirements,
			&v.Location, &v.Salary, &v.Type, &v.Status, &v.PostedAt, &v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, rows.Err()
}

func (r *vacancyRepo) FetchPublicActive(ctx context.Context, limit, offset int) ([]domain.VacancyWithCompany, int64, error) {
	query := `SELECT v.id, v.company_id, v.title, v.description, v.requirements, v.location,
                     v.salary, v.type, v.status, v.posted_at, v.updated_at, c.name, c.email
              FROM vacancies v
              JOIN companies c ON c.id = v.company_id
              WHERE v.status = 'active'
              ORDER BY v.posted_at DESC
              LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	vacancies, err := scanVacanciesWithCompany(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM vacancies WHERE status = 'active'`
	if err := r.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}
	return vacancies, total, nil
}

func (r *vacancyRepo) FetchAllWithCompany(ctx context.Context, status string, limit, offset int) ([]domain.VacancyWithCompany, int64, error) {
	query := `SELECT v.id, v.company_id, v.title, v.description, v.requirements, v.location,
                     v.salary, v.type, v.status, v.posted_at, v.updated_at, c.name, c.email
              FROM vacancies v
              JOIN companies c ON c.id = v.company_id
              WHERE ($1 = '' OR v.status = $1)
              ORDER BY v.posted_at DESC
              LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	vacancies, err := scanVacanciesWithCompany(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM vacancies WHERE ($1 = '' OR status = $1)`
	if err := r.db.QueryRow(ctx, countQuery, status).Scan(&total); err != nil {
		return nil, 0, err
	}
	return vacancies, total, nil
}

func scanVacanciesWithCompany(rows pgx.Rows) ([]domain.VacancyWithCompany, error) {
	vacancies := make([]domain.VacancyWithCompany, 0)
	for rows.Next() {
		var v domain.VacancyWithCompany
		if err := rows.Scan(
			&v.ID, &v.CompanyID, &v.Title, &v.Description, &v.Requirements,
			&v.Location, &v.Salary, &v.Type, &v.Status, &v.PostedAt, &v.UpdatedAt,
			&v.CompanyName, &v.CompanyEmail,
		); err != nil {
			return nil, err
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, rows.Err()
}

func (r *vacancyRepo) Update(ctx context.Context, vacancy *domain.Vacancy) error {
	query := `UPDATE vacancies
              SET title = $2, description = $3, requirements = $4, location = $5,
                  salary = $6, type = $7, updated_at = $8
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		vacancy.ID, vacancy.Title, vacancy.Description, vacancy.Requirements,
		vacancy.Location, vacancy.Salary, vacancy.Type, vacancy.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vacancyRepo) UpdateStatus(ctx context.Context, id string, status domain.VacancyStatus) error {
	query := `UPDATE vacancies SET status = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vacancyRepo) Delete(ctx context.Context, id, companyID string) error {
	query := `DELETE FROM vacancies WHERE id = $1 AND company_id = $2`
	tag, err := r.db.Exec(ctx, query, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
