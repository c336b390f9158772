package postgres

import (
	"context"
	"errors"

	"go-internhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

const companyColumns = `id, name, email, password_hash, address, telephone, linkedin_url, biography, logo_url, terms_accepted, verified, created_at, updated_at`

type companyRepo struct {
	db PgxPool
}

func NewCompanyRepository(db PgxPool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (id, name, email, password_hash, address, telephone, linkedin_url, biography, terms_accepted, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Email, company.PasswordHash,
		company.Address, company.Telephone, company.LinkedinURL, company.Biography,
		company.TermsAccepted, company.CreatedAt, company.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *companyRepo) GetByEmail(ctx context.Context, email string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE lower(email) = lower($1)`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *companyRepo) scanOne(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.Address, &c.Telephone,
		&c.LinkedinURL, &c.Biography, &c.LogoURL, &c.TermsAccepted, &c.Verified,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET name = $2, address = $3, telephone = $4, linkedin_url = $5, biography = $6, updated_at = $7
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Address, company.Telephone,
		company.LinkedinURL, company.Biography, company.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE companies SET password_hash = $2, updated_at = now() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) SetVerified(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `UPDATE companies SET verified = TRUE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) SetLogoURL(ctx context.Context, id, logoURL string) error {
	tag, err := r.db.Exec(ctx, `UPDATE companies SET logo_url = $2, updated_at = now() WHERE id = $1`, id, logoURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Company, int64, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.Address, &c.Telephone,
			&c.LinkedinURL, &c.Biography, &c.LogoURL, &c.TermsAccepted, &c.Verified,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		companies = append(companies, c)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func (r *companyRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
