package postgres

import (
	"context"
	"errors"

	"go-internhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

type adminRepo struct {
	db PgxPool
}

func NewAdminRepository(db PgxPool) domain.AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) Create(ctx context.Context, admin *domain.Admin) error {
	query := `INSERT INTO admins (id, name, email, password_hash, permissions, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		admin.ID, admin.Name, admin.Email, admin.PasswordHash,
		pq.Array(admin.Permissions), admin.CreatedAt, admin.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *adminRepo) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	query := `SELECT id, name, email, password_hash, permissions, created_at, updated_at FROM admins WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *adminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `SELECT id, name, email, password_hash, permissions, created_at, updated_at FROM admins WHERE lower(email) = lower($1)`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *adminRepo) scanOne(row pgx.Row) (*domain.Admin, error) {
	var a domain.Admin
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, pq.Array(&a.Permissions), &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) Update(ctx context.Context, admin *domain.Admin) error {
	query := `UPDATE admins SET name = $2, permissions = $3, updated_at = $4 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, admin.ID, admin.Name, pq.Array(admin.Permissions), admin.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
