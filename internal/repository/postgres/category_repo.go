package postgres

import (
	"context"
	"errors"

	"go-internhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

const categoryColumns = `id, name, description, icon, color, is_active, job_count, created_by, created_at, updated_at`

type categoryRepo struct {
	db PgxPool
}

func NewCategoryRepository(db PgxPool) domain.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *domain.Category) error {
	query := `INSERT INTO categories (` + categoryColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.Icon,
		category.Color, category.IsActive, category.JobCount,
		category.CreatedBy, category.CreatedAt, category.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateName
	}
	return err
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	var c domain.Category
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.Icon, &c.Color,
		&c.IsActive, &c.JobCount, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) Fetch(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.Icon, &c.Color,
			&c.IsActive, &c.JobCount, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoryRepo) Update(ctx context.Context, category *domain.Category) error {
	query := `UPDATE categories
              SET name = $2, description = $3, icon = $4, color = $5, is_active = $6, updated_at = $7
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.Icon,
		category.Color, category.IsActive, category.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateName
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
