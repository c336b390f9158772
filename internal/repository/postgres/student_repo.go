package postgres

import (
	"context"
	"errors"

	"go-internhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type studentRepo struct {
	db PgxPool
}

func NewStudentRepository(db PgxPool) domain.StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *domain.Student) error {
	query := `INSERT INTO students (id, name, email, password_hash, cv, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		student.ID, student.Name, student.Email, student.PasswordHash, student.CV,
		student.CreatedAt, student.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `SELECT id, name, email, password_hash, cv, created_at, updated_at FROM students WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *studentRepo) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	query := `SELECT id, name, email, password_hash, cv, created_at, updated_at FROM students WHERE lower(email) = lower($1)`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *studentRepo) scanOne(row pgx.Row) (*domain.Student, error) {
	var s domain.Student
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.CV, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *studentRepo) Update(ctx context.Context, student *domain.Student) error {
	query := `UPDATE students SET name = $2, cv = $3, updated_at = $4 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, student.ID, student.Name, student.CV, student.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *studentRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Student, int64, error) {
	query := `SELECT id, name, email, password_hash, cv, created_at, updated_at
              FROM students ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.CV, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

func (r *studentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
