package postgres

import (
	"context"
	"errors"

	"go-internhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

const subscriptionColumns = `id, company_id, plan_type, plan_name, price, currency, billing_cycle,
	start_date, end_date, status, payment_method, created_at, updated_at`

type subscriptionRepo struct {
	db PgxPool
}

func NewSubscriptionRepository(db PgxPool) domain.SubscriptionRepository {
	return &subscriptionRepo{db: db}
}

func (r *subscriptionRepo) Create(ctx context.Context, sub *domain.Subscription) error {
	query := `INSERT INTO subscriptions (` + subscriptionColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		sub.ID, sub.CompanyID, sub.PlanType, sub.PlanName, sub.Price, sub.Currency,
		sub.BillingCycle, sub.StartDate, sub.EndDate, sub.Status, sub.PaymentMethod,
		sub.CreatedAt, sub.UpdatedAt,
	)
	return err
}

func (r *subscriptionRepo) GetByID(ctx context.Context, id string) (*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`
	var s domain.Subscription
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CompanyID, &s.PlanType, &s.PlanName, &s.Price, &s.Currency,
		&s.BillingCycle, &s.StartDate, &s.EndDate, &s.Status, &s.PaymentMethod,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *subscriptionRepo) Fetch(ctx context.Context, status, planType string, limit, offset int) ([]domain.SubscriptionWithCompany, int64, error) {
	query := `SELECT s.id, s.company_id, s.plan_type, s.plan_name, s.price, s.currency,
                     s.billing_cycle, s.start_date, s.end_date, s.status, s.payment_method,
                     s.created_at, s.updated_at, c.name, c.email
              FROM subscriptions s
              JOIN companies c ON c.id = s.company_id
              WHERE ($1 = '' OR s.status = $1) AND ($2 = '' OR s.plan_type = $2)
              ORDER BY s.created_at DESC
              LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, query, status, planType, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	subs := make([]domain.SubscriptionWithCompany, 0)
	for rows.Next() {
		var s domain.SubscriptionWithCompany
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.PlanType, &s.PlanName, &s.Price, &s.Currency,
			&s.BillingCycle, &s.StartDate, &s.EndDate, &s.Status, &s.PaymentMethod,
			&s.CreatedAt, &s.UpdatedAt, &s.CompanyName, &s.CompanyEmail,
		); err != nil {
			return nil, 0, err
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM subscriptions
                   WHERE ($1 = '' OR status = $1) AND ($2 = '' OR plan_type = $2)`
	if err := r.db.QueryRow(ctx, countQuery, status, planType).Scan(&total); err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (r *subscriptionRepo) Update(ctx context.Context, sub *domain.Subscription) error {
	query := `UPDATE subscriptions
              SET plan_type = $2, plan_name = $3, price = $4, billing_cycle = $5,
                  end_date = $6, status = $7, payment_method = $8, updated_at = $9
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		sub.ID, sub.PlanType, sub.PlanName, sub.Price, sub.BillingCycle,
		sub.EndDate, sub.Status, sub.PaymentMethod, sub.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
