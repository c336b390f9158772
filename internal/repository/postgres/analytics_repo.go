package postgres

import (
	"context"

	"go-internhub-backend/internal/domain"
)

type analyticsRepo struct {
	db PgxPool
}

func NewAnalyticsRepository(db PgxPool) domain.AnalyticsRepository {
	return &analyticsRepo{db: db}
}

func (r *analyticsRepo) Overview(ctx context.Context) (*domain.AnalyticsOverview, error) {
	query := `SELECT
                (SELECT COUNT(*) FROM students),
                (SELECT COUNT(*) FROM companies),
                (SELECT COUNT(*) FROM subscriptions),
                (SELECT COUNT(*) FROM subscriptions WHERE status = 'active')`
	var o domain.AnalyticsOverview
	err := r.db.QueryRow(ctx, query).Scan(
		&o.TotalStudents, &o.TotalCompanies, &o.TotalSubscriptions, &o.ActiveSubscriptions,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *analyticsRepo) TopCompaniesHiring(ctx context.Context, limit int) ([]domain.TopCompany, error) {
	query := `SELECT c.id, c.name, COUNT(v.id) AS job_count
              FROM companies c
              JOIN vacancies v ON v.company_id = c.id AND v.status = 'active'
              GROUP BY c.id, c.name
              ORDER BY job_count DESC, c.name ASC
              LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]domain.TopCompany, 0)
	for rows.Next() {
		var tc domain.TopCompany
		if err := rows.Scan(&tc.CompanyID, &tc.CompanyName, &tc.JobCount); err != nil {
			return nil, err
		}
		companies = append(companies, tc)
	}
	return companies, rows.Err()
}

func (r *analyticsRepo) RevenueBreakdown(ctx context.Context, sincePeriodDays int) ([]domain.RevenueBreakdown, error) {
	query := `SELECT plan_type, COALESCE(SUM(price), 0), COUNT(*)
              FROM subscriptions
              WHERE created_at >= NOW() - make_interval(days => $1)
              GROUP BY plan_type
              ORDER BY plan_type`
	rows, err := r.db.Query(ctx, query, sincePeriodDays)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	breakdown := make([]domain.RevenueBreakdown, 0)
	for rows.Next() {
		var b domain.RevenueBreakdown
		if err := rows.Scan(&b.PlanType, &b.TotalRevenue, &b.Count); err != nil {
			return nil, err
		}
		breakdown = append(breakdown, b)
	}
	return breakdown, rows.Err()
}

func (r *analyticsRepo) RevenueTrend(ctx context.Context, sincePeriodDays int) ([]domain.RevenueTrendPoint, error) {
	query := `SELECT EXTRACT(YEAR FROM created_at)::int,
                     EXTRACT(MONTH FROM created_at)::int,
                     COALESCE(SUM(price), 0), COUNT(*)
              FROM subscriptions
              WHERE created_at >= NOW() - make_interval(days => $1)
              GROUP BY 1, 2
              ORDER BY 1, 2`
	rows, err := r.db.Query(ctx, query, sincePeriodDays)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trend := make([]domain.RevenueTrendPoint, 0)
	for rows.Next() {
		var p domain.RevenueTrendPoint
		if err := rows.Scan(&p.Year, &p.Month, &p.Revenue, &p.Count); err != nil {
			return nil, err
		}
		trend = append(trend, p)
	}
	return trend, rows.Err()
}
