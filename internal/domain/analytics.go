package domain

import "context"

// AnalyticsOverview is the headline counts block of the admin dashboard.
type AnalyticsOverview struct {
	TotalStudents       int64 `json:"total_students"`
	TotalCompanies      int64 `json:"total_companies"`
	TotalSubscriptions  int64 `json:"total_subscriptions"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
}

// TopCompany is one entry of the "top companies hiring" ranking, ordered by
// active vacancy count.
type TopCompany struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	JobCount    int64  `json:"job_count"`
}

// RevenueBreakdown groups subscription revenue by plan type for a period.
type RevenueBreakdown struct {
	PlanType     string  `json:"plan_type"`
	TotalRevenue float64 `json:"total_revenue"`
	Count        int64   `json:"count"`
}

// RevenueTrendPoint is one month of subscription revenue.
type RevenueTrendPoint struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
	Count   int64   `json:"count"`
}

// AnalyticsReport is the full admin analytics payload.
type AnalyticsReport struct {
	Overview           AnalyticsOverview   `json:"overview"`
	TopCompaniesHiring []TopCompany        `json:"top_companies_hiring"`
	RevenueBreakdown   []RevenueBreakdown  `json:"revenue_breakdown"`
	RevenueTrend       []RevenueTrendPoint `json:"revenue_trend"`
	Period             string              `json:"period"`
}

type AnalyticsRepository interface {
	Overview(ctx context.Context) (*AnalyticsOverview, error)
	TopCompaniesHiring(ctx context.Context, limit int) ([]TopCompany, error)
	RevenueBreakdown(ctx context.Context, sincePeriodDays int) ([]RevenueBreakdown, error)
	RevenueTrend(ctx context.Context, sincePeriodDays int) ([]RevenueTrendPoint, error)
}
