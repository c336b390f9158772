package domain

import (
	"context"
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusPending   SubscriptionStatus = "pending"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusExpired, SubscriptionStatusCancelled, SubscriptionStatusPending:
		return true
	}
	return false
}

type Subscription struct {
	ID            string             `json:"id"`
	CompanyID     string             `json:"company_id"`
	PlanType      string             `json:"plan_type"` // basic | premium | enterprise
	PlanName      string             `json:"plan_name"`
	Price         float64            `json:"price"`
	Currency      string             `json:"currency"`
	BillingCycle  string             `json:"billing_cycle"` // monthly | quarterly | yearly
	StartDate     time.Time          `json:"start_date"`
	EndDate       time.Time          `json:"end_date"`
	Status        SubscriptionStatus `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// SubscriptionWithCompany extends Subscription with company details for
// admin listings.
type SubscriptionWithCompany struct {
	Subscription
	CompanyName  string `json:"company_name"`
	CompanyEmail string `json:"company_email"`
}

// SubscriptionUpdate carries a partial edit; nil fields are left unchanged.
type SubscriptionUpdate struct {
	PlanType      *string
	PlanName      *string
	Price         *float64
	BillingCycle  *string
	EndDate       *time.Time
	Status        *SubscriptionStatus
	PaymentMethod *string
}

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id string) (*Subscription, error)
	Fetch(ctx context.Context, status, planType string, limit, offset int) ([]SubscriptionWithCompany, int64, error)
	Update(ctx context.Context, sub *Subscription) error
}
