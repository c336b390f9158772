package domain

import (
	"context"
	"time"
)

type Notification struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Type           string     `json:"type"`            // info | success | warning | error | promotion
	Priority       string     `json:"priority"`        // low | medium | high | urgent
	TargetAudience string     `json:"target_audience"` // all | students | companies | specific
	IsActive       bool       `json:"is_active"`
	ScheduledAt    time.Time  `json:"scheduled_at"`
	ExpiresAt      *time.Time `json:"expires_at"`
	ActionURL      *string    `json:"action_url"`
	ActionText     *string    `json:"action_text"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NotificationUpdate carries a partial edit; nil fields are left unchanged.
type NotificationUpdate struct {
	Title          *string
	Message        *string
	Type           *string
	Priority       *string
	TargetAudience *string
	IsActive       *bool
	ExpiresAt      *time.Time
	ActionURL      *string
	ActionText     *string
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	GetByID(ctx context.Context, id string) (*Notification, error)
	Fetch(ctx context.Context, targetAudience string, activeOnly bool, limit, offset int) ([]Notification, int64, error)
	Update(ctx context.Context, notification *Notification) error
	Delete(ctx context.Context, id string) error
}
