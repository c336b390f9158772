package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateName is returned when a category name is already taken.
var ErrDuplicateName = errors.New("name already exists")

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Color       string    `json:"color"`
	IsActive    bool      `json:"is_active"`
	JobCount    int       `json:"job_count"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryUpdate carries a partial edit; nil fields are left unchanged.
type CategoryUpdate struct {
	Name        *string
	Description *string
	Icon        *string
	Color       *string
	IsActive    *bool
}

type CategoryRepository interface {
	// Create fails with ErrDuplicateName when the name is already taken.
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	Fetch(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
}
