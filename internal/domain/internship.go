package domain

import (
	"context"
	"time"
)

type Internship struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Duration     string    `json:"duration"`
	Stipend      string    `json:"stipend"`
	Requirements []string  `json:"requirements"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InternshipWithCompany extends Internship with owning-company details for
// public browsing.
type InternshipWithCompany struct {
	Internship
	CompanyName    string `json:"company_name"`
	CompanyEmail   string `json:"company_email"`
	CompanyAddress string `json:"company_address"`
}

// InternshipUpdate carries a partial edit; nil fields are left unchanged.
type InternshipUpdate struct {
	Title        *string
	Description  *string
	Location     *string
	Duration     *string
	Stipend      *string
	Requirements []string
}

type InternshipRepository interface {
	Create(ctx context.Context, internship *Internship) error
	GetByID(ctx context.Context, id string) (*Internship, error)
	GetByIDWithCompany(ctx context.Context, id string) (*InternshipWithCompany, error)
	Fetch(ctx context.Context, limit, offset int) ([]InternshipWithCompany, int64, error)
	FetchByCompany(ctx context.Context, companyID string, limit, offset int) ([]Internship, int64, error)
	Update(ctx context.Context, internship *Internship) error
	Delete(ctx context.Context, id, companyID string) error
}

type InternshipUsecase interface {
	CreateInternship(ctx context.Context, companyID string, internship *Internship) error
	GetInternship(ctx context.Context, id string) (*InternshipWithCompany, error)
	ListInternships(ctx context.Context, page, pageSize int) ([]InternshipWithCompany, int64, error)
	ListByCompany(ctx context.Context, companyID string, page, pageSize int) ([]Internship, int64, error)
	UpdateInternship(ctx context.Context, companyID, internshipID string, update InternshipUpdate) (*Internship, error)
	DeleteInternship(ctx context.Context, companyID, internshipID string) error
}
