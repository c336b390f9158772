package domain

import (
	"context"
	"time"
)

type VacancyStatus string

const (
	VacancyStatusActive   VacancyStatus = "active"
	VacancyStatusInactive VacancyStatus = "inactive"
	VacancyStatusClosed   VacancyStatus = "closed"
)

func (s VacancyStatus) Valid() bool {
	switch s {
	case VacancyStatusActive, VacancyStatusInactive, VacancyStatusClosed:
		return true
	}
	return false
}

// vacancyTransitions is the explicit state table. Closed is terminal.
var vacancyTransitions = map[VacancyStatus][]VacancyStatus{
	VacancyStatusActive:   {VacancyStatusInactive, VacancyStatusClosed},
	VacancyStatusInactive: {VacancyStatusActive, VacancyStatusClosed},
	VacancyStatusClosed:   {},
}

// CanTransitionTo reports whether the status may move to next.
func (s VacancyStatus) CanTransitionTo(next VacancyStatus) bool {
	for _, allowed := range vacancyTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentInternship EmploymentType = "internship"
	EmploymentContract   EmploymentType = "contract"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentInternship, EmploymentContract:
		return true
	}
	return false
}

type Vacancy struct {
	ID           string         `json:"id"`
	CompanyID    string         `json:"company_id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Requirements string         `json:"requirements"`
	Location     string         `json:"location"`
	Salary       *string        `json:"salary"`
	Type         EmploymentType `json:"type"`
	Status       VacancyStatus  `json:"status"`
	PostedAt     time.Time      `json:"posted_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// VacancyWithCompany extends Vacancy with owning-company information for
// public listings and admin moderation views.
type VacancyWithCompany struct {
	Vacancy
	CompanyName  string `json:"company_name"`
	CompanyEmail string `json:"company_email"`
}

// VacancyUpdate carries a partial edit; nil fields are left unchanged.
type VacancyUpdate struct {
	Title        *string
	Description  *string
	Requirements *string
	Location     *string
	Salary       *string
	Type         *EmploymentType
}

type VacancyRepository interface {
	Create(ctx context.Context, vacancy *Vacancy) error
	GetByID(ctx context.Context, id string) (*Vacancy, error)
	// GetByIDForCompany scopes the lookup to the owning company so a
	// foreign company's edit reads as NotFound, never a leak.
	GetByIDForCompany(ctx context.Context, id, companyID string) (*Vacancy, error)
	FetchByCompany(ctx context.Context, companyID string) ([]Vacancy, error)
	FetchPublicActive(ctx context.Context, limit, offset int) ([]VacancyWithCompany, int64, error)
	FetchAllWithCompany(ctx context.Context, status string, limit, offset int) ([]VacancyWithCompany, int64, error)
	Update(ctx context.Context, vacancy *Vacancy) error
	UpdateStatus(ctx context.Context, id string, status VacancyStatus) error
	Delete(ctx context.Context, id, companyID string) error
}

type VacancyUsecase interface {
	PostVacancy(ctx context.Context, companyID string, vacancy *Vacancy) error
	ViewVacancies(ctx context.Context, companyID string) ([]Vacancy, error)
	ListPublicActive(ctx context.Context, page, pageSize int) ([]VacancyWithCompany, int64, error)
	EditVacancy(ctx context.Context, companyID, vacancyID string, update VacancyUpdate) (*Vacancy, error)
	// ChangeStatus enforces the transition table for the owning company.
	// Admin moderation goes through AdminUsecase.UpdateJobStatus, which
	// applies the same table without the ownership scope.
	ChangeStatus(ctx context.Context, companyID, vacancyID string, status VacancyStatus) (*Vacancy, error)
	DeleteVacancy(ctx context.Context, companyID, vacancyID string) error
}
