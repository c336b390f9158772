package usecase

import (
	"context"
	"errors"
	"time"

	"go-internhub-backend/internal/domain"
	"go-internhub-backend/pkg/apperror"

	"github.com/google/uuid"
)

type vacancyUsecase struct {
	vacancyRepo domain.VacancyRepository
}

func NewVacancyUsecase(vacancyRepo domain.VacancyRepository) domain.VacancyUsecase {
	return &vacancyUsecase{vacancyRepo: vacancyRepo}
}

func (u *vacancyUsecase) PostVacancy(ctx context.Context, companyID string, vacancy *domain.Vacancy) error {
	if !vacancy.Type.Valid() {
		return apperror.BadRequest("Type must be one of: full-time, part-time, internship, contract")
	}

	now := time.Now()
	vacancy.ID = uuid.NewString()
	vacancy.CompanyID = companyID
	vacancy.Status = domain.VacancyStatusActive
	vacancy.PostedAt = now
	vacancy.UpdatedAt = now

	if err := u.vacancyRepo.Create(ctx, vacancy); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *vacancyUsecase) ViewVacancies(ctx context.Context, companyID string) ([]domain.Vacancy, error) {
	vacancies, err := u.vacancyRepo.FetchByCompany(ctx, companyID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return vacancies, nil
}

func (u *vacancyUsecase) ListPublicActive(ctx context.Context, page, pageSize int) ([]domain.VacancyWithCompany, int64, error) {
	limit, offset := pagination(page, pageSize)
	vacancies, total, err := u.vacancyRepo.FetchPublicActive(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return vacancies, total, nil
}

func (u *vacancyUsecase) EditVacancy(ctx context.Context, companyID, vacancyID string, update domain.VacancyUpdate) (*domain.Vacancy, error) {
	vacancy, err := u.vacancyRepo.GetByIDForCompany(ctx, vacancyID, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, apperror.Internal(err)
	}

	if update.Title != nil {
		vacancy.Title = *update.Title
	}
	if update.Description != nil {
		vacancy.Description = *update.Description
	}
	if update.Requirements != nil {
		vacancy.Requirements = *update.Requirements
	}
	if update.Location != nil {
		vacancy.Location = *update.Location
	}
	if update.Salary != nil {
		vacancy.Salary = update.Salary
	}
	if update.Type != nil {
		if !update.Type.Valid() {
			return nil, apperror.BadRequest("Type must be one of: full-time, part-time, internship, contract")
		}
		vacancy.Type = *update.Type
	}
	vacancy.UpdatedAt = time.Now()

	if err := u.vacancyRepo.Update(ctx, vacancy); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, apperror.Internal(err)
	}
	return vacancy, nil
}

func (u *vacancyUsecase) ChangeStatus(ctx context.Context, companyID, vacancyID string, status domain.VacancyStatus) (*domain.Vacancy, error) {
	if !status.Valid() {
		return nil, apperror.BadRequest("Status must be one of: active, inactive, closed")
	}

	vacancy, err := u.vacancyRepo.GetByIDForCompany(ctx, vacancyID, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, apperror.Internal(err)
	}

	if !vacancy.Status.CanTransitionTo(status) {
		return nil, apperror.Conflict("Cannot change status from " + string(vacancy.Status) + " to " + string(status))
	}

	if err := u.vacancyRepo.UpdateStatus(ctx, vacancy.ID, status); err != nil {
		return nil, apperror.Internal(err)
	}
	vacancy.Status = status
	vacancy.UpdatedAt = time.Now()
	return vacancy, nil
}

func (u *vacancyUsecase) DeleteVacancy(ctx context.Context, companyID, vacancyID string) error {
	if err := u.vacancyRepo.Delete(ctx, vacancyID, companyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Vacancy not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// pagination translates 1-based page numbers into LIMIT/OFFSET, clamping
// page size to a sane window.
func pagination(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return pageSize, (page - 1) * pageSize
}
