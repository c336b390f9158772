package usecase

import (
	"context"
	"errors"
	"time"

	"go-internhub-backend/internal/domain"
	"go-internhub-backend/pkg/apperror"

	"github.com/google/uuid"
)

type internshipUsecase struct {
	internshipRepo domain.InternshipRepository
}

func NewInternshipUsecase(internshipRepo domain.InternshipRepository) domain.InternshipUsecase {
	return &internshipUsecase{internshipRepo: internshipRepo}
}

func (u *internshipUsecase) CreateInternship(ctx context.Context, companyID string, internship *domain.Internship) error {
	now := time.Now()
	internship.ID = uuid.NewString()
	internship.CompanyID = companyID
	if internship.Requirements == nil {
		internship.Requirements = []string{}
	}
	internship.CreatedAt = now
	internship.UpdatedAt = now

	if err := u.internshipRepo.Create(ctx, internship); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *internshipUsecase) GetInternship(ctx context.Context, id string) (*domain.InternshipWithCompany, error) {
	internship, err := u.internshipRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Internship not found")
		}
		return nil, apperror.Internal(err)
	}
	return internship, nil
}

func (u *internshipUsecase) ListInternships(ctx context.Context, page, pageSize int) ([]domain.InternshipWithCompany, int64, error) {
	limit, offset := pagination(page, pageSize)
	internships, total, err := u.internshipRepo.Fetch(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return internships, total, nil
}

func (u *internshipUsecase) ListByCompany(ctx context.Context, companyID string, page, pageSize int) ([]domain.Internship, int64, error) {
	limit, offset := pagination(page, pageSize)
	internships, total, err := u.internshipRepo.FetchByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return internships, total, nil
}

func (u *internshipUsecase) UpdateInternship(ctx context.Context, companyID, internshipID string, update domain.InternshipUpdate) (*domain.Internship, error) {
	internship, err := u.internshipRepo.GetByID(ctx, internshipID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Internship not found")
		}
		return nil, apperror.Internal(err)
	}
	if internship.CompanyID != companyID {
		return nil, apperror.NotFound("Internship not found")
	}

	if update.Title != nil {
		internship.Title = *update.Title
	}
	if update.Description != nil {
		internship.Description = *update.Description
	}
	if update.Location != nil {
		internship.Location = *update.Location
	}
	if update.Duration != nil {
		internship.Duration = *update.Duration
	}
	if update.Stipend != nil {
		internship.Stipend = *update.Stipend
	}
	if update.Requirements != nil {
		internship.Requirements = update.Requirements
	}
	internship.UpdatedAt = time.Now()

	if err := u.internshipRepo.Update(ctx, internship); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Internship not found")
		}
		return nil, apperror.Internal(err)
	}
	return internship, nil
}

func (u *internshipUsecase) DeleteInternship(ctx context.Context, companyID, internshipID string) error {
	if err := u.internshipRepo.Delete(ctx, internshipID, companyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Internship not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
