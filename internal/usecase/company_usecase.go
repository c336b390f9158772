package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go-internhub-backend/internal/domain"
	"go-internhub-backend/pkg/apperror"
	"go-internhub-backend/pkg/auth"
	"go-internhub-backend/pkg/hash"
	"go-internhub-backend/pkg/logger"
	"go-internhub-backend/pkg/upload"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	issuer      *auth.Issuer
	logos       *upload.ImageStore
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, issuer *auth.Issuer, logos *upload.ImageStore) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		issuer:      issuer,
		logos:       logos,
	}
}

func (u *companyUsecase) GetProfile(ctx context.Context, id string) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (u *companyUsecase) UpdateProfile(ctx context.Context, id string, update domain.CompanyUpdate) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}

	if update.Name != nil {
		company.Name = *update.Name
	}
	if update.Address != nil {
		company.Address = *update.Address
	}
	if update.Telephone != nil {
		company.Telephone = *update.Telephone
	}
	if update.LinkedinURL != nil {
		company.LinkedinURL = update.LinkedinURL
	}
	if update.Biography != nil {
		company.Biography = update.Biography
	}
	company.UpdatedAt = time.Now()

	if err := u.companyRepo.Update(ctx, company); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (u *companyUsecase) ResetPassword(ctx context.Context, id, newPassword string) error {
	digest, err := hash.Password(newPassword)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := u.companyRepo.UpdatePassword(ctx, id, digest); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return apperror.Internal(err)
	}

	logger.Log.Info("company password reset", slog.String("company_id", id))
	return nil
}

// VerifyAccount redeems a bearer token minted for the company at
// registration and marks the account verified.
func (u *companyUsecase) VerifyAccount(ctx context.Context, token string) (*domain.Company, error) {
	claims, err := u.issuer.Verify(token)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid verification token")
	}
	if claims.Role != domain.RoleCompany {
		return nil, apperror.Unauthorized("Invalid verification token")
	}

	company, err := u.companyRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}

	if !company.Verified {
		if err := u.companyRepo.SetVerified(ctx, company.ID); err != nil {
			return nil, apperror.Internal(err)
		}
		company.Verified = true
	}

	logger.Log.Info("company verified", slog.String("company_id", company.ID))
	return company, nil
}

func (u *companyUsecase) UploadLogo(ctx context.Context, id string, data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", apperror.BadRequest("Logo file is required")
	}

	logoURL, err := u.logos.SaveLogo(data, filename)
	if err != nil {
		return "", apperror.BadRequest("Unsupported or corrupt image file")
	}

	if err := u.companyRepo.SetLogoURL(ctx, id, logoURL); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("Company not found")
		}
		return "", apperror.Internal(err)
	}
	return logoURL, nil
}
