package usecase

import (
	"context"
	"errors"
	"time"

	"go-internhub-backend/internal/domain"
	"go-internhub-backend/pkg/apperror"

	"github.com/google/uuid"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	vacancyRepo     domain.VacancyRepository
	internshipRepo  domain.InternshipRepository
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	vacancyRepo domain.VacancyRepository,
	internshipRepo domain.InternshipRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		vacancyRepo:     vacancyRepo,
		internshipRepo:  internshipRepo,
	}
}

func (u *applicationUsecase) ApplyToVacancy(ctx context.Context, studentID, vacancyID, coverLetter string) (*domain.Application, error) {
	vacancy, err := u.vacancyRepo.GetByID(ctx, vacancyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, apperror.Internal(err)
	}
	if vacancy.Status != domain.VacancyStatusActive {
		return nil, apperror.Conflict("This vacancy is no longer accepting applications")
	}

	return u.submit(ctx, domain.PostingVacancy, vacancyID, studentID, coverLetter)
}

func (u *applicationUsecase) ApplyToInternship(ctx context.Context, studentID, internshipID, coverLetter string) (*domain.Application, error) {
	if _, err := u.internshipRepo.GetByID(ctx, internshipID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Internship not found")
		}
		return nil, apperror.Internal(err)
	}

	return u.submit(ctx, domain.PostingInternship, internshipID, studentID, coverLetter)
}

// submit performs the conditional insert. Duplicate detection lives in the
// repository so two concurrent submissions race on the database constraint,
// not on an application-level read.
func (u *applicationUsecase) submit(ctx context.Context, postingType domain.PostingType, postingID, studentID, coverLetter string) (*domain.Application, error) {
	now := time.Now()
	app := &domain.Application{
		ID:          uuid.NewString(),
		PostingType: postingType,
		PostingID:   postingID,
		StudentID:   studentID,
		Status:      domain.ApplicationStatusPending,
		AppliedAt:   now,
		UpdatedAt:   now,
	}
	if coverLetter != "" {
		app.CoverLetter = &coverLetter
	}

	if err := u.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return nil, apperror.Conflict("You have already applied to this posting")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

func (u *applicationUsecase) MyApplications(ctx context.Context, studentID string) ([]domain.ApplicationWithPosting, error) {
	apps, err := u.applicationRepo.FetchByStudent(ctx, studentID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) ListForVacancy(ctx context.Context, companyID, vacancyID string) ([]domain.ApplicationWithStudent, error) {
	if _, err := u.vacancyRepo.GetByIDForCompany(ctx, vacancyID, companyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, apperror.Internal(err)
	}

	apps, err := u.applicationRepo.FetchByPosting(ctx, domain.PostingVacancy, vacancyID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) Review(ctx context.Context, companyID, vacancyID, studentID string, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, apperror.BadRequest("Status must be one of: pending, reviewed, accepted, rejected")
	}

	if _, err := u.vacancyRepo.GetByIDForCompany(ctx, vacancyID, companyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, apperror.Internal(err)
	}

	app, err := u.applicationRepo.GetByPostingAndStudent(ctx, domain.PostingVacancy, vacancyID, studentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	if !app.Status.CanTransitionTo(status) {
		return nil, apperror.Conflict("Cannot change application status from " + string(app.Status) + " to " + string(status))
	}

	if err := u.applicationRepo.UpdateStatus(ctx, app.ID, status); err != nil {
		return nil, apperror.Internal(err)
	}
	app.Status = status
	app.UpdatedAt = time.Now()
	return app, nil
}
