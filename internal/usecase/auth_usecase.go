package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go-internhub-backend/internal/domain"
	"go-internhub-backend/pkg/apperror"
	"go-internhub-backend/pkg/auth"
	"go-internhub-backend/pkg/hash"
	"go-internhub-backend/pkg/logger"
	"go-internhub-backend/pkg/security"

	"github.com/google/uuid"
)

type authUsecase struct {
	studentRepo domain.StudentRepository
	companyRepo domain.CompanyRepository
	adminRepo   domain.AdminRepository
	issuer      *auth.Issuer
	tracker     *security.LoginTracker
}

func NewAuthUsecase(
	studentRepo domain.StudentRepository,
	companyRepo domain.CompanyRepository,
	adminRepo domain.AdminRepository,
	issuer *auth.Issuer,
	tracker *security.LoginTracker,
) domain.AuthUsecase {
	return &authUsecase{
		studentRepo: studentRepo,
		companyRepo: companyRepo,
		adminRepo:   adminRepo,
		issuer:      issuer,
		tracker:     tracker,
	}
}

func (u *authUsecase) RegisterStudent(ctx context.Context, student *domain.Student, password string) (*domain.AuthResult, error) {
	digest, err := hash.Password(password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	student.ID = uuid.NewString()
	student.Email = strings.ToLower(strings.TrimSpace(student.Email))
	student.PasswordHash = digest
	student.CreatedAt = now
	student.UpdatedAt = now

	if err := u.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperror.Conflict("Student already exists with this email")
		}
		return nil, apperror.Internal(err)
	}

	token, err := u.issuer.Issue(student.ID, domain.RoleStudent)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("student registered", slog.String("student_id", student.ID))
	return &domain.AuthResult{Token: token, Student: student}, nil
}

func (u *authUsecase) RegisterCompany(ctx context.Context, company *domain.Company, password string) (*domain.AuthResult, error) {
	if !company.TermsAccepted {
		return nil, apperror.BadRequest("You must accept the terms and conditions")
	}

	digest, err := hash.Password(password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	company.ID = uuid.NewString()
	company.Email = strings.ToLower(strings.TrimSpace(company.Email))
	company.PasswordHash = digest
	company.Verified = false
	company.CreatedAt = now
	company.UpdatedAt = now

	if err := u.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperror.Conflict("Company already exists with this email")
		}
		return nil, apperror.Internal(err)
	}

	token, err := u.issuer.Issue(company.ID, domain.RoleCompany)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("company registered", slog.String("company_id", company.ID))
	return &domain.AuthResult{Token: token, Company: company}, nil
}

func (u *authUsecase) RegisterAdmin(ctx context.Context, admin *domain.Admin, password string) (*domain.AuthResult, error) {
	digest, err := hash.Password(password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	admin.ID = uuid.NewString()
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	admin.PasswordHash = digest
	if len(admin.Permissions) == 0 {
		admin.Permissions = domain.DefaultAdminPermissions
	}
	admin.CreatedAt = now
	admin.UpdatedAt = now

	if err := u.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperror.Conflict("Admin already exists with this email")
		}
		return nil, apperror.Internal(err)
	}

	token, err := u.issuer.Issue(admin.ID, domain.RoleAdmin)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("admin registered", slog.String("admin_id", admin.ID))
	return &domain.AuthResult{Token: token, Admin: admin}, nil
}

func (u *authUsecase) Login(ctx context.Context, role, email, password, ip string) (*domain.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if u.tracker != nil {
		blocked, err := u.tracker.IsBlocked(ctx, email, ip)
		if err == nil && blocked {
			return nil, apperror.New(429, "Too many failed login attempts. Please try again later.", nil)
		}
	}

	result, digest, err := u.lookup(ctx, role, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			u.recordFailure(ctx, email, ip)
			return nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, apperror.Internal(err)
	}

	if !hash.Verify(password, digest) {
		u.recordFailure(ctx, email, ip)
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	if u.tracker != nil {
		if err := u.tracker.ClearAttempts(ctx, email, ip); err != nil {
			logger.Log.Warn("failed to clear login attempts", slog.String("error", err.Error()))
		}
	}

	accountID := u.accountID(result)
	token, err := u.issuer.Issue(accountID, role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	result.Token = token

	logger.Log.Info("login succeeded", slog.String("role", role), slog.String("account_id", accountID))
	return result, nil
}

func (u *authUsecase) lookup(ctx context.Context, role, email string) (*domain.AuthResult, string, error) {
	switch role {
	case domain.RoleStudent:
		s, err := u.studentRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, "", err
		}
		return &domain.AuthResult{Student: s}, s.PasswordHash, nil
	case domain.RoleCompany:
		c, err := u.companyRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, "", err
		}
		return &domain.AuthResult{Company: c}, c.PasswordHash, nil
	case domain.RoleAdmin:
		a, err := u.adminRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, "", err
		}
		return &domain.AuthResult{Admin: a}, a.PasswordHash, nil
	}
	return nil, "", domain.ErrNotFound
}

func (u *authUsecase) accountID(result *domain.AuthResult) string {
	switch {
	case result.Student != nil:
		return result.Student.ID
	case result.Company != nil:
		return result.Company.ID
	case result.Admin != nil:
		return result.Admin.ID
	}
	return ""
}

func (u *authUsecase) recordFailure(ctx context.Context, email, ip string) {
	if u.tracker == nil {
		return
	}
	if _, _, err := u.tracker.RecordFailedAttempt(ctx, email, ip); err != nil {
		logger.Log.Warn("failed to record login attempt", slog.String("error", err.Error()))
	}
}

// Resolve loads the principal for the token subject. The role claim decides
// which collection to read, so one account id never matches across roles.
func (u *authUsecase) Resolve(ctx context.Context, accountID, role string) (*domain.Principal, error) {
	switch role {
	case domain.RoleStudent:
		s, err := u.studentRepo.GetByID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		return &domain.Principal{ID: s.ID, Role: role, Name: s.Name, Email: s.Email}, nil
	case domain.RoleCompany:
		c, err := u.companyRepo.GetByID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		return &domain.Principal{ID: c.ID, Role: role, Name: c.Name, Email: c.Email}, nil
	case domain.RoleAdmin:
		a, err := u.adminRepo.GetByID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		return &domain.Principal{ID: a.ID, Role: role, Name: a.Name, Email: a.Email, Permissions: a.Permissions}, nil
	}
	return nil, domain.ErrNotFound
}
