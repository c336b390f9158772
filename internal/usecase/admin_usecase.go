package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go-internhub-backend/internal/domain"
	"go-internhub-backend/pkg/apperror"
	"go-internhub-backend/pkg/logger"

	"github.com/google/uuid"
)

// periodDays maps the analytics period parameter to a day window.
var periodDays = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
	"1y":  365,
}

type adminUsecase struct {
	studentRepo      domain.StudentRepository
	companyRepo      domain.CompanyRepository
	adminRepo        domain.AdminRepository
	vacancyRepo      domain.VacancyRepository
	categoryRepo     domain.CategoryRepository
	subscriptionRepo domain.SubscriptionRepository
	notificationRepo domain.NotificationRepository
	analyticsRepo    domain.AnalyticsRepository
}

func NewAdminUsecase(
	studentRepo domain.StudentRepository,
	companyRepo domain.CompanyRepository,
	adminRepo domain.AdminRepository,
	vacancyRepo domain.VacancyRepository,
	categoryRepo domain.CategoryRepository,
	subscriptionRepo domain.SubscriptionRepository,
	notificationRepo domain.NotificationRepository,
	analyticsRepo domain.AnalyticsRepository,
) domain.AdminUsecase {
	return &adminUsecase{
		studentRepo:      studentRepo,
		companyRepo:      companyRepo,
		adminRepo:        adminRepo,
		vacancyRepo:      vacancyRepo,
		categoryRepo:     categoryRepo,
		subscriptionRepo: subscriptionRepo,
		notificationRepo: notificationRepo,
		analyticsRepo:    analyticsRepo,
	}
}

func hasPermission(admin *domain.Principal, perm string) bool {
	for _, p := range admin.Permissions {
		if p == perm || p == "all" {
			return true
		}
	}
	return false
}

func requirePermission(admin *domain.Principal, perm string) error {
	if admin == nil || !hasPermission(admin, perm) {
		return apperror.Forbidden("You do not have permission to perform this action")
	}
	return nil
}

// --- User management ---

func (u *adminUsecase) ListUsers(ctx context.Context, role string, page, pageSize int) ([]domain.UserSummary, int64, error) {
	limit, offset := pagination(page, pageSize)

	switch role {
	case domain.RoleStudent:
		students, total, err := u.studentRepo.Fetch(ctx, limit, offset)
		if err != nil {
			return nil, 0, apperror.Internal(err)
		}
		summaries := make([]domain.UserSummary, 0, len(students))
		for _, s := range students {
			summaries = append(summaries, domain.UserSummary{
				ID: s.ID, Role: domain.RoleStudent, Name: s.Name, Email: s.Email,
				CreatedAt: s.CreatedAt.Format(time.RFC3339),
			})
		}
		return summaries, total, nil
	case domain.RoleCompany:
		companies, total, err := u.companyRepo.Fetch(ctx, limit, offset)
		if err != nil {
			return nil, 0, apperror.Internal(err)
		}
		summaries := make([]domain.UserSummary, 0, len(companies))
		for _, c := range companies {
			summaries = append(summaries, domain.UserSummary{
				ID: c.ID, Role: domain.RoleCompany, Name: c.Name, Email: c.Email,
				CreatedAt: c.CreatedAt.Format(time.RFC3339),
			})
		}
		return summaries, total, nil
	}
	return nil, 0, apperror.BadRequest("Role must be one of: student, company")
}

func (u *adminUsecase) UpdateUser(ctx context.Context, admin *domain.Principal, role, id string, update domain.AdminUserUpdate) (*domain.UserSummary, error) {
	if err := requirePermission(admin, domain.PermManageUsers); err != nil {
		return nil, err
	}

	switch role {
	case domain.RoleStudent:
		student, err := u.studentRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("Student not found")
			}
			return nil, apperror.Internal(err)
		}
		if update.Name != nil {
			student.Name = *update.Name
		}
		student.UpdatedAt = time.Now()
		if err := u.studentRepo.Update(ctx, student); err != nil {
			return nil, apperror.Internal(err)
		}
		return &domain.UserSummary{
			ID: student.ID, Role: role, Name: student.Name, Email: student.Email,
			CreatedAt: student.CreatedAt.Format(time.RFC3339),
		}, nil
	case domain.RoleCompany:
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
		company.UpdatedAt = time.Now()
		if err := u.companyRepo.Update(ctx, company); err != nil {
			return nil, apperror.Internal(err)
		}
		return &domain.UserSummary{
			ID: company.ID, Role: role, Name: company.Name, Email: company.Email,
			CreatedAt: company.CreatedAt.Format(time.RFC3339),
		}, nil
	}
	return nil, apperror.BadRequest("Role must be one of: student, company")
}

func (u *adminUsecase) DeleteUser(ctx context.Context, admin *domain.Principal, role, id string) error {
	if err := requirePermission(admin, domain.PermManageUsers); err != nil {
		return err
	}

	var err error
	switch role {
	case domain.RoleStudent:
		err = u.studentRepo.Delete(ctx, id)
	case domain.RoleCompany:
		err = u.companyRepo.Delete(ctx, id)
	default:
		return apperror.BadRequest("Role must be one of: student, company")
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	logger.Log.Info("user deleted by admin",
		slog.String("admin_id", admin.ID), slog.String("role", role), slog.String("user_id", id))
	return nil
}

// --- Category management ---

func (u *adminUsecase) CreateCategory(ctx context.Context, admin *domain.Principal, category *domain.Category) error {
	if err := requirePermission(admin, domain.PermManageCategories); err != nil {
		return err
	}

	now := time.Now()
	category.ID = uuid.NewString()
	if category.Color == "" {
		category.Color = "#3B82F6"
	}
	category.IsActive = true
	category.JobCount = 0
	category.CreatedBy = admin.ID
	category.CreatedAt = now
	category.UpdatedAt = now

	if err := u.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return apperror.Conflict("A category with this name already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *adminUsecase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := u.categoryRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return categories, nil
}

func (u *adminUsecase) UpdateCategory(ctx context.Context, admin *domain.Principal, id string, update domain.CategoryUpdate) (*domain.Category, error) {
	if err := requirePermission(admin, domain.PermManageCategories); err != nil {
		return nil, err
	}

	category, err := u.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Category not found")
		}
		return nil, apperror.Internal(err)
	}

	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.Description != nil {
		category.Description = update.Description
	}
	if update.Icon != nil {
		category.Icon = update.Icon
	}
	if update.Color != nil {
		category.Color = *update.Color
	}
	if update.IsActive != nil {
		category.IsActive = *update.IsActive
	}
	category.UpdatedAt = time.Now()

	if err := u.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return nil, apperror.Conflict("A category with this name already exists")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Category not found")
		}
		return nil, apperror.Internal(err)
	}
	return category, nil
}

func (u *adminUsecase) DeleteCategory(ctx context.Context, admin *domain.Principal, id string) error {
	if err := requirePermission(admin, domain.PermManageCategories); err != nil {
		return err
	}

	if err := u.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Category not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// --- Job post moderation ---

func (u *adminUsecase) ListJobPosts(ctx context.Context, status string, page, pageSize int) ([]domain.VacancyWithCompany, int64, error) {
	if status != "" && !domain.VacancyStatus(status).Valid() {
		return nil, 0, apperror.BadRequest("Status must be one of: active, inactive, closed")
	}

	limit, offset := pagination(page, pageSize)
	vacancies, total, err := u.vacancyRepo.FetchAllWithCompany(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return vacancies, total, nil
}

// UpdateJobStatus applies the same transition table as the company-facing
// status change, without the ownership scope. The companyID parameter is
// checked against the vacancy to catch a stale moderation view.
func (u *adminUsecase) UpdateJobStatus(ctx context.Context, admin *domain.Principal, companyID, vacancyID string, status domain.VacancyStatus) (*domain.Vacancy, error) {
	if err := requirePermission(admin, domain.PermManageJobs); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, apperror.BadRequest("Status must be one of: active, inactive, closed")
	}

	vacancy, err := u.vacancyRepo.GetByID(ctx, vacancyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, apperror.Internal(err)
	}
	if companyID != "" && vacancy.CompanyID != companyID {
		return nil, apperror.NotFound("Vacancy not found")
	}

	if !vacancy.Status.CanTransitionTo(status) {
		return nil, apperror.Conflict("Cannot change status from " + string(vacancy.Status) + " to " + string(status))
	}

	if err := u.vacancyRepo.UpdateStatus(ctx, vacancy.ID, status); err != nil {
		return nil, apperror.Internal(err)
	}
	vacancy.Status = status
	vacancy.UpdatedAt = time.Now()

	logger.Log.Info("vacancy moderated",
		slog.String("admin_id", admin.ID), slog.String("vacancy_id", vacancy.ID), slog.String("status", string(status)))
	return vacancy, nil
}

// --- Subscription management ---

func (u *adminUsecase) ListSubscriptions(ctx context.Context, status, planType string, page, pageSize int) ([]domain.SubscriptionWithCompany, int64, error) {
	if status != "" && !domain.SubscriptionStatus(status).Valid() {
		return nil, 0, apperror.BadRequest("Status must be one of: active, expired, cancelled, pending")
	}

	limit, offset := pagination(page, pageSize)
	subs, total, err := u.subscriptionRepo.Fetch(ctx, status, planType, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return subs, total, nil
}

func (u *adminUsecase) UpdateSubscription(ctx context.Context, admin *domain.Principal, id string, update domain.SubscriptionUpdate) (*domain.Subscription, error) {
	if err := requirePermission(admin, domain.PermManageSubscriptions); err != nil {
		return nil, err
	}

	sub, err := u.subscriptionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Subscription not found")
		}
		return nil, apperror.Internal(err)
	}

	if update.PlanType != nil {
		sub.PlanType = *update.PlanType
	}
	if update.PlanName != nil {
		sub.PlanName = *update.PlanName
	}
	if update.Price != nil {
		sub.Price = *update.Price
	}
	if update.BillingCycle != nil {
		sub.BillingCycle = *update.BillingCycle
	}
	if update.EndDate != nil {
		sub.EndDate = *update.EndDate
	}
	if update.Status != nil {
		if !update.Status.Valid() {
			return nil, apperror.BadRequest("Status must be one of: active, expired, cancelled, pending")
		}
		sub.Status = *update.Status
	}
	if update.PaymentMethod != nil {
		sub.PaymentMethod = *update.PaymentMethod
	}
	sub.UpdatedAt = time.Now()

	if err := u.subscriptionRepo.Update(ctx, sub); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Subscription not found")
		}
		return nil, apperror.Internal(err)
	}
	return sub, nil
}

// --- Notification management ---

func (u *adminUsecase) CreateNotification(ctx context.Context, admin *domain.Principal, notification *domain.Notification) error {
	if err := requirePermission(admin, domain.PermManageNotifications); err != nil {
		return err
	}

	now := time.Now()
	notification.ID = uuid.NewString()
	if notification.Type == "" {
		notification.Type = "info"
	}
	if notification.Priority == "" {
		notification.Priority = "medium"
	}
	if notification.TargetAudience == "" {
		notification.TargetAudience = "all"
	}
	if notification.ScheduledAt.IsZero() {
		notification.ScheduledAt = now
	}
	notification.IsActive = true
	notification.CreatedBy = admin.ID
	notification.CreatedAt = now
	notification.UpdatedAt = now

	if err := u.notificationRepo.Create(ctx, notification); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *adminUsecase) ListNotifications(ctx context.Context, targetAudience string, page, pageSize int) ([]domain.Notification, int64, error) {
	limit, offset := pagination(page, pageSize)
	notifications, total, err := u.notificationRepo.Fetch(ctx, targetAudience, false, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return notifications, total, nil
}

func (u *adminUsecase) UpdateNotification(ctx context.Context, admin *domain.Principal, id string, update domain.NotificationUpdate) (*domain.Notification, error) {
	if err := requirePermission(admin, domain.PermManageNotifications); err != nil {
		return nil, err
	}

	notification, err := u.notificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Notification not found")
		}
		return nil, apperror.Internal(err)
	}

	if update.Title != nil {
		notification.Title = *update.Title
	}
	if update.Message != nil {
		notification.Message = *update.Message
	}
	if update.Type != nil {
		notification.Type = *update.Type
	}
	if update.Priority != nil {
		notification.Priority = *update.Priority
	}
	if update.TargetAudience != nil {
		notification.TargetAudience = *update.TargetAudience
	}
	if update.IsActive != nil {
		notification.IsActive = *update.IsActive
	}
	if update.ExpiresAt != nil {
		notification.ExpiresAt = update.ExpiresAt
	}
	if update.ActionURL != nil {
		notification.ActionURL = update.ActionURL
	}
	if update.ActionText != nil {
		notification.ActionText = update.ActionText
	}
	notification.UpdatedAt = time.Now()

	if err := u.notificationRepo.Update(ctx, notification); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Notification not found")
		}
		return nil, apperror.Internal(err)
	}
	return notification, nil
}

func (u *adminUsecase) DeleteNotification(ctx context.Context, admin *domain.Principal, id string) error {
	if err := requirePermission(admin, domain.PermManageNotifications); err != nil {
		return err
	}

	if err := u.notificationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Notification not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// --- Analytics ---

func (u *adminUsecase) Analytics(ctx context.Context, admin *domain.Principal, period string) (*domain.AnalyticsReport, error) {
	if err := requirePermission(admin, domain.PermViewAnalytics); err != nil {
		return nil, err
	}

	if period == "" {
		period = "30d"
	}
	days, ok := periodDays[period]
	if !ok {
		return nil, apperror.BadRequest("Period must be one of: 7d, 30d, 90d, 1y")
	}

	overview, err := u.analyticsRepo.Overview(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	topCompanies, err := u.analyticsRepo.TopCompaniesHiring(ctx, 5)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	breakdown, err := u.analyticsRepo.RevenueBreakdown(ctx, days)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	trend, err := u.analyticsRepo.RevenueTrend(ctx, days)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AnalyticsReport{
		Overview:           *overview,
		TopCompaniesHiring: topCompanies,
		RevenueBreakdown:   breakdown,
		RevenueTrend:       trend,
		Period:             period,
	}, nil
}

// --- Own profile ---

func (u *adminUsecase) GetProfile(ctx context.Context, id string) (*domain.Admin, error) {
	admin, err := u.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Admin not found")
		}
		return nil, apperror.Internal(err)
	}
	return admin, nil
}

func (u *adminUsecase) UpdateProfile(ctx context.Context, id string, name *string) (*domain.Admin, error) {
	admin, err := u.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Admin not found")
		}
		return nil, apperror.Internal(err)
	}

	if name != nil {
		admin.Name = *name
	}
	admin.UpdatedAt = time.Now()

	if err := u.adminRepo.Update(ctx, admin); err != nil {
		return nil, apperror.Internal(err)
	}
	return admin, nil
}
