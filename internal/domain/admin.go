package domain

import "context"

// UserSummary is a role-tagged row of the admin user listing.
type UserSummary struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// AdminUserUpdate carries a partial edit applied by an admin to a student
// or company account.
type AdminUserUpdate struct {
	Name  *string
	Email *string
}

type AdminUsecase interface {
	// User management
	ListUsers(ctx context.Context, role string, page, pageSize int) ([]UserSummary, int64, error)
	UpdateUser(ctx context.Context, admin *Principal, role, id string, update AdminUserUpdate) (*UserSummary, error)
	DeleteUser(ctx context.Context, admin *Principal, role, id string) error

	// Category management
	CreateCategory(ctx context.Context, admin *Principal, category *Category) error
	ListCategories(ctx context.Context) ([]Category, error)
	UpdateCategory(ctx context.Context, admin *Principal, id string, update CategoryUpdate) (*Category, error)
	DeleteCategory(ctx context.Context, admin *Principal, id string) error

	// Job post moderation
	ListJobPosts(ctx context.Context, status string, page, pageSize int) ([]VacancyWithCompany, int64, error)
	UpdateJobStatus(ctx context.Context, admin *Principal, companyID, vacancyID string, status VacancyStatus) (*Vacancy, error)

	// Subscription management
	ListSubscriptions(ctx context.Context, status, planType string, page, pageSize int) ([]SubscriptionWithCompany, int64, error)
	UpdateSubscription(ctx context.Context, admin *Principal, id string, update SubscriptionUpdate) (*Subscription, error)

	// Notification management
	CreateNotification(ctx context.Context, admin *Principal, notification *Notification) error
	ListNotifications(ctx context.Context, targetAudience string, page, pageSize int) ([]Notification, int64, error)
	UpdateNotification(ctx context.Context, admin *Principal, id string, update NotificationUpdate) (*Notification, error)
	DeleteNotification(ctx context.Context, admin *Principal, id string) error

	// Analytics
	Analytics(ctx context.Context, admin *Principal, period string) (*AnalyticsReport, error)

	// Own profile
	GetProfile(ctx context.Context, id string) (*Admin, error)
	UpdateProfile(ctx context.Context, id string, name *string) (*Admin, error)
}
