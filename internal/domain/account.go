package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Account roles. The role travels inside the bearer token so a principal is
// always resolved against exactly one collection.
const (
	RoleStudent = "student"
	RoleCompany = "company"
	RoleAdmin   = "admin"
)

type Student struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CV           string    `json:"cv"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Company struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Address       string    `json:"address"`
	Telephone     string    `json:"telephone"`
	LinkedinURL   *string   `json:"linkedin_url"`
	Biography     *string   `json:"biography"`
	LogoURL       *string   `json:"logo_url"`
	TermsAccepted bool      `json:"terms_accepted"`
	Verified      bool      `json:"verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Permissions  []string  `json:"permissions"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasPermission reports whether the admin carries the named permission.
func (a *Admin) HasPermission(perm string) bool {
	for _, p := range a.Permissions {
		if p == perm || p == "all" {
			return true
		}
	}
	return false
}

// Admin permission names
const (
	PermManageUsers         = "manage_users"
	PermManageCategories    = "manage_categories"
	PermManageJobs          = "manage_jobs"
	PermManageSubscriptions = "manage_subscriptions"
	PermManageNotifications = "manage_notifications"
	PermViewAnalytics       = "view_analytics"
)

// DefaultAdminPermissions is granted when registration supplies none.
var DefaultAdminPermissions = []string{
	PermManageUsers,
	PermManageCategories,
	PermManageJobs,
	PermManageSubscriptions,
	PermManageNotifications,
	PermViewAnalytics,
}

// Principal is the authenticated identity attached to a request after the
// authorization gate succeeds.
type Principal struct {
	ID          string
	Role        string
	Name        string
	Email       string
	Permissions []string
}

type StudentRepository interface {
	Create(ctx context.Context, student *Student) error
	GetByID(ctx context.Context, id string) (*Student, error)
	GetByEmail(ctx context.Context, email string) (*Student, error)
	Update(ctx context.Context, student *Student) error
	Fetch(ctx context.Context, limit, offset int) ([]Student, int64, error)
	Delete(ctx context.Context, id string) error
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	GetByEmail(ctx context.Context, email string) (*Company, error)
	Update(ctx context.Context, company *Company) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetVerified(ctx context.Context, id string) error
	SetLogoURL(ctx context.Context, id, logoURL string) error
	Fetch(ctx context.Context, limit, offset int) ([]Company, int64, error)
	Delete(ctx context.Context, id string) error
}

type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	GetByID(ctx context.Context, id string) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	Update(ctx context.Context, admin *Admin) error
}

// AuthResult pairs a freshly issued token with the authenticated account.
type AuthResult struct {
	Token   string   `json:"token"`
	Student *Student `json:"student,omitempty"`
	Company *Company `json:"company,omitempty"`
	Admin   *Admin   `json:"admin,omitempty"`
}

type AuthUsecase interface {
	RegisterStudent(ctx context.Context, student *Student, password string) (*AuthResult, error)
	RegisterCompany(ctx context.Context, company *Company, password string) (*AuthResult, error)
	RegisterAdmin(ctx context.Context, admin *Admin, password string) (*AuthResult, error)
	Login(ctx context.Context, role, email, password, ip string) (*AuthResult, error)
	// Resolve loads the principal for a verified token subject. The role
	// comes from the token claims, never from probing collections.
	Resolve(ctx context.Context, accountID, role string) (*Principal, error)
}
