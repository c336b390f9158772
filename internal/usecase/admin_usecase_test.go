package usecase_test

import (
	"context"
	"testing"

	"go-internhub-backend/internal/domain"
	"go-internhub-backend/internal/usecase"
	"go-internhub-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}
func (m *MockCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) Fetch(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}
func (m *MockCategoryRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) Overview(ctx context.Context) (*domain.AnalyticsOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsOverview), args.Error(1)
}
func (m *MockAnalyticsRepo) TopCompaniesHiring(ctx context.Context, limit int) ([]domain.TopCompany, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.TopCompany), args.Error(1)
}
func (m *MockAnalyticsRepo) RevenueBreakdown(ctx context.Context, sincePeriodDays int) ([]domain.RevenueBreakdown, error) {
	args := m.Called(ctx, sincePeriodDays)
	return args.Get(0).([]domain.RevenueBreakdown), args.Error(1)
}
func (m *MockAnalyticsRepo) RevenueTrend(ctx context.Context, sincePeriodDays int) ([]domain.RevenueTrendPoint, error) {
	args := m.Called(ctx, sincePeriodDays)
	return args.Get(0).([]domain.RevenueTrendPoint), args.Error(1)
}

func fullAdmin() *domain.Principal {
	return &domain.Principal{
		ID:          "adm-1",
		Role:        domain.RoleAdmin,
		Name:        "Root Admin",
		Email:       "admin@example.com",
		Permissions: domain.DefaultAdminPermissions,
	}
}

func TestAdminPermissionGate(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepo)
	uc := usecase.NewAdminUsecase(nil, nil, nil, nil, mockCategoryRepo, nil, nil, nil)
	ctx := context.Background()

	t.Run("Admin without the permission is refused", func(t *testing.T) {
		limited := fullAdmin()
		limited.Permissions = []string{domain.PermViewAnalytics}

		err := uc.CreateCategory(ctx, limited, &domain.Category{Name: "Engineering"})
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("Wildcard permission passes the gate", func(t *testing.T) {
		root := fullAdmin()
		root.Permissions = []string{"all"}
		mockCategoryRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Category")).Return(nil).Once()

		err := uc.CreateCategory(ctx, root, &domain.Category{Name: "Engineering"})
		assert.NoError(t, err)
	})

	t.Run("Duplicate category name is a conflict", func(t *testing.T) {
		mockCategoryRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Category")).
			Return(domain.ErrDuplicateName).Once()

		err := uc.CreateCategory(ctx, fullAdmin(), &domain.Category{Name: "Engineering"})
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})
}

func TestAdminAnalytics(t *testing.T) {
	mockAnalyticsRepo := new(MockAnalyticsRepo)
	uc := usecase.NewAdminUsecase(nil, nil, nil, nil, nil, nil, nil, mockAnalyticsRepo)
	ctx := context.Background()

	t.Run("Invalid period is rejected", func(t *testing.T) {
		_, err := uc.Analytics(ctx, fullAdmin(), "2w")
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("Default period is 30 days", func(t *testing.T) {
		mockAnalyticsRepo.On("Overview", mock.Anything).Return(&domain.AnalyticsOverview{TotalStudents: 3}, nil).Once()
		mockAnalyticsRepo.On("TopCompaniesHiring", mock.Anything, 5).Return([]domain.TopCompany{}, nil).Once()
		mockAnalyticsRepo.On("RevenueBreakdown", mock.Anything, 30).Return([]domain.RevenueBreakdown{}, nil).Once()
		mockAnalyticsRepo.On("RevenueTrend", mock.Anything, 30).Return([]domain.RevenueTrendPoint{}, nil).Once()

		report, err := uc.Analytics(ctx, fullAdmin(), "")
		assert.NoError(t, err)
		assert.Equal(t, "30d", report.Period)
		assert.Equal(t, int64(3), report.Overview.TotalStudents)
		mockAnalyticsRepo.AssertExpectations(t)
	})

	t.Run("Yearly period maps to a 365 day window", func(t *testing.T) {
		mockAnalyticsRepo.On("Overview", mock.Anything).Return(&domain.AnalyticsOverview{}, nil).Once()
		mockAnalyticsRepo.On("TopCompaniesHiring", mock.Anything, 5).Return([]domain.TopCompany{}, nil).Once()
		mockAnalyticsRepo.On("RevenueBreakdown", mock.Anything, 365).Return([]domain.RevenueBreakdown{}, nil).Once()
		mockAnalyticsRepo.On("RevenueTrend", mock.Anything, 365).Return([]domain.RevenueTrendPoint{}, nil).Once()

		report, err := uc.Analytics(ctx, fullAdmin(), "1y")
		assert.NoError(t, err)
		assert.Equal(t, "1y", report.Period)
	})
}
