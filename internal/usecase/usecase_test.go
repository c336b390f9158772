package usecase_test

import (
	"context"
	"os"
	"testing"
	"time"

	"go-internhub-backend/internal/domain"
	"go-internhub-backend/internal/usecase"
	"go-internhub-backend/pkg/apperror"
	"go-internhub-backend/pkg/auth"
	"go-internhub-backend/pkg/hash"
	"go-internhub-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockStudentRepo struct {
	mock.Mock
}

func (m *MockStudentRepo) Create(ctx context.Context, student *domain.Student) error {
	return m.Called(ctx, student).Error(0)
}
func (m *MockStudentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}
func (m *MockStudentRepo) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}
func (m *MockStudentRepo) Update(ctx context.Context, student *domain.Student) error {
	return m.Called(ctx, student).Error(0)
}
func (m *MockStudentRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Student, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Student), args.Get(1).(int64), args.Error(2)
}
func (m *MockStudentRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockVacancyRepo struct {
	mock.Mock
}

func (m *MockVacancyRepo) Create(ctx context.Context, vacancy *domain.Vacancy) error {
	return m.Called(ctx, vacancy).Error(0)
}
func (m *MockVacancyRepo) GetByID(ctx context.Context, id string) (*domain.Vacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}
func (m *MockVacancyRepo) GetByIDForCompany(ctx context.Context, id, companyID string) (*domain.Vacancy, error) {
	args := m.Called(ctx, id, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}
func (m *MockVacancyRepo) FetchByCompany(ctx context.Context, companyID string) ([]domain.Vacancy, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}
func (m *MockVacancyRepo) FetchPublicActive(ctx context.Context, limit, offset int) ([]domain.VacancyWithCompany, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.VacancyWithCompany), args.Get(1).(int64), args.Error(2)
}
func (m *MockVacancyRepo) FetchAllWithCompany(ctx context.Context, status string, limit, offset int) ([]domain.VacancyWithCompany, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	return args.Get(0).([]domain.VacancyWithCompany), args.Get(1).(int64), args.Error(2)
}
func (m *MockVacancyRepo) Update(ctx context.Context, vacancy *domain.Vacancy) error {
	return m.Called(ctx, vacancy).Error(0)
}
func (m *MockVacancyRepo) UpdateStatus(ctx context.Context, id string, status domain.VacancyStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockVacancyRepo) Delete(ctx context.Context, id, companyID string) error {
	return m.Called(ctx, id, companyID).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByPostingAndStudent(ctx context.Context, postingType domain.PostingType, postingID, studentID string) (*domain.Application, error) {
	args := m.Called(ctx, postingType, postingID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) FetchByStudent(ctx context.Context, studentID string) ([]domain.ApplicationWithPosting, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).([]domain.ApplicationWithPosting), args.Error(1)
}
func (m *MockApplicationRepo) FetchByPosting(ctx context.Context, postingType domain.PostingType, postingID string) ([]domain.ApplicationWithStudent, error) {
	args := m.Called(ctx, postingType, postingID)
	return args.Get(0).([]domain.ApplicationWithStudent), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func activeVacancy(id, companyID string) *domain.Vacancy {
	now := time.Now()
	return &domain.Vacancy{
		ID:        id,
		CompanyID: companyID,
		Title:     "Software Engineer",
		Type:      domain.EmploymentFullTime,
		Status:    domain.VacancyStatusActive,
		PostedAt:  now,
		UpdatedAt: now,
	}
}

func TestAuthRegisterLoginRoundTrip(t *testing.T) {
	mockRepo := new(MockStudentRepo)
	issuer := auth.NewIssuer("test-secret", time.Hour)
	uc := usecase.NewAuthUsecase(mockRepo, nil, nil, issuer, nil)
	ctx := context.Background()

	var storedHash string
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Student")).
		Run(func(args mock.Arguments) {
			storedHash = args.Get(1).(*domain.Student).PasswordHash
		}).Return(nil)

	result, err := uc.RegisterStudent(ctx, &domain.Student{
		Name:  "Kasun Silva",
		Email: "Kasun@Example.com",
	}, "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.Student.ID)
	assert.Equal(t, "kasun@example.com", result.Student.Email)
	assert.True(t, hash.Verify("secret123", storedHash))

	// Token subject round-trips to the created account.
	claims, err := issuer.Verify(result.Token)
	assert.NoError(t, err)
	assert.Equal(t, result.Student.ID, claims.Subject)
	assert.Equal(t, domain.RoleStudent, claims.Role)

	t.Run("Login succeeds with the registered credential", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "kasun@example.com").
			Return(&domain.Student{ID: result.Student.ID, Email: "kasun@example.com", PasswordHash: storedHash}, nil)

		loginResult, err := uc.Login(ctx, domain.RoleStudent, "kasun@example.com", "secret123", "10.0.0.1")
		assert.NoError(t, err)
		assert.NotEmpty(t, loginResult.Token)
	})

	t.Run("Login fails with a wrong password", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "kasun@example.com").
			Return(&domain.Student{ID: result.Student.ID, Email: "kasun@example.com", PasswordHash: storedHash}, nil)

		_, err := uc.Login(ctx, domain.RoleStudent, "kasun@example.com", "wrong", "10.0.0.1")
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 401, appErr.Code)
	})

	t.Run("Login fails for an unknown email", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "nobody@example.com").
			Return(nil, domain.ErrNotFound)

		_, err := uc.Login(ctx, domain.RoleStudent, "nobody@example.com", "secret123", "10.0.0.1")
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 401, appErr.Code)
	})
}

func TestDuplicateApplication(t *testing.T) {
	mockAppRepo := new(MockApplicationRepo)
	mockVacancyRepo := new(MockVacancyRepo)
	uc := usecase.NewApplicationUsecase(mockAppRepo, mockVacancyRepo, nil)
	ctx := context.Background()

	mockVacancyRepo.On("GetByID", mock.Anything, "vac-1").Return(activeVacancy("vac-1", "com-1"), nil)

	t.Run("First application goes through as pending", func(t *testing.T) {
		mockAppRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil).Once()

		app, err := uc.ApplyToVacancy(ctx, "stu-1", "vac-1", "cover letter")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, domain.PostingVacancy, app.PostingType)
	})

	t.Run("Second application is rejected as a conflict", func(t *testing.T) {
		mockAppRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).
			Return(domain.ErrDuplicateApplication).Once()

		_, err := uc.ApplyToVacancy(ctx, "stu-1", "vac-1", "cover letter")
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Closed vacancy does not accept applications", func(t *testing.T) {
		closed := activeVacancy("vac-2", "com-1")
		closed.Status = domain.VacancyStatusClosed
		mockVacancyRepo.On("GetByID", mock.Anything, "vac-2").Return(closed, nil)

		_, err := uc.ApplyToVacancy(ctx, "stu-1", "vac-2", "")
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})
}

func TestApplicationStatusTransitions(t *testing.T) {
	mockAppRepo := new(MockApplicationRepo)
	mockVacancyRepo := new(MockVacancyRepo)
	uc := usecase.NewApplicationUsecase(mockAppRepo, mockVacancyRepo, nil)
	ctx := context.Background()

	mockVacancyRepo.On("GetByIDForCompany", mock.Anything, "vac-1", "com-1").
		Return(activeVacancy("vac-1", "com-1"), nil)

	t.Run("Pending moves to reviewed", func(t *testing.T) {
		mockAppRepo.On("GetByPostingAndStudent", mock.Anything, domain.PostingVacancy, "vac-1", "stu-1").
			Return(&domain.Application{ID: "app-1", Status: domain.ApplicationStatusPending}, nil).Once()
		mockAppRepo.On("UpdateStatus", mock.Anything, "app-1", domain.ApplicationStatusReviewed).Return(nil).Once()

		app, err := uc.Review(ctx, "com-1", "vac-1", "stu-1", domain.ApplicationStatusReviewed)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusReviewed, app.Status)
	})

	t.Run("Accepted is terminal", func(t *testing.T) {
		mockAppRepo.On("GetByPostingAndStudent", mock.Anything, domain.PostingVacancy, "vac-1", "stu-1").
			Return(&domain.Application{ID: "app-1", Status: domain.ApplicationStatusAccepted}, nil).Once()

		_, err := uc.Review(ctx, "com-1", "vac-1", "stu-1", domain.ApplicationStatusRejected)
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Reviewed cannot fall back to pending", func(t *testing.T) {
		mockAppRepo.On("GetByPostingAndStudent", mock.Anything, domain.PostingVacancy, "vac-1", "stu-1").
			Return(&domain.Application{ID: "app-1", Status: domain.ApplicationStatusReviewed}, nil).Once()

		_, err := uc.Review(ctx, "com-1", "vac-1", "stu-1", domain.ApplicationStatusPending)
		assert.Error(t, err)
	})
}

func TestVacancyOwnershipAndTransitions(t *testing.T) {
	mockVacancyRepo := new(MockVacancyRepo)
	uc := usecase.NewVacancyUsecase(mockVacancyRepo)
	ctx := context.Background()

	t.Run("Foreign company edit reads as not found", func(t *testing.T) {
		mockVacancyRepo.On("GetByIDForCompany", mock.Anything, "vac-1", "com-2").
			Return(nil, domain.ErrNotFound).Once()

		title := "Hijacked"
		_, err := uc.EditVacancy(ctx, "com-2", "vac-1", domain.VacancyUpdate{Title: &title})
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Active moves to closed", func(t *testing.T) {
		mockVacancyRepo.On("GetByIDForCompany", mock.Anything, "vac-1", "com-1").
			Return(activeVacancy("vac-1", "com-1"), nil).Once()
		mockVacancyRepo.On("UpdateStatus", mock.Anything, "vac-1", domain.VacancyStatusClosed).Return(nil).Once()

		v, err := uc.ChangeStatus(ctx, "com-1", "vac-1", domain.VacancyStatusClosed)
		assert.NoError(t, err)
		assert.Equal(t, domain.VacancyStatusClosed, v.Status)
	})

	t.Run("Closed vacancy cannot reopen", func(t *testing.T) {
		closed := activeVacancy("vac-1", "com-1")
		closed.Status = domain.VacancyStatusClosed
		mockVacancyRepo.On("GetByIDForCompany", mock.Anything, "vac-1", "com-1").
			Return(closed, nil).Once()

		_, err := uc.ChangeStatus(ctx, "com-1", "vac-1", domain.VacancyStatusActive)
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Posting a vacancy defaults to active", func(t *testing.T) {
		mockVacancyRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Vacancy")).Return(nil).Once()

		v := &domain.Vacancy{Title: "Intern", Type: domain.EmploymentInternship}
		err := uc.PostVacancy(ctx, "com-1", v)
		assert.NoError(t, err)
		assert.Equal(t, domain.VacancyStatusActive, v.Status)
		assert.Equal(t, "com-1", v.CompanyID)
		assert.NotEmpty(t, v.ID)
	})
}

func TestStudentProfileUpdate(t *testing.T) {
	mockRepo := new(MockStudentRepo)
	uc := usecase.NewStudentUsecase(mockRepo)
	ctx := context.Background()

	existing := &domain.Student{ID: "stu-1", Name: "Old Name", Email: "stu@example.com"}
	mockRepo.On("GetByID", mock.Anything, "stu-1").Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Student")).Return(nil)

	name := "New Name"
	cv := "https://cv.example.com/new.pdf"
	student, err := uc.UpdateProfile(ctx, "stu-1", domain.StudentUpdate{Name: &name, CV: &cv})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", student.Name)
	assert.Equal(t, cv, student.CV)
	assert.Equal(t, "stu@example.com", student.Email)
}
