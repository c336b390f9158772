package usecase

import (
	"context"
	"errors"
	"time"

	"go-internhub-backend/internal/domain"
	"go-internhub-backend/pkg/apperror"
)

type studentUsecase struct {
	studentRepo domain.StudentRepository
}

func NewStudentUsecase(studentRepo domain.StudentRepository) domain.StudentUsecase {
	return &studentUsecase{studentRepo: studentRepo}
}

func (u *studentUsecase) GetProfile(ctx context.Context, id string) (*domain.Student, error) {
	student, err := u.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Student not found")
		}
		return nil, apperror.Internal(err)
	}
	return student, nil
}

func (u *studentUsecase) UpdateProfile(ctx context.Context, id string, update domain.StudentUpdate) (*domain.Student, error) {
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
	if update.CV != nil {
		student.CV = *update.CV
	}
	student.UpdatedAt = time.Now()

	if err := u.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Student not found")
		}
		return nil, apperror.Internal(err)
	}
	return student, nil
}
