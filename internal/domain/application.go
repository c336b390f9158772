package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateApplication is returned when a student applies twice to the
// same posting. The repository detects it from the conditional insert, so
// concurrent double-submission cannot slip through.
var ErrDuplicateApplication = errors.New("application already exists for this posting")

// PostingType tags which kind of posting an application targets. One
// application entity covers both vacancies and internships.
type PostingType string

const (
	PostingVacancy    PostingType = "vacancy"
	PostingInternship PostingType = "internship"
)

func (t PostingType) Valid() bool {
	return t == PostingVacancy || t == PostingInternship
}

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// applicationTransitions is forward-only: pending may be reviewed or decided
// directly, reviewed may only be decided, decisions are terminal.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending:  {ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected},
	ApplicationStatusReviewed: {ApplicationStatusAccepted, ApplicationStatusRejected},
	ApplicationStatusAccepted: {},
	ApplicationStatusRejected: {},
}

// CanTransitionTo reports whether the status may move to next.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Application struct {
	ID          string            `json:"id"`
	PostingType PostingType       `json:"posting_type"`
	PostingID   string            `json:"posting_id"`
	StudentID   string            `json:"student_id"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter *string           `json:"cover_letter"`
	AppliedAt   time.Time         `json:"applied_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ApplicationWithStudent is the reviewer's view of an application.
type ApplicationWithStudent struct {
	Application
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
	StudentCV    string `json:"student_cv"`
}

// ApplicationWithPosting is the applicant's view of their own submissions.
type ApplicationWithPosting struct {
	Application
	PostingTitle string `json:"posting_title"`
	CompanyName  string `json:"company_name"`
}

type ApplicationRepository interface {
	// Create inserts the application unless one already exists for the
	// (posting, student) pair; in that case it returns
	// ErrDuplicateApplication without modifying anything.
	Create(ctx context.Context, app *Application) error
	GetByPostingAndStudent(ctx context.Context, postingType PostingType, postingID, studentID string) (*Application, error)
	FetchByStudent(ctx context.Context, studentID string) ([]ApplicationWithPosting, error)
	FetchByPosting(ctx context.Context, postingType PostingType, postingID string) ([]ApplicationWithStudent, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus) error
}

type ApplicationUsecase interface {
	ApplyToVacancy(ctx context.Context, studentID, vacancyID, coverLetter string) (*Application, error)
	ApplyToInternship(ctx context.Context, studentID, internshipID, coverLetter string) (*Application, error)
	MyApplications(ctx context.Context, studentID string) ([]ApplicationWithPosting, error)
	ListForVacancy(ctx context.Context, companyID, vacancyID string) ([]ApplicationWithStudent, error)
	Review(ctx context.Context, companyID, vacancyID, studentID string, status ApplicationStatus) (*Application, error)
}
