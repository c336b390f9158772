package domain

import "context"

// CompanyUpdate carries a partial profile edit; nil fields are unchanged.
type CompanyUpdate struct {
	Name        *string
	Address     *string
	Telephone   *string
	LinkedinURL *string
	Biography   *string
}

type CompanyUsecase interface {
	GetProfile(ctx context.Context, id string) (*Company, error)
	UpdateProfile(ctx context.Context, id string, update CompanyUpdate) (*Company, error)
	// ResetPassword rehashes and stores a new credential for the
	// authenticated company. This is the only mutation that touches the
	// password column.
	ResetPassword(ctx context.Context, id, newPassword string) error
	// VerifyAccount redeems a verification token and marks the company
	// verified.
	VerifyAccount(ctx context.Context, token string) (*Company, error)
	// UploadLogo stores a resized logo image and records its URL.
	UploadLogo(ctx context.Context, id string, data []byte, filename string) (string, error)
}
