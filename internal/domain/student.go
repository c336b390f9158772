package domain

import "context"

// StudentUpdate carries a partial profile edit; nil fields are unchanged.
// Password changes never travel through here so profile updates can never
// rehash or clobber a credential.
type StudentUpdate struct {
	Name *string
	CV   *string
}

type StudentUsecase interface {
	GetProfile(ctx context.Context, id string) (*Student, error)
	UpdateProfile(ctx context.Context, id string, update StudentUpdate) (*Student, error)
}
