package profile

import "context"

type Repository interface {
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id int) (*Profile, error)
	GetByUserID(ctx context.Context, userID int) (*Profile, error)
}
