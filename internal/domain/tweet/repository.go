package tweet

import "context"

type Repository interface {
	Create(ctx context.Context, tweet *Tweet) error
	GetByID(ctx context.Context, id int) (*Tweet, error)
	List(ctx context.Context) ([]Tweet, error)
	ListByAuthor(ctx context.Context, authorID int) ([]Tweet, error)
}
