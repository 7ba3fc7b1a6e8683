package tweet

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create rejects empty content before touching the store. Whitespace-only
// content is accepted, matching the API's historical behavior.
func (s *Service) Create(ctx context.Context, authorID int, content string) (*Tweet, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	t := Tweet{
		Content:  content,
		AuthorID: authorID,
	}

	if err := s.repo.Create(ctx, &t); err != nil {
		return nil, err
	}

	return &t, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*Tweet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Tweet, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByAuthor(ctx context.Context, authorID int) ([]Tweet, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}
