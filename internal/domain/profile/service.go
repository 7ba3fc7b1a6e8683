package profile

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create links the new profile to the given user.
func (s *Service) Create(ctx context.Context, userID int, input CreateInput) (*Profile, error) {
	p := Profile{
		Bio:      input.Bio,
		Location: input.Location,
		Website:  input.Website,
		Avatar:   input.Avatar,
		UserID:   userID,
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// Update locates the profile by the id carried in the input and applies the
// provided fields. Absent fields are left untouched.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*Profile, error) {
	p, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Bio != nil {
		p.Bio = input.Bio
	}
	if input.Location != nil {
		p.Location = input.Location
	}
	if input.Website != nil {
		p.Website = input.Website
	}
	if input.Avatar != nil {
		p.Avatar = input.Avatar
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByUserID(ctx context.Context, userID int) (*Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}
