package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"
	profiledomain "tweet-app-go/internal/domain/profile"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, profile *profiledomain.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *PostgresRepository) Update(ctx context.Context, profile *profiledomain.Profile) error {
	return r.db.WithContext(ctx).
		Model(&profiledomain.Profile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"bio":      profile.Bio,
			"location": profile.Location,
			"website":  profile.Website,
			"avatar":   profile.Avatar,
		}).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*profiledomain.Profile, error) {
	var profile profiledomain.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profiledomain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID int) (*profiledomain.Profile, error) {
	var profile profiledomain.Profile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profiledomain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
