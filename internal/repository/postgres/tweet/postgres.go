package tweet

import (
	"context"
	"errors"

	"gorm.io/gorm"
	tweetdomain "tweet-app-go/internal/domain/tweet"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, tweet *tweetdomain.Tweet) error {
	return r.db.WithContext(ctx).Create(tweet).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*tweetdomain.Tweet, error) {
	var tweet tweetdomain.Tweet
	if err := r.db.WithContext(ctx).First(&tweet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tweetdomain.ErrTweetNotFound
		}
		return nil, err
	}
	return &tweet, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]tweetdomain.Tweet, error) {
	var tweets []tweetdomain.Tweet
	if err := r.db.WithContext(ctx).Order("id asc").Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

func (r *PostgresRepository) ListByAuthor(ctx context.Context, authorID int) ([]tweetdomain.Tweet, error) {
	var tweets []tweetdomain.Tweet
	if err := r.db.WithContext(ctx).Where("author_id = ?", authorID).Order("id asc").Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}
