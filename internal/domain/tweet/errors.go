package tweet

import "errors"

var (
	ErrTweetNotFound = errors.New("tweet not found")
	ErrEmptyContent  = errors.New("content is empty")
)
