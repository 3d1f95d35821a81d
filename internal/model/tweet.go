package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Tweet is a short text post on a user's channel.
type Tweet struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OwnerID   uuid.UUID `db:"owner_id" json:"owner_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Joined fields
	Owner      *UserSummary `json:"owner,omitempty"`
	LikesCount int64        `db:"likes_count" json:"likes_count"`
	IsLiked    bool         `db:"is_liked" json:"is_liked"`
}

// CreateTweetRequest is the request body for creating a tweet.
type CreateTweetRequest struct {
	Content string `json:"content"`
}

// UpdateTweetRequest is the request body for updating a tweet.
type UpdateTweetRequest struct {
	Content string `json:"content"`
}

// TweetListResponse is the paginated tweet list for a user.
type TweetListResponse struct {
	Tweets     []Tweet `json:"tweets"`
	TotalCount int64   `json:"total_count"`
	TotalPages int     `json:"total_pages"`
	Page       int     `json:"page"`
}

// Tweet constraints
const (
	MaxTweetLength = 280
)

// Tweet errors
var (
	ErrTweetNotFound = errors.New("tweet not found")
	ErrNotTweetOwner = errors.New("not the owner of this tweet")
)
