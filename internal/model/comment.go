package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Comment represents a comment on a video.
type Comment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	VideoID   uuid.UUID `db:"video_id" json:"video_id"`
	OwnerID   uuid.UUID `db:"owner_id" json:"-"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Joined fields
	Owner      *UserSummary `json:"owner,omitempty"`
	LikesCount int64        `db:"likes_count" json:"likes_count"`
	IsLiked    bool         `db:"is_liked" json:"is_liked"`
}

// CreateCommentRequest is the request body for creating a comment.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// UpdateCommentRequest is the request body for updating a comment.
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// CommentListResponse is the paginated comment list for a video.
type CommentListResponse struct {
	Comments   []Comment `json:"comments"`
	TotalCount int64     `json:"total_count"`
	TotalPages int       `json:"total_pages"`
	Page       int       `json:"page"`
}

// Comment constraints
const (
	MaxCommentLength = 2200
)

// Comment errors
var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("not the owner of this comment")
	ErrContentRequired = errors.New("content is required")
	ErrContentTooLong  = errors.New("content too long")
)
