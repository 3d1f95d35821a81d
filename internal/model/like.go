package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// LikeKind tags the target of a like. Exactly one kind per like row; the
// (kind, target, user) triple is unique and acts as the toggle key.
type LikeKind string

const (
	LikeKindVideo   LikeKind = "video"
	LikeKindComment LikeKind = "comment"
	LikeKindTweet   LikeKind = "tweet"
)

// Valid reports whether k is one of the known target kinds.
func (k LikeKind) Valid() bool {
	switch k {
	case LikeKindVideo, LikeKindComment, LikeKindTweet:
		return true
	}
	return false
}

// Like is a user's like of a video, comment or tweet.
type Like struct {
	ID         uuid.UUID `db:"id" json:"id"`
	TargetKind LikeKind  `db:"target_kind" json:"target_kind"`
	TargetID   uuid.UUID `db:"target_id" json:"target_id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// ToggleResult is the response body of a toggle operation.
type ToggleResult struct {
	Active bool `json:"active"`
}

// LikedVideo is a liked video joined with its owner, ordered by like time.
type LikedVideo struct {
	Video
	LikedAt time.Time `db:"liked_at" json:"liked_at"`
}

// LikedVideosResponse is the paginated liked-video list.
type LikedVideosResponse struct {
	Videos     []LikedVideo `json:"videos"`
	TotalCount int64        `json:"total_count"`
	TotalPages int          `json:"total_pages"`
	Page       int          `json:"page"`
}

// Like errors
var (
	ErrInvalidLikeKind = errors.New("invalid like target kind")
)
