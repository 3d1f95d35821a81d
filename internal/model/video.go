package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Video represents a published (or draft) video with its remote assets.
type Video struct {
	ID           uuid.UUID `db:"id" json:"id"`
	OwnerID      uuid.UUID `db:"owner_id" json:"owner_id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	VideoURL     string    `db:"video_url" json:"video_url"`
	VideoKey     string    `db:"video_key" json:"-"`
	ThumbnailURL string    `db:"thumbnail_url" json:"thumbnail_url"`
	ThumbnailKey string    `db:"thumbnail_key" json:"-"`
	Duration     float64   `db:"duration" json:"duration"`
	Views        int64     `db:"views" json:"views"`
	IsPublished  bool      `db:"is_published" json:"is_published"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`

	// Joined fields (not in videos table)
	Owner *UserSummary `json:"owner,omitempty"`
}

// VideoDetail is the single-video view with aggregated like and subscription data.
type VideoDetail struct {
	Video
	LikesCount int64        `db:"likes_count" json:"likes_count"`
	IsLiked    bool         `json:"is_liked"`
	Channel    *ChannelCard `json:"channel,omitempty"`
}

// ChannelCard is the owner block on a video detail page.
type ChannelCard struct {
	UserSummary
	SubscriberCount int  `db:"subscriber_count" json:"subscriber_count"`
	IsSubscribed    bool `json:"is_subscribed"`
}

// VideoFilter narrows the video list query.
type VideoFilter struct {
	// Query is matched against title+description through the text index.
	Query string
	// OwnerID restricts the list to one channel.
	OwnerID *uuid.UUID
	// IncludeUnpublished lists drafts too; only valid when OwnerID is the caller.
	IncludeUnpublished bool
}

// VideoListResponse is the paginated video list.
type VideoListResponse struct {
	Videos     []Video `json:"videos"`
	TotalCount int64   `json:"total_count"`
	TotalPages int     `json:"total_pages"`
	Page       int     `json:"page"`
}

// PublishVideoRequest carries the non-file fields of the publish form.
type PublishVideoRequest struct {
	Title       string
	Description string
	Duration    float64
}

// UpdateVideoRequest is the request body for PATCH /videos/{id}.
// Thumbnail replacement rides along as a multipart file, handled separately.
type UpdateVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Video constraints
const (
	MaxVideoTitleLength       = 120
	MaxVideoDescriptionLength = 5000
)

// Video errors
var (
	ErrVideoNotFound    = errors.New("video not found")
	ErrNotVideoOwner    = errors.New("not the owner of this video")
	ErrTitleRequired    = errors.New("video title is required")
	ErrTitleTooLong     = errors.New("video title too long")
	ErrDescriptionLong  = errors.New("video description too long")
	ErrInvalidDuration  = errors.New("video duration must be positive")
	ErrVideoUnpublished = errors.New("video is not published")
)
