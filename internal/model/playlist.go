package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Playlist is a named, owner-curated set of videos.
type Playlist struct {
	ID          uuid.UUID `db:"id" json:"id"`
	OwnerID     uuid.UUID `db:"owner_id" json:"owner_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	// Joined fields
	Owner       *UserSummary `json:"owner,omitempty"`
	TotalVideos int          `db:"total_videos" json:"total_videos"`
	TotalViews  int64        `db:"total_views" json:"total_views"`
}

// PlaylistDetail is a playlist with its published videos expanded.
type PlaylistDetail struct {
	Playlist
	Videos []Video `json:"videos"`
}

// CreatePlaylistRequest is the request body for creating a playlist.
type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdatePlaylistRequest is the request body for updating a playlist.
type UpdatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Playlist constraints
const (
	MaxPlaylistNameLength = 100
)

// Playlist errors
var (
	ErrPlaylistNotFound  = errors.New("playlist not found")
	ErrNotPlaylistOwner  = errors.New("not the owner of this playlist")
	ErrPlaylistNameEmpty = errors.New("playlist name is required")
	ErrPlaylistNameLong  = errors.New("playlist name too long")
)
