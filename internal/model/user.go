package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents an account. A user is also a channel: other users subscribe
// to it and its videos hang off owner_id.
type User struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	Email          string    `db:"email" json:"email"`
	FullName       string    `db:"full_name" json:"full_name"`
	PasswordHashed string    `db:"password_hashed" json:"-"` // "-" hides from JSON output
	AvatarURL      *string   `db:"avatar_url" json:"avatar_url"`
	AvatarKey      *string   `db:"avatar_key" json:"-"`
	CoverImageURL  *string   `db:"cover_image_url" json:"cover_image_url"`
	CoverImageKey  *string   `db:"cover_image_key" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// UserSummary is the public owner projection joined into videos, comments,
// tweets and playlists.
type UserSummary struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	FullName  string    `db:"full_name" json:"full_name"`
	AvatarURL *string   `db:"avatar_url" json:"avatar_url"`
}

// ChannelProfile is a user viewed as a channel, with subscription counts and
// the viewer's relationship to it.
type ChannelProfile struct {
	User
	SubscriberCount   int  `db:"subscriber_count" json:"subscriber_count"`
	SubscribedToCount int  `db:"subscribed_to_count" json:"subscribed_to_count"`
	IsSubscribed      bool `json:"is_subscribed"`
}

// RegisterRequest represents the data needed to register a new user. The
// avatar and cover files travel alongside it as multipart parts.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// LoginRequest accepts either username or email.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateAccountRequest is the request body for PATCH /users/me.
type UpdateAccountRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
}

// ChangePasswordRequest is the request body for PATCH /users/me/password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// WatchHistoryEntry is a watched video with its owner summary.
type WatchHistoryEntry struct {
	Video
	WatchedAt time.Time `db:"watched_at" json:"watched_at"`
}

// WatchHistoryResponse is the paginated watch history.
type WatchHistoryResponse struct {
	Entries    []WatchHistoryEntry `json:"entries"`
	TotalCount int64               `json:"total_count"`
	TotalPages int                 `json:"total_pages"`
	Page       int                 `json:"page"`
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameExists is returned when attempting to create a user with a taken username
	ErrUsernameExists = errors.New("username already exists")

	// ErrEmailExists is returned when attempting to create a user with a taken email
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials are incorrect
	ErrInvalidCredentials = errors.New("invalid credentials")
)
