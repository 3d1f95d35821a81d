package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"vidtube/internal/model"
)

// userRepository implements UserRepository using sqlx
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, email, full_name, password_hashed, avatar_url, avatar_key,
	cover_image_url, cover_image_key, created_at, updated_at`

// Create inserts a new user into the database. Unique violations on username
// or email are translated to their domain errors.
func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (username, email, full_name, password_hashed, avatar_url, avatar_key, cover_image_url, cover_image_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		u.Username,
		u.Email,
		u.FullName,
		u.PasswordHashed,
		u.AvatarURL,
		u.AvatarKey,
		u.CoverImageURL,
		u.CoverImageKey,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "users_email_key" {
				return model.ErrEmailExists
			}
			return model.ErrUsernameExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &u, nil
}

// GetByUsername retrieves a user by their username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &u, nil
}

// GetByLogin retrieves a user whose username or email matches the login value
func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, login)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by login: %w", err)
	}

	return &u, nil
}

// ExistsByUsernameOrEmail checks if either identifier is already taken
func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, username, email)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

// UpdateAccount patches full name and/or email.
func (r *userRepository) UpdateAccount(ctx context.Context, id uuid.UUID, fullName, email *string) (*model.User, error) {
	query := `
		UPDATE users
		SET full_name = COALESCE($2, full_name),
		    email = COALESCE($3, email),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var u model.User
	err := r.db.GetContext(ctx, &u, query, id, fullName, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, model.ErrEmailExists
		}
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &u, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHashed string) error {
	query := `UPDATE users SET password_hashed = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, passwordHashed)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// UpdateAvatar swaps the avatar asset and returns the previous object key.
func (r *userRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, url, key string) (*string, error) {
	return r.swapAsset(ctx, id, "avatar_url", "avatar_key", url, key)
}

// UpdateCoverImage swaps the cover image asset and returns the previous object key.
func (r *userRepository) UpdateCoverImage(ctx context.Context, id uuid.UUID, url, key string) (*string, error) {
	return r.swapAsset(ctx, id, "cover_image_url", "cover_image_key", url, key)
}

// swapAsset updates a url/key column pair and hands back the old key in one
// round trip. Column names come from the two callers above, never from input.
func (r *userRepository) swapAsset(ctx context.Context, id uuid.UUID, urlCol, keyCol, url, key string) (*string, error) {
	query := fmt.Sprintf(`
		UPDATE users u
		SET %s = $2, %s = $3, updated_at = NOW()
		FROM (SELECT id, %s AS old_key FROM users WHERE id = $1) prev
		WHERE u.id = prev.id
		RETURNING prev.old_key
	`, urlCol, keyCol, keyCol)

	var oldKey *string
	err := r.db.QueryRowxContext(ctx, query, id, url, key).Scan(&oldKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to swap user asset: %w", err)
	}

	return oldKey, nil
}

// GetChannelProfile joins subscriber and subscribed-to counts onto the user row.
func (r *userRepository) GetChannelProfile(ctx context.Context, username string) (*model.ChannelProfile, error) {
	query := `
		SELECT ` + userColumns + `,
		       (SELECT COUNT(*) FROM subscriptions WHERE channel_id = users.id) AS subscriber_count,
		       (SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = users.id) AS subscribed_to_count
		FROM users
		WHERE username = $1
	`

	var profile model.ChannelProfile
	err := r.db.GetContext(ctx, &profile, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get channel profile: %w", err)
	}

	return &profile, nil
}

// UpsertWatchHistory appends to the watch history; a re-watch bumps watched_at
// so the video moves back to the front of the list.
func (r *userRepository) UpsertWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error {
	query := `
		INSERT INTO watch_history (user_id, video_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query, userID, videoID)
	if err != nil {
		return fmt.Errorf("failed to upsert watch history: %w", err)
	}
	return nil
}

// GetWatchHistory returns one page of watched videos, most recent first, with
// owner summaries joined.
func (r *userRepository) GetWatchHistory(ctx context.Context, userID uuid.UUID, page model.PageRequest) ([]model.WatchHistoryEntry, int64, error) {
	page = page.Normalized()

	var total int64
	err := r.db.GetContext(ctx, &total, `
		SELECT COUNT(*)
		FROM watch_history h
		JOIN videos v ON v.id = h.video_id
		WHERE h.user_id = $1 AND v.is_published
	`, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count watch history: %w", err)
	}

	query := `
		SELECT v.id, v.owner_id, v.title, v.description, v.video_url, v.video_key,
		       v.thumbnail_url, v.thumbnail_key, v.duration, v.views, v.is_published,
		       v.created_at, v.updated_at, h.watched_at,
		       u.id AS "owner.id", u.username AS "owner.username",
		       u.full_name AS "owner.full_name", u.avatar_url AS "owner.avatar_url"
		FROM watch_history h
		JOIN videos v ON v.id = h.video_id
		JOIN users u ON u.id = v.owner_id
		WHERE h.user_id = $1 AND v.is_published
		ORDER BY h.watched_at DESC
		LIMIT $2 OFFSET $3
	`

	entries := []model.WatchHistoryEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, userID, page.Limit, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to get watch history: %w", err)
	}

	return entries, total, nil
}
