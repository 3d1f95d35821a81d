package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"vidtube/internal/model"
)

// tweetRepository implements TweetRepository using sqlx
type tweetRepository struct {
	db *sqlx.DB
}

// NewTweetRepository creates a new tweet repository
func NewTweetRepository(db *sqlx.DB) TweetRepository {
	return &tweetRepository{db: db}
}

// Create inserts a new tweet
func (r *tweetRepository) Create(ctx context.Context, t *model.Tweet) error {
	query := `
		INSERT INTO tweets (owner_id, content)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, t.OwnerID, t.Content).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert tweet: %w", err)
	}

	return nil
}

// GetByID retrieves a tweet by its ID
func (r *tweetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	query := `
		SELECT id, owner_id, content, created_at, updated_at
		FROM tweets
		WHERE id = $1
	`

	var t model.Tweet
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrTweetNotFound
		}
		return nil, fmt.Errorf("failed to get tweet by id: %w", err)
	}

	return &t, nil
}

// UpdateContent replaces the tweet text
func (r *tweetRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Tweet, error) {
	query := `
		UPDATE tweets
		SET content = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, owner_id, content, created_at, updated_at
	`

	var t model.Tweet
	err := r.db.GetContext(ctx, &t, query, id, content)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrTweetNotFound
		}
		return nil, fmt.Errorf("failed to update tweet: %w", err)
	}

	return &t, nil
}

// DeleteCascade removes the tweet together with every like referencing it.
func (r *tweetRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM likes WHERE target_kind = 'tweet' AND target_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete tweet likes: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrTweetNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListByOwner returns one page of a user's tweets, newest first, with owner
// summaries and like counts joined. When viewerID is set, each row also
// carries whether that viewer liked it.
func (r *tweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, viewerID *uuid.UUID, page model.PageRequest) ([]model.Tweet, int64, error) {
	page = page.Normalized()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM tweets WHERE owner_id = $1`, ownerID); err != nil {
		return nil, 0, fmt.Errorf("failed to count tweets: %w", err)
	}

	query := `
		SELECT t.id, t.owner_id, t.content, t.created_at, t.updated_at,
		       u.id AS "owner.id", u.username AS "owner.username",
		       u.full_name AS "owner.full_name", u.avatar_url AS "owner.avatar_url",
		       (SELECT COUNT(*) FROM likes l WHERE l.target_kind = 'tweet' AND l.target_id = t.id) AS likes_count,
		       EXISTS(SELECT 1 FROM likes l WHERE l.target_kind = 'tweet' AND l.target_id = t.id AND l.user_id = $2) AS is_liked
		FROM tweets t
		JOIN users u ON u.id = t.owner_id
		WHERE t.owner_id = $1
		ORDER BY t.created_at DESC
		LIMIT $3 OFFSET $4
	`

	tweets := []model.Tweet{}
	if err := r.db.SelectContext(ctx, &tweets, query, ownerID, viewerID, page.Limit, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list tweets: %w", err)
	}

	return tweets, total, nil
}
