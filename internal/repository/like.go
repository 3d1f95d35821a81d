package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"vidtube/internal/model"
)

// likeRepository implements LikeRepository using sqlx
type likeRepository struct {
	db *sqlx.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts the like edge. Returns false when the edge already existed;
// the unique index on (target_kind, target_id, user_id) absorbs the race.
func (r *likeRepository) Create(ctx context.Context, kind model.LikeKind, targetID, userID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO likes (target_kind, target_id, user_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (target_kind, target_id, user_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, kind, targetID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to insert like: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// Delete removes the like edge. Returns false when there was none.
func (r *likeRepository) Delete(ctx context.Context, kind model.LikeKind, targetID, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM likes WHERE target_kind = $1 AND target_id = $2 AND user_id = $3`
	result, err := r.db.ExecContext(ctx, query, kind, targetID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// Exists checks whether a user has liked a target
func (r *likeRepository) Exists(ctx context.Context, kind model.LikeKind, targetID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM likes WHERE target_kind = $1 AND target_id = $2 AND user_id = $3)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, kind, targetID, userID); err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}

	return exists, nil
}

// Count returns the number of likes on a target
func (r *likeRepository) Count(ctx context.Context, kind model.LikeKind, targetID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM likes WHERE target_kind = $1 AND target_id = $2`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, kind, targetID); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}

// ListLikedVideos returns one page of the user's liked videos, most recently
// liked first. Unpublished videos drop out of the list even when the like
// row survives.
func (r *likeRepository) ListLikedVideos(ctx context.Context, userID uuid.UUID, page model.PageRequest) ([]model.LikedVideo, int64, error) {
	page = page.Normalized()

	var total int64
	err := r.db.GetContext(ctx, &total, `
		SELECT COUNT(*)
		FROM likes l
		JOIN videos v ON v.id = l.target_id
		WHERE l.target_kind = 'video' AND l.user_id = $1 AND v.is_published
	`, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count liked videos: %w", err)
	}

	query := `
		SELECT ` + videoColumns + `, ` + ownerSummaryColumns + `, l.created_at AS liked_at
		FROM likes l
		JOIN videos v ON v.id = l.target_id
		JOIN users u ON u.id = v.owner_id
		WHERE l.target_kind = 'video' AND l.user_id = $1 AND v.is_published
		ORDER BY l.created_at DESC
		LIMIT $2 OFFSET $3
	`

	videos := []model.LikedVideo{}
	if err := r.db.SelectContext(ctx, &videos, query, userID, page.Limit, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list liked videos: %w", err)
	}

	return videos, total, nil
}
