package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"vidtube/internal/model"
)

// commentRepository implements CommentRepository using sqlx
type commentRepository struct {
	db *sqlx.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a new comment
func (r *commentRepository) Create(ctx context.Context, c *model.Comment) error {
	query := `
		INSERT INTO comments (video_id, owner_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, c.VideoID, c.OwnerID, c.Content).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by its ID
func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := `
		SELECT id, video_id, owner_id, content, created_at, updated_at
		FROM comments
		WHERE id = $1
	`

	var c model.Comment
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return &c, nil
}

// UpdateContent replaces the comment text
func (r *commentRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	query := `
		UPDATE comments
		SET content = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, video_id, owner_id, content, created_at, updated_at
	`

	var c model.Comment
	err := r.db.GetContext(ctx, &c, query, id, content)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return &c, nil
}

// DeleteCascade removes the comment together with every like referencing it.
func (r *commentRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM likes WHERE target_kind = 'comment' AND target_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete comment likes: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrCommentNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListByVideo returns one page of comments, newest first, with owner
// summaries and like counts joined. When viewerID is set, each row also
// carries whether that viewer liked it.
func (r *commentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID, page model.PageRequest) ([]model.Comment, int64, error) {
	page = page.Normalized()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM comments WHERE video_id = $1`, videoID); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := `
		SELECT c.id, c.video_id, c.owner_id, c.content, c.created_at, c.updated_at,
		       u.id AS "owner.id", u.username AS "owner.username",
		       u.full_name AS "owner.full_name", u.avatar_url AS "owner.avatar_url",
		       (SELECT COUNT(*) FROM likes l WHERE l.target_kind = 'comment' AND l.target_id = c.id) AS likes_count,
		       EXISTS(SELECT 1 FROM likes l WHERE l.target_kind = 'comment' AND l.target_id = c.id AND l.user_id = $2) AS is_liked
		FROM comments c
		JOIN users u ON u.id = c.owner_id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC
		LIMIT $3 OFFSET $4
	`

	comments := []model.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, videoID, viewerID, page.Limit, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, total, nil
}
