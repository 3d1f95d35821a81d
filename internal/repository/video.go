package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"vidtube/internal/model"
)

// videoRepository implements VideoRepository using sqlx
type videoRepository struct {
	db *sqlx.DB
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(db *sqlx.DB) VideoRepository {
	return &videoRepository{db: db}
}

const videoColumns = `v.id, v.owner_id, v.title, v.description, v.video_url, v.video_key,
	v.thumbnail_url, v.thumbnail_key, v.duration, v.views, v.is_published, v.created_at, v.updated_at`

const videoReturning = `id, owner_id, title, description, video_url, video_key,
	thumbnail_url, thumbnail_key, duration, views, is_published, created_at, updated_at`

const ownerSummaryColumns = `u.id AS "owner.id", u.username AS "owner.username",
	u.full_name AS "owner.full_name", u.avatar_url AS "owner.avatar_url"`

// videoSortColumns is the allow-list for video list sorting. Keys are the
// API-facing names, values the actual columns.
var videoSortColumns = map[string]string{
	"created_at": "v.created_at",
	"views":      "v.views",
	"duration":   "v.duration",
	"title":      "v.title",
}

// Create inserts a new video row
func (r *videoRepository) Create(ctx context.Context, v *model.Video) error {
	query := `
		INSERT INTO videos (owner_id, title, description, video_url, video_key, thumbnail_url, thumbnail_key, duration, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, views, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		v.OwnerID,
		v.Title,
		v.Description,
		v.VideoURL,
		v.VideoKey,
		v.ThumbnailURL,
		v.ThumbnailKey,
		v.Duration,
		v.IsPublished,
	).Scan(&v.ID, &v.Views, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert video: %w", err)
	}

	return nil
}

// GetByID retrieves a video with its owner summary. Drafts are returned too;
// publish-state checks belong to the caller, which knows who is asking.
func (r *videoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	query := `
		SELECT ` + videoColumns + `, ` + ownerSummaryColumns + `
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		WHERE v.id = $1
	`

	var v model.Video
	err := r.db.GetContext(ctx, &v, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video by id: %w", err)
	}

	return &v, nil
}

// List returns one page of videos matching the filter, newest first unless
// the caller picked another allow-listed sort. The count uses the same
// filter so total pages line up with what is actually listable.
func (r *videoRepository) List(ctx context.Context, filter model.VideoFilter, page model.PageRequest) ([]model.Video, int64, error) {
	page = page.Normalized()

	sortCol := "v.created_at"
	if page.SortBy != "" {
		col, ok := videoSortColumns[page.SortBy]
		if !ok {
			return nil, 0, model.ErrInvalidSortField
		}
		sortCol = col
	}
	direction := "DESC"
	if !page.Descending() {
		direction = "ASC"
	}

	conditions := []string{}
	args := []interface{}{}
	if !filter.IncludeUnpublished {
		conditions = append(conditions, "v.is_published")
	}
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		conditions = append(conditions, fmt.Sprintf("v.owner_id = $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, filter.Query)
		conditions = append(conditions, fmt.Sprintf(
			"to_tsvector('english', v.title || ' ' || v.description) @@ plainto_tsquery('english', $%d)", len(args)))
	}
	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM videos v %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count videos: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, videoColumns, ownerSummaryColumns, where, sortCol, direction, len(args)+1, len(args)+2)
	args = append(args, page.Limit, page.Offset())

	videos := []model.Video{}
	if err := r.db.SelectContext(ctx, &videos, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list videos: %w", err)
	}

	return videos, total, nil
}

// UpdateDetails patches title and/or description
func (r *videoRepository) UpdateDetails(ctx context.Context, id uuid.UUID, title, description *string) (*model.Video, error) {
	query := `
		UPDATE videos v
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + videoReturning

	var v model.Video
	err := r.db.GetContext(ctx, &v, query, id, title, description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to update video details: %w", err)
	}

	return &v, nil
}

// UpdateThumbnail swaps the thumbnail asset and returns the previous object key.
func (r *videoRepository) UpdateThumbnail(ctx context.Context, id uuid.UUID, url, key string) (string, error) {
	query := `
		UPDATE videos v
		SET thumbnail_url = $2, thumbnail_key = $3, updated_at = NOW()
		FROM (SELECT id, thumbnail_key AS old_key FROM videos WHERE id = $1) prev
		WHERE v.id = prev.id
		RETURNING prev.old_key
	`

	var oldKey string
	err := r.db.QueryRowxContext(ctx, query, id, url, key).Scan(&oldKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", model.ErrVideoNotFound
		}
		return "", fmt.Errorf("failed to swap video thumbnail: %w", err)
	}

	return oldKey, nil
}

// SetPublished flips the publish flag
func (r *videoRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*model.Video, error) {
	query := `
		UPDATE videos
		SET is_published = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + videoReturning

	var v model.Video
	err := r.db.GetContext(ctx, &v, query, id, published)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to set video published: %w", err)
	}

	return &v, nil
}

// IncrementViews bumps the view counter by one. The increment runs in the
// database so concurrent views never lose updates.
func (r *videoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE videos SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrVideoNotFound
	}
	return nil
}

// DeleteCascade removes the video and everything hanging off it in one
// transaction: likes on its comments, the comments, likes on the video
// itself, playlist memberships and watch-history rows, then the video.
func (r *videoRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	steps := []string{
		`DELETE FROM likes
		 WHERE target_kind = 'comment'
		   AND target_id IN (SELECT id FROM comments WHERE video_id = $1)`,
		`DELETE FROM comments WHERE video_id = $1`,
		`DELETE FROM likes WHERE target_kind = 'video' AND target_id = $1`,
		`DELETE FROM playlist_videos WHERE video_id = $1`,
		`DELETE FROM watch_history WHERE video_id = $1`,
	}
	for _, step := range steps {
		if _, err := tx.ExecContext(ctx, step, id); err != nil {
			return fmt.Errorf("failed to delete video dependents: %w", err)
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrVideoNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListChannelVideos is the owner-facing list: drafts included, like counts
// joined, newest first.
func (r *videoRepository) ListChannelVideos(ctx context.Context, ownerID uuid.UUID, page model.PageRequest) ([]model.ChannelVideo, int64, error) {
	page = page.Normalized()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM videos WHERE owner_id = $1`, ownerID); err != nil {
		return nil, 0, fmt.Errorf("failed to count channel videos: %w", err)
	}

	query := `
		SELECT ` + videoColumns + `,
		       (SELECT COUNT(*) FROM likes l WHERE l.target_kind = 'video' AND l.target_id = v.id) AS likes_count
		FROM videos v
		WHERE v.owner_id = $1
		ORDER BY v.created_at DESC
		LIMIT $2 OFFSET $3
	`

	videos := []model.ChannelVideo{}
	if err := r.db.SelectContext(ctx, &videos, query, ownerID, page.Limit, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list channel videos: %w", err)
	}

	return videos, total, nil
}

// GetChannelStats aggregates the dashboard numbers in one query.
func (r *videoRepository) GetChannelStats(ctx context.Context, ownerID uuid.UUID) (*model.ChannelStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM videos WHERE owner_id = $1) AS total_videos,
			(SELECT COALESCE(SUM(views), 0) FROM videos WHERE owner_id = $1) AS total_views,
			(SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1) AS total_subscribers,
			(SELECT COUNT(*) FROM likes l
			 JOIN videos v ON v.id = l.target_id
			 WHERE l.target_kind = 'video' AND v.owner_id = $1) AS total_likes
	`

	var stats model.ChannelStats
	if err := r.db.GetContext(ctx, &stats, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to get channel stats: %w", err)
	}

	return &stats, nil
}
