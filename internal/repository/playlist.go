package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"vidtube/internal/model"
)

// playlistRepository implements PlaylistRepository using sqlx
type playlistRepository struct {
	db *sqlx.DB
}

// NewPlaylistRepository creates a new playlist repository
func NewPlaylistRepository(db *sqlx.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

// Create inserts a new playlist
func (r *playlistRepository) Create(ctx context.Context, p *model.Playlist) error {
	query := `
		INSERT INTO playlists (owner_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, p.OwnerID, p.Name, p.Description).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert playlist: %w", err)
	}

	return nil
}

// GetByID retrieves a playlist row without expansions
func (r *playlistRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
	query := `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM playlists
		WHERE id = $1
	`

	var p model.Playlist
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("failed to get playlist by id: %w", err)
	}

	return &p, nil
}

// GetDetail expands the playlist with its owner summary, derived totals and
// the member videos in the order they were added. Only published videos make
// it into the expansion; draft members stay hidden until republished.
func (r *playlistRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.PlaylistDetail, error) {
	query := `
		SELECT p.id, p.owner_id, p.name, p.description, p.created_at, p.updated_at,
		       u.id AS "owner.id", u.username AS "owner.username",
		       u.full_name AS "owner.full_name", u.avatar_url AS "owner.avatar_url",
		       (SELECT COUNT(*) FROM playlist_videos pv
		        JOIN videos v ON v.id = pv.video_id
		        WHERE pv.playlist_id = p.id AND v.is_published) AS total_videos,
		       (SELECT COALESCE(SUM(v.views), 0) FROM playlist_videos pv
		        JOIN videos v ON v.id = pv.video_id
		        WHERE pv.playlist_id = p.id AND v.is_published) AS total_views
		FROM playlists p
		JOIN users u ON u.id = p.owner_id
		WHERE p.id = $1
	`

	var detail model.PlaylistDetail
	err := r.db.GetContext(ctx, &detail, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("failed to get playlist detail: %w", err)
	}

	videosQuery := `
		SELECT ` + videoColumns + `, ` + ownerSummaryColumns + `
		FROM playlist_videos pv
		JOIN videos v ON v.id = pv.video_id
		JOIN users u ON u.id = v.owner_id
		WHERE pv.playlist_id = $1 AND v.is_published
		ORDER BY pv.added_at ASC
	`
	detail.Videos = []model.Video{}
	if err := r.db.SelectContext(ctx, &detail.Videos, videosQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get playlist videos: %w", err)
	}

	return &detail, nil
}

// ListByOwner returns one page of a user's playlists with derived totals.
func (r *playlistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page model.PageRequest) ([]model.Playlist, int64, error) {
	page = page.Normalized()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM playlists WHERE owner_id = $1`, ownerID); err != nil {
		return nil, 0, fmt.Errorf("failed to count playlists: %w", err)
	}

	query := `
		SELECT p.id, p.owner_id, p.name, p.description, p.created_at, p.updated_at,
		       (SELECT COUNT(*) FROM playlist_videos pv
		        JOIN videos v ON v.id = pv.video_id
		        WHERE pv.playlist_id = p.id AND v.is_published) AS total_videos,
		       (SELECT COALESCE(SUM(v.views), 0) FROM playlist_videos pv
		        JOIN videos v ON v.id = pv.video_id
		        WHERE pv.playlist_id = p.id AND v.is_published) AS total_views
		FROM playlists p
		WHERE p.owner_id = $1
		ORDER BY p.updated_at DESC
		LIMIT $2 OFFSET $3
	`

	playlists := []model.Playlist{}
	if err := r.db.SelectContext(ctx, &playlists, query, ownerID, page.Limit, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list playlists: %w", err)
	}

	return playlists, total, nil
}

// UpdateDetails patches name and/or description
func (r *playlistRepository) UpdateDetails(ctx context.Context, id uuid.UUID, name, description *string) (*model.Playlist, error) {
	query := `
		UPDATE playlists
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, owner_id, name, description, created_at, updated_at
	`

	var p model.Playlist
	err := r.db.GetContext(ctx, &p, query, id, name, description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("failed to update playlist: %w", err)
	}

	return &p, nil
}

// Delete removes the playlist and its membership rows. Videos themselves are
// untouched.
func (r *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM playlist_videos WHERE playlist_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete playlist memberships: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPlaylistNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AddVideo adds a video to the playlist. Adding an existing member is a
// no-op, not an error.
func (r *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	query := `
		INSERT INTO playlist_videos (playlist_id, video_id)
		VALUES ($1, $2)
		ON CONFLICT (playlist_id, video_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, playlistID, videoID); err != nil {
		return fmt.Errorf("failed to add playlist video: %w", err)
	}
	return nil
}

// RemoveVideo removes a video from the playlist. Removing a non-member is a
// no-op as well; the end state is what matters.
func (r *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	query := `DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2`
	if _, err := r.db.ExecContext(ctx, query, playlistID, videoID); err != nil {
		return fmt.Errorf("failed to remove playlist video: %w", err)
	}
	return nil
}
