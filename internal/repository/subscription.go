package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"vidtube/internal/model"
)

// subscriptionRepository implements SubscriptionRepository using sqlx
type subscriptionRepository struct {
	db *sqlx.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *sqlx.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Create inserts the subscription edge. Returns false when it already existed.
func (r *subscriptionRepository) Create(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO subscriptions (subscriber_id, channel_id)
		VALUES ($1, $2)
		ON CONFLICT (subscriber_id, channel_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, subscriberID, channelID)
	if err != nil {
		return false, fmt.Errorf("failed to insert subscription: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// Delete removes the subscription edge. Returns false when there was none.
func (r *subscriptionRepository) Delete(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	query := `DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2`
	result, err := r.db.ExecContext(ctx, query, subscriberID, channelID)
	if err != nil {
		return false, fmt.Errorf("failed to delete subscription: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// Exists checks whether a user is subscribed to a channel
func (r *subscriptionRepository) Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, subscriberID, channelID); err != nil {
		return false, fmt.Errorf("failed to check subscription existence: %w", err)
	}

	return exists, nil
}

// CountSubscribers returns the channel's audience size
func (r *subscriptionRepository) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`, channelID)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

// ListSubscribers returns one page of a channel's subscribers, newest first,
// each with their own audience size and whether the channel follows back.
func (r *subscriptionRepository) ListSubscribers(ctx context.Context, channelID uuid.UUID, page model.PageRequest) ([]model.Subscriber, int64, error) {
	page = page.Normalized()

	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`, channelID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count subscribers: %w", err)
	}

	query := `
		SELECT u.id, u.username, u.full_name, u.avatar_url,
		       (SELECT COUNT(*) FROM subscriptions x WHERE x.channel_id = u.id) AS total_subscribers,
		       EXISTS(SELECT 1 FROM subscriptions x
		              WHERE x.subscriber_id = $1 AND x.channel_id = u.id) AS subscribed_back
		FROM subscriptions s
		JOIN users u ON u.id = s.subscriber_id
		WHERE s.channel_id = $1
		ORDER BY s.created_at DESC
		LIMIT $2 OFFSET $3
	`

	subscribers := []model.Subscriber{}
	if err := r.db.SelectContext(ctx, &subscribers, query, channelID, page.Limit, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list subscribers: %w", err)
	}

	return subscribers, total, nil
}

// ListSubscribedChannels returns one page of the channels a user follows,
// newest subscription first. Each channel's latest published video is fetched
// in a second query and stitched in.
func (r *subscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID, page model.PageRequest) ([]model.SubscribedChannel, int64, error) {
	page = page.Normalized()

	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1`, subscriberID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count subscribed channels: %w", err)
	}

	query := `
		SELECT u.id, u.username, u.full_name, u.avatar_url
		FROM subscriptions s
		JOIN users u ON u.id = s.channel_id
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC
		LIMIT $2 OFFSET $3
	`

	channels := []model.SubscribedChannel{}
	if err := r.db.SelectContext(ctx, &channels, query, subscriberID, page.Limit, page.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to list subscribed channels: %w", err)
	}
	if len(channels) == 0 {
		return channels, total, nil
	}

	ownerIDs := make([]uuid.UUID, len(channels))
	for i, c := range channels {
		ownerIDs[i] = c.ID
	}

	latestQuery := `
		SELECT DISTINCT ON (v.owner_id) ` + videoColumns + `
		FROM videos v
		WHERE v.owner_id = ANY($1) AND v.is_published
		ORDER BY v.owner_id, v.created_at DESC
	`
	latest := []model.Video{}
	if err := r.db.SelectContext(ctx, &latest, latestQuery, pq.Array(ownerIDs)); err != nil {
		return nil, 0, fmt.Errorf("failed to get latest channel videos: %w", err)
	}

	byOwner := make(map[uuid.UUID]model.Video, len(latest))
	for _, v := range latest {
		byOwner[v.OwnerID] = v
	}
	for i := range channels {
		if v, ok := byOwner[channels[i].ID]; ok {
			video := v
			channels[i].LatestVideo = &video
		}
	}

	return channels, total, nil
}
