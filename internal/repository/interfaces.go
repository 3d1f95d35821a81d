package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vidtube/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// GetByLogin matches either username or email; used by login.
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, fullName, email *string) (*model.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHashed string) error
	// UpdateAvatar and UpdateCoverImage swap asset metadata and return the
	// previous object key so the caller can release it from remote storage.
	UpdateAvatar(ctx context.Context, id uuid.UUID, url, key string) (oldKey *string, err error)
	UpdateCoverImage(ctx context.Context, id uuid.UUID, url, key string) (oldKey *string, err error)
	GetChannelProfile(ctx context.Context, username string) (*model.ChannelProfile, error)
	// UpsertWatchHistory appends a video to the user's history, bumping
	// watched_at on re-watch.
	UpsertWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error
	GetWatchHistory(ctx context.Context, userID uuid.UUID, page model.PageRequest) ([]model.WatchHistoryEntry, int64, error)
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	Revoke(ctx context.Context, id uuid.UUID, replacedBy *uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}

type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error)
	// List returns one page of videos with owner summaries plus the filtered
	// total count. The sort field is validated against an allow-list.
	List(ctx context.Context, filter model.VideoFilter, page model.PageRequest) ([]model.Video, int64, error)
	UpdateDetails(ctx context.Context, id uuid.UUID, title, description *string) (*model.Video, error)
	UpdateThumbnail(ctx context.Context, id uuid.UUID, url, key string) (oldKey string, err error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (*model.Video, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	// DeleteCascade removes the video row together with its likes, comments,
	// comment likes, playlist memberships and watch-history rows in one
	// transaction. Remote assets are the caller's problem.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	ListChannelVideos(ctx context.Context, ownerID uuid.UUID, page model.PageRequest) ([]model.ChannelVideo, int64, error)
	GetChannelStats(ctx context.Context, ownerID uuid.UUID) (*model.ChannelStats, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error)
	// DeleteCascade removes the comment and every like referencing it in one
	// transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	// ListByVideo joins per-comment like counts and, when viewerID is set,
	// the viewer's liked flag.
	ListByVideo(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID, page model.PageRequest) ([]model.Comment, int64, error)
}

type LikeRepository interface {
	// Create inserts the like edge; returns false when it already existed
	// (ON CONFLICT DO NOTHING), which callers treat as already-in-state.
	Create(ctx context.Context, kind model.LikeKind, targetID, userID uuid.UUID) (bool, error)
	// Delete removes the like edge; returns false when there was none.
	Delete(ctx context.Context, kind model.LikeKind, targetID, userID uuid.UUID) (bool, error)
	Exists(ctx context.Context, kind model.LikeKind, targetID, userID uuid.UUID) (bool, error)
	Count(ctx context.Context, kind model.LikeKind, targetID uuid.UUID) (int64, error)
	ListLikedVideos(ctx context.Context, userID uuid.UUID, page model.PageRequest) ([]model.LikedVideo, int64, error)
}

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *model.Playlist) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error)
	// GetDetail expands the playlist with its published videos, owner summary
	// and derived totals.
	GetDetail(ctx context.Context, id uuid.UUID) (*model.PlaylistDetail, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page model.PageRequest) ([]model.Playlist, int64, error)
	UpdateDetails(ctx context.Context, id uuid.UUID, name, description *string) (*model.Playlist, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// AddVideo is idempotent: adding a member twice leaves one row.
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
	Delete(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
	Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
	CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error)
	ListSubscribers(ctx context.Context, channelID uuid.UUID, page model.PageRequest) ([]model.Subscriber, int64, error)
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID, page model.PageRequest) ([]model.SubscribedChannel, int64, error)
}

type TweetRepository interface {
	Create(ctx context.Context, tweet *model.Tweet) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Tweet, error)
	// DeleteCascade removes the tweet and every like referencing it.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, viewerID *uuid.UUID, page model.PageRequest) ([]model.Tweet, int64, error)
}
