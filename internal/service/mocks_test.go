package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"vidtube/internal/model"
)

// =============================================================================
// MOCK REPOSITORIES
// =============================================================================
//
// The services depend on repository INTERFACES, so unit tests swap in mocks
// that return controlled responses instead of hitting a real database. Each
// mock exposes a function field per method; a test sets only the fields it
// cares about, and unset fields fall back to a not-found or zero response.

type mockUserRepository struct {
	createFn            func(ctx context.Context, user *model.User) error
	getByIDFn           func(ctx context.Context, id uuid.UUID) (*model.User, error)
	getByUsernameFn     func(ctx context.Context, username string) (*model.User, error)
	getByLoginFn        func(ctx context.Context, login string) (*model.User, error)
	existsFn            func(ctx context.Context, username, email string) (bool, error)
	updateAccountFn     func(ctx context.Context, id uuid.UUID, fullName, email *string) (*model.User, error)
	updatePasswordFn    func(ctx context.Context, id uuid.UUID, passwordHashed string) error
	updateAvatarFn      func(ctx context.Context, id uuid.UUID, url, key string) (*string, error)
	updateCoverFn       func(ctx context.Context, id uuid.UUID, url, key string) (*string, error)
	getChannelProfileFn func(ctx context.Context, username string) (*model.ChannelProfile, error)
	upsertHistoryFn     func(ctx context.Context, userID, videoID uuid.UUID) error
	getHistoryFn        func(ctx context.Context, userID uuid.UUID, page model.PageRequest) ([]model.WatchHistoryEntry, int64, error)

	createCalls        []*model.User
	upsertHistoryCalls []uuid.UUID
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	m.createCalls = append(m.createCalls, user)
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if m.getByLoginFn != nil {
		return m.getByLoginFn(ctx, login)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, username, email)
	}
	return false, nil
}

func (m *mockUserRepository) UpdateAccount(ctx context.Context, id uuid.UUID, fullName, email *string) (*model.User, error) {
	if m.updateAccountFn != nil {
		return m.updateAccountFn(ctx, id, fullName, email)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHashed string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, id, passwordHashed)
	}
	return nil
}

func (m *mockUserRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, url, key string) (*string, error) {
	if m.updateAvatarFn != nil {
		return m.updateAvatarFn(ctx, id, url, key)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateCoverImage(ctx context.Context, id uuid.UUID, url, key string) (*string, error) {
	if m.updateCoverFn != nil {
		return m.updateCoverFn(ctx, id, url, key)
	}
	return nil, nil
}

func (m *mockUserRepository) GetChannelProfile(ctx context.Context, username string) (*model.ChannelProfile, error) {
	if m.getChannelProfileFn != nil {
		return m.getChannelProfileFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) UpsertWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error {
	m.upsertHistoryCalls = append(m.upsertHistoryCalls, videoID)
	if m.upsertHistoryFn != nil {
		return m.upsertHistoryFn(ctx, userID, videoID)
	}
	return nil
}

func (m *mockUserRepository) GetWatchHistory(ctx context.Context, userID uuid.UUID, page model.PageRequest) ([]model.WatchHistoryEntry, int64, error) {
	if m.getHistoryFn != nil {
		return m.getHistoryFn(ctx, userID, page)
	}
	return nil, 0, nil
}

type mockRefreshTokenRepository struct {
	createFn           func(ctx context.Context, token *model.RefreshToken) error
	findByTokenHashFn  func(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	revokeFn           func(ctx context.Context, id uuid.UUID, replacedBy *uuid.UUID) error
	revokeAllForUserFn func(ctx context.Context, userID uuid.UUID) error
	deleteExpiredFn    func(ctx context.Context, olderThan time.Duration) (int64, error)

	createCalls    []*model.RefreshToken
	revokeCalls    []uuid.UUID
	revokeAllCalls []uuid.UUID
}

func (m *mockRefreshTokenRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	m.createCalls = append(m.createCalls, token)
	if m.createFn != nil {
		return m.createFn(ctx, token)
	}
	token.ID = uuid.New()
	token.CreatedAt = time.Now()
	return nil
}

func (m *mockRefreshTokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	if m.findByTokenHashFn != nil {
		return m.findByTokenHashFn(ctx, tokenHash)
	}
	return nil, model.ErrRefreshTokenNotFound
}

func (m *mockRefreshTokenRepository) Revoke(ctx context.Context, id uuid.UUID, replacedBy *uuid.UUID) error {
	m.revokeCalls = append(m.revokeCalls, id)
	if m.revokeFn != nil {
		return m.revokeFn(ctx, id, replacedBy)
	}
	return nil
}

func (m *mockRefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	m.revokeAllCalls = append(m.revokeAllCalls, userID)
	if m.revokeAllForUserFn != nil {
		return m.revokeAllForUserFn(ctx, userID)
	}
	return nil
}

func (m *mockRefreshTokenRepository) DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx, olderThan)
	}
	return 0, nil
}

type mockVideoRepository struct {
	createFn            func(ctx context.Context, video *model.Video) error
	getByIDFn           func(ctx context.Context, id uuid.UUID) (*model.Video, error)
	listFn              func(ctx context.Context, filter model.VideoFilter, page model.PageRequest) ([]model.Video, int64, error)
	updateDetailsFn     func(ctx context.Context, id uuid.UUID, title, description *string) (*model.Video, error)
	updateThumbnailFn   func(ctx context.Context, id uuid.UUID, url, key string) (string, error)
	setPublishedFn      func(ctx context.Context, id uuid.UUID, published bool) (*model.Video, error)
	incrementViewsFn    func(ctx context.Context, id uuid.UUID) error
	deleteCascadeFn     func(ctx context.Context, id uuid.UUID) error
	listChannelVideosFn func(ctx context.Context, ownerID uuid.UUID, page model.PageRequest) ([]model.ChannelVideo, int64, error)
	getChannelStatsFn   func(ctx context.Context, ownerID uuid.UUID) (*model.ChannelStats, error)

	createCalls         []*model.Video
	incrementViewsCalls []uuid.UUID
	deleteCascadeCalls  []uuid.UUID
}

func (m *mockVideoRepository) Create(ctx context.Context, video *model.Video) error {
	m.createCalls = append(m.createCalls, video)
	if m.createFn != nil {
		return m.createFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrVideoNotFound
}

func (m *mockVideoRepository) List(ctx context.Context, filter model.VideoFilter, page model.PageRequest) ([]model.Video, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter, page)
	}
	return nil, 0, nil
}

func (m *mockVideoRepository) UpdateDetails(ctx context.Context, id uuid.UUID, title, description *string) (*model.Video, error) {
	if m.updateDetailsFn != nil {
		return m.updateDetailsFn(ctx, id, title, description)
	}
	return nil, model.ErrVideoNotFound
}

func (m *mockVideoRepository) UpdateThumbnail(ctx context.Context, id uuid.UUID, url, key string) (string, error) {
	if m.updateThumbnailFn != nil {
		return m.updateThumbnailFn(ctx, id, url, key)
	}
	return "", model.ErrVideoNotFound
}

func (m *mockVideoRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*model.Video, error) {
	if m.setPublishedFn != nil {
		return m.setPublishedFn(ctx, id, published)
	}
	return nil, model.ErrVideoNotFound
}

func (m *mockVideoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	m.incrementViewsCalls = append(m.incrementViewsCalls, id)
	if m.incrementViewsFn != nil {
		return m.incrementViewsFn(ctx, id)
	}
	return nil
}

func (m *mockVideoRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	m.deleteCascadeCalls = append(m.deleteCascadeCalls, id)
	if m.deleteCascadeFn != nil {
		return m.deleteCascadeFn(ctx, id)
	}
	return nil
}

func (m *mockVideoRepository) ListChannelVideos(ctx context.Context, ownerID uuid.UUID, page model.PageRequest) ([]model.ChannelVideo, int64, error) {
	if m.listChannelVideosFn != nil {
		return m.listChannelVideosFn(ctx, ownerID, page)
	}
	return nil, 0, nil
}

func (m *mockVideoRepository) GetChannelStats(ctx context.Context, ownerID uuid.UUID) (*model.ChannelStats, error) {
	if m.getChannelStatsFn != nil {
		return m.getChannelStatsFn(ctx, ownerID)
	}
	return &model.ChannelStats{}, nil
}

type mockCommentRepository struct {
	createFn        func(ctx context.Context, comment *model.Comment) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	updateContentFn func(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error)
	deleteCascadeFn func(ctx context.Context, id uuid.UUID) error
	listByVideoFn   func(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID, page model.PageRequest) ([]model.Comment, int64, error)

	createCalls        []*model.Comment
	deleteCascadeCalls []uuid.UUID
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	m.createCalls = append(m.createCalls, comment)
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrCommentNotFound
}

func (m *mockCommentRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error) {
	if m.updateContentFn != nil {
		return m.updateContentFn(ctx, id, content)
	}
	return nil, model.ErrCommentNotFound
}

func (m *mockCommentRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	m.deleteCascadeCalls = append(m.deleteCascadeCalls, id)
	if m.deleteCascadeFn != nil {
		return m.deleteCascadeFn(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID, page model.PageRequest) ([]model.Comment, int64, error) {
	if m.listByVideoFn != nil {
		return m.listByVideoFn(ctx, videoID, viewerID, page)
	}
	return nil, 0, nil
}

type likeCall struct {
	Kind     model.LikeKind
	TargetID uuid.UUID
	UserID   uuid.UUID
}

type mockLikeRepository struct {
	createFn          func(ctx context.Context, kind model.LikeKind, targetID, userID uuid.UUID) (bool, error)
	deleteFn          func(ctx context.Context, kind model.LikeKind, targetID, userID uuid.UUID) (bool, error)
	existsFn          func(ctx context.Context, kind model.LikeKind, targetID, userID uuid.UUID) (bool, error)
	countFn           func(ctx context.Context, kind model.LikeKind, targetID uuid.UUID) (int64, error)
	listLikedVideosFn func(ctx context.Context, userID uuid.UUID, page model.PageRequest) ([]model.LikedVideo, int64, error)

	createCalls []likeCall
	deleteCalls []likeCall
}

func (m *mockLikeRepository) Create(ctx context.Context, kind model.LikeKind, targetID, userID uuid.UUID) (bool, error) {
	m.createCalls = append(m.createCalls, likeCall{kind, targetID, userID})
	if m.createFn != nil {
		return m.createFn(ctx, kind, targetID, userID)
	}
	return true, nil
}

func (m *mockLikeRepository) Delete(ctx context.Context, kind model.LikeKind, targetID, userID uuid.UUID) (bool, error) {
	m.deleteCalls = append(m.deleteCalls, likeCall{kind, targetID, userID})
	if m.deleteFn != nil {
		return m.deleteFn(ctx, kind, targetID, userID)
	}
	return false, nil
}

func (m *mockLikeRepository) Exists(ctx context.Context, kind model.LikeKind, targetID, userID uuid.UUID) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, kind, targetID, userID)
	}
	return false, nil
}

func (m *mockLikeRepository) Count(ctx context.Context, kind model.LikeKind, targetID uuid.UUID) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, kind, targetID)
	}
	return 0, nil
}

func (m *mockLikeRepository) ListLikedVideos(ctx context.Context, userID uuid.UUID, page model.PageRequest) ([]model.LikedVideo, int64, error) {
	if m.listLikedVideosFn != nil {
		return m.listLikedVideosFn(ctx, userID, page)
	}
	return nil, 0, nil
}

type mockPlaylistRepository struct {
	createFn        func(ctx context.Context, playlist *model.Playlist) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*model.Playlist, error)
	getDetailFn     func(ctx context.Context, id uuid.UUID) (*model.PlaylistDetail, error)
	listByOwnerFn   func(ctx context.Context, ownerID uuid.UUID, page model.PageRequest) ([]model.Playlist, int64, error)
	updateDetailsFn func(ctx context.Context, id uuid.UUID, name, description *string) (*model.Playlist, error)
	deleteFn        func(ctx context.Context, id uuid.UUID) error
	addVideoFn      func(ctx context.Context, playlistID, videoID uuid.UUID) error
	removeVideoFn   func(ctx context.Context, playlistID, videoID uuid.UUID) error

	addVideoCalls    []uuid.UUID
	removeVideoCalls []uuid.UUID
	deleteCalls      []uuid.UUID
}

func (m *mockPlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	if m.createFn != nil {
		return m.createFn(ctx, playlist)
	}
	return nil
}

func (m *mockPlaylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrPlaylistNotFound
}

func (m *mockPlaylistRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.PlaylistDetail, error) {
	if m.getDetailFn != nil {
		return m.getDetailFn(ctx, id)
	}
	return nil, model.ErrPlaylistNotFound
}

func (m *mockPlaylistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page model.PageRequest) ([]model.Playlist, int64, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID, page)
	}
	return nil, 0, nil
}

func (m *mockPlaylistRepository) UpdateDetails(ctx context.Context, id uuid.UUID, name, description *string) (*model.Playlist, error) {
	if m.updateDetailsFn != nil {
		return m.updateDetailsFn(ctx, id, name, description)
	}
	return nil, model.ErrPlaylistNotFound
}

func (m *mockPlaylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls = append(m.deleteCalls, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockPlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	m.addVideoCalls = append(m.addVideoCalls, videoID)
	if m.addVideoFn != nil {
		return m.addVideoFn(ctx, playlistID, videoID)
	}
	return nil
}

func (m *mockPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	m.removeVideoCalls = append(m.removeVideoCalls, videoID)
	if m.removeVideoFn != nil {
		return m.removeVideoFn(ctx, playlistID, videoID)
	}
	return nil
}

type subscriptionCall struct {
	SubscriberID uuid.UUID
	ChannelID    uuid.UUID
}

type mockSubscriptionRepository struct {
	createFn                 func(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
	deleteFn                 func(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
	existsFn                 func(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
	countSubscribersFn       func(ctx context.Context, channelID uuid.UUID) (int64, error)
	listSubscribersFn        func(ctx context.Context, channelID uuid.UUID, page model.PageRequest) ([]model.Subscriber, int64, error)
	listSubscribedChannelsFn func(ctx context.Context, subscriberID uuid.UUID, page model.PageRequest) ([]model.SubscribedChannel, int64, error)

	createCalls []subscriptionCall
	deleteCalls []subscriptionCall
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	m.createCalls = append(m.createCalls, subscriptionCall{subscriberID, channelID})
	if m.createFn != nil {
		return m.createFn(ctx, subscriberID, channelID)
	}
	return true, nil
}

func (m *mockSubscriptionRepository) Delete(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	m.deleteCalls = append(m.deleteCalls, subscriptionCall{subscriberID, channelID})
	if m.deleteFn != nil {
		return m.deleteFn(ctx, subscriberID, channelID)
	}
	return false, nil
}

func (m *mockSubscriptionRepository) Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, subscriberID, channelID)
	}
	return false, nil
}

func (m *mockSubscriptionRepository) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error) {
	if m.countSubscribersFn != nil {
		return m.countSubscribersFn(ctx, channelID)
	}
	return 0, nil
}

func (m *mockSubscriptionRepository) ListSubscribers(ctx context.Context, channelID uuid.UUID, page model.PageRequest) ([]model.Subscriber, int64, error) {
	if m.listSubscribersFn != nil {
		return m.listSubscribersFn(ctx, channelID, page)
	}
	return nil, 0, nil
}

func (m *mockSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID, page model.PageRequest) ([]model.SubscribedChannel, int64, error) {
	if m.listSubscribedChannelsFn != nil {
		return m.listSubscribedChannelsFn(ctx, subscriberID, page)
	}
	return nil, 0, nil
}

type mockTweetRepository struct {
	createFn        func(ctx context.Context, tweet *model.Tweet) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*model.Tweet, error)
	updateContentFn func(ctx context.Context, id uuid.UUID, content string) (*model.Tweet, error)
	deleteCascadeFn func(ctx context.Context, id uuid.UUID) error
	listByOwnerFn   func(ctx context.Context, ownerID uuid.UUID, viewerID *uuid.UUID, page model.PageRequest) ([]model.Tweet, int64, error)

	createCalls        []*model.Tweet
	deleteCascadeCalls []uuid.UUID
}

func (m *mockTweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	m.createCalls = append(m.createCalls, tweet)
	if m.createFn != nil {
		return m.createFn(ctx, tweet)
	}
	return nil
}

func (m *mockTweetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrTweetNotFound
}

func (m *mockTweetRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Tweet, error) {
	if m.updateContentFn != nil {
		return m.updateContentFn(ctx, id, content)
	}
	return nil, model.ErrTweetNotFound
}

func (m *mockTweetRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	m.deleteCascadeCalls = append(m.deleteCascadeCalls, id)
	if m.deleteCascadeFn != nil {
		return m.deleteCascadeFn(ctx, id)
	}
	return nil
}

func (m *mockTweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, viewerID *uuid.UUID, page model.PageRequest) ([]model.Tweet, int64, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID, viewerID, page)
	}
	return nil, 0, nil
}

// =============================================================================
// MOCK MEDIA STORE
// =============================================================================

type mockMediaStore struct {
	uploadAvatarFn    func(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.StoredAsset, error)
	uploadCoverFn     func(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.StoredAsset, error)
	uploadThumbnailFn func(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.StoredAsset, error)
	uploadVideoFn     func(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.StoredAsset, error)
	deleteObjectFn    func(ctx context.Context, key string) error

	uploadCalls []string
	deleteCalls []string
}

func (m *mockMediaStore) UploadAvatar(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.StoredAsset, error) {
	m.uploadCalls = append(m.uploadCalls, "avatar")
	if m.uploadAvatarFn != nil {
		return m.uploadAvatarFn(ctx, file, header)
	}
	return &model.StoredAsset{URL: "https://cdn.test/avatars/new.jpg", Key: "avatars/new.jpg"}, nil
}

func (m *mockMediaStore) UploadCoverImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.StoredAsset, error) {
	m.uploadCalls = append(m.uploadCalls, "cover")
	if m.uploadCoverFn != nil {
		return m.uploadCoverFn(ctx, file, header)
	}
	return &model.StoredAsset{URL: "https://cdn.test/covers/new.jpg", Key: "covers/new.jpg"}, nil
}

func (m *mockMediaStore) UploadThumbnail(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.StoredAsset, error) {
	m.uploadCalls = append(m.uploadCalls, "thumbnail")
	if m.uploadThumbnailFn != nil {
		return m.uploadThumbnailFn(ctx, file, header)
	}
	return &model.StoredAsset{URL: "https://cdn.test/thumbnails/new.jpg", Key: "thumbnails/new.jpg"}, nil
}

func (m *mockMediaStore) UploadVideo(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*model.StoredAsset, error) {
	m.uploadCalls = append(m.uploadCalls, "video")
	if m.uploadVideoFn != nil {
		return m.uploadVideoFn(ctx, file, header)
	}
	return &model.StoredAsset{URL: "https://cdn.test/videos/new.mp4", Key: "videos/new.mp4"}, nil
}

func (m *mockMediaStore) DeleteObject(ctx context.Context, key string) error {
	m.deleteCalls = append(m.deleteCalls, key)
	if m.deleteObjectFn != nil {
		return m.deleteObjectFn(ctx, key)
	}
	return nil
}

type inMemoryFile struct{ *bytes.Reader }

func (inMemoryFile) Close() error { return nil }

// memoryFile returns a non-nil multipart.File for upload paths in tests.
func memoryFile() multipart.File {
	return inMemoryFile{bytes.NewReader([]byte("file contents"))}
}
