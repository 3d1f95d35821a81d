package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"vidtube/internal/model"
)

func publishedVideo(id, ownerID uuid.UUID) *model.Video {
	return &model.Video{ID: id, OwnerID: ownerID, IsPublished: true}
}

// =============================================================================
// TOGGLE TESTS
// =============================================================================
//
// Toggle tries the delete first. A removed row means the like existed and the
// toggle is done; otherwise the insert runs. Both outcomes report the end
// state, so retried requests converge.

func TestLikeService_Toggle_AddsWhenAbsent(t *testing.T) {
	videoID := uuid.New()
	userID := uuid.New()

	likeRepo := &mockLikeRepository{
		deleteFn: func(ctx context.Context, kind model.LikeKind, targetID, uid uuid.UUID) (bool, error) {
			return false, nil // nothing to remove
		},
	}
	videoRepo := &mockVideoRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Video, error) {
			return publishedVideo(videoID, uuid.New()), nil
		},
	}
	svc := NewLikeService(likeRepo, videoRepo, &mockCommentRepository{}, &mockTweetRepository{})

	result, err := svc.Toggle(context.Background(), model.LikeKindVideo, videoID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Active {
		t.Error("toggle should report active after adding a like")
	}
	if len(likeRepo.createCalls) != 1 {
		t.Errorf("Create called %d times, want 1", len(likeRepo.createCalls))
	}
}

func TestLikeService_Toggle_RemovesWhenPresent(t *testing.T) {
	videoID := uuid.New()
	userID := uuid.New()

	likeRepo := &mockLikeRepository{
		deleteFn: func(ctx context.Context, kind model.LikeKind, targetID, uid uuid.UUID) (bool, error) {
			return true, nil // existing like removed
		},
	}
	videoRepo := &mockVideoRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Video, error) {
			return publishedVideo(videoID, uuid.New()), nil
		},
	}
	svc := NewLikeService(likeRepo, videoRepo, &mockCommentRepository{}, &mockTweetRepository{})

	result, err := svc.Toggle(context.Background(), model.LikeKindVideo, videoID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Active {
		t.Error("toggle should report inactive after removing a like")
	}
	// The delete settled the toggle, so no insert should follow
	if len(likeRepo.createCalls) != 0 {
		t.Errorf("Create called %d times, want 0", len(likeRepo.createCalls))
	}
}

func TestLikeService_Toggle_InvalidKind(t *testing.T) {
	svc := NewLikeService(&mockLikeRepository{}, &mockVideoRepository{}, &mockCommentRepository{}, &mockTweetRepository{})

	_, err := svc.Toggle(context.Background(), model.LikeKind("playlist"), uuid.New(), uuid.New())

	if !errors.Is(err, model.ErrInvalidLikeKind) {
		t.Errorf("error = %v, want %v", err, model.ErrInvalidLikeKind)
	}
}

func TestLikeService_Toggle_DraftVideoHidden(t *testing.T) {
	videoID := uuid.New()

	likeRepo := &mockLikeRepository{}
	videoRepo := &mockVideoRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Video, error) {
			return &model.Video{ID: videoID, IsPublished: false}, nil
		},
	}
	svc := NewLikeService(likeRepo, videoRepo, &mockCommentRepository{}, &mockTweetRepository{})

	_, err := svc.Toggle(context.Background(), model.LikeKindVideo, videoID, uuid.New())

	// Drafts read as not-found, never as forbidden
	if !errors.Is(err, model.ErrVideoNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrVideoNotFound)
	}
	if len(likeRepo.deleteCalls)+len(likeRepo.createCalls) != 0 {
		t.Error("no like edge should be touched for a draft video")
	}
}

func TestLikeService_Toggle_CommentTarget(t *testing.T) {
	commentID := uuid.New()
	userID := uuid.New()

	likeRepo := &mockLikeRepository{}
	commentRepo := &mockCommentRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
			return &model.Comment{ID: commentID}, nil
		},
	}
	svc := NewLikeService(likeRepo, &mockVideoRepository{}, commentRepo, &mockTweetRepository{})

	result, err := svc.Toggle(context.Background(), model.LikeKindComment, commentID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Active {
		t.Error("toggle should report active")
	}
	if likeRepo.createCalls[0].Kind != model.LikeKindComment {
		t.Errorf("create kind = %v, want comment", likeRepo.createCalls[0].Kind)
	}
}

func TestLikeService_Toggle_MissingTweetTarget(t *testing.T) {
	svc := NewLikeService(&mockLikeRepository{}, &mockVideoRepository{}, &mockCommentRepository{}, &mockTweetRepository{})

	_, err := svc.Toggle(context.Background(), model.LikeKindTweet, uuid.New(), uuid.New())

	if !errors.Is(err, model.ErrTweetNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrTweetNotFound)
	}
}

// =============================================================================
// LIKED VIDEO LIST
// =============================================================================

func TestLikeService_ListLikedVideos(t *testing.T) {
	userID := uuid.New()

	likeRepo := &mockLikeRepository{
		listLikedVideosFn: func(ctx context.Context, uid uuid.UUID, page model.PageRequest) ([]model.LikedVideo, int64, error) {
			return []model.LikedVideo{{}, {}, {}}, 3, nil
		},
	}
	svc := NewLikeService(likeRepo, &mockVideoRepository{}, &mockCommentRepository{}, &mockTweetRepository{})

	resp, err := svc.ListLikedVideos(context.Background(), userID, model.PageRequest{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Videos) != 3 {
		t.Errorf("videos = %d, want 3", len(resp.Videos))
	}
	if resp.TotalPages != 1 {
		t.Errorf("total_pages = %d, want 1", resp.TotalPages)
	}
}
