package service

import (
	"context"

	"github.com/google/uuid"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// LikeService handles toggling likes on videos, comments and tweets
type LikeService struct {
	repo        repository.LikeRepository
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	tweetRepo   repository.TweetRepository
}

func NewLikeService(repo repository.LikeRepository, videoRepo repository.VideoRepository, commentRepo repository.CommentRepository, tweetRepo repository.TweetRepository) *LikeService {
	return &LikeService{
		repo:        repo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
	}
}

// Toggle flips the like state for a (kind, target, user) triple and returns
// the resulting state. Delete runs first: if a like was removed the toggle is
// done; otherwise the insert runs, and its unique index absorbs a concurrent
// duplicate. Either way the caller learns the end state.
func (s *LikeService) Toggle(ctx context.Context, kind model.LikeKind, targetID, userID uuid.UUID) (*model.ToggleResult, error) {
	if !kind.Valid() {
		return nil, model.ErrInvalidLikeKind
	}

	if err := s.checkTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	removed, err := s.repo.Delete(ctx, kind, targetID, userID)
	if err != nil {
		return nil, err
	}
	if removed {
		return &model.ToggleResult{Active: false}, nil
	}

	if _, err := s.repo.Create(ctx, kind, targetID, userID); err != nil {
		return nil, err
	}
	return &model.ToggleResult{Active: true}, nil
}

// checkTarget verifies the like target exists before an edge is written.
func (s *LikeService) checkTarget(ctx context.Context, kind model.LikeKind, targetID uuid.UUID) error {
	switch kind {
	case model.LikeKindVideo:
		video, err := s.videoRepo.GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		if !video.IsPublished {
			return model.ErrVideoNotFound
		}
	case model.LikeKindComment:
		if _, err := s.commentRepo.GetByID(ctx, targetID); err != nil {
			return err
		}
	case model.LikeKindTweet:
		if _, err := s.tweetRepo.GetByID(ctx, targetID); err != nil {
			return err
		}
	default:
		return model.ErrInvalidLikeKind
	}
	return nil
}

// ListLikedVideos returns one page of the user's liked videos.
func (s *LikeService) ListLikedVideos(ctx context.Context, userID uuid.UUID, page model.PageRequest) (*model.LikedVideosResponse, error) {
	page = page.Normalized()
	videos, total, err := s.repo.ListLikedVideos(ctx, userID, page)
	if err != nil {
		return nil, err
	}

	return &model.LikedVideosResponse{
		Videos:     videos,
		TotalCount: total,
		TotalPages: model.TotalPages(total, page.Limit),
		Page:       page.Page,
	}, nil
}
