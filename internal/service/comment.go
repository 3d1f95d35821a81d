package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// CommentService handles business logic for comment operations
type CommentService struct {
	repo      repository.CommentRepository
	videoRepo repository.VideoRepository
}

func NewCommentService(repo repository.CommentRepository, videoRepo repository.VideoRepository) *CommentService {
	return &CommentService{
		repo:      repo,
		videoRepo: videoRepo,
	}
}

func validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return model.ErrContentRequired
	}
	if len(content) > model.MaxCommentLength {
		return model.ErrContentTooLong
	}
	return nil
}

// Create adds a comment to a published video.
func (s *CommentService) Create(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*model.Comment, error) {
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && video.OwnerID != ownerID {
		return nil, model.ErrVideoNotFound
	}

	comment := &model.Comment{
		VideoID: videoID,
		OwnerID: ownerID,
		Content: strings.TrimSpace(content),
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// Update replaces the comment text. Only the author may update.
func (s *CommentService) Update(ctx context.Context, commentID, callerID uuid.UUID, content string) (*model.Comment, error) {
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.OwnerID != callerID {
		return nil, model.ErrNotCommentOwner
	}

	return s.repo.UpdateContent(ctx, commentID, strings.TrimSpace(content))
}

// Delete removes the comment and its likes. Only the author may delete.
func (s *CommentService) Delete(ctx context.Context, commentID, callerID uuid.UUID) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.OwnerID != callerID {
		return model.ErrNotCommentOwner
	}

	return s.repo.DeleteCascade(ctx, commentID)
}

// ListByVideo returns one page of a video's comments with like aggregates.
// Drafts read as not-found to anyone but the owner.
func (s *CommentService) ListByVideo(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID, page model.PageRequest) (*model.CommentListResponse, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && (viewerID == nil || *viewerID != video.OwnerID) {
		return nil, model.ErrVideoNotFound
	}

	page = page.Normalized()
	comments, total, err := s.repo.ListByVideo(ctx, videoID, viewerID, page)
	if err != nil {
		return nil, err
	}

	return &model.CommentListResponse{
		Comments:   comments,
		TotalCount: total,
		TotalPages: model.TotalPages(total, page.Limit),
		Page:       page.Page,
	}, nil
}
