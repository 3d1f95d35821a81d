package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// TweetService handles business logic for tweet operations
type TweetService struct {
	repo     repository.TweetRepository
	userRepo repository.UserRepository
}

func NewTweetService(repo repository.TweetRepository, userRepo repository.UserRepository) *TweetService {
	return &TweetService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func validateTweetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return model.ErrContentRequired
	}
	if len(content) > model.MaxTweetLength {
		return model.ErrContentTooLong
	}
	return nil
}

// Create posts a tweet on the caller's channel.
func (s *TweetService) Create(ctx context.Context, ownerID uuid.UUID, content string) (*model.Tweet, error) {
	if err := validateTweetContent(content); err != nil {
		return nil, err
	}

	tweet := &model.Tweet{
		OwnerID: ownerID,
		Content: strings.TrimSpace(content),
	}
	if err := s.repo.Create(ctx, tweet); err != nil {
		return nil, err
	}

	return tweet, nil
}

// Update replaces the tweet text. Only the author may update.
func (s *TweetService) Update(ctx context.Context, tweetID, callerID uuid.UUID, content string) (*model.Tweet, error) {
	if err := validateTweetContent(content); err != nil {
		return nil, err
	}

	tweet, err := s.repo.GetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if tweet.OwnerID != callerID {
		return nil, model.ErrNotTweetOwner
	}

	return s.repo.UpdateContent(ctx, tweetID, strings.TrimSpace(content))
}

// Delete removes the tweet and its likes. Only the author may delete.
func (s *TweetService) Delete(ctx context.Context, tweetID, callerID uuid.UUID) error {
	tweet, err := s.repo.GetByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet.OwnerID != callerID {
		return model.ErrNotTweetOwner
	}

	return s.repo.DeleteCascade(ctx, tweetID)
}

// ListByOwner returns one page of a user's tweets with like aggregates.
func (s *TweetService) ListByOwner(ctx context.Context, ownerID uuid.UUID, viewerID *uuid.UUID, page model.PageRequest) (*model.TweetListResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	page = page.Normalized()
	tweets, total, err := s.repo.ListByOwner(ctx, ownerID, viewerID, page)
	if err != nil {
		return nil, err
	}

	return &model.TweetListResponse{
		Tweets:     tweets,
		TotalCount: total,
		TotalPages: model.TotalPages(total, page.Limit),
		Page:       page.Page,
	}, nil
}
