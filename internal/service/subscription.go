package service

import (
	"context"

	"github.com/google/uuid"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// SubscriptionService handles subscribe/unsubscribe and audience queries
type SubscriptionService struct {
	repo     repository.SubscriptionRepository
	userRepo repository.UserRepository
}

func NewSubscriptionService(repo repository.SubscriptionRepository, userRepo repository.UserRepository) *SubscriptionService {
	return &SubscriptionService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Toggle flips the subscription state toward a channel. Subscribing to
// yourself is rejected outright.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (*model.ToggleResult, error) {
	if subscriberID == channelID {
		return nil, model.ErrCannotSubscribeSelf
	}

	if _, err := s.userRepo.GetByID(ctx, channelID); err != nil {
		return nil, err
	}

	removed, err := s.repo.Delete(ctx, subscriberID, channelID)
	if err != nil {
		return nil, err
	}
	if removed {
		return &model.ToggleResult{Active: false}, nil
	}

	if _, err := s.repo.Create(ctx, subscriberID, channelID); err != nil {
		return nil, err
	}
	return &model.ToggleResult{Active: true}, nil
}

// ListSubscribers returns one page of a channel's subscribers.
func (s *SubscriptionService) ListSubscribers(ctx context.Context, channelID uuid.UUID, page model.PageRequest) (*model.SubscriberListResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, channelID); err != nil {
		return nil, err
	}

	page = page.Normalized()
	subscribers, total, err := s.repo.ListSubscribers(ctx, channelID, page)
	if err != nil {
		return nil, err
	}

	return &model.SubscriberListResponse{
		Subscribers: subscribers,
		TotalCount:  total,
		TotalPages:  model.TotalPages(total, page.Limit),
		Page:        page.Page,
	}, nil
}

// ListSubscribedChannels returns one page of the channels a user follows.
func (s *SubscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID, page model.PageRequest) (*model.SubscribedChannelsResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, subscriberID); err != nil {
		return nil, err
	}

	page = page.Normalized()
	channels, total, err := s.repo.ListSubscribedChannels(ctx, subscriberID, page)
	if err != nil {
		return nil, err
	}

	return &model.SubscribedChannelsResponse{
		Channels:   channels,
		TotalCount: total,
		TotalPages: model.TotalPages(total, page.Limit),
		Page:       page.Page,
	}, nil
}
