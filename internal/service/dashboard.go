package service

import (
	"context"

	"github.com/google/uuid"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// DashboardService serves the owner-facing channel overview
type DashboardService struct {
	videoRepo repository.VideoRepository
}

func NewDashboardService(videoRepo repository.VideoRepository) *DashboardService {
	return &DashboardService{videoRepo: videoRepo}
}

// GetStats aggregates the caller's channel numbers.
func (s *DashboardService) GetStats(ctx context.Context, ownerID uuid.UUID) (*model.ChannelStats, error) {
	return s.videoRepo.GetChannelStats(ctx, ownerID)
}

// ListVideos returns one page of the caller's videos, drafts included.
func (s *DashboardService) ListVideos(ctx context.Context, ownerID uuid.UUID, page model.PageRequest) (*model.ChannelVideosResponse, error) {
	page = page.Normalized()
	videos, total, err := s.videoRepo.ListChannelVideos(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}

	return &model.ChannelVideosResponse{
		Videos:     videos,
		TotalCount: total,
		TotalPages: model.TotalPages(total, page.Limit),
		Page:       page.Page,
	}, nil
}
