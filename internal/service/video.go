package service

import (
	"context"
	"log"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// VideoService handles business logic for video operations
type VideoService struct {
	repo     repository.VideoRepository
	userRepo repository.UserRepository
	likeRepo repository.LikeRepository
	subRepo  repository.SubscriptionRepository
	media    MediaStore
}

func NewVideoService(repo repository.VideoRepository, userRepo repository.UserRepository, likeRepo repository.LikeRepository, subRepo repository.SubscriptionRepository, media MediaStore) *VideoService {
	return &VideoService{
		repo:     repo,
		userRepo: userRepo,
		likeRepo: likeRepo,
		subRepo:  subRepo,
		media:    media,
	}
}

func validateVideoDetails(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return model.ErrTitleRequired
	}
	if len(title) > model.MaxVideoTitleLength {
		return model.ErrTitleTooLong
	}
	if len(description) > model.MaxVideoDescriptionLength {
		return model.ErrDescriptionLong
	}
	return nil
}

// Publish uploads the video file and thumbnail, then inserts the row. The
// uploads happen before the insert, so an insert failure leaves orphaned
// objects; those are released best-effort and otherwise swept out of band.
func (s *VideoService) Publish(ctx context.Context, ownerID uuid.UUID, req *model.PublishVideoRequest,
	videoFile multipart.File, videoHeader *multipart.FileHeader,
	thumbFile multipart.File, thumbHeader *multipart.FileHeader) (*model.Video, error) {

	if err := validateVideoDetails(req.Title, req.Description); err != nil {
		return nil, err
	}
	if req.Duration <= 0 {
		return nil, model.ErrInvalidDuration
	}

	videoAsset, err := s.media.UploadVideo(ctx, videoFile, videoHeader)
	if err != nil {
		return nil, err
	}

	thumbAsset, err := s.media.UploadThumbnail(ctx, thumbFile, thumbHeader)
	if err != nil {
		s.releaseAsset(ctx, videoAsset.Key)
		return nil, err
	}

	video := &model.Video{
		OwnerID:      ownerID,
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		VideoURL:     videoAsset.URL,
		VideoKey:     videoAsset.Key,
		ThumbnailURL: thumbAsset.URL,
		ThumbnailKey: thumbAsset.Key,
		Duration:     req.Duration,
		IsPublished:  true,
	}

	if err := s.repo.Create(ctx, video); err != nil {
		s.releaseAsset(ctx, videoAsset.Key)
		s.releaseAsset(ctx, thumbAsset.Key)
		return nil, err
	}

	return video, nil
}

// GetDetail assembles the single-video view: the video with its owner, like
// aggregates and the channel card. Drafts are only visible to their owner.
// A published video viewed by an authenticated user lands in their watch
// history and bumps the view counter.
func (s *VideoService) GetDetail(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*model.VideoDetail, error) {
	video, err := s.repo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	isOwner := viewerID != nil && *viewerID == video.OwnerID
	if !video.IsPublished && !isOwner {
		return nil, model.ErrVideoNotFound
	}

	detail := &model.VideoDetail{Video: *video}

	likesCount, err := s.likeRepo.Count(ctx, model.LikeKindVideo, videoID)
	if err == nil {
		detail.LikesCount = likesCount
	}
	if viewerID != nil {
		liked, err := s.likeRepo.Exists(ctx, model.LikeKindVideo, videoID, *viewerID)
		if err == nil {
			detail.IsLiked = liked
		}
	}

	if video.Owner != nil {
		card := &model.ChannelCard{UserSummary: *video.Owner}
		subs, err := s.subRepo.CountSubscribers(ctx, video.OwnerID)
		if err == nil {
			card.SubscriberCount = int(subs)
		}
		if viewerID != nil && !isOwner {
			subscribed, err := s.subRepo.Exists(ctx, *viewerID, video.OwnerID)
			if err == nil {
				card.IsSubscribed = subscribed
			}
		}
		detail.Channel = card
	}

	if video.IsPublished && viewerID != nil {
		if err := s.repo.IncrementViews(ctx, videoID); err != nil {
			log.Printf("[Video] failed to increment views for %s: %v", videoID, err)
		} else {
			detail.Views++
		}
		if err := s.userRepo.UpsertWatchHistory(ctx, *viewerID, videoID); err != nil {
			log.Printf("[Video] failed to record watch history for %s: %v", videoID, err)
		}
	}

	return detail, nil
}

// List returns one page of published videos matching the filter. The
// unpublished view of a channel is only reachable through the dashboard.
func (s *VideoService) List(ctx context.Context, filter model.VideoFilter, page model.PageRequest) (*model.VideoListResponse, error) {
	filter.IncludeUnpublished = false
	page = page.Normalized()

	videos, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	return &model.VideoListResponse{
		Videos:     videos,
		TotalCount: total,
		TotalPages: model.TotalPages(total, page.Limit),
		Page:       page.Page,
	}, nil
}

// Update patches title/description and optionally swaps the thumbnail. Only
// the owner may update.
func (s *VideoService) Update(ctx context.Context, videoID, callerID uuid.UUID, req *model.UpdateVideoRequest,
	thumbFile multipart.File, thumbHeader *multipart.FileHeader) (*model.Video, error) {

	video, err := s.repo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video.OwnerID != callerID {
		return nil, model.ErrNotVideoOwner
	}

	if req.Title != nil || req.Description != nil {
		title := video.Title
		if req.Title != nil {
			title = *req.Title
		}
		description := video.Description
		if req.Description != nil {
			description = *req.Description
		}
		if err := validateVideoDetails(title, description); err != nil {
			return nil, err
		}
		if _, err := s.repo.UpdateDetails(ctx, videoID, req.Title, req.Description); err != nil {
			return nil, err
		}
	}

	if thumbFile != nil {
		asset, err := s.media.UploadThumbnail(ctx, thumbFile, thumbHeader)
		if err != nil {
			return nil, err
		}
		oldKey, err := s.repo.UpdateThumbnail(ctx, videoID, asset.URL, asset.Key)
		if err != nil {
			s.releaseAsset(ctx, asset.Key)
			return nil, err
		}
		s.releaseAsset(ctx, oldKey)
	}

	return s.repo.GetByID(ctx, videoID)
}

// TogglePublish flips the publish flag. Only the owner may toggle.
func (s *VideoService) TogglePublish(ctx context.Context, videoID, callerID uuid.UUID) (*model.Video, error) {
	video, err := s.repo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video.OwnerID != callerID {
		return nil, model.ErrNotVideoOwner
	}

	return s.repo.SetPublished(ctx, videoID, !video.IsPublished)
}

// Delete removes the video with its dependents, then releases the remote
// assets. The database cascade commits first; asset deletion failures are
// logged and left to an out-of-band sweep.
func (s *VideoService) Delete(ctx context.Context, videoID, callerID uuid.UUID) error {
	video, err := s.repo.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if video.OwnerID != callerID {
		return model.ErrNotVideoOwner
	}

	if err := s.repo.DeleteCascade(ctx, videoID); err != nil {
		return err
	}

	s.releaseAsset(ctx, video.VideoKey)
	s.releaseAsset(ctx, video.ThumbnailKey)
	return nil
}

func (s *VideoService) releaseAsset(ctx context.Context, key string) {
	if err := s.media.DeleteObject(ctx, key); err != nil {
		log.Printf("[Video] failed to delete object %s: %v", key, err)
	}
}
