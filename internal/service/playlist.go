package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// PlaylistService handles business logic for playlist operations
type PlaylistService struct {
	repo      repository.PlaylistRepository
	videoRepo repository.VideoRepository
}

func NewPlaylistService(repo repository.PlaylistRepository, videoRepo repository.VideoRepository) *PlaylistService {
	return &PlaylistService{
		repo:      repo,
		videoRepo: videoRepo,
	}
}

func validatePlaylistName(name string) error {
	if strings.TrimSpace(name) == "" {
		return model.ErrPlaylistNameEmpty
	}
	if len(name) > model.MaxPlaylistNameLength {
		return model.ErrPlaylistNameLong
	}
	return nil
}

// Create makes a new empty playlist for the caller.
func (s *PlaylistService) Create(ctx context.Context, ownerID uuid.UUID, req *model.CreatePlaylistRequest) (*model.Playlist, error) {
	if err := validatePlaylistName(req.Name); err != nil {
		return nil, err
	}

	playlist := &model.Playlist{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, playlist); err != nil {
		return nil, err
	}

	return playlist, nil
}

// GetDetail returns the playlist with its videos expanded.
func (s *PlaylistService) GetDetail(ctx context.Context, playlistID uuid.UUID) (*model.PlaylistDetail, error) {
	return s.repo.GetDetail(ctx, playlistID)
}

// ListByOwner returns one page of a user's playlists.
func (s *PlaylistService) ListByOwner(ctx context.Context, ownerID uuid.UUID, page model.PageRequest) ([]model.Playlist, int64, error) {
	return s.repo.ListByOwner(ctx, ownerID, page.Normalized())
}

// Update patches name and/or description. Only the owner may update.
func (s *PlaylistService) Update(ctx context.Context, playlistID, callerID uuid.UUID, req *model.UpdatePlaylistRequest) (*model.Playlist, error) {
	playlist, err := s.repo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != callerID {
		return nil, model.ErrNotPlaylistOwner
	}

	if req.Name != nil {
		if err := validatePlaylistName(*req.Name); err != nil {
			return nil, err
		}
	}

	return s.repo.UpdateDetails(ctx, playlistID, req.Name, req.Description)
}

// Delete removes the playlist and its membership rows. Only the owner may
// delete; the member videos themselves survive.
func (s *PlaylistService) Delete(ctx context.Context, playlistID, callerID uuid.UUID) error {
	playlist, err := s.repo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.OwnerID != callerID {
		return model.ErrNotPlaylistOwner
	}

	return s.repo.Delete(ctx, playlistID)
}

// AddVideo adds a video to the caller's playlist. Re-adding a member is a
// no-op so retried requests converge on the same state.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, callerID uuid.UUID) error {
	playlist, err := s.repo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.OwnerID != callerID {
		return model.ErrNotPlaylistOwner
	}

	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if !video.IsPublished && video.OwnerID != callerID {
		return model.ErrVideoNotFound
	}

	return s.repo.AddVideo(ctx, playlistID, videoID)
}

// RemoveVideo removes a video from the caller's playlist.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, callerID uuid.UUID) error {
	playlist, err := s.repo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.OwnerID != callerID {
		return model.ErrNotPlaylistOwner
	}

	return s.repo.RemoveVideo(ctx, playlistID, videoID)
}
