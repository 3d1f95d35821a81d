package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"vidtube/internal/httputil"
	"vidtube/internal/model"
	"vidtube/internal/service"
	"vidtube/internal/transport/http/middleware"
)

type PlaylistHandler struct {
	playlistService *service.PlaylistService
}

func NewPlaylistHandler(playlistService *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{
		playlistService: playlistService,
	}
}

// Create makes a new playlist for the caller.
// POST /playlists
func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req model.CreatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	playlist, err := h.playlistService.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPlaylistNameEmpty),
			errors.Is(err, model.ErrPlaylistNameLong):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[Playlist] Create: %v", err)
			httputil.WriteInternalError(w, "Failed to create playlist")
		}
		return
	}

	httputil.WriteData(w, http.StatusCreated, playlist, "Playlist created")
}

// GetByID returns the playlist with its videos expanded.
// GET /playlists/{id}
func (h *PlaylistHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	playlistID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid playlist ID")
		return
	}

	detail, err := h.playlistService.GetDetail(r.Context(), playlistID)
	if err != nil {
		if errors.Is(err, model.ErrPlaylistNotFound) {
			httputil.WriteNotFound(w, "Playlist not found")
			return
		}
		log.Printf("[Playlist] GetByID: %v", err)
		httputil.WriteInternalError(w, "Failed to get playlist")
		return
	}

	httputil.WriteData(w, http.StatusOK, detail, "Playlist fetched")
}

// ListByUser returns one page of a user's playlists.
// GET /users/{id}/playlists
func (h *PlaylistHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	page := parsePage(r)
	playlists, total, err := h.playlistService.ListByOwner(r.Context(), ownerID, page)
	if err != nil {
		log.Printf("[Playlist] ListByUser: %v", err)
		httputil.WriteInternalError(w, "Failed to list playlists")
		return
	}

	httputil.WriteData(w, http.StatusOK, map[string]interface{}{
		"playlists":   playlists,
		"total_count": total,
		"total_pages": model.TotalPages(total, page.Limit),
		"page":        page.Page,
	}, "Playlists fetched")
}

// Update patches name and/or description.
// PATCH /playlists/{id}
func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	playlistID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid playlist ID")
		return
	}

	var req model.UpdatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	playlist, err := h.playlistService.Update(r.Context(), playlistID, userID, &req)
	if err != nil {
		h.writePlaylistError(w, err, "update")
		return
	}

	httputil.WriteData(w, http.StatusOK, playlist, "Playlist updated")
}

// Delete removes the playlist; member videos survive.
// DELETE /playlists/{id}
func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	playlistID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid playlist ID")
		return
	}

	if err := h.playlistService.Delete(r.Context(), playlistID, userID); err != nil {
		h.writePlaylistError(w, err, "delete")
		return
	}

	httputil.WriteData(w, http.StatusOK, nil, "Playlist deleted")
}

// AddVideo adds a video to the playlist; re-adding is a no-op.
// POST /playlists/{id}/videos/{videoID}
func (h *PlaylistHandler) AddVideo(w http.ResponseWriter, r *http.Request) {
	h.memberOp(w, r, h.playlistService.AddVideo, "Video added to playlist")
}

// RemoveVideo removes a video from the playlist.
// DELETE /playlists/{id}/videos/{videoID}
func (h *PlaylistHandler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	h.memberOp(w, r, h.playlistService.RemoveVideo, "Video removed from playlist")
}

type memberOpFunc func(ctx context.Context, playlistID, videoID, callerID uuid.UUID) error

func (h *PlaylistHandler) memberOp(w http.ResponseWriter, r *http.Request, op memberOpFunc, message string) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	playlistID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid playlist ID")
		return
	}
	videoID, err := parseUUIDParam(r, "videoID")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid video ID")
		return
	}

	if err := op(r.Context(), playlistID, videoID, userID); err != nil {
		if errors.Is(err, model.ErrVideoNotFound) {
			httputil.WriteNotFound(w, "Video not found")
			return
		}
		h.writePlaylistError(w, err, "modify")
		return
	}

	httputil.WriteData(w, http.StatusOK, nil, message)
}

func (h *PlaylistHandler) writePlaylistError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, model.ErrPlaylistNotFound):
		httputil.WriteNotFound(w, "Playlist not found")
	case errors.Is(err, model.ErrNotPlaylistOwner):
		httputil.WriteForbidden(w, "Only the owner may "+action+" this playlist")
	case errors.Is(err, model.ErrPlaylistNameEmpty),
		errors.Is(err, model.ErrPlaylistNameLong):
		httputil.WriteBadRequest(w, err.Error())
	default:
		log.Printf("[Playlist] %s: %v", action, err)
		httputil.WriteInternalError(w, "Failed to "+action+" playlist")
	}
}
