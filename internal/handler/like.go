package handler

import (
	"errors"
	"log"
	"net/http"

	"vidtube/internal/httputil"
	"vidtube/internal/model"
	"vidtube/internal/service"
	"vidtube/internal/transport/http/middleware"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

// ToggleVideo flips the like state on a video.
// POST /likes/video/{id}
func (h *LikeHandler) ToggleVideo(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, model.LikeKindVideo)
}

// ToggleComment flips the like state on a comment.
// POST /likes/comment/{id}
func (h *LikeHandler) ToggleComment(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, model.LikeKindComment)
}

// ToggleTweet flips the like state on a tweet.
// POST /likes/tweet/{id}
func (h *LikeHandler) ToggleTweet(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, model.LikeKindTweet)
}

func (h *LikeHandler) toggle(w http.ResponseWriter, r *http.Request, kind model.LikeKind) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	targetID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid target ID")
		return
	}

	result, err := h.likeService.Toggle(r.Context(), kind, targetID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrVideoNotFound),
			errors.Is(err, model.ErrCommentNotFound),
			errors.Is(err, model.ErrTweetNotFound):
			httputil.WriteNotFound(w, "Target not found")
		case errors.Is(err, model.ErrInvalidLikeKind):
			httputil.WriteBadRequest(w, "Invalid like target kind")
		default:
			log.Printf("[Like] Toggle %s: %v", kind, err)
			httputil.WriteInternalError(w, "Failed to toggle like")
		}
		return
	}

	httputil.WriteData(w, http.StatusOK, result, "Like toggled")
}

// ListLikedVideos returns one page of the caller's liked videos.
// GET /likes/videos
func (h *LikeHandler) ListLikedVideos(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	list, err := h.likeService.ListLikedVideos(r.Context(), userID, parsePage(r))
	if err != nil {
		log.Printf("[Like] ListLikedVideos: %v", err)
		httputil.WriteInternalError(w, "Failed to list liked videos")
		return
	}

	httputil.WriteData(w, http.StatusOK, list, "Liked videos fetched")
}
