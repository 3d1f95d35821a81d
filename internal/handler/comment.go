package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"vidtube/internal/httputil"
	"vidtube/internal/model"
	"vidtube/internal/service"
	"vidtube/internal/transport/http/middleware"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// Create adds a comment to a video.
// POST /videos/{id}/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	videoID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid video ID")
		return
	}

	var req model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	comment, err := h.commentService.Create(r.Context(), videoID, userID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrVideoNotFound):
			httputil.WriteNotFound(w, "Video not found")
		case errors.Is(err, model.ErrContentRequired),
			errors.Is(err, model.ErrContentTooLong):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[Comment] Create: %v", err)
			httputil.WriteInternalError(w, "Failed to create comment")
		}
		return
	}

	httputil.WriteData(w, http.StatusCreated, comment, "Comment created")
}

// ListByVideo returns one page of a video's comments.
// GET /videos/{id}/comments
func (h *CommentHandler) ListByVideo(w http.ResponseWriter, r *http.Request) {
	videoID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid video ID")
		return
	}

	list, err := h.commentService.ListByVideo(r.Context(), videoID, viewerID(r), parsePage(r))
	if err != nil {
		if errors.Is(err, model.ErrVideoNotFound) {
			httputil.WriteNotFound(w, "Video not found")
			return
		}
		log.Printf("[Comment] ListByVideo: %v", err)
		httputil.WriteInternalError(w, "Failed to list comments")
		return
	}

	httputil.WriteData(w, http.StatusOK, list, "Comments fetched")
}

// Update replaces the comment text.
// PATCH /comments/{id}
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	commentID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid comment ID")
		return
	}

	var req model.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	comment, err := h.commentService.Update(r.Context(), commentID, userID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCommentNotFound):
			httputil.WriteNotFound(w, "Comment not found")
		case errors.Is(err, model.ErrNotCommentOwner):
			httputil.WriteForbidden(w, "Only the author may modify this comment")
		case errors.Is(err, model.ErrContentRequired),
			errors.Is(err, model.ErrContentTooLong):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[Comment] Update: %v", err)
			httputil.WriteInternalError(w, "Failed to update comment")
		}
		return
	}

	httputil.WriteData(w, http.StatusOK, comment, "Comment updated")
}

// Delete removes the comment and its likes.
// DELETE /comments/{id}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	commentID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid comment ID")
		return
	}

	if err := h.commentService.Delete(r.Context(), commentID, userID); err != nil {
		switch {
		case errors.Is(err, model.ErrCommentNotFound):
			httputil.WriteNotFound(w, "Comment not found")
		case errors.Is(err, model.ErrNotCommentOwner):
			httputil.WriteForbidden(w, "Only the author may delete this comment")
		default:
			log.Printf("[Comment] Delete: %v", err)
			httputil.WriteInternalError(w, "Failed to delete comment")
		}
		return
	}

	httputil.WriteData(w, http.StatusOK, nil, "Comment deleted")
}
