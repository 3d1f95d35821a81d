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

type TweetHandler struct {
	tweetService *service.TweetService
}

func NewTweetHandler(tweetService *service.TweetService) *TweetHandler {
	return &TweetHandler{
		tweetService: tweetService,
	}
}

// Create posts a tweet on the caller's channel.
// POST /tweets
func (h *TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req model.CreateTweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	tweet, err := h.tweetService.Create(r.Context(), userID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrContentRequired),
			errors.Is(err, model.ErrContentTooLong):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[Tweet] Create: %v", err)
			httputil.WriteInternalError(w, "Failed to create tweet")
		}
		return
	}

	httputil.WriteData(w, http.StatusCreated, tweet, "Tweet created")
}

// ListByUser returns one page of a user's tweets.
// GET /users/{id}/tweets
func (h *TweetHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	ownerID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	list, err := h.tweetService.ListByOwner(r.Context(), ownerID, viewerID(r), parsePage(r))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[Tweet] ListByUser: %v", err)
		httputil.WriteInternalError(w, "Failed to list tweets")
		return
	}

	httputil.WriteData(w, http.StatusOK, list, "Tweets fetched")
}

// Update replaces the tweet text.
// PATCH /tweets/{id}
func (h *TweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	tweetID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid tweet ID")
		return
	}

	var req model.UpdateTweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	tweet, err := h.tweetService.Update(r.Context(), tweetID, userID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTweetNotFound):
			httputil.WriteNotFound(w, "Tweet not found")
		case errors.Is(err, model.ErrNotTweetOwner):
			httputil.WriteForbidden(w, "Only the author may modify this tweet")
		case errors.Is(err, model.ErrContentRequired),
			errors.Is(err, model.ErrContentTooLong):
			httputil.WriteBadRequest(w, err.Error())
		default:
			log.Printf("[Tweet] Update: %v", err)
			httputil.WriteInternalError(w, "Failed to update tweet")
		}
		return
	}

	httputil.WriteData(w, http.StatusOK, tweet, "Tweet updated")
}

// Delete removes the tweet and its likes.
// DELETE /tweets/{id}
func (h *TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	tweetID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid tweet ID")
		return
	}

	if err := h.tweetService.Delete(r.Context(), tweetID, userID); err != nil {
		switch {
		case errors.Is(err, model.ErrTweetNotFound):
			httputil.WriteNotFound(w, "Tweet not found")
		case errors.Is(err, model.ErrNotTweetOwner):
			httputil.WriteForbidden(w, "Only the author may delete this tweet")
		default:
			log.Printf("[Tweet] Delete: %v", err)
			httputil.WriteInternalError(w, "Failed to delete tweet")
		}
		return
	}

	httputil.WriteData(w, http.StatusOK, nil, "Tweet deleted")
}
