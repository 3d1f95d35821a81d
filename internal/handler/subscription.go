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

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

// Toggle flips the caller's subscription to a channel.
// POST /subscriptions/{channelID}
func (h *SubscriptionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	channelID, err := parseUUIDParam(r, "channelID")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid channel ID")
		return
	}

	result, err := h.subscriptionService.Toggle(r.Context(), userID, channelID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCannotSubscribeSelf):
			httputil.WriteBadRequest(w, "Cannot subscribe to your own channel")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "Channel not found")
		default:
			log.Printf("[Subscription] Toggle: %v", err)
			httputil.WriteInternalError(w, "Failed to toggle subscription")
		}
		return
	}

	httputil.WriteData(w, http.StatusOK, result, "Subscription toggled")
}

// ListSubscribers returns one page of a channel's subscribers.
// GET /subscriptions/{channelID}/subscribers
func (h *SubscriptionHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	channelID, err := parseUUIDParam(r, "channelID")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid channel ID")
		return
	}

	list, err := h.subscriptionService.ListSubscribers(r.Context(), channelID, parsePage(r))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "Channel not found")
			return
		}
		log.Printf("[Subscription] ListSubscribers: %v", err)
		httputil.WriteInternalError(w, "Failed to list subscribers")
		return
	}

	httputil.WriteData(w, http.StatusOK, list, "Subscribers fetched")
}

// ListSubscribedChannels returns one page of the channels a user follows.
// GET /subscriptions/{subscriberID}/channels
func (h *SubscriptionHandler) ListSubscribedChannels(w http.ResponseWriter, r *http.Request) {
	subscriberID, err := parseUUIDParam(r, "subscriberID")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid subscriber ID")
		return
	}

	list, err := h.subscriptionService.ListSubscribedChannels(r.Context(), subscriberID, parsePage(r))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[Subscription] ListSubscribedChannels: %v", err)
		httputil.WriteInternalError(w, "Failed to list subscribed channels")
		return
	}

	httputil.WriteData(w, http.StatusOK, list, "Subscribed channels fetched")
}
