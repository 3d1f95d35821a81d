package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Subscription is a directed edge: subscriber follows channel. The
// (subscriber, channel) pair is unique and acts as the toggle key.
type Subscription struct {
	ID           uuid.UUID `db:"id" json:"id"`
	SubscriberID uuid.UUID `db:"subscriber_id" json:"subscriber_id"`
	ChannelID    uuid.UUID `db:"channel_id" json:"channel_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Subscriber is one entry of a channel's subscriber list, with the
// subscriber's own audience size and whether the channel follows them back.
type Subscriber struct {
	UserSummary
	TotalSubscribers int  `db:"total_subscribers" json:"total_subscribers"`
	SubscribedBack   bool `db:"subscribed_back" json:"subscribed_back"`
}

// SubscriberListResponse is the paginated subscriber list of a channel.
type SubscriberListResponse struct {
	Subscribers []Subscriber `json:"subscribers"`
	TotalCount  int64        `json:"total_count"`
	TotalPages  int          `json:"total_pages"`
	Page        int          `json:"page"`
}

// SubscribedChannel is one channel a user follows, with that channel's
// latest published video for preview.
type SubscribedChannel struct {
	UserSummary
	LatestVideo *Video `json:"latest_video,omitempty"`
}

// SubscribedChannelsResponse is the paginated subscribed-channel list.
type SubscribedChannelsResponse struct {
	Channels   []SubscribedChannel `json:"channels"`
	TotalCount int64               `json:"total_count"`
	TotalPages int                 `json:"total_pages"`
	Page       int                 `json:"page"`
}

// Subscription errors
var (
	ErrCannotSubscribeSelf = errors.New("cannot subscribe to yourself")
)
