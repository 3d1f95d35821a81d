package model

// ChannelStats is the owner-facing dashboard summary.
type ChannelStats struct {
	TotalVideos      int64 `db:"total_videos" json:"total_videos"`
	TotalViews       int64 `db:"total_views" json:"total_views"`
	TotalSubscribers int64 `db:"total_subscribers" json:"total_subscribers"`
	TotalLikes       int64 `db:"total_likes" json:"total_likes"`
}

// ChannelVideo is one row of the owner's video table, drafts included.
type ChannelVideo struct {
	Video
	LikesCount int64 `db:"likes_count" json:"likes_count"`
}

// ChannelVideosResponse is the paginated owner video list.
type ChannelVideosResponse struct {
	Videos     []ChannelVideo `json:"videos"`
	TotalCount int64          `json:"total_count"`
	TotalPages int            `json:"total_pages"`
	Page       int            `json:"page"`
}
