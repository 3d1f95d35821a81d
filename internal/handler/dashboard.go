package handler

import (
	"log"
	"net/http"

	"vidtube/internal/httputil"
	"vidtube/internal/service"
	"vidtube/internal/transport/http/middleware"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats aggregates the caller's channel numbers.
// GET /dashboard/stats
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	stats, err := h.dashboardService.GetStats(r.Context(), userID)
	if err != nil {
		log.Printf("[Dashboard] GetStats: %v", err)
		httputil.WriteInternalError(w, "Failed to get channel stats")
		return
	}

	httputil.WriteData(w, http.StatusOK, stats, "Channel stats fetched")
}

// ListVideos returns one page of the caller's videos, drafts included.
// GET /dashboard/videos
func (h *DashboardHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	list, err := h.dashboardService.ListVideos(r.Context(), userID, parsePage(r))
	if err != nil {
		log.Printf("[Dashboard] ListVideos: %v", err)
		httputil.WriteInternalError(w, "Failed to list channel videos")
		return
	}

	httputil.WriteData(w, http.StatusOK, list, "Channel videos fetched")
}
