package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vidtube/internal/model"
	"vidtube/internal/transport/http/middleware"
)

// parseUUIDParam reads a path parameter and parses it as a UUID. A malformed
// identifier is rejected before any storage access happens.
func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// parsePage builds a PageRequest from the standard query parameters
// (page, limit, sort_by, sort_order). Out-of-range values are clamped.
func parsePage(r *http.Request) model.PageRequest {
	q := r.URL.Query()

	page := model.PageRequest{
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil {
		page.Page = n
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil {
		page.Limit = n
	}
	return page.Normalized()
}

// viewerID returns the authenticated user ID, or nil for anonymous requests.
func viewerID(r *http.Request) *uuid.UUID {
	if id, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		return &id
	}
	return nil
}

// clientIP extracts the client IP from the request, honoring proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
