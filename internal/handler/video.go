package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"vidtube/internal/httputil"
	"vidtube/internal/model"
	"vidtube/internal/service"
	"vidtube/internal/transport/http/middleware"
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
	}
}

// Publish handles the multipart upload of a video file plus thumbnail.
// POST /videos
func (h *VideoHandler) Publish(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	maxFormSize := int64(model.MaxVideoSizeBytes+model.MaxThumbSizeBytes) + 1024*1024 // allow form overhead
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			httputil.WriteBadRequest(w, "Content-Type must be multipart/form-data")
			return
		}
		if strings.Contains(err.Error(), "request body too large") {
			httputil.WriteBadRequestWithCode(w, model.CodeFileTooLarge, "Upload exceeds size limit")
			return
		}
		httputil.WriteBadRequest(w, "Invalid form data")
		return
	}

	duration, err := strconv.ParseFloat(r.FormValue("duration"), 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Duration must be a number of seconds")
		return
	}

	req := model.PublishVideoRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Duration:    duration,
	}

	videoFile, videoHeader, err := r.FormFile("video")
	if err != nil {
		httputil.WriteBadRequest(w, "Video file is required")
		return
	}
	defer videoFile.Close()

	thumbFile, thumbHeader, err := r.FormFile("thumbnail")
	if err != nil {
		httputil.WriteBadRequest(w, "Thumbnail image is required")
		return
	}
	defer thumbFile.Close()

	video, err := h.videoService.Publish(r.Context(), userID, &req, videoFile, videoHeader, thumbFile, thumbHeader)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTitleRequired),
			errors.Is(err, model.ErrTitleTooLong),
			errors.Is(err, model.ErrDescriptionLong),
			errors.Is(err, model.ErrInvalidDuration):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrFileTooLarge),
			errors.Is(err, model.ErrInvalidImageType),
			errors.Is(err, model.ErrInvalidVideoType):
			writeUploadError(w, err, "video")
		default:
			log.Printf("[Video] Publish: %v", err)
			httputil.WriteInternalError(w, "Failed to publish video")
		}
		return
	}

	httputil.WriteData(w, http.StatusCreated, video, "Video published successfully")
}

// List returns one page of published videos, optionally filtered by search
// query or owner.
// GET /videos
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.VideoFilter{Query: r.URL.Query().Get("query")}
	if ownerStr := r.URL.Query().Get("owner_id"); ownerStr != "" {
		ownerID, err := uuid.Parse(ownerStr)
		if err != nil {
			httputil.WriteBadRequest(w, "Invalid owner ID")
			return
		}
		filter.OwnerID = &ownerID
	}

	list, err := h.videoService.List(r.Context(), filter, parsePage(r))
	if err != nil {
		if errors.Is(err, model.ErrInvalidSortField) {
			httputil.WriteBadRequest(w, "Invalid sort field")
			return
		}
		log.Printf("[Video] List: %v", err)
		httputil.WriteInternalError(w, "Failed to list videos")
		return
	}

	httputil.WriteData(w, http.StatusOK, list, "Videos fetched")
}

// GetByID returns the assembled single-video view.
// GET /videos/{id}
func (h *VideoHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	videoID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid video ID")
		return
	}

	detail, err := h.videoService.GetDetail(r.Context(), videoID, viewerID(r))
	if err != nil {
		if errors.Is(err, model.ErrVideoNotFound) {
			httputil.WriteNotFound(w, "Video not found")
			return
		}
		log.Printf("[Video] GetByID: %v", err)
		httputil.WriteInternalError(w, "Failed to get video")
		return
	}

	httputil.WriteData(w, http.StatusOK, detail, "Video fetched")
}

// Update patches title/description and optionally swaps the thumbnail.
// Accepts JSON for text-only updates or multipart when a thumbnail rides along.
// PATCH /videos/{id}
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	videoID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid video ID")
		return
	}

	var req model.UpdateVideoRequest
	var video *model.Video

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		maxFormSize := int64(model.MaxThumbSizeBytes) + 1024*1024
		r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
		if err := r.ParseMultipartForm(maxFormSize); err != nil {
			httputil.WriteBadRequest(w, "Invalid form data")
			return
		}
		if v := r.FormValue("title"); v != "" {
			req.Title = &v
		}
		if _, ok := r.MultipartForm.Value["description"]; ok {
			v := r.FormValue("description")
			req.Description = &v
		}

		thumbFile, thumbHeader, err := r.FormFile("thumbnail")
		if err == nil {
			defer thumbFile.Close()
			video, err = h.videoService.Update(r.Context(), videoID, userID, &req, thumbFile, thumbHeader)
		} else if err == http.ErrMissingFile {
			video, err = h.videoService.Update(r.Context(), videoID, userID, &req, nil, nil)
		} else {
			httputil.WriteBadRequest(w, "Invalid thumbnail upload")
			return
		}
		h.writeUpdateResult(w, video, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	video, err = h.videoService.Update(r.Context(), videoID, userID, &req, nil, nil)
	h.writeUpdateResult(w, video, err)
}

func (h *VideoHandler) writeUpdateResult(w http.ResponseWriter, video *model.Video, err error) {
	if err != nil {
		switch {
		case errors.Is(err, model.ErrVideoNotFound):
			httputil.WriteNotFound(w, "Video not found")
		case errors.Is(err, model.ErrNotVideoOwner):
			httputil.WriteForbidden(w, "Only the owner may modify this video")
		case errors.Is(err, model.ErrTitleRequired),
			errors.Is(err, model.ErrTitleTooLong),
			errors.Is(err, model.ErrDescriptionLong):
			httputil.WriteBadRequest(w, err.Error())
		case errors.Is(err, model.ErrFileTooLarge),
			errors.Is(err, model.ErrInvalidImageType):
			writeUploadError(w, err, "thumbnail")
		default:
			log.Printf("[Video] Update: %v", err)
			httputil.WriteInternalError(w, "Failed to update video")
		}
		return
	}
	httputil.WriteData(w, http.StatusOK, video, "Video updated")
}

// TogglePublish flips the publish flag.
// PATCH /videos/{id}/toggle-publish
func (h *VideoHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	videoID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid video ID")
		return
	}

	video, err := h.videoService.TogglePublish(r.Context(), videoID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrVideoNotFound):
			httputil.WriteNotFound(w, "Video not found")
		case errors.Is(err, model.ErrNotVideoOwner):
			httputil.WriteForbidden(w, "Only the owner may modify this video")
		default:
			log.Printf("[Video] TogglePublish: %v", err)
			httputil.WriteInternalError(w, "Failed to toggle publish status")
		}
		return
	}

	httputil.WriteData(w, http.StatusOK, video, "Publish status toggled")
}

// Delete removes the video with its dependents and remote assets.
// DELETE /videos/{id}
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	videoID, err := parseUUIDParam(r, "id")
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid video ID")
		return
	}

	if err := h.videoService.Delete(r.Context(), videoID, userID); err != nil {
		switch {
		case errors.Is(err, model.ErrVideoNotFound):
			httputil.WriteNotFound(w, "Video not found")
		case errors.Is(err, model.ErrNotVideoOwner):
			httputil.WriteForbidden(w, "Only the owner may delete this video")
		default:
			log.Printf("[Video] Delete: %v", err)
			httputil.WriteInternalError(w, "Failed to delete video")
		}
		return
	}

	httputil.WriteData(w, http.StatusOK, nil, "Video deleted")
}
