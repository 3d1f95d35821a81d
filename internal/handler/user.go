package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vidtube/internal/httputil"
	"vidtube/internal/model"
	"vidtube/internal/service"
	"vidtube/internal/transport/http/middleware"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Me returns the currently authenticated user.
// GET /users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		httputil.WriteInternalError(w, "Failed to get user")
		return
	}

	httputil.WriteData(w, http.StatusOK, user, "Current user fetched")
}

// UpdateAccount patches the caller's full name and/or email.
// PATCH /users/me
func (h *UserHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req model.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateAccount(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		case errors.Is(err, model.ErrEmailExists):
			httputil.WriteConflict(w, "Email already exists")
		default:
			httputil.WriteBadRequest(w, err.Error())
		}
		return
	}

	httputil.WriteData(w, http.StatusOK, user, "Account updated")
}

// ChangePassword verifies the old password and sets a new one.
// POST /users/me/password
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req model.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := h.userService.ChangePassword(r.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidCredentials):
			httputil.WriteUnauthorized(w, "Old password is incorrect")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			httputil.WriteBadRequest(w, err.Error())
		}
		return
	}

	httputil.WriteData(w, http.StatusOK, nil, "Password changed")
}

// UpdateAvatar replaces the caller's avatar with an uploaded image.
// PATCH /users/me/avatar
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, "avatar", model.MaxAvatarSizeBytes, h.userService.UpdateAvatar)
}

// UpdateCoverImage replaces the caller's channel cover.
// PATCH /users/me/cover-image
func (h *UserHandler) UpdateCoverImage(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, "cover_image", model.MaxCoverSizeBytes, h.userService.UpdateCoverImage)
}

type imageUpdateFunc func(ctx context.Context, userID uuid.UUID, file multipart.File, header *multipart.FileHeader) (*model.User, error)

func (h *UserHandler) updateImage(w http.ResponseWriter, r *http.Request, field string, maxSize int64, update imageUpdateFunc) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	maxFormSize := maxSize + 1024*1024 // allow form overhead
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
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

	file, header, err := r.FormFile(field)
	if err != nil {
		httputil.WriteBadRequest(w, "Image file is required")
		return
	}
	defer file.Close()

	user, err := update(r.Context(), userID, file, header)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrFileTooLarge),
			errors.Is(err, model.ErrInvalidImageType):
			writeUploadError(w, err, field)
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			log.Printf("[User] updateImage %s: %v", field, err)
			httputil.WriteInternalError(w, "Failed to update image")
		}
		return
	}

	httputil.WriteData(w, http.StatusOK, user, "Image updated")
}

// GetChannelProfile resolves a channel by username.
// GET /users/c/{username}
func (h *UserHandler) GetChannelProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		httputil.WriteBadRequest(w, "Username is required")
		return
	}

	profile, err := h.userService.GetChannelProfile(r.Context(), username, viewerID(r))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "Channel not found")
			return
		}
		log.Printf("[User] GetChannelProfile: %v", err)
		httputil.WriteInternalError(w, "Failed to get channel profile")
		return
	}

	httputil.WriteData(w, http.StatusOK, profile, "Channel profile fetched")
}

// GetWatchHistory returns one page of the caller's watch history.
// GET /users/me/history
func (h *UserHandler) GetWatchHistory(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	history, err := h.userService.GetWatchHistory(r.Context(), userID, parsePage(r))
	if err != nil {
		log.Printf("[User] GetWatchHistory: %v", err)
		httputil.WriteInternalError(w, "Failed to get watch history")
		return
	}

	httputil.WriteData(w, http.StatusOK, history, "Watch history fetched")
}
