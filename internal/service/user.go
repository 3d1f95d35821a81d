package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// UserService handles business logic for account and channel operations
type UserService struct {
	repo    repository.UserRepository
	subRepo repository.SubscriptionRepository
	media   MediaStore
}

func NewUserService(repo repository.UserRepository, subRepo repository.SubscriptionRepository, media MediaStore) *UserService {
	return &UserService{
		repo:    repo,
		subRepo: subRepo,
		media:   media,
	}
}

// Register creates a new user account, uploading the avatar and optional
// cover image. Uploads happen after the uniqueness pre-check so a conflicting
// request never stores objects, and a failed insert releases whatever was
// uploaded.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest, avatarFile multipart.File, avatarHeader *multipart.FileHeader, coverFile multipart.File, coverHeader *multipart.FileHeader) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	email := strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address")
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, fmt.Errorf("password is required")
	}

	// Cheap pre-check before the uploads and the bcrypt work; the unique
	// constraints still catch a racing insert.
	taken, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if taken {
		if _, err := s.repo.GetByUsername(ctx, username); err == nil {
			return nil, model.ErrUsernameExists
		}
		return nil, model.ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	avatar, err := s.media.UploadAvatar(ctx, avatarFile, avatarHeader)
	if err != nil {
		return nil, err
	}

	var cover *model.StoredAsset
	if coverFile != nil {
		cover, err = s.media.UploadCoverImage(ctx, coverFile, coverHeader)
		if err != nil {
			s.releaseObject(ctx, avatar.Key)
			return nil, err
		}
	}

	user := &model.User{
		Username:       username,
		Email:          email,
		FullName:       strings.TrimSpace(req.FullName),
		PasswordHashed: string(hashedPassword),
		AvatarURL:      &avatar.URL,
		AvatarKey:      &avatar.Key,
	}
	if cover != nil {
		user.CoverImageURL = &cover.URL
		user.CoverImageKey = &cover.Key
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.releaseObject(ctx, avatar.Key)
		if cover != nil {
			s.releaseObject(ctx, cover.Key)
		}
		return nil, err
	}

	return user, nil
}

// releaseObject best-effort deletes a stored object that no account ended up
// referencing.
func (s *UserService) releaseObject(ctx context.Context, key string) {
	if err := s.media.DeleteObject(ctx, key); err != nil {
		log.Printf("[User] failed to clean up orphaned object %s: %v", key, err)
	}
}

// Login authenticates with either username or email plus password.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	login := req.Username
	if login == "" {
		login = req.Email
	}
	if login == "" || req.Password == "" {
		return nil, model.ErrInvalidCredentials
	}

	user, err := s.repo.GetByLogin(ctx, login)
	if err != nil {
		// Don't reveal whether the account exists
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateAccount patches the caller's full name and/or email.
func (s *UserService) UpdateAccount(ctx context.Context, userID uuid.UUID, req *model.UpdateAccountRequest) (*model.User, error) {
	if req.FullName == nil && req.Email == nil {
		return nil, fmt.Errorf("nothing to update")
	}
	if req.Email != nil {
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			return nil, fmt.Errorf("invalid email address")
		}
	}
	return s.repo.UpdateAccount(ctx, userID, req.FullName, req.Email)
}

// ChangePassword verifies the old password before setting the new one.
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, req *model.ChangePasswordRequest) error {
	if strings.TrimSpace(req.NewPassword) == "" {
		return fmt.Errorf("new password is required")
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(req.OldPassword)); err != nil {
		return model.ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, userID, string(hashedPassword))
}

// UpdateAvatar uploads the new avatar, swaps the metadata, then releases the
// old object. A failed remote delete is logged, not surfaced; the account
// already points at the new asset.
func (s *UserService) UpdateAvatar(ctx context.Context, userID uuid.UUID, file multipart.File, header *multipart.FileHeader) (*model.User, error) {
	asset, err := s.media.UploadAvatar(ctx, file, header)
	if err != nil {
		return nil, err
	}

	oldKey, err := s.repo.UpdateAvatar(ctx, userID, asset.URL, asset.Key)
	if err != nil {
		if delErr := s.media.DeleteObject(ctx, asset.Key); delErr != nil {
			log.Printf("[User] failed to clean up orphaned avatar %s: %v", asset.Key, delErr)
		}
		return nil, err
	}
	if oldKey != nil {
		if err := s.media.DeleteObject(ctx, *oldKey); err != nil {
			log.Printf("[User] failed to delete old avatar %s: %v", *oldKey, err)
		}
	}

	return s.repo.GetByID(ctx, userID)
}

// UpdateCoverImage mirrors UpdateAvatar for the channel cover.
func (s *UserService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, file multipart.File, header *multipart.FileHeader) (*model.User, error) {
	asset, err := s.media.UploadCoverImage(ctx, file, header)
	if err != nil {
		return nil, err
	}

	oldKey, err := s.repo.UpdateCoverImage(ctx, userID, asset.URL, asset.Key)
	if err != nil {
		if delErr := s.media.DeleteObject(ctx, asset.Key); delErr != nil {
			log.Printf("[User] failed to clean up orphaned cover %s: %v", asset.Key, delErr)
		}
		return nil, err
	}
	if oldKey != nil {
		if err := s.media.DeleteObject(ctx, *oldKey); err != nil {
			log.Printf("[User] failed to delete old cover %s: %v", *oldKey, err)
		}
	}

	return s.repo.GetByID(ctx, userID)
}

// GetChannelProfile resolves a channel by username with subscription counts
// and, when a viewer is present, whether they are subscribed. The viewer
// check degrades gracefully; a failed lookup leaves is_subscribed false.
func (s *UserService) GetChannelProfile(ctx context.Context, username string, viewerID *uuid.UUID) (*model.ChannelProfile, error) {
	profile, err := s.repo.GetChannelProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	if viewerID != nil && *viewerID != profile.ID {
		subscribed, err := s.subRepo.Exists(ctx, *viewerID, profile.ID)
		if err == nil {
			profile.IsSubscribed = subscribed
		}
	}

	return profile, nil
}

// GetWatchHistory returns one page of the caller's watch history.
func (s *UserService) GetWatchHistory(ctx context.Context, userID uuid.UUID, page model.PageRequest) (*model.WatchHistoryResponse, error) {
	page = page.Normalized()
	entries, total, err := s.repo.GetWatchHistory(ctx, userID, page)
	if err != nil {
		return nil, err
	}

	return &model.WatchHistoryResponse{
		Entries:    entries,
		TotalCount: total,
		TotalPages: model.TotalPages(total, page.Limit),
		Page:       page.Page,
	}, nil
}
