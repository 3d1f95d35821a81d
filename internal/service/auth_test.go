package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vidtube/internal/config"
	"vidtube/internal/model"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		AccessTokenMaxAge:  900,
		RefreshTokenMaxAge: 7 * 24 * 3600,
	}
}

// =============================================================================
// TOKEN PAIR GENERATION
// =============================================================================

func TestAuthService_GenerateTokenPair(t *testing.T) {
	mockRepo := &mockRefreshTokenRepository{}
	svc := NewAuthService(mockRepo, testAuthConfig())
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(context.Background(), userID, "test-device", "127.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("both tokens should be non-empty")
	}
	if pair.ExpiresIn != 900 {
		t.Errorf("expires_in = %d, want 900", pair.ExpiresIn)
	}

	// The access token must be a valid HS256 JWT carrying the user ID
	token, err := jwt.Parse(pair.AccessToken, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("access token should parse and verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["user_id"] != userID.String() {
		t.Errorf("user_id claim = %v, want %s", claims["user_id"], userID)
	}

	// The refresh token must be stored hashed, never raw
	if len(mockRepo.createCalls) != 1 {
		t.Fatalf("Create called %d times, want 1", len(mockRepo.createCalls))
	}
	stored := mockRepo.createCalls[0]
	if stored.TokenHash == pair.RefreshToken {
		t.Error("refresh token should be stored as a hash, not raw")
	}
	if stored.UserID != userID {
		t.Errorf("stored user ID = %v, want %v", stored.UserID, userID)
	}
	if stored.DeviceInfo == nil || *stored.DeviceInfo != "test-device" {
		t.Errorf("device info = %v, want test-device", stored.DeviceInfo)
	}
}

// =============================================================================
// TOKEN ROTATION
// =============================================================================

func TestAuthService_RefreshTokens_Rotation(t *testing.T) {
	userID := uuid.New()
	oldTokenID := uuid.New()

	// The repo knows two tokens: the old one being refreshed and, once
	// GenerateTokenPair stores it, the replacement.
	stored := map[string]*model.RefreshToken{}
	mockRepo := &mockRefreshTokenRepository{}
	mockRepo.createFn = func(ctx context.Context, token *model.RefreshToken) error {
		token.ID = uuid.New()
		stored[token.TokenHash] = token
		return nil
	}
	mockRepo.findByTokenHashFn = func(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
		if tok, ok := stored[tokenHash]; ok {
			return tok, nil
		}
		return nil, model.ErrRefreshTokenNotFound
	}

	svc := NewAuthService(mockRepo, testAuthConfig())

	oldRaw := uuid.New().String()
	stored[svc.hashToken(oldRaw)] = &model.RefreshToken{
		ID:        oldTokenID,
		UserID:    userID,
		TokenHash: svc.hashToken(oldRaw),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	pair, gotUserID, err := svc.RefreshTokens(context.Background(), oldRaw, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotUserID != userID {
		t.Errorf("user ID = %v, want %v", gotUserID, userID)
	}
	if pair.RefreshToken == oldRaw {
		t.Error("refresh should rotate to a new token")
	}

	// The old token must be revoked after rotation
	found := false
	for _, id := range mockRepo.revokeCalls {
		if id == oldTokenID {
			found = true
		}
	}
	if !found {
		t.Error("old refresh token should be revoked after rotation")
	}
}

func TestAuthService_RefreshTokens_ReuseRevokesFamily(t *testing.T) {
	userID := uuid.New()
	revokedAt := time.Now().Add(-time.Minute)

	mockRepo := &mockRefreshTokenRepository{
		findByTokenHashFn: func(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
			return &model.RefreshToken{
				ID:        uuid.New(),
				UserID:    userID,
				ExpiresAt: time.Now().Add(time.Hour),
				RevokedAt: &revokedAt,
			}, nil
		},
	}
	svc := NewAuthService(mockRepo, testAuthConfig())

	_, _, err := svc.RefreshTokens(context.Background(), "leaked-token", "", "")

	if !errors.Is(err, model.ErrRefreshTokenReused) {
		t.Errorf("error = %v, want %v", err, model.ErrRefreshTokenReused)
	}

	// Presenting a revoked token means the raw value leaked; every token of
	// that user must be revoked.
	if len(mockRepo.revokeAllCalls) != 1 || mockRepo.revokeAllCalls[0] != userID {
		t.Errorf("RevokeAllForUser calls = %v, want [%v]", mockRepo.revokeAllCalls, userID)
	}
}

func TestAuthService_RefreshTokens_Expired(t *testing.T) {
	mockRepo := &mockRefreshTokenRepository{
		findByTokenHashFn: func(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
			return &model.RefreshToken{
				ID:        uuid.New(),
				UserID:    uuid.New(),
				ExpiresAt: time.Now().Add(-time.Hour),
			}, nil
		},
	}
	svc := NewAuthService(mockRepo, testAuthConfig())

	_, _, err := svc.RefreshTokens(context.Background(), "stale-token", "", "")

	if !errors.Is(err, model.ErrRefreshTokenExpired) {
		t.Errorf("error = %v, want %v", err, model.ErrRefreshTokenExpired)
	}
	if len(mockRepo.createCalls) != 0 {
		t.Error("no new token should be issued for an expired refresh token")
	}
}

func TestAuthService_CleanupExpiredTokens(t *testing.T) {
	var gotRetention time.Duration
	mockRepo := &mockRefreshTokenRepository{
		deleteExpiredFn: func(ctx context.Context, olderThan time.Duration) (int64, error) {
			gotRetention = olderThan
			return 3, nil
		},
	}
	svc := NewAuthService(mockRepo, testAuthConfig())

	n, err := svc.CleanupExpiredTokens(context.Background(), 24*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n != 3 {
		t.Errorf("deleted = %d, want 3", n)
	}
	if gotRetention != 24*time.Hour {
		t.Errorf("retention = %v, want 24h", gotRetention)
	}
}

func TestAuthService_RefreshTokens_Unknown(t *testing.T) {
	svc := NewAuthService(&mockRefreshTokenRepository{}, testAuthConfig())

	_, _, err := svc.RefreshTokens(context.Background(), "never-issued", "", "")

	if !errors.Is(err, model.ErrRefreshTokenNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrRefreshTokenNotFound)
	}
}
