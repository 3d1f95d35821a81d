package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"
	"time"

	"vidtube/internal/config"
	"vidtube/internal/database"
	"vidtube/internal/handler"
	"vidtube/internal/repository"
	"vidtube/internal/service"
)

// Run wires the whole application together and serves HTTP until the process exits.
func Run() error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Connect to Database and apply migrations
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// 3. Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	tweetRepo := repository.NewTweetRepository(db)

	// 4. Services
	mediaService, err := service.NewMediaService(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to init media service: %w", err)
	}
	authService := service.NewAuthService(refreshTokenRepo, cfg)
	userService := service.NewUserService(userRepo, subscriptionRepo, mediaService)
	videoService := service.NewVideoService(videoRepo, userRepo, likeRepo, subscriptionRepo, mediaService)
	commentService := service.NewCommentService(commentRepo, videoRepo)
	likeService := service.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo)
	playlistService := service.NewPlaylistService(playlistRepo, videoRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo)
	tweetService := service.NewTweetService(tweetRepo, userRepo)
	dashboardService := service.NewDashboardService(videoRepo)

	// 5. Handlers and Router
	router := NewRouter(RouterConfig{
		AuthHandler:         handler.NewAuthHandler(userService, authService, cfg),
		UserHandler:         handler.NewUserHandler(userService),
		VideoHandler:        handler.NewVideoHandler(videoService),
		CommentHandler:      handler.NewCommentHandler(commentService),
		LikeHandler:         handler.NewLikeHandler(likeService),
		PlaylistHandler:     handler.NewPlaylistHandler(playlistService),
		SubscriptionHandler: handler.NewSubscriptionHandler(subscriptionService),
		TweetHandler:        handler.NewTweetHandler(tweetService),
		DashboardHandler:    handler.NewDashboardHandler(dashboardService),
		JWTSecret:           cfg.JWTSecret,
	})

	// 6. Background sweep of long-expired refresh tokens
	go func() {
		ticker := time.NewTicker(12 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			n, err := authService.CleanupExpiredTokens(context.Background(), 24*time.Hour)
			if err != nil {
				log.Printf("[Auth] refresh token cleanup failed: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("[Auth] removed %d expired refresh tokens", n)
			}
		}
	}()

	addr := ":" + cfg.ServerPort
	server := &stdhttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Starting server on %s", addr)
	return server.ListenAndServe()
}
