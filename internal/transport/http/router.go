package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"vidtube/internal/handler"
	"vidtube/internal/httputil"
	authmw "vidtube/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	VideoHandler        *handler.VideoHandler
	CommentHandler      *handler.CommentHandler
	LikeHandler         *handler.LikeHandler
	PlaylistHandler     *handler.PlaylistHandler
	SubscriptionHandler *handler.SubscriptionHandler
	TweetHandler        *handler.TweetHandler
	DashboardHandler    *handler.DashboardHandler
	JWTSecret           string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteData(w, http.StatusOK, map[string]string{"status": "ok"}, "OK")
	})

	optional := authmw.OptionalAuthMiddleware(cfg.JWTSecret)
	required := authmw.AuthMiddleware(cfg.JWTSecret)

	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes, rate limited against credential stuffing
		r.Route("/auth", func(r chi.Router) {
			r.With(authmw.RateLimit(10, time.Minute)).Post("/register", cfg.AuthHandler.Register)
			r.With(authmw.RateLimit(10, time.Minute)).Post("/login", cfg.AuthHandler.Login)
			r.With(authmw.RateLimit(10, time.Minute)).Post("/refresh", cfg.AuthHandler.Refresh)
			r.Post("/logout", cfg.AuthHandler.Logout)
			r.With(required).Post("/logout-all", cfg.AuthHandler.LogoutAll)
		})

		// Public video surface with optional authentication
		r.Route("/videos", func(r chi.Router) {
			r.With(optional).Get("/", cfg.VideoHandler.List)
			r.With(optional).Get("/{id}", cfg.VideoHandler.GetByID)
			r.With(optional).Get("/{id}/comments", cfg.CommentHandler.ListByVideo)

			r.Group(func(r chi.Router) {
				r.Use(required)
				r.Post("/", cfg.VideoHandler.Publish)
				r.Patch("/{id}", cfg.VideoHandler.Update)
				r.Patch("/{id}/toggle-publish", cfg.VideoHandler.TogglePublish)
				r.Delete("/{id}", cfg.VideoHandler.Delete)
				r.Post("/{id}/comments", cfg.CommentHandler.Create)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(required)
			r.Patch("/comments/{id}", cfg.CommentHandler.Update)
			r.Delete("/comments/{id}", cfg.CommentHandler.Delete)
		})

		r.Route("/likes", func(r chi.Router) {
			r.Use(required)
			r.Post("/video/{id}", cfg.LikeHandler.ToggleVideo)
			r.Post("/comment/{id}", cfg.LikeHandler.ToggleComment)
			r.Post("/tweet/{id}", cfg.LikeHandler.ToggleTweet)
			r.Get("/videos", cfg.LikeHandler.ListLikedVideos)
		})

		r.Route("/playlists", func(r chi.Router) {
			r.With(optional).Get("/{id}", cfg.PlaylistHandler.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(required)
				r.Post("/", cfg.PlaylistHandler.Create)
				r.Patch("/{id}", cfg.PlaylistHandler.Update)
				r.Delete("/{id}", cfg.PlaylistHandler.Delete)
				r.Post("/{id}/videos/{videoID}", cfg.PlaylistHandler.AddVideo)
				r.Delete("/{id}/videos/{videoID}", cfg.PlaylistHandler.RemoveVideo)
			})
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.With(optional).Get("/{channelID}/subscribers", cfg.SubscriptionHandler.ListSubscribers)
			r.With(optional).Get("/{subscriberID}/channels", cfg.SubscriptionHandler.ListSubscribedChannels)
			r.With(required).Post("/{channelID}", cfg.SubscriptionHandler.Toggle)
		})

		r.Route("/tweets", func(r chi.Router) {
			r.Use(required)
			r.Post("/", cfg.TweetHandler.Create)
			r.Patch("/{id}", cfg.TweetHandler.Update)
			r.Delete("/{id}", cfg.TweetHandler.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(optional).Get("/c/{username}", cfg.UserHandler.GetChannelProfile)
			r.With(optional).Get("/{id}/playlists", cfg.PlaylistHandler.ListByUser)
			r.With(optional).Get("/{id}/tweets", cfg.TweetHandler.ListByUser)

			r.Group(func(r chi.Router) {
				r.Use(required)
				r.Get("/me", cfg.UserHandler.Me)
				r.Patch("/me", cfg.UserHandler.UpdateAccount)
				r.Post("/me/password", cfg.UserHandler.ChangePassword)
				r.Patch("/me/avatar", cfg.UserHandler.UpdateAvatar)
				r.Patch("/me/cover-image", cfg.UserHandler.UpdateCoverImage)
				r.Get("/me/history", cfg.UserHandler.GetWatchHistory)
			})
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(required)
			r.Get("/stats", cfg.DashboardHandler.GetStats)
			r.Get("/videos", cfg.DashboardHandler.ListVideos)
		})
	})

	return r
}
