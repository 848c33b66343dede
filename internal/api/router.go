package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/devlink/social-api/docs"
	"github.com/devlink/social-api/internal/api/handler"
	"github.com/devlink/social-api/internal/api/middleware"
	"github.com/devlink/social-api/internal/core/service"
	"github.com/devlink/social-api/internal/infrastructure/config"
	mongodb "github.com/devlink/social-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devlink/social-api/internal/infrastructure/db/redis"
	"github.com/devlink/social-api/internal/infrastructure/github"
)

// NewRouter builds and returns the Echo instance with all dependencies wired
// and all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("social"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	authService := service.NewAuthService(userRepo, tokenService)
	postService := service.NewPostService(postRepo, userRepo, log)
	profileService := service.NewProfileService(profileRepo, postRepo, userRepo, log)
	githubService := service.NewGithubService(
		github.NewClient(cfg.Github.Token),
		redisdb.NewRepoCache(rdb),
		time.Duration(cfg.Github.CacheTTLMinutes)*time.Minute,
		log,
	)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	profileHandler := handler.NewProfileHandler(profileService, githubService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	auth := middleware.Auth(tokenService)

	// --- Auth routes ---
	e.POST("/api/users", authHandler.Register)
	e.POST("/api/auth", authHandler.Login)
	e.GET("/api/auth", authHandler.Me, auth)

	// --- Post routes (all private) ---
	posts := e.Group("/api/posts", auth)
	posts.POST("", postHandler.Create)
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)
	posts.DELETE("/:id", postHandler.Delete)
	posts.PUT("/like/:id", postHandler.Like)
	posts.PUT("/unlike/:id", postHandler.Unlike)
	posts.POST("/comment/:id", postHandler.AddComment)
	posts.DELETE("/comment/:id/:commentId", postHandler.DeleteComment)

	// --- Profile routes (mixed access) ---
	e.GET("/api/profile", profileHandler.List)
	e.GET("/api/profile/user/:id", profileHandler.GetByUser)
	e.GET("/api/profile/github/:username", profileHandler.GithubRepos)
	e.POST("/api/profile", profileHandler.Upsert, auth)
	e.GET("/api/profile/me", profileHandler.Me, auth)
	e.DELETE("/api/profile", profileHandler.DeleteAccount, auth)
	e.PUT("/api/profile/experience", profileHandler.AddExperience, auth)
	e.DELETE("/api/profile/experience/:id", profileHandler.RemoveExperience, auth)
	e.PUT("/api/profile/education", profileHandler.AddEducation, auth)
	e.DELETE("/api/profile/education/:id", profileHandler.RemoveEducation, auth)

	// --- Operability ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
