package v1

import (
	"net/http"
	"time"

	"remote-jobs-backend/config"
	"remote-jobs-backend/internal/delivery/http/middleware"
	"remote-jobs-backend/internal/delivery/http/response"
	"remote-jobs-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	JobUC      domain.JobUsecase
	ProfileUC  domain.ProfileUsecase
	AuthUC     domain.AuthUsecase
	FavoriteUC domain.FavoriteUsecase
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(
		middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window),
	))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Expensive scrape trigger gets its own throttle on top of the global one.
	refreshLimited := v1.Group("")
	refreshLimited.Use(middleware.RateLimitMiddleware(middleware.RefreshRateLimitConfig()))

	// Credential endpoints are brute-force targets.
	authLimited := v1.Group("")
	authLimited.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold)))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config.JWTSecret))

	NewJobHandler(v1, refreshLimited, deps.JobUC)
	NewProfileHandler(v1, deps.ProfileUC)
	NewAuthHandler(authLimited, protected, deps.AuthUC)
	NewFavoriteHandler(protected, deps.FavoriteUC)

	return r
}
