package router

import (
	_ "embed"
	"net/http"

	"kitchen-control-backend/internal/adapter/gin/handler"
	"kitchen-control-backend/internal/adapter/gin/middleware"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

//go:embed openapi.json
var openAPIDoc []byte

// OpenAPIPath is where the OpenAPI document is served.
const OpenAPIPath = "/openapi.json"

// Options tunes router behavior per environment.
type Options struct {
	Development bool
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	userHandler *handler.UserHandler,
	healthHandler *handler.HealthHandler,
	opts Options,
	log *zap.Logger,
) *gin.Engine {
	if opts.Development {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.SecureHeaders(opts.Development))

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	router.GET(OpenAPIPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openAPIDoc)
	})
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL(OpenAPIPath),
	)))

	api := router.Group("/api")
	{
		api.GET("/users", userHandler.ListUsers)
	}

	return router
}
