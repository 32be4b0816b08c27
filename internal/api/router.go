package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sanuatmasai/Product-Recommendation/internal/api/handler"
	"github.com/sanuatmasai/Product-Recommendation/internal/api/middleware"
	"github.com/sanuatmasai/Product-Recommendation/internal/catalog"
	"github.com/sanuatmasai/Product-Recommendation/internal/config"
	"github.com/sanuatmasai/Product-Recommendation/internal/logger"
	"github.com/sanuatmasai/Product-Recommendation/internal/recommend"
	"github.com/sanuatmasai/Product-Recommendation/internal/service"
)

// Deps bundles the startup-built state and services the routes need.
type Deps struct {
	Store    *catalog.Store
	Content  *recommend.ContentEngine
	Collab   *recommend.CollabEngine
	Auth     *service.AuthService
	Tracking *service.TrackingService
}

// SetupRouter configures the Gin router with all routes
func SetupRouter(deps Deps, cfg *config.Config, log *logger.Logger) *gin.Engine {
	// Set Gin mode
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	}))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	authHandler := handler.NewAuthHandler(deps.Auth)
	productHandler := handler.NewProductHandler(deps.Store)
	recommendHandler := handler.NewRecommendHandler(deps.Content, deps.Collab, cfg.Recommend.DefaultTopK)
	interactionHandler := handler.NewInteractionHandler(deps.Tracking)

	// Health check
	r.GET("/health", healthHandler.Health)

	// Auth
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Catalog
	r.GET("/products", productHandler.ListProducts)
	r.GET("/products/:id", productHandler.GetProduct)

	// Recommendations
	r.GET("/recommendations/:product_id", recommendHandler.ContentRecommendations)
	r.GET("/collab-recommendations/:user_id", recommendHandler.CollabRecommendations)

	// Interaction tracking
	r.POST("/view", interactionHandler.TrackView)
	r.POST("/like", interactionHandler.TrackLike)
	r.POST("/purchase", interactionHandler.TrackPurchase)
	r.GET("/user/:user_id/history", interactionHandler.History)

	return r
}
