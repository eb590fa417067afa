// Package server assembles the HTTP engine from configuration and a database
// handle.
package server

import (
	"net/http"
	"time"

	"restaurantapi/internal/config"
	"restaurantapi/internal/middleware"
	"restaurantapi/internal/modules/auth"
	"restaurantapi/internal/modules/order"
	"restaurantapi/internal/modules/product"
	"restaurantapi/internal/modules/restaurant"
	jwtsvc "restaurantapi/internal/pkg/jwt"
	"restaurantapi/internal/pkg/metrics"
	"restaurantapi/internal/pkg/upload"
	"restaurantapi/internal/repository"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func New(cfg *config.Config, db *gorm.DB, log *zap.Logger) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	restaurantHandler := restaurant.NewHandler(restaurant.NewService(restaurantRepo, orderRepo))
	orderHandler := order.NewHandler(order.NewService(orderRepo, restaurantRepo))
	productHandler := product.NewHandler(product.NewService(productRepo, restaurantRepo))

	uploads := upload.New(upload.Config{
		Dir:         cfg.RestaurantsFolder,
		URLPrefix:   cfg.RestaurantsURLPrefix,
		MaxFileSize: cfg.UploadMaxFileSize,
	}, log)

	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		ginzap.Ginzap(log, time.RFC3339, true),
		ginzap.RecoveryWithZap(log, true),
		middleware.RequestID(),
		middleware.ErrorLogger(log),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.Static(cfg.RestaurantsURLPrefix, cfg.RestaurantsFolder)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	authHandler.RegisterRoutes(r)

	restaurant.RegisterRoutes(r, restaurant.Routes{
		Restaurants: restaurantHandler,
		Validation:  restaurant.NewValidation(categoryRepo),
		Orders:      orderHandler,
		Products:    productHandler,
		Upload:      uploads,
		Auth:        middleware.JWTAuth(j),
		Ownership:   middleware.NewOwnershipChecker(restaurantRepo).CheckRestaurantOwnership(),
		EnforceAuth: cfg.EnforceRouteAuth,
	})

	for _, route := range restaurant.OpenRoutes(cfg.EnforceRouteAuth) {
		log.Warn("route served without authentication", zap.String("route", route))
	}

	return r
}
