package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wave-estimates-backend/internal/config"
	handler "wave-estimates-backend/internal/handlers"
	"wave-estimates-backend/internal/middleware"
	"wave-estimates-backend/internal/repository"
	"wave-estimates-backend/internal/services/catalog"
	"wave-estimates-backend/internal/services/estimate"
)

// NewRouter builds the engine with logging, recovery, request ids, CORS, the
// API routes and the Swagger UI.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoutes(r, db)
	RegisterSwagger(r)
	return r
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	estimateRepo := repository.NewEstimateRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	itemRepo := repository.NewItemRepository(db)

	estimateHandler := handler.NewEstimateHandler(estimate.NewService(estimateRepo))
	customerHandler := handler.NewCustomerHandler(catalog.NewCustomerService(customerRepo))
	itemHandler := handler.NewItemHandler(catalog.NewItemService(itemRepo))

	api := r.Group("/api")

	// Health check
	api.GET("/health", healthCheck(db))

	customers := api.Group("/customers")
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.POST("", customerHandler.Create)

	items := api.Group("/items")
	items.GET("", itemHandler.List)
	items.GET("/:id", itemHandler.Get)
	items.POST("", itemHandler.Create)

	// Estimate routes; :id is a numeric id or, where noted, an estimate number
	estimates := api.Group("/estimates")
	{
		estimates.GET("", estimateHandler.List)
		estimates.POST("", estimateHandler.Create)
		estimates.GET("/:id", estimateHandler.Get)                   // id or number
		estimates.PUT("/:id", estimateHandler.Update)                // id only
		estimates.DELETE("/:id", estimateHandler.Delete)             // id only
		estimates.PATCH("/:id/status", estimateHandler.UpdateStatus) // id or number
		estimates.GET("/:id/events", estimateHandler.Events)         // id or number
		estimates.GET("/:id/receipt", estimateHandler.Receipt)       // id or number
	}
}

func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	}
}
