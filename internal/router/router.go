// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/pageforge/pageforge-backend/internal/config"
	"github.com/pageforge/pageforge-backend/internal/handlers"
	"github.com/pageforge/pageforge-backend/internal/middleware"
	"github.com/pageforge/pageforge-backend/internal/services"
	"github.com/pageforge/pageforge-backend/internal/utils"
)

func Initialize(db *gorm.DB, cache *redis.Client, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	pageService := services.NewPageService(db)
	collectionService := services.NewCollectionService(db)
	templateService := services.NewTemplateService(db)
	exportService := services.NewExportService(db, pageService)
	contentService := services.NewContentService()
	scanService := services.NewScanService(cfg, cache)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	pageHandler := handlers.NewPageHandler(pageService)
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	exportHandler := handlers.NewExportHandler(exportService)
	contentHandler := handlers.NewContentHandler(contentService)
	scanHandler := handlers.NewScanHandler(scanService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Product page routes
		pages := v1.Group("/pages")
		pages.Use(middleware.AuthRequired())
		{
			pages.POST("", pageHandler.CreatePage)
			pages.GET("", pageHandler.ListPages)
			pages.GET("/:id", pageHandler.GetPage)
			pages.PUT("/:id", pageHandler.UpdatePage)
			pages.DELETE("/:id", pageHandler.DeletePage)
			pages.POST("/:id/export", exportHandler.ExportPage)
		}

		// Collection routes
		collections := v1.Group("/collections")
		collections.Use(middleware.AuthRequired())
		{
			collections.POST("", collectionHandler.CreateCollection)
			collections.GET("", collectionHandler.ListCollections)
			collections.GET("/:id", collectionHandler.GetCollection)
			collections.PUT("/:id", collectionHandler.UpdateCollection)
			collections.DELETE("/:id", collectionHandler.DeleteCollection)
		}

		// Template routes
		templates := v1.Group("/templates")
		{
			templates.GET("", middleware.OptionalAuth(), templateHandler.ListTemplates)
			templates.GET("/:id", templateHandler.GetTemplate)

			protected := templates.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", templateHandler.CreateTemplate)
				protected.PUT("/:id", templateHandler.UpdateTemplate)
				protected.DELETE("/:id", templateHandler.DeleteTemplate)
				protected.GET("/:id/customization", templateHandler.GetCustomization)
				protected.PUT("/:id/customization", templateHandler.SaveCustomization)
				protected.DELETE("/:id/customization", templateHandler.ResetCustomization)
			}
		}

		// Export routes
		export := v1.Group("/export")
		{
			export.GET("/platforms", exportHandler.ListPlatforms)
			export.POST("/preview", exportHandler.Preview)
			export.GET("/history", middleware.AuthRequired(), exportHandler.ListExports)
		}

		// Scan routes
		scan := v1.Group("/scan")
		scan.Use(middleware.AuthRequired(), middleware.ScanRateLimit())
		{
			scan.POST("/url", scanHandler.ScanURL)
			scan.POST("/sitemap", scanHandler.ScanSitemap)
		}

		// Content generation routes
		content := v1.Group("/content")
		content.Use(middleware.AuthRequired())
		{
			content.POST("/generate", contentHandler.GenerateContent)
		}

		// Upload routes
		uploads := v1.Group("/uploads")
		uploads.Use(middleware.AuthRequired(), middleware.UploadRateLimit())
		{
			uploads.POST("/images", uploadHandler.UploadImage)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
