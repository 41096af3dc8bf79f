// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/euphoria-shop/storefront/internal/catalog"
	"github.com/euphoria-shop/storefront/internal/config"
	"github.com/euphoria-shop/storefront/internal/handlers"
	"github.com/euphoria-shop/storefront/internal/middleware"
	"github.com/euphoria-shop/storefront/internal/session"
)

func Initialize(sess *session.Session, cat *catalog.Catalog, cfg *config.Config) *gin.Engine {
	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(cat, sess)
	cartHandler := handlers.NewCartHandler(sess)
	checkoutHandler := handlers.NewCheckoutHandler(sess, cfg.Shop.BrandPhone)
	galleryHandler := handlers.NewGalleryHandler(sess)
	sessionHandler := handlers.NewSessionHandler(sess)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"brand":  cfg.Shop.BrandName,
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Catalog routes
		catalogGroup := v1.Group("/catalog")
		{
			catalogGroup.GET("", catalogHandler.GetProducts)
			catalogGroup.GET("/:id", catalogHandler.GetProduct)
			catalogGroup.POST("/:id/slots/advance", galleryHandler.AdvanceSlot)
			catalogGroup.PUT("/:id/slots/active", galleryHandler.SetSlot)
			catalogGroup.POST("/:id/slots/:slot/image", middleware.UploadRateLimit(), galleryHandler.UploadImage)
		}

		// Session routes
		sessionGroup := v1.Group("/session")
		{
			sessionGroup.GET("", sessionHandler.GetState)
			sessionGroup.PUT("/view", sessionHandler.SetView)
			sessionGroup.POST("/lock", sessionHandler.ToggleLock)
		}

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PATCH("/items/:index", cartHandler.AdjustQuantity)
			cart.DELETE("/items/:index", cartHandler.RemoveItem)
		}

		// Checkout routes
		checkout := v1.Group("/checkout")
		{
			checkout.PUT("/form", checkoutHandler.UpdateForm)
			checkout.PUT("/shipping", checkoutHandler.SelectShipping)
			checkout.GET("/summary", checkoutHandler.GetSummary)
			checkout.POST("/finalize", checkoutHandler.Finalize)
		}

		// Gallery admin routes
		gallery := v1.Group("/gallery")
		{
			gallery.DELETE("/overrides", galleryHandler.ClearOverrides)
		}
	}

	return r
}
