package ecommerce_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	store_category "github.com/prvnlhr/nexop-backend-sub001/controllers/ecommerce/category_controller"
	store_filter "github.com/prvnlhr/nexop-backend-sub001/controllers/ecommerce/filter_controller"
	store_search "github.com/prvnlhr/nexop-backend-sub001/controllers/ecommerce/search_controller"
	"github.com/prvnlhr/nexop-backend-sub001/middleware"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Free-text search
	store.GET("/search", middleware.RateLimiter(60, time.Minute), store_search.SearchCatalog)

	// Category routes
	categories := store.Group("/categories")
	{
		categories.GET("", store_category.GetCategories)
		categories.GET("/:id/products", store_search.FilterProducts) // Facet filtering
		categories.GET("/:id/filters", store_filter.GetFilterMetadata)
	}

	// Signature refresh hook (called by catalog management after mutations)
	store.POST("/signature/refresh", store_search.RefreshSignature)
}
