// @title Nexop Catalog Search API
// @version 1.0
// @description Storefront catalog search and facet filtering
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/prvnlhr/nexop-backend-sub001/config"
	"github.com/prvnlhr/nexop-backend-sub001/routes/ecommerce_routes"
	"github.com/prvnlhr/nexop-backend-sub001/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis connection (rate limiter)
	config.ConnectRedis()
	defer config.CloseRedis()

	// Catalog read service + first signature snapshot. A failed warm-up is
	// fatal: serving queries without a signature would silently match nothing.
	services.InitCatalogService(config.CatalogGorm)
	ctx, cancel := config.WithTimeout()
	sig, err := services.GetCatalogService().RefreshSignature(ctx)
	cancel()
	if err != nil {
		log.Fatalf("❌ Failed to load catalog signature: %v", err)
	}
	log.Printf("✅ Catalog signature loaded (%d categories)", len(sig.Categories))

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	ecommerce_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	log.Printf("🚀 Server is running on http://localhost:%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
