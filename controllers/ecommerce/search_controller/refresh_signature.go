package search_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prvnlhr/nexop-backend-sub001/config"
	"github.com/prvnlhr/nexop-backend-sub001/models"
	"github.com/prvnlhr/nexop-backend-sub001/services"
)

// RefreshSignature godoc
// @Summary Refresh the catalog signature snapshot
// @Description Rebuild the categories/attributes/options snapshot the search engine reads and swap it in atomically. Called by catalog management after mutations; also safe to call ad hoc.
// @Tags Storefront - Search
// @Produce json
// @Success 200 {object} models.ApiResponse "Signature refreshed"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/signature/refresh [post]
func RefreshSignature(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sig, err := services.GetCatalogService().RefreshSignature(ctx)
	if err != nil {
		log.Printf("ERROR in RefreshSignature: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to refresh catalog signature"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog signature refreshed", gin.H{
		"categories": len(sig.Categories),
	}))
}
