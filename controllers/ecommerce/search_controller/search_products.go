package search_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prvnlhr/nexop-backend-sub001/config"
	"github.com/prvnlhr/nexop-backend-sub001/models"
	"github.com/prvnlhr/nexop-backend-sub001/search"
	"github.com/prvnlhr/nexop-backend-sub001/services"
)

// SearchCatalog godoc
// @Summary Search the storefront catalog
// @Description Resolve a free-text query into matching categories and product variants. Matching cascades from exact variant names to partial names to attribute option values; an empty or unrecognized query returns empty lists, not an error.
// @Tags Storefront - Search
// @Produce json
// @Param q query string false "Free-text search query"
// @Success 200 {object} models.ApiResponse "Search results"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/search [get]
func SearchCatalog(c *gin.Context) {
	query := c.Query("q")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	catalog := services.GetCatalogService()
	engine := search.NewEngine(catalog, catalog)

	result, err := engine.Search(ctx, query)
	if err != nil {
		log.Printf("ERROR in engine.Search: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to search catalog"))
		return
	}

	// Best-effort structured reading of the query (price range, recognized
	// catalog terms). Advisory only; never gates the match result.
	var parsed *search.ParsedQuery
	if sig, sigErr := catalog.Signature(ctx); sigErr == nil {
		parsed = search.ParseQuery(query, sig)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search results fetched successfully", gin.H{
		"parsed":     parsed,
		"categories": result.Categories,
		"products":   result.Products,
	}))
}
