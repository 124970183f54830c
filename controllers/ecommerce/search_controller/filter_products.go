package search_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/prvnlhr/nexop-backend-sub001/config"
	"github.com/prvnlhr/nexop-backend-sub001/models"
	"github.com/prvnlhr/nexop-backend-sub001/search"
	"github.com/prvnlhr/nexop-backend-sub001/services"
)

// FilterProducts godoc
// @Summary Filter a category's products by attribute facets
// @Description Retrieve a category's products narrowed by attr_<id> option filters (CSV or repeated keys), with optional price sorting and pagination. Invalid facet parameters are skipped and echoed in invalid_params rather than failing the request.
// @Tags Storefront - Search
// @Produce json
// @Param id path string true "Category ID"
// @Param attr_{attributeId} query []string false "Option ids for an attribute (repeatable or CSV)"
// @Param sortBy query string false "Sort by field (newest, price, name)" default(newest)
// @Param sortOrder query string false "Sort order (asc | desc)" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Filtered products"
// @Failure 400 {object} models.ApiResponse "Invalid category id"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/categories/{id}/products [get]
func FilterProducts(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category id"))
		return
	}

	page, limit := parsePagination(c)
	sortBy := c.DefaultQuery("sortBy", "newest")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	catalog := services.GetCatalogService()

	sig, err := catalog.Signature(ctx)
	if err != nil {
		log.Printf("ERROR loading catalog signature: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load catalog signature"))
		return
	}

	// A category missing from the signature degrades to an empty attribute
	// list: every attr_ parameter is reported invalid, nothing matches it.
	attributes := sig.AttributesFor(categoryID)
	filter, invalidParams := search.ResolveFacets(attributes, c.Request.URL.Query())

	products, err := catalog.ProductsWithVariants(ctx, categoryID)
	if err != nil {
		log.Printf("ERROR in ProductsWithVariants: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	matches := search.FilterProducts(sig, filter, products)
	sortMatches(matches, sortBy, sortOrder)

	total := len(matches)
	totalPages := (total + limit - 1) / limit
	pageItems := paginateMatches(matches, page, limit)

	c.JSON(http.StatusOK, models.FilteredResponse(
		c,
		"Products filtered successfully",
		pageItems,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
		invalidParams,
	))
}
