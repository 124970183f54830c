package filter_controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/prvnlhr/nexop-backend-sub001/config"
	"github.com/prvnlhr/nexop-backend-sub001/models"
	"github.com/prvnlhr/nexop-backend-sub001/services"
)

// GetFilterMetadata godoc
// @Summary Get filter metadata for a category
// @Description Returns the category's filterable attributes with their active options, plus the price range across the category's active variants
// @Tags Storefront - Filters
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories/{id}/filters [get]
func GetFilterMetadata(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category id"))
		return
	}

	// Run signature lookup and price aggregation concurrently
	var wg sync.WaitGroup
	var mu sync.Mutex

	metadata := &models.FilterMetadata{}
	var errs []error

	wg.Add(1)
	go func() {
		defer wg.Done()
		attributes, err := getFilterableAttributes(categoryID)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.Attributes = attributes
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		priceRange, err := getPriceRange(categoryID)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.PriceRange = priceRange
		}
	}()

	wg.Wait()

	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

// getFilterableAttributes reads the category's facetable attributes from
// the signature snapshot. Only attributes flagged filterable are exposed
// as storefront facets.
func getFilterableAttributes(categoryID uuid.UUID) ([]models.AttributeSignature, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sig, err := services.GetCatalogService().Signature(ctx)
	if err != nil {
		return nil, err
	}

	attributes := make([]models.AttributeSignature, 0)
	for _, attribute := range sig.AttributesFor(categoryID) {
		if attribute.Filterable {
			attributes = append(attributes, attribute)
		}
	}
	return attributes, nil
}

// getPriceRange aggregates min/max price over the category's ACTIVE
// variants via the pgx pool.
func getPriceRange(categoryID uuid.UUID) (*models.PriceRangeData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT COALESCE(MIN(v.price), 0), COALESCE(MAX(v.price), 0)
		FROM variants v
		JOIN products p ON p.id = v.product_id
		WHERE p.category_id = $1
		  AND p.status = 'Active'
		  AND v.status = 'ACTIVE'
	`

	priceRange := &models.PriceRangeData{}
	err := config.CatalogDB.QueryRow(ctx, query, categoryID.String()).
		Scan(&priceRange.Min, &priceRange.Max)
	if err != nil {
		return nil, err
	}
	return priceRange, nil
}
