package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prvnlhr/nexop-backend-sub001/config"
	"github.com/prvnlhr/nexop-backend-sub001/models"
	"github.com/prvnlhr/nexop-backend-sub001/services"
)

// CategoryNode is a category with its subcategories nested under it.
type CategoryNode struct {
	models.CategorySummary
	Subcategories []CategoryNode `json:"subcategories,omitempty"`
}

// GetCategories godoc
// @Summary Get the storefront category tree
// @Description Returns all catalog categories as a tree, served from the catalog signature snapshot
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sig, err := services.GetCatalogService().Signature(ctx)
	if err != nil {
		log.Printf("ERROR loading catalog signature: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", buildTree(sig.Categories)))
}

// buildTree nests subcategories under their parents, keeping the
// signature's natural order at every level.
func buildTree(categories []models.CategorySummary) []CategoryNode {
	children := make(map[string][]models.CategorySummary)
	var roots []models.CategorySummary

	for _, category := range categories {
		if category.ParentID == nil {
			roots = append(roots, category)
			continue
		}
		key := category.ParentID.String()
		children[key] = append(children[key], category)
	}

	var build func(items []models.CategorySummary) []CategoryNode
	build = func(items []models.CategorySummary) []CategoryNode {
		nodes := make([]CategoryNode, 0, len(items))
		for _, item := range items {
			nodes = append(nodes, CategoryNode{
				CategorySummary: item,
				Subcategories:   build(children[item.ID.String()]),
			})
		}
		return nodes
	}

	return build(roots)
}
