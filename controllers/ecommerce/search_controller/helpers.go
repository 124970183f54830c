package search_controller

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prvnlhr/nexop-backend-sub001/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// sortMatches orders filtered matches in place. Filtering happens on an
// already bounded per-category list, so in-process sorting is fine here.
func sortMatches(matches []models.VariantMatch, sortBy, sortOrder string) {
	asc := strings.ToUpper(sortOrder) == "ASC"

	switch sortBy {
	case "price":
		sort.SliceStable(matches, func(i, j int) bool {
			if asc {
				return matches[i].Price < matches[j].Price
			}
			return matches[i].Price > matches[j].Price
		})
	case "name":
		sort.SliceStable(matches, func(i, j int) bool {
			if asc {
				return matches[i].Name < matches[j].Name
			}
			return matches[i].Name > matches[j].Name
		})
	default:
		// "newest": keep the store's created_at DESC order
	}
}

func paginateMatches(matches []models.VariantMatch, page, limit int) []models.VariantMatch {
	offset := (page - 1) * limit
	if offset >= len(matches) {
		return make([]models.VariantMatch, 0)
	}
	end := offset + limit
	if end > len(matches) {
		end = len(matches)
	}
	return matches[offset:end]
}
