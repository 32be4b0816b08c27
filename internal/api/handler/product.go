package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sanuatmasai/Product-Recommendation/internal/catalog"
)

// ProductHandler handles catalog browsing endpoints.
type ProductHandler struct {
	store *catalog.Store
}

// NewProductHandler creates a new product handler.
// Parameters:
//   - store: immutable catalog store.
// Returns:
//   - *ProductHandler: initialized handler.
func NewProductHandler(store *catalog.Store) *ProductHandler {
	return &ProductHandler{
		store: store,
	}
}

type listProductsQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Page     int    `form:"page,default=1" binding:"gte=1"`
	PageSize int    `form:"page_size,default=10" binding:"gte=1,lte=100"`
}

// ListProducts handles GET /products with filtering and pagination.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var q listProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "Invalid query: " + err.Error(),
		})
		return
	}

	result := h.store.List(catalog.ListQuery{
		Category: q.Category,
		Search:   q.Search,
		Page:     q.Page,
		PageSize: q.PageSize,
	})

	c.JSON(http.StatusOK, result)
}

// GetProduct handles GET /products/:id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "Product id must be an integer",
		})
		return
	}

	product, err := h.store.ByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"detail": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Failed to load product: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}
