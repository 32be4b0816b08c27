package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sanuatmasai/Product-Recommendation/internal/catalog"
	"github.com/sanuatmasai/Product-Recommendation/internal/recommend"
)

// RecommendHandler handles recommendation endpoints.
type RecommendHandler struct {
	content     *recommend.ContentEngine
	collab      *recommend.CollabEngine
	defaultTopK int
}

// NewRecommendHandler creates a new recommendation handler.
// Parameters:
//   - content: content similarity engine.
//   - collab: collaborative filtering engine.
//   - defaultTopK: result count used when top_k is absent.
// Returns:
//   - *RecommendHandler: initialized handler.
func NewRecommendHandler(content *recommend.ContentEngine, collab *recommend.CollabEngine, defaultTopK int) *RecommendHandler {
	if defaultTopK <= 0 {
		defaultTopK = 5
	}
	return &RecommendHandler{
		content:     content,
		collab:      collab,
		defaultTopK: defaultTopK,
	}
}

// topK parses the top_k query parameter, falling back to the default.
func (h *RecommendHandler) topK(c *gin.Context) (int, bool) {
	raw := c.Query("top_k")
	if raw == "" {
		return h.defaultTopK, true
	}
	k, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "top_k must be an integer",
		})
		return 0, false
	}
	return k, true
}

// ContentRecommendations handles GET /recommendations/:product_id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecommendHandler) ContentRecommendations(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "Product id must be an integer",
		})
		return
	}

	k, ok := h.topK(c)
	if !ok {
		return
	}

	recs, err := h.content.Recommend(productID, k)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"detail": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Recommendation failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, recs)
}

// CollabRecommendations handles GET /collab-recommendations/:user_id.
// Absent interaction data yields an empty array, never an error.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecommendHandler) CollabRecommendations(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "User id must be an integer",
		})
		return
	}

	k, ok := h.topK(c)
	if !ok {
		return
	}

	recs, err := h.collab.Recommend(c.Request.Context(), userID, k)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Recommendation failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, recs)
}
