package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sanuatmasai/Product-Recommendation/internal/domain"
	"github.com/sanuatmasai/Product-Recommendation/internal/service"
)

// InteractionHandler handles interaction tracking and history endpoints.
type InteractionHandler struct {
	tracking *service.TrackingService
}

// NewInteractionHandler creates a new interaction handler.
// Parameters:
//   - tracking: tracking service instance.
// Returns:
//   - *InteractionHandler: initialized handler.
func NewInteractionHandler(tracking *service.TrackingService) *InteractionHandler {
	return &InteractionHandler{
		tracking: tracking,
	}
}

// flexInt decodes a JSON integer given either as a number or as a string,
// matching clients that send user ids as "7" rather than 7.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("expected an integer, got %s", data)
	}
	*f = flexInt(n)
	return nil
}

type trackRequest struct {
	UserID    flexInt `json:"user_id"`
	ProductID int     `json:"product_id"`
}

// track binds the request body and appends an interaction of the given type.
func (h *InteractionHandler) track(c *gin.Context, interactionType domain.InteractionType) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "Invalid request: " + err.Error(),
		})
		return
	}

	interaction, err := h.tracking.Track(c.Request.Context(), int(req.UserID), req.ProductID, interactionType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Failed to record interaction: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, interaction)
}

// TrackView handles POST /view.
func (h *InteractionHandler) TrackView(c *gin.Context) {
	h.track(c, domain.InteractionView)
}

// TrackLike handles POST /like.
func (h *InteractionHandler) TrackLike(c *gin.Context) {
	h.track(c, domain.InteractionLike)
}

// TrackPurchase handles POST /purchase.
func (h *InteractionHandler) TrackPurchase(c *gin.Context) {
	h.track(c, domain.InteractionPurchase)
}

// History handles GET /user/:user_id/history.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *InteractionHandler) History(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "User id must be an integer",
		})
		return
	}

	history, err := h.tracking.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Failed to load history: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, history)
}
