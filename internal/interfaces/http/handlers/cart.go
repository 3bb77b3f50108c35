// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles guest cart endpoints
type CartHandler struct {
	store cart.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store cart.Store) *CartHandler {
	return &CartHandler{store: store}
}

// ReplaceCartRequest is the full cart replacement payload
type ReplaceCartRequest struct {
	Items []cart.Item `json:"items"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionKey)

	items, err := h.store.Read(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data": gin.H{
			"items":  items,
			"totals": cart.CalculateTotals(items),
		},
	})
}

// ReplaceCart handles PUT /cart
func (h *CartHandler) ReplaceCart(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionKey)

	var req ReplaceCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Item quantity must be positive",
			})
			return
		}
	}

	if err := h.store.Write(c.Request.Context(), sessionID, req.Items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart saved successfully",
		"data": gin.H{
			"items":  req.Items,
			"totals": cart.CalculateTotals(req.Items),
		},
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionKey)

	if err := h.store.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}
