// internal/interfaces/http/handlers/home.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// HomeHandler serves the home page payload
type HomeHandler struct {
	config *config.Config
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(cfg *config.Config) *HomeHandler {
	return &HomeHandler{config: cfg}
}

// GetHome handles GET /home
func (h *HomeHandler) GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Home retrieved successfully",
		"data": gin.H{
			"store_notice":        h.config.App.StoreNotice,
			"whatsapp":            h.config.App.WhatsApp,
			"currency":            h.config.App.Currency,
			"featured_categories": catalog.FeaturedCategories(),
		},
	})
}
