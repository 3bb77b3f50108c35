// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/proof"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CheckoutHandler handles the guest checkout flow
type CheckoutHandler struct {
	checkoutService *checkout.Service
	encoder         *proof.Encoder
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, encoder *proof.Encoder) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		encoder:         encoder,
	}
}

// SummaryRequest carries the inputs the pricing summary depends on
type SummaryRequest struct {
	City          string                 `json:"city"`
	PaymentMethod checkout.PaymentMethod `json:"payment_method"`
}

// GetSummary handles POST /checkout/summary
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionKey)

	var req SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	summary, err := h.checkoutService.Summarize(c.Request.Context(), sessionID, req.City, req.PaymentMethod)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to build checkout summary",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data":    summary,
	})
}

// ValidateForm handles POST /checkout/validate
func (h *CheckoutHandler) ValidateForm(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionKey)

	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	fieldErrors, err := h.checkoutService.Validate(c.Request.Context(), sessionID, &form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to validate checkout form",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout form validated",
		"data": gin.H{
			"valid":  len(fieldErrors) == 0,
			"errors": fieldErrors,
		},
	})
}

// UploadProof handles POST /checkout/proofs/:slot
func (h *CheckoutHandler) UploadProof(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionKey)

	slot := proof.Slot(c.Param("slot"))
	if !slot.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown proof slot",
		})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No file uploaded",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to open uploaded file",
		})
		return
	}
	defer file.Close()

	err = h.encoder.Encode(c.Request.Context(), sessionID, slot, fileHeader.Header.Get("Content-Type"), fileHeader.Size, file)
	if err != nil {
		var encodingErr *proof.EncodingError
		if errors.As(err, &encodingErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": encodingErr.Message,
				"field": encodingErr.Slot.Field(),
			})
			return
		}
		if errors.Is(err, proof.ErrEncodingInFlight) {
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to process uploaded file",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Proof uploaded successfully",
		"data": gin.H{
			"slot": slot,
		},
	})
}

// RemoveProof handles DELETE /checkout/proofs/:slot
func (h *CheckoutHandler) RemoveProof(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionKey)

	slot := proof.Slot(c.Param("slot"))
	if !slot.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown proof slot",
		})
		return
	}

	if err := h.encoder.Remove(c.Request.Context(), sessionID, slot); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove proof",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Proof removed successfully",
	})
}

// PlaceOrder handles POST /checkout/orders
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionKey)

	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.checkoutService.PlaceOrder(c.Request.Context(), sessionID, &form)
	if err != nil {
		h.renderPlaceOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    result,
	})
}

func (h *CheckoutHandler) renderPlaceOrderError(c *gin.Context, err error) {
	var validationErr *checkout.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Please fix the highlighted fields",
			"fields": validationErr.Fields,
		})
	case errors.Is(err, checkout.ErrCartEmpty):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Your cart is empty",
		})
	case errors.Is(err, checkout.ErrSubmitInProgress), errors.Is(err, checkout.ErrEncodingPending):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, order.ErrPayloadTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": "The uploaded image is too large. Please try a smaller image or contact support.",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error placing order. Please try again.",
		})
	}
}
