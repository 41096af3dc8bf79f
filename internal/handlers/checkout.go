// internal/handlers/checkout.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/euphoria-shop/storefront/internal/models"
	"github.com/euphoria-shop/storefront/internal/session"
	"github.com/euphoria-shop/storefront/internal/utils"
)

type CheckoutHandler struct {
	session    *session.Session
	brandPhone string
}

func NewCheckoutHandler(sess *session.Session, brandPhone string) *CheckoutHandler {
	return &CheckoutHandler{
		session:    sess,
		brandPhone: brandPhone,
	}
}

// UpdateFormRequest carries partial contact-form edits. Absent fields
// keep their current value.
type UpdateFormRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone" validate:"omitempty,il_phone"`
	Address *string `json:"address"`
}

type SelectShippingRequest struct {
	Method models.ShippingMethod `json:"method" binding:"required"`
}

// PUT /checkout/form
func (h *CheckoutHandler) UpdateForm(c *gin.Context) {
	var req UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	h.session.UpdateForm(req.Name, req.Phone, req.Address)

	utils.SuccessResponse(c, gin.H{
		"form":       h.session.Form(),
		"can_submit": h.session.CanSubmit(),
	})
}

// PUT /checkout/shipping
func (h *CheckoutHandler) SelectShipping(c *gin.Context) {
	var req SelectShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if err := h.session.SelectShipping(req.Method); err != nil {
		respondSessionError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"shipping_method": h.session.ShippingMethod(),
		"shipping_cost":   h.session.ShippingCost(),
		"total":           h.session.Total(),
		"can_submit":      h.session.CanSubmit(),
	})
}

// GET /checkout/summary
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	state := h.session.State()

	utils.SuccessResponse(c, gin.H{
		"summary":    state,
		"can_submit": h.session.CanSubmit(),
		"payment": gin.H{
			"method":      models.PaymentBit,
			"instruction": "Transfer to " + h.brandPhone + " after placing order.",
		},
	})
}

// POST /checkout/finalize
func (h *CheckoutHandler) Finalize(c *gin.Context) {
	if _, err := h.session.Finalize(c.Request.Context()); err != nil {
		respondSessionError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     "Order Placed",
		"instruction": "Complete Bit transfer to " + h.brandPhone,
		"state":       h.session.State(),
	})
}
