// internal/handlers/cart.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/euphoria-shop/storefront/internal/models"
	"github.com/euphoria-shop/storefront/internal/session"
	"github.com/euphoria-shop/storefront/internal/utils"
)

type CartHandler struct {
	session *session.Session
}

func NewCartHandler(sess *session.Session) *CartHandler {
	return &CartHandler{session: sess}
}

// cartItemView is a line item with its thumbnail resolved to the
// slot-0 override when one exists.
type cartItemView struct {
	models.CartItem
	Thumbnail string `json:"thumbnail"`
}

func (h *CartHandler) itemViews() []cartItemView {
	items := h.session.CartItems()
	views := make([]cartItemView, 0, len(items))
	for _, item := range items {
		thumbnail := ""
		if images, err := h.session.DisplayImages(item.Product.ID); err == nil && len(images) > 0 {
			thumbnail = images[0]
		}
		views = append(views, cartItemView{CartItem: item, Thumbnail: thumbnail})
	}
	return views
}

type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	Redirect  bool   `json:"redirect"`
}

type AdjustQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"items":      h.itemViews(),
		"subtotal":   h.session.Subtotal(),
		"item_count": h.session.ItemCount(),
	})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if err := h.session.AddToCart(req.ProductID, req.Size, req.Quantity, req.Redirect); err != nil {
		respondSessionError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"items":      h.itemViews(),
		"item_count": h.session.ItemCount(),
		"view":       h.session.View(),
	})
}

// PATCH /cart/items/:index
func (h *CartHandler) AdjustQuantity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid line item index", nil)
		return
	}

	var req AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if err := h.session.AdjustQuantity(index, req.Delta); err != nil {
		respondSessionError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items":    h.itemViews(),
		"subtotal": h.session.Subtotal(),
	})
}

// DELETE /cart/items/:index
func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid line item index", nil)
		return
	}

	if err := h.session.RemoveItem(index); err != nil {
		respondSessionError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"items":    h.itemViews(),
		"subtotal": h.session.Subtotal(),
	})
}
