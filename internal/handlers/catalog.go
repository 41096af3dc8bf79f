// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/euphoria-shop/storefront/internal/catalog"
	"github.com/euphoria-shop/storefront/internal/models"
	"github.com/euphoria-shop/storefront/internal/session"
	"github.com/euphoria-shop/storefront/internal/utils"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
	session *session.Session
}

func NewCatalogHandler(cat *catalog.Catalog, sess *session.Session) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		session: sess,
	}
}

// productView is a catalog entry with its slot state and override
// images resolved for display.
type productView struct {
	models.Product
	ActiveSlot    int      `json:"active_slot"`
	DisplayImages []string `json:"display_images"`
}

func (h *CatalogHandler) view(product models.Product) productView {
	images, _ := h.session.DisplayImages(product.ID)
	return productView{
		Product:       product,
		ActiveSlot:    h.session.ActiveSlot(product.ID),
		DisplayImages: images,
	}
}

// GET /catalog
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products := h.catalog.Products()
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, h.view(p))
	}

	utils.SuccessResponse(c, gin.H{
		"products": views,
	})
}

// GET /catalog/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.ByID(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": h.view(*product),
	})
}
