// internal/handlers/gallery.go
package handlers

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/euphoria-shop/storefront/internal/session"
	"github.com/euphoria-shop/storefront/internal/utils"
)

type GalleryHandler struct {
	session *session.Session
}

func NewGalleryHandler(sess *session.Session) *GalleryHandler {
	return &GalleryHandler{session: sess}
}

type SetSlotRequest struct {
	Index *int `json:"index" binding:"required"`
}

// POST /catalog/:id/slots/advance
func (h *GalleryHandler) AdvanceSlot(c *gin.Context) {
	slot, err := h.session.AdvanceSlot(c.Param("id"))
	if err != nil {
		respondSessionError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"active_slot": slot,
	})
}

// PUT /catalog/:id/slots/active
func (h *GalleryHandler) SetSlot(c *gin.Context) {
	var req SetSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if err := h.session.SetSlot(c.Param("id"), *req.Index); err != nil {
		respondSessionError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"active_slot": h.session.ActiveSlot(c.Param("id")),
	})
}

// POST /catalog/:id/slots/:slot/image
func (h *GalleryHandler) UploadImage(c *gin.Context) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid slot index", nil)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "Missing image file", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Unreadable image file", nil)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		utils.BadRequestResponse(c, "Unreadable image file", nil)
		return
	}

	if err := h.session.UploadImage(c.Param("id"), slot, fileBytes); err != nil {
		respondSessionError(c, err)
		return
	}

	// A locked site or an undecodable file lands here too: the upload
	// silently did nothing and the images reflect that.
	images, err := h.session.DisplayImages(c.Param("id"))
	if err != nil {
		respondSessionError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"display_images": images,
	})
}

// DELETE /gallery/overrides
func (h *GalleryHandler) ClearOverrides(c *gin.Context) {
	if c.Query("confirm") != "true" {
		utils.BadRequestResponse(c, "Pass confirm=true to remove all custom images", nil)
		return
	}

	if err := h.session.ClearOverrides(); err != nil {
		respondSessionError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "All custom images removed",
	})
}
