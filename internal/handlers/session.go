// internal/handlers/session.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/euphoria-shop/storefront/internal/models"
	"github.com/euphoria-shop/storefront/internal/session"
	"github.com/euphoria-shop/storefront/internal/utils"
)

type SessionHandler struct {
	session *session.Session
}

func NewSessionHandler(sess *session.Session) *SessionHandler {
	return &SessionHandler{session: sess}
}

type SetViewRequest struct {
	View models.View `json:"view" binding:"required"`
}

// GET /session
func (h *SessionHandler) GetState(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"state": h.session.State(),
	})
}

// PUT /session/view
func (h *SessionHandler) SetView(c *gin.Context) {
	var req SetViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if err := h.session.GoTo(req.View); err != nil {
		respondSessionError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"view": h.session.View(),
	})
}

// POST /session/lock
func (h *SessionHandler) ToggleLock(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"locked": h.session.ToggleLock(),
	})
}
