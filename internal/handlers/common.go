// internal/handlers/common.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/euphoria-shop/storefront/internal/session"
	"github.com/euphoria-shop/storefront/internal/utils"
)

// respondSessionError maps core errors onto the API error vocabulary.
func respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrUnknownProduct):
		utils.NotFoundResponse(c, "product")
	case errors.Is(err, session.ErrNoSuchLineItem):
		utils.NotFoundResponse(c, "line item")
	case errors.Is(err, session.ErrSubmitInFlight):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, session.ErrSiteLocked):
		utils.ForbiddenResponse(c, err.Error())
	default:
		var verr *session.ValidationError
		if errors.As(err, &verr) {
			utils.BadRequestResponse(c, verr.Reason, nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
	}
}
