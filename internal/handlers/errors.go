// internal/handlers/errors.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shopora/storefront-api/internal/services"
	"github.com/shopora/storefront-api/internal/utils"
)

// respondServiceError translates the services error taxonomy into the HTTP
// error envelope. Unclassified errors fall back to a 500, except validation
// failures which are client errors.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrInsufficientStock):
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		utils.BadRequestResponse(c, err.Error(), nil)
	case strings.Contains(err.Error(), "validation failed"):
		utils.BadRequestResponse(c, err.Error(), nil)
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
