package controllers

import (
	"errors"

	"github.com/mrdlam87/little-lemon-api/pkg/resp"
	"github.com/mrdlam87/little-lemon-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeError maps service failures onto the HTTP contract: validation and
// business-rule rejections are 400, missing resources 404, role failures 403.
func writeError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		resp.FieldErrors(c, map[string]string{ve.Field: ve.Message})
	case errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, "cart is empty")
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	default:
		resp.ServerError(c, err)
	}
}
