package controllers

import (
	"github.com/mrdlam87/little-lemon-api/pkg/resp"
	"github.com/mrdlam87/little-lemon-api/services"
	"github.com/mrdlam87/little-lemon-api/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

type addToCartReq struct {
	MenuItemID uint `json:"menuitem_id" binding:"required"`
	Quantity   int  `json:"quantity"`
}

// GET /cart/menu-items
func (h *CartController) List(c *gin.Context) {
	lines, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, lines)
}

// POST /cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	var req addToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line, err := h.Svc.Add(utils.CurrentUserID(c), req.MenuItemID, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, line)
}

// DELETE /cart/menu-items
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "ok")
}
