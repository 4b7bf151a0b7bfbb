package controllers

import (
	"strconv"

	"github.com/mrdlam87/little-lemon-api/pkg/resp"
	"github.com/mrdlam87/little-lemon-api/services"
	"github.com/mrdlam87/little-lemon-api/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /orders — checkout the caller's cart
func (h *OrderController) Place(c *gin.Context) {
	order, err := h.Svc.Place(utils.CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := h.Svc.Detail(utils.CurrentUserID(c), uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, order)
}

type updateStatusReq struct {
	Status *int `json:"status" binding:"required"`
}

// PATCH /orders/:id — status only
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.UpdateStatus(utils.CurrentUserID(c), uint(id), *req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, order)
}

type assignReq struct {
	DeliveryCrewID *uint `json:"delivery_crew_id"`
	Status         *int  `json:"status"`
}

// PUT /orders/:id — partial update of crew assignment and/or status
func (h *OrderController) Assign(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req assignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Assign(uint(id), services.OrderPatch{
		DeliveryCrewID: req.DeliveryCrewID,
		Status:         req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id
func (h *OrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.Delete(uint(id)); err != nil {
		writeError(c, err)
		return
	}
	resp.Message(c, "ok")
}
