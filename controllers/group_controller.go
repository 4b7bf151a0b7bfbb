package controllers

import (
	"strconv"

	"github.com/mrdlam87/little-lemon-api/pkg/resp"
	"github.com/mrdlam87/little-lemon-api/services"

	"github.com/gin-gonic/gin"
)

// GroupController serves the membership endpoints for one role group; the
// routes instantiate it once per group.
type GroupController struct {
	Svc  *services.GroupService
	Role string
}

func NewGroupController(s *services.GroupService, role string) *GroupController {
	return &GroupController{Svc: s, Role: role}
}

// GET /groups/{role}/users
func (h *GroupController) List(c *gin.Context) {
	users, err := h.Svc.ListMembers(h.Role)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}

type addMemberReq struct {
	Username string `json:"username"`
}

// POST /groups/{role}/users
func (h *GroupController) Add(c *gin.Context) {
	var req addMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.AddMember(h.Role, req.Username); err != nil {
		writeError(c, err)
		return
	}
	resp.Message(c, "ok")
}

// DELETE /groups/{role}/users/:id
func (h *GroupController) Remove(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.RemoveMember(h.Role, uint(id)); err != nil {
		writeError(c, err)
		return
	}
	resp.Message(c, "ok")
}
