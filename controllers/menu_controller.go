package controllers

import (
	"strconv"

	"github.com/mrdlam87/little-lemon-api/pkg/resp"
	"github.com/mrdlam87/little-lemon-api/repository"
	"github.com/mrdlam87/little-lemon-api/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu-items?category=&featured=&search=&ordering=&page=&perpage=
func (h *MenuController) List(c *gin.Context) {
	f := repository.MenuItemFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		OrderBy:  c.Query("ordering"),
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true" || v == "1"
		f.Featured = &featured
	}
	f.Page, _ = strconv.Atoi(c.Query("page"))
	f.PerPage, _ = strconv.Atoi(c.Query("perpage"))

	items, total, err := h.Svc.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total})
}

// GET /menu-items/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := h.Svc.Get(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, m)
}

// GET /categories
func (h *MenuController) Categories(c *gin.Context) {
	cats, err := h.Svc.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}
