package controllers

import (
	"strconv"

	"backend/middlewares"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// POST /vendor/menus
func (h *MenuController) Create(c *gin.Context) {
	p, ok := middlewares.RequireVendor(c)
	if !ok {
		return
	}
	var req services.CreateMenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := h.Svc.CreateMenu(p.VendorID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, menu)
}

// GET /vendor/menus
func (h *MenuController) ListMine(c *gin.Context) {
	p, ok := middlewares.RequireVendor(c)
	if !ok {
		return
	}
	menus, err := h.Svc.ListMenus(p.VendorID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, menus)
}

// PATCH /vendor/menus/:id
func (h *MenuController) Update(c *gin.Context) {
	p, ok := middlewares.RequireVendor(c)
	if !ok {
		return
	}
	menuID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}
	var req services.UpdateMenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	items, err := h.Svc.UpdateMenu(p.VendorID, uint(menuID), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"menuId": menuID, "items": items})
}

// DELETE /vendor/menus/:id
func (h *MenuController) Delete(c *gin.Context) {
	p, ok := middlewares.RequireVendor(c)
	if !ok {
		return
	}
	menuID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}
	if err := h.Svc.DeleteMenu(p.VendorID, uint(menuID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": menuID})
}

// DELETE /vendor/items/:id
func (h *MenuController) DeleteItem(c *gin.Context) {
	p, ok := middlewares.RequireVendor(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := h.Svc.DeleteItem(p.VendorID, uint(itemID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": itemID})
}
