package controllers

import (
	"strconv"

	"backend/middlewares"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) View(c *gin.Context) {
	p, ok := middlewares.RequireCustomer(c)
	if !ok {
		return
	}
	view, err := h.Svc.View(p.CustomerID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart/items
func (h *CartController) AddItem(c *gin.Context) {
	p, ok := middlewares.RequireCustomer(c)
	if !ok {
		return
	}
	var req struct {
		ItemID   uint `json:"item_id" binding:"required"`
		Quantity int  `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.AddItem(p.CustomerID, req.ItemID, req.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// PATCH /cart/items/:itemId
func (h *CartController) UpdateLine(c *gin.Context) {
	p, ok := middlewares.RequireCustomer(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateLineQuantity(p.CustomerID, uint(itemID), req.Quantity); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"itemId": itemID, "quantity": req.Quantity})
}

// DELETE /cart/items/:itemId
func (h *CartController) RemoveLine(c *gin.Context) {
	p, ok := middlewares.RequireCustomer(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := h.Svc.RemoveLine(p.CustomerID, uint(itemID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": itemID})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	p, ok := middlewares.RequireCustomer(c)
	if !ok {
		return
	}
	removed, err := h.Svc.Clear(p.CustomerID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"removedLines": removed})
}
