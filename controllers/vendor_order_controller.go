package controllers

import (
	"backend/middlewares"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type VendorOrderController struct{ Svc *services.OrderService }

func NewVendorOrderController(s *services.OrderService) *VendorOrderController {
	return &VendorOrderController{Svc: s}
}

// GET /vendor/orders — only the authenticated vendor's slice of each
// order, one summary row per order.
func (h *VendorOrderController) ListIncoming(c *gin.Context) {
	p, ok := middlewares.RequireVendor(c)
	if !ok {
		return
	}
	out, err := h.Svc.ListForVendor(p.VendorID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": out, "totalOrders": len(out)})
}
