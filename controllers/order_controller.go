package controllers

import (
	"backend/middlewares"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Checkout *services.CheckoutService
	Orders   *services.OrderService
}

func NewOrderController(checkout *services.CheckoutService, orders *services.OrderService) *OrderController {
	return &OrderController{Checkout: checkout, Orders: orders}
}

// POST /checkout
func (h *OrderController) CheckoutCart(c *gin.Context) {
	p, ok := middlewares.RequireCustomer(c)
	if !ok {
		return
	}
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Checkout.Checkout(p.CustomerID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	p, ok := middlewares.RequireCustomer(c)
	if !ok {
		return
	}
	out, err := h.Orders.ListForCustomer(p.CustomerID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
