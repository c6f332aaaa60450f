package controllers

import (
	"backend/middlewares"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc   *services.AuthService
	Reset *services.PasswordResetService
}

func NewAuthController(svc *services.AuthService, reset *services.PasswordResetService) *AuthController {
	return &AuthController{Svc: svc, Reset: reset}
}

// POST /auth/register/customer
func (h *AuthController) RegisterCustomer(c *gin.Context) {
	var req services.RegisterCustomerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	customer, err := h.Svc.RegisterCustomer(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, customer)
}

// POST /auth/register/vendor
func (h *AuthController) RegisterVendor(c *gin.Context) {
	var req services.RegisterVendorIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	vendor, err := h.Svc.RegisterVendor(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, vendor)
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	p, ok := middlewares.GetPrincipal(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	me, err := h.Svc.Me(p)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, me)
}

// POST /auth/password-reset
func (h *AuthController) PasswordResetRequest(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Reset.Request(req.Email); err != nil {
		resp.Error(c, err)
		return
	}
	// same answer whether or not the account exists
	resp.OK(c, gin.H{"message": "password reset email sent"})
}

// POST /auth/password-reset/confirm
func (h *AuthController) PasswordResetConfirm(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Reset.Confirm(req.Token, req.NewPassword); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "password has been reset"})
}
