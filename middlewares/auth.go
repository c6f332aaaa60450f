package middlewares

import (
	"strings"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// AuthMiddleware verifies the bearer token and resolves the principal
// once per request. Handlers downstream read the typed principal and
// never probe for linked records themselves.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, auth.JWTSecret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		p, err := auth.ResolvePrincipal(claims.UserID)
		if err != nil {
			resp.Error(c, err)
			c.Abort()
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// WSAuthMiddleware accepts the token from a query parameter as well,
// since browser WebSocket clients cannot set headers.
func WSAuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			h := c.GetHeader("Authorization")
			if strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if tokenStr == "" {
			resp.Unauthorized(c, "missing token")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenStr, auth.JWTSecret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		p, err := auth.ResolvePrincipal(claims.UserID)
		if err != nil {
			resp.Error(c, err)
			c.Abort()
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// GetPrincipal pulls the resolved principal out of the request context.
func GetPrincipal(c *gin.Context) (*services.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*services.Principal)
	return p, ok
}

// RequireCustomer narrows the principal to a customer, aborting with
// 403 for anyone else.
func RequireCustomer(c *gin.Context) (*services.Principal, bool) {
	p, ok := GetPrincipal(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		c.Abort()
		return nil, false
	}
	if p.Kind != services.PrincipalCustomer {
		resp.Forbidden(c, "customer account required")
		c.Abort()
		return nil, false
	}
	return p, true
}

// RequireVendor narrows the principal to a vendor.
func RequireVendor(c *gin.Context) (*services.Principal, bool) {
	p, ok := GetPrincipal(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		c.Abort()
		return nil, false
	}
	if p.Kind != services.PrincipalVendor {
		resp.Forbidden(c, "vendor account required")
		c.Abort()
		return nil, false
	}
	return p, true
}
