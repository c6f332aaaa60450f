package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, cfg.JWTSecret, cfg.JWTTTL)
	mailer := &services.SMTPMailer{Host: cfg.SMTPHost, Port: cfg.SMTPPort, From: cfg.SMTPFrom}
	resetSvc := services.NewPasswordResetService(userRepo, mailer, cfg.JWTSecret, cfg.ResetTTL, cfg.ResetURL)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, orderRepo)
	orderSvc := services.NewOrderService(orderRepo, userRepo)
	menuSvc := services.NewMenuService(db, menuRepo, orderRepo)
	catalogSvc := services.NewCatalogService(catalogRepo)

	// vendor order feed
	hub := ws.NewOrderHub()
	go hub.Run()
	checkoutSvc.Notifier = hub

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, resetSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(checkoutSvc, orderSvc)
	vendorOrderCtrl := controllers.NewVendorOrderController(orderSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)

	authed := middlewares.AuthMiddleware(authSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register/customer", authCtrl.RegisterCustomer)
		a.POST("/register/vendor", authCtrl.RegisterVendor)
		a.POST("/login", authCtrl.Login)
		a.POST("/password-reset", authCtrl.PasswordResetRequest)
		a.POST("/password-reset/confirm", authCtrl.PasswordResetConfirm)
	}
	r.GET("/auth/me", authed, authCtrl.Me)

	// Catalog (public)
	r.GET("/vendors", catalogCtrl.ListVendors)
	r.GET("/vendors/:id", catalogCtrl.VendorDetail)
	r.GET("/items/:id", catalogCtrl.ItemDetail)

	// Cart + checkout (customer)
	cart := r.Group("/cart", authed)
	{
		cart.GET("", cartCtrl.View)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:itemId", cartCtrl.UpdateLine)
		cart.DELETE("/items/:itemId", cartCtrl.RemoveLine)
		cart.DELETE("", cartCtrl.Clear)
	}
	r.POST("/checkout", authed, orderCtrl.CheckoutCart)
	r.GET("/orders", authed, orderCtrl.ListForMe)

	// Vendor
	vendor := r.Group("/vendor", authed)
	{
		vendor.GET("/orders", vendorOrderCtrl.ListIncoming)
		vendor.GET("/menus", menuCtrl.ListMine)
		vendor.POST("/menus", menuCtrl.Create)
		vendor.PATCH("/menus/:id", menuCtrl.Update)
		vendor.DELETE("/menus/:id", menuCtrl.Delete)
		vendor.DELETE("/items/:id", menuCtrl.DeleteItem)
	}

	// WebSocket order feed (token via query for browser clients)
	r.GET("/vendor/orders/ws", middlewares.WSAuthMiddleware(authSvc), hub.HandleWS)
}
