package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services (the menu repository doubles as the order catalog)
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(menuRepo, orderRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/signup", authCtrl.Signup)
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", authCtrl.Logout)
		a.GET("/user", middlewares.AuthMiddleware(cfg), authCtrl.Me)
	}

	// Menu
	r.GET("/menu", menuCtrl.List)
	r.POST("/menu", menuCtrl.Create)
	r.DELETE("/menu/:id", menuCtrl.Delete)

	// Orders
	r.POST("/orders", orderCtrl.Create)
	r.GET("/orders/user/:user_id", orderCtrl.HistoryForUser)
	r.DELETE("/orders/:id", orderCtrl.Delete)
}
