package routes

import (
	"github.com/mrdlam87/little-lemon-api/configs"
	"github.com/mrdlam87/little-lemon-api/controllers"
	"github.com/mrdlam87/little-lemon-api/entity"
	"github.com/mrdlam87/little-lemon-api/middlewares"
	"github.com/mrdlam87/little-lemon-api/repository"
	"github.com/mrdlam87/little-lemon-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, groupRepo)
	groupSvc := services.NewGroupService(userRepo, groupRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	managerGroupCtrl := controllers.NewGroupController(groupSvc, entity.RoleManager)
	crewGroupCtrl := controllers.NewGroupController(groupSvc, entity.RoleDeliveryCrew)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	managerOnly := middlewares.RequireRole(groupRepo, entity.RoleManager)
	managerOrCrew := middlewares.RequireRole(groupRepo, entity.RoleManager, entity.RoleDeliveryCrew)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Catalog (read-only)
	catalog := r.Group("/", auth)
	{
		catalog.GET("/categories", menuCtrl.Categories)
		catalog.GET("/menu-items", menuCtrl.List)
		catalog.GET("/menu-items/:id", menuCtrl.Detail)
	}

	// Role group membership (manager only)
	groups := r.Group("/groups", auth, managerOnly)
	{
		groups.GET("/manager/users", managerGroupCtrl.List)
		groups.POST("/manager/users", managerGroupCtrl.Add)
		groups.DELETE("/manager/users/:id", managerGroupCtrl.Remove)

		groups.GET("/delivery-crew/users", crewGroupCtrl.List)
		groups.POST("/delivery-crew/users", crewGroupCtrl.Add)
		groups.DELETE("/delivery-crew/users/:id", crewGroupCtrl.Remove)
	}

	// Cart
	cart := r.Group("/cart", auth)
	{
		cart.GET("/menu-items", cartCtrl.List)
		cart.POST("/menu-items", cartCtrl.Add)
		cart.DELETE("/menu-items", cartCtrl.Clear)
	}

	// Orders
	orders := r.Group("/orders", auth)
	{
		orders.GET("", orderCtrl.List)
		orders.POST("", orderCtrl.Place)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PATCH("/:id", managerOrCrew, orderCtrl.UpdateStatus)
		orders.PUT("/:id", managerOnly, orderCtrl.Assign)
		orders.DELETE("/:id", managerOnly, orderCtrl.Delete)
	}
}
