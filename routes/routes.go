package routes

import (
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/configs"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/controllers"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/entity"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/middlewares"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/apperr"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/resp"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/repository"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, db *gorm.DB) {
	r.Use(middlewares.CORSMiddleware())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		resp.Error(c, apperr.E(apperr.CodeMethodNotAllowed, "Method not allowed"))
	})
	r.NoRoute(func(c *gin.Context) {
		resp.Error(c, apperr.E(apperr.CodeNotFound, "Not found"))
	})

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, catalogRepo)
	catalogSvc := services.NewCatalogService(catalogRepo)

	// Controllers
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	ownerCtrl := controllers.NewOwnerOrderController(orderSvc)
	restCtrl := controllers.NewRestaurantController(catalogSvc)
	authCtrl := controllers.NewAuthController(userRepo)
	adminCtrl := controllers.NewAdminController(userRepo)

	// Public catalog
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id/menu", restCtrl.Menu)

	// Auth (any logged-in role)
	a := r.Group("/auth", middlewares.AuthMiddleware(cfg))
	{
		a.GET("/me", authCtrl.Me)
	}

	// Cart + orders (any logged-in role)
	u := r.Group("/", middlewares.AuthMiddleware(cfg))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PUT("/cart/items", cartCtrl.UpdateQty)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/orders", orderCtrl.Place)
		u.GET("/orders", orderCtrl.List)
		u.GET("/orders/:id", orderCtrl.Detail)
	}

	// Owner dashboard
	owner := r.Group("/owner", middlewares.AuthMiddleware(cfg, entity.RoleOwner))
	{
		owner.GET("/orders", ownerCtrl.List)
		owner.PUT("/orders/status", ownerCtrl.UpdateStatus)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg, entity.RoleAdmin))
	{
		admin.GET("/users", adminCtrl.ListUsers)
	}
}
