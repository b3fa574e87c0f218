package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/info-graph/info-graph-task/configs"
	"github.com/info-graph/info-graph-task/controllers"
	"github.com/info-graph/info-graph-task/repository"
	"github.com/info-graph/info-graph-task/services"
	"github.com/info-graph/info-graph-task/ws"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	db := configs.DB()

	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	maintRepo := repository.NewMaintenanceRepository(db)

	restSvc := services.NewRestaurantService(restRepo)
	menuSvc := services.NewMenuItemService(menuRepo, restRepo)
	maintSvc := services.NewMaintenanceService(maintRepo, restRepo)
	statusSvc := services.NewStatusService(restRepo)

	restCtrl := controllers.NewRestaurantController(restSvc, statusSvc)
	menuCtrl := controllers.NewMenuItemController(menuSvc)
	maintCtrl := controllers.NewMaintenanceController(maintSvc)
	statusFeed := ws.NewStatusFeed(statusSvc)

	api := r.Group("/api")

	rest := api.Group("/restaurants")
	{
		rest.GET("", restCtrl.List)
		rest.POST("", restCtrl.Create)
		rest.GET("/:id", restCtrl.Get)
		rest.GET("/:id/with-relations", restCtrl.GetWithRelations)
		rest.GET("/:id/status", restCtrl.StatusReport)
		rest.PUT("/:id", restCtrl.Update)
		rest.DELETE("/:id", restCtrl.Delete)
	}

	menu := api.Group("/menu-items")
	{
		menu.GET("", menuCtrl.List)
		menu.POST("", menuCtrl.Create)
		menu.GET("/restaurant/:restaurantId", menuCtrl.ListByRestaurant)
		menu.GET("/:id", menuCtrl.Get)
		menu.PUT("/:id", menuCtrl.Update)
		menu.DELETE("/:id", menuCtrl.Delete)
	}

	maint := api.Group("/maintenance")
	{
		maint.GET("", maintCtrl.List)
		maint.POST("", maintCtrl.Create)
		maint.GET("/restaurant/:restaurantId", maintCtrl.ListByRestaurant)
		maint.GET("/:id", maintCtrl.Get)
		maint.PUT("/:id", maintCtrl.Update)
		maint.DELETE("/:id", maintCtrl.Delete)
	}

	r.GET("/ws/restaurants/:id/status", statusFeed.Handle)
}
