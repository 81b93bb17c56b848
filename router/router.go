package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/foodpoint-pos/config"
	"github.com/yeremiapane/foodpoint-pos/controllers"
	"github.com/yeremiapane/foodpoint-pos/middlewares"
)

// Controllers bundles every HTTP handler set the router mounts.
type Controllers struct {
	Menu   *controllers.MenuController
	Order  *controllers.OrderController
	Sales  *controllers.SalesController
	Image  *controllers.ImageController
	Events *controllers.EventsController
}

func SetupRouter(ctrl Controllers, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	rateLimiter := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.AllowedOrigin))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(rateLimiter.RateLimit())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// only image files are served from the upload directory
	r.GET("/uploads/:filename", middlewares.ImagesOnly(), ctrl.Image.ServeImage)

	// live order / sale events for the kitchen display
	r.GET("/ws/events", ctrl.Events.Stream)

	api := r.Group("/api")

	// FOOD ITEMS
	food := api.Group("/food-items")
	{
		food.POST("", ctrl.Menu.CreateMenuItem)
		food.GET("", ctrl.Menu.GetAllMenuItems)
		food.GET("/menu", ctrl.Menu.GetAllMenuItems)
		food.GET("/:id", ctrl.Menu.GetMenuItemByID)
		food.DELETE("/:id", ctrl.Menu.DeleteMenuItem)
	}

	// ORDERS
	orders := api.Group("/orders")
	{
		orders.POST("", ctrl.Order.CreateOrder)
		orders.GET("", ctrl.Order.GetAllOrders)
		orders.GET("/pending", ctrl.Order.GetPendingOrders)
		orders.GET("/:id", ctrl.Order.GetOrderByID)
		orders.GET("/:id/receipt", ctrl.Order.GetReceipt)
		orders.PUT("/:id", ctrl.Order.UpdateOrder)
		orders.PUT("/:id/payment-done", ctrl.Order.MarkPaymentDone)
		orders.DELETE("/:id", ctrl.Order.DeleteOrder)
	}

	// SALES
	sales := api.Group("/sales")
	{
		sales.GET("", ctrl.Sales.GetAllSales)
		sales.POST("", ctrl.Sales.RecordSale)
		sales.GET("/today", ctrl.Sales.GetTodaySales)
		sales.GET("/total", ctrl.Sales.GetTotalSales)
		sales.GET("/monthly", ctrl.Sales.GetMonthlySales)
		sales.GET("/recent", ctrl.Sales.GetRecentSales)
		sales.GET("/trend", ctrl.Sales.GetWeeklyTrend)
		sales.GET("/trend/chart", ctrl.Sales.GetWeeklyTrendChart)
	}

	return r
}
