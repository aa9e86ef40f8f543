package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chetegamis/pizzeria-app/controllers"
	"github.com/chetegamis/pizzeria-app/middlewares"
	"github.com/chetegamis/pizzeria-app/store"
)

func SetupRouter(s store.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// 50 requests per second per IP is plenty for a single till.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	r.SetHTMLTemplate(controllers.ReceiptTemplate())

	customerCtrl := controllers.NewCustomerController(s)
	menuCtrl := controllers.NewMenuController(s)
	orderCtrl := controllers.NewOrderController(s)
	receiptCtrl := controllers.NewReceiptController(s)
	seedCtrl := controllers.NewSeedController(s)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/customers", customerCtrl.FindCustomer)
	r.POST("/customers", customerCtrl.CreateCustomer)

	r.GET("/menu", menuCtrl.GetAllMenuItems)
	r.POST("/menu", menuCtrl.CreateMenuItem)

	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id/receipt", receiptCtrl.GetReceipt)

	seed := r.Group("/")
	seed.Use(middlewares.NewSeedRateLimiter())
	{
		seed.POST("/seed", seedCtrl.Seed)
	}

	return r
}
