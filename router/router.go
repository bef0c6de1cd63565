package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ahnaf-17/hangoutz-restaurant-plus/controllers"
	"github.com/Ahnaf-17/hangoutz-restaurant-plus/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// 50 requests per second per IP across the whole API. Must be attached
	// before any route is registered: gin copies the middleware chain into
	// each route at registration time, so a limiter added after setup
	// would only ever guard the 404 handler.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	bookingCtrl := controllers.NewBookingController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Credential endpoints get the strict limiter.
	auth := r.Group("/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/signup", userCtrl.Signup)
		auth.POST("/login", userCtrl.Login)
	}

	// Anyone can browse the menu.
	r.GET("/menu", menuCtrl.GetAllItems)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())

	authed.GET("/users/me", userCtrl.GetProfile)

	// ORDERS (owner surface)
	authed.POST("/orders", orderCtrl.CreateOrder)
	authed.GET("/orders/my", orderCtrl.GetMyOrders)
	authed.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	authed.POST("/orders/:order_id/cancel", orderCtrl.CancelOrder)
	authed.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	// BOOKINGS (owner surface)
	authed.POST("/bookings", bookingCtrl.CreateBooking)
	authed.GET("/bookings/my", bookingCtrl.GetMyBookings)
	authed.PUT("/bookings/:booking_id", bookingCtrl.UpdateBooking)
	authed.DELETE("/bookings/:booking_id", bookingCtrl.DeleteBooking)

	// STAFF/ADMIN
	elevated := authed.Group("/")
	elevated.Use(middlewares.RequireElevated())
	{
		elevated.GET("/orders", orderCtrl.GetAllOrders)
		elevated.PUT("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

		elevated.GET("/bookings", bookingCtrl.GetAllBookings)
		elevated.PUT("/bookings/:booking_id/status", bookingCtrl.UpdateBookingStatus)

		elevated.POST("/menu", menuCtrl.CreateItem)
		elevated.PUT("/menu/:item_id", menuCtrl.UpdateItem)
		elevated.DELETE("/menu/:item_id", menuCtrl.DeleteItem)

		elevated.GET("/users", userCtrl.GetAllUsers)
	}

	// ADMIN ONLY
	admin := authed.Group("/")
	admin.Use(middlewares.RequireAdmin())
	{
		admin.PUT("/users/:user_id/role", userCtrl.UpdateRole)
	}

	return r
}
