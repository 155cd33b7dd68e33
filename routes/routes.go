package routes

import (
	"tastekart/handlers"
	"tastekart/middleware"
	"tastekart/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		public.GET("/menu", handlers.ListMenu)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id/reviews", handlers.ListRestaurantReviews)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.PUT("/profile", handlers.UpdateProfile)
		auth.POST("/location", handlers.SetLocation)
	}

	// ── Customer checkout pipeline ─────────────────────────────────
	customer := r.Group("/api")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/cart", handlers.SyncCart)
		customer.GET("/cart", handlers.GetCart)
		customer.POST("/checkout", handlers.Checkout)
		customer.POST("/payment/otp", handlers.SendOTP)
		customer.POST("/payment", handlers.SubmitPayment)

		customer.GET("/orders", handlers.GetMyOrders)
		customer.GET("/orders/:id", handlers.GetOrderDetail)
		customer.POST("/orders/:id/review", handlers.SubmitReview)
	}

	// ── Restaurant routes ──────────────────────────────────────────
	restaurant := r.Group("/api/restaurant")
	restaurant.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurant))
	{
		restaurant.GET("/menu", handlers.GetMyMenu)
		restaurant.POST("/menu", handlers.AddMenuItem)
		restaurant.POST("/menu/import", handlers.ImportMenu)
		restaurant.PUT("/menu/:itemId", handlers.UpdateMenuItem)
		restaurant.DELETE("/menu/:itemId", handlers.DeleteMenuItem)

		restaurant.GET("/orders", handlers.GetRestaurantOrders)
		restaurant.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/coupons", handlers.CreateCoupon)
		admin.GET("/coupons", handlers.ListCoupons)
		admin.GET("/dashboard", handlers.Dashboard)
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.GET("/orders/export", handlers.ExportOrders)
		admin.PUT("/orders/:id/status", handlers.AdminForceOrderStatus)
	}
}
