package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/greencityconnect/waste-backend/internal/config"
	"github.com/greencityconnect/waste-backend/internal/handlers"
	"github.com/greencityconnect/waste-backend/internal/middleware"
)

// Handlers bundles the request handlers wired in main
type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	WasteLog     *handlers.WasteLogHandler
	Booking      *handlers.BookingHandler
	Payment      *handlers.PaymentHandler
	Subscription *handlers.SubscriptionHandler
	Complaint    *handlers.ComplaintHandler
	Message      *handlers.MessageHandler
	Stats        *handlers.StatsHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	// Create router
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ResponseTimeMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		// Auth routes
		auth := public.Group("/auth")
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/admin/login", h.Auth.AdminLogin)
			auth.POST("/reset-password", h.Auth.ResetPassword)
		}

		// Plan catalog is public so the signup page can show pricing
		public.GET("/plans", h.Subscription.GetPlans)
	}

	// Protected user routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	protected.Use(middleware.RequireRole("user"))
	{
		// Profile routes
		protected.GET("/users/me", h.User.GetMe)
		protected.PUT("/users/me", h.User.UpdateMe)

		// Waste log routes
		wastelogs := protected.Group("/wastelogs")
		{
			wastelogs.GET("", h.WasteLog.GetWasteLogs)
			wastelogs.POST("", h.WasteLog.AddWasteLog)
		}
		protected.GET("/pickups", h.WasteLog.GetPickupHistory)

		// Booking routes
		bookings := protected.Group("/bookings")
		{
			bookings.GET("", h.Booking.GetBookings)
			bookings.POST("", h.Booking.CreateBooking)
			bookings.POST("/:id/pay", h.Booking.PayForBooking)
		}

		// Payment routes
		payments := protected.Group("/payments")
		{
			payments.GET("", h.Payment.GetPayments)
			payments.POST("", h.Payment.InitiatePayment)
			payments.GET("/upi-intent", h.Payment.GetUPIIntent)
			payments.POST("/:id/screenshot", h.Payment.UploadScreenshot)
		}

		// Subscription routes
		protected.POST("/subscription", h.Subscription.UpdateSubscription)

		// Complaint routes
		complaints := protected.Group("/complaints")
		{
			complaints.GET("", h.Complaint.GetComplaints)
			complaints.POST("", h.Complaint.FileComplaint)
		}

		// Inbox routes
		inbox := protected.Group("/inbox")
		{
			inbox.GET("", h.Message.GetInbox)
			inbox.GET("/unread-count", h.Message.GetUnreadCount)
			inbox.POST("/read", h.Message.MarkRead)
		}
	}

	// Admin routes
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(cfg))
	admin.Use(middleware.RequireRole("admin"))
	{
		// User management routes
		users := admin.Group("/users")
		{
			users.GET("", h.User.GetAllUsers)
			users.PUT("/:id/status", h.User.UpdateUserStatus)
			users.DELETE("/:id", h.User.DeleteUser)
		}

		// Payment verification routes
		payments := admin.Group("/payments")
		{
			payments.GET("", h.Payment.GetAllPayments)
			payments.PUT("/:id/status", h.Payment.UpdatePaymentStatus)
		}

		// Booking management routes
		bookings := admin.Group("/bookings")
		{
			bookings.GET("", h.Booking.GetAllBookings)
			bookings.PUT("/:id", h.Booking.UpdateBooking)
		}

		// Complaint management routes
		complaints := admin.Group("/complaints")
		{
			complaints.GET("", h.Complaint.GetAllComplaints)
			complaints.PUT("/:id", h.Complaint.UpdateComplaint)
		}

		// Plan management routes
		plans := admin.Group("/plans")
		{
			plans.POST("", h.Subscription.CreatePlan)
			plans.PUT("/:id", h.Subscription.UpdatePlan)
			plans.DELETE("/:id", h.Subscription.DeletePlan)
		}

		// Messaging routes
		admin.POST("/messages", h.Message.SendMessage)
		announcements := admin.Group("/announcements")
		{
			announcements.GET("", h.Message.GetAnnouncements)
			announcements.POST("", h.Message.CreateAnnouncement)
		}

		// Dashboard stats
		admin.GET("/stats", h.Stats.GetDashboardStats)
	}

	return router
}
