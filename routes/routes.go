package routes

import (
	"net/http"
	"time"

	"roamstay/handlers"
	"roamstay/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUser)
		api.POST("/login", hb.User.AuthenticateUser)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/:id", hb.User.GetUser)
		api.PUT("/:id", hb.User.UpdateUser)
		api.DELETE("/:id", hb.User.DeleteUser)
		api.DELETE("/:id/token", hb.User.RevokeToken)
	}
}

// RegisterPropertyRoutes registers listing endpoints.
func RegisterPropertyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/properties")
	{
		// Public browsing.
		api.GET("", hb.Property.ListProperties)
		api.GET("/:id", hb.Property.GetProperty)

		// Management requires an authenticated host.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireHost())
		protected.POST("", hb.Property.CreateProperty)
		protected.PUT("/:id", hb.Property.UpdateProperty)
		protected.DELETE("/:id", hb.Property.DeleteProperty)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))

		api.POST("", hb.Booking.CreateBooking)
		api.POST("/availability", hb.Booking.CheckAvailability)
		api.GET("/mine", hb.Booking.ListMyBookings)
		api.GET("/host", hb.Booking.ListHostBookings)
		api.GET("/revenue", hb.Booking.RevenueSummary)
		api.GET("/:id", hb.Booking.GetBooking)
		api.PUT("/:id/dates", hb.Booking.UpdateReservationDates)
		api.PATCH("/:id/confirm", hb.Booking.ConfirmBooking)
		api.PATCH("/:id/cancel", hb.Booking.CancelBooking)
		api.PATCH("/:id/properties/:propertyId/confirm", hb.Booking.ConfirmReservation)
		api.PATCH("/:id/properties/:propertyId/cancel", hb.Booking.CancelReservation)
		api.DELETE("/:id", hb.Booking.DeleteBooking)

		// Admin-only reads.
		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.GET("", hb.Booking.ListBookings)
		admin.POST("/range", hb.Booking.ListBookingsInRange)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/property/:propertyId", hb.Review.ListPropertyReviews)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("", hb.Review.CreateReview)
	}
}

// RegisterPaymentRoutes registers payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		// Gateway webhook: authenticated by the shared-secret signature, not
		// by a user token.
		api.POST("/:id/outcome", middleware.GatewaySignature(), hb.Payment.RecordOutcome)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Payment.InitiatePayment)
		api.GET("/booking/:bookingId", hb.Payment.ListBookingPayments)

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.GET("/summary", hb.Payment.PaymentsSummary)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterPropertyRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
