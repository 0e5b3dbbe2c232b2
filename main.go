// File: roamstay/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roamstay/config"
	roamcron "roamstay/cron"
	"roamstay/database"
	bookingRepoPkg "roamstay/database/repository/booking"
	paymentRepoPkg "roamstay/database/repository/payment"
	propertyRepoPkg "roamstay/database/repository/property"
	reviewRepoPkg "roamstay/database/repository/review"
	userRepoPkg "roamstay/database/repository/user"
	"roamstay/handlers"
	"roamstay/middleware"
	"roamstay/routes"
	"roamstay/services/booking"
	"roamstay/services/payment"
	"roamstay/services/property"
	"roamstay/services/review"
	"roamstay/services/user"
	"roamstay/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()
	propRepo := propertyRepoPkg.NewMongoPropertyRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	revRepo := reviewRepoPkg.NewMongoReviewRepo()
	payRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	propertyService := &property.DefaultPropertyService{
		Repo: propRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:         bookRepo,
		PropertyRepo: propRepo,
		UserRepo:     userRepo,
		Policy:       booking.PolicyFromConfig(),
	}

	reviewService := &review.DefaultReviewService{
		Repo:         revRepo,
		BookingRepo:  bookRepo,
		PropertyRepo: propRepo,
	}

	paymentService := &payment.DefaultPaymentService{
		Repo:       payRepo,
		BookingSvc: bookingService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Property: handlers.NewPropertyHandler(propertyService),
		User:     handlers.NewUserHandler(userService),
		Review:   handlers.NewReviewHandler(reviewService),
		Payment:  handlers.NewPaymentHandler(paymentService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the stale-pending cleanup scheduler.
	cleanup := roamcron.StartBookingCleanup(bookingService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	cleanup.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
