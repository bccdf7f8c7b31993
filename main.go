// File: groomer/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"groomer/config"
	"groomer/cron"
	"groomer/database"
	"groomer/database/repository/kv"
	"groomer/handlers"
	"groomer/routes"
	"groomer/services/account"
	"groomer/services/booking"
	"groomer/services/directory"
	"groomer/services/loyalty"
	"groomer/services/notification"
	"groomer/services/tasks"
	"groomer/services/user"
	"groomer/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Storage.
	store := kv.NewMongoStore()

	// Services.
	userService := &user.DefaultUserService{
		Store:     store,
		AuthCache: utils.GetAuthCacheClient(),
		TokenTTL:  user.DefaultTokenTTL,
	}

	directoryService := &directory.DefaultDirectoryService{
		Store: store,
	}

	notificationService := &notification.FCMNotificationService{
		Store: store,
	}

	reminderQueue := tasks.NewReminderQueue()
	defer reminderQueue.Close()
	cron.InitReminderWorker(notificationService)

	bookingService := &booking.DefaultBookingService{
		Store:     store,
		Reminders: reminderQueue,
	}
	sessionService := &booking.DefaultBookingSessionService{
		Cache:      utils.GetSessionCacheClient(),
		Directory:  directoryService,
		BookingSvc: bookingService,
		TTL:        booking.DefaultSessionTTL,
	}

	loyaltyService := &loyalty.DefaultLoyaltyService{Store: store}
	accountService := &account.DefaultAccountService{Store: store}

	// Handlers.
	userHandler := handlers.NewUserHandler(userService)
	salonHandler := handlers.NewSalonHandler(directoryService)
	bookingHandler := handlers.NewBookingHandler(sessionService, bookingService, userService, logger)
	loyaltyHandler := handlers.NewLoyaltyHandler(loyaltyService)
	accountHandler := handlers.NewAccountHandler(accountService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Users: userService,

		// Auth endpoints.
		SignUpHandler: userHandler.SignUpHandler,
		SignInHandler: userHandler.SignInHandler,

		// Salon directory endpoints.
		ListSalonsHandler:     salonHandler.ListSalonsHandler,
		RefreshSalonsHandler:  salonHandler.RefreshSalonsHandler,
		BookingOptionsHandler: salonHandler.BookingOptionsHandler,

		// Booking wizard session endpoints.
		InitiateSession: bookingHandler.InitiateSession,
		GetSession:      bookingHandler.GetSession,
		UpdateSession:   bookingHandler.UpdateSession,
		CompleteSession: bookingHandler.CompleteSession,
		CancelSession:   bookingHandler.CancelSession,

		// Booking endpoints.
		CreateBookingHandler:    bookingHandler.CreateBooking,
		ListUserBookingsHandler: bookingHandler.ListUserBookings,
		BookingHistoryHandler:   bookingHandler.BookingHistory,

		// Loyalty endpoints.
		GetLoyaltyHandler: loyaltyHandler.GetLoyaltyHandler,
		RedeemHandler:     loyaltyHandler.RedeemHandler,

		// Account endpoints.
		UpdateProfileHandler:   accountHandler.UpdateProfileHandler,
		GetPreferencesHandler:  accountHandler.GetPreferencesHandler,
		SavePreferencesHandler: accountHandler.SavePreferencesHandler,
		GetSettingsHandler:     accountHandler.GetSettingsHandler,
		SaveSettingsHandler:    accountHandler.SaveSettingsHandler,
		ExportDataHandler:      accountHandler.ExportDataHandler,
		DeleteAccountHandler:   accountHandler.DeleteAccountHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
