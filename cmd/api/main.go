package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	appService "github.com/Rak-Code/swiftcart-backend/internal/application/service"
	"github.com/Rak-Code/swiftcart-backend/internal/config"
	"github.com/Rak-Code/swiftcart-backend/internal/infrastructure/database/sqlite"
	"github.com/Rak-Code/swiftcart-backend/internal/infrastructure/email"
	"github.com/Rak-Code/swiftcart-backend/internal/infrastructure/scheduler"
	"github.com/Rak-Code/swiftcart-backend/internal/interfaces/api/handler"
	"github.com/Rak-Code/swiftcart-backend/internal/interfaces/api/router"
	appLogger "github.com/Rak-Code/swiftcart-backend/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

func gracefulShutdown(apiServer *http.Server, cronScheduler *scheduler.Scheduler, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the sweep first so no sends race the shutdown.
	log.Println("Stopping cron scheduler...")
	cronScheduler.Stop()
	log.Println("Cron scheduler stopped.")

	log.Println("Closing database connection...")
	if err := sqlite.CloseDB(); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("Database connection closed.")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting")

	done <- true
}

func main() {
	// --- Initialization ---
	appLog := appLogger.New()
	appLog.Info("Logger initialized.")

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
		appLog.Warn("PORT environment variable not set, defaulting to 8080")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		appLog.Error("Invalid PORT environment variable", err)
		os.Exit(1)
	}

	reminderCfg := config.LoadReminder()
	appLog.Info(fmt.Sprintf("Reminder config: cart delay %dm, wishlist delay %dm, sweep every %ds",
		reminderCfg.CartDelayMinutes, reminderCfg.WishlistDelayMinutes, reminderCfg.SweepIntervalSeconds))

	// --- Infrastructure ---
	db := sqlite.NewDB()
	userRepo := sqlite.NewUserRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	cartRepo := sqlite.NewCartRepository(db)
	wishlistRepo := sqlite.NewWishlistRepository(db)
	reminderRepo := sqlite.NewReminderScheduleRepository(db)
	appLog.Info("Database and repositories initialized.")

	mailClient := email.NewClient(appLog)
	cronScheduler := scheduler.NewScheduler(appLog)

	// --- Application Services ---
	reminderSvc := appService.NewReminderSchedulerService(reminderRepo, userRepo, productRepo, mailClient, reminderCfg, appLog)
	cartSvc := appService.NewCartService(cartRepo, reminderSvc, reminderCfg, appLog)
	wishlistSvc := appService.NewWishlistService(wishlistRepo, reminderSvc, reminderCfg, appLog)
	appLog.Info("Application services initialized.")

	// --- Reminder Sweep ---
	sweepSpec := fmt.Sprintf("@every %ds", reminderCfg.SweepIntervalSeconds)
	if _, err := cronScheduler.AddJob(sweepSpec, func() {
		reminderSvc.ProcessPendingReminders(context.Background())
	}); err != nil {
		appLog.Error("Failed to register reminder sweep job", err)
		os.Exit(1)
	}
	appLog.Info(fmt.Sprintf("Reminder sweep registered (%s).", sweepSpec))

	// --- API Handlers ---
	cartHandler := handler.NewCartHandler(cartSvc, appLog)
	wishlistHandler := handler.NewWishlistHandler(wishlistSvc, appLog)
	reminderHandler := handler.NewReminderHandler(reminderSvc, appLog)
	appLog.Info("API handlers initialized.")

	// --- Router ---
	routerCfg := &router.Config{
		CartHandler:     cartHandler,
		WishlistHandler: wishlistHandler,
		ReminderHandler: reminderHandler,
		Logger:          appLog,
	}
	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, cronScheduler, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	<-done
	appLog.Info("Graceful shutdown complete.")
}
