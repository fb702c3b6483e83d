package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"cabin-backoffice/config"
	"cabin-backoffice/controllers"
	"cabin-backoffice/logging"
	"cabin-backoffice/routes"
	"cabin-backoffice/services"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	log := logging.New()

	if err := config.ConnectDatabase(); err != nil {
		log.Fatal().Err(err).Msg("❌ Database connect failed")
	}
	db := config.DB
	if db == nil {
		log.Fatal().Msg("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Info().Msg("✅ Database connection established and migrations applied")

	cache := config.ConnectRedis()
	if cache != nil {
		log.Info().Msg("✅ Redis cache connected")
	} else {
		log.Warn().Msg("⚠️  Redis not configured; settings cache disabled")
	}

	// Initialize services
	cabinService := services.NewCabinService(db)
	reservationService := services.NewReservationService(db)
	userService := services.NewUserService(db, log)
	settingsService := services.NewSettingsService(db, cache, log)
	sampleDataService := services.NewSampleDataService(db, cabinService, userService, reservationService, log)

	// Initialize controllers
	authController := controllers.NewAuthController(userService, log)
	cabinController := controllers.NewCabinController(cabinService, log)
	reservationController := controllers.NewReservationController(reservationService, cabinService, settingsService, log)
	settingsController := controllers.NewSettingsController(settingsService, log)
	userController := controllers.NewUserController(userService, log)
	sampleDataController := controllers.NewSampleDataController(sampleDataService, settingsService, log)

	router := routes.SetupRouter(
		authController,
		cabinController,
		reservationController,
		settingsController,
		userController,
		sampleDataController,
		log,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("🚀 Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("❌ ListenAndServe()")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Warn().Msg("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("❌ Server forced to shutdown")
	}

	if cache != nil {
		_ = cache.Close()
	}

	log.Info().Msg("✅ Server stopped gracefully")
}
