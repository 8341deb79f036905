package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"enstay-backend/config"
	"enstay-backend/controllers"
	"enstay-backend/routes"
	"enstay-backend/services"
	"enstay-backend/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env not found, continuing with environment variables")
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := config.ConnectDatabase(); err != nil {
		logrus.Fatalf("database connect failed: %v", err)
	}

	st := store.NewGorm(config.DB)

	// Seeding must finish before any booking traffic is served.
	if err := services.NewSeedService(st).Run(time.Now()); err != nil {
		logrus.Fatalf("seeding failed: %v", err)
	}

	redisClient := config.ConnectRedis()

	hotelService := services.NewHotelService(st, redisClient)
	bookingService := services.NewBookingService(st, services.SMTPNotifier{})

	hotelController := controllers.NewHotelController(hotelService)
	reservationController := controllers.NewReservationController(bookingService)

	router := routes.SetupRouter(hotelController, reservationController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("server forced to shutdown: %v", err)
	}

	logrus.Info("server stopped gracefully")
}
