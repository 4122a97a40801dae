package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/database"
	appointmentRepo "slotify/database/repository/appointment"
	serviceRepo "slotify/database/repository/service"
	"slotify/handlers"
	"slotify/middleware"
	"slotify/routes"
	"slotify/services/scheduling"
	"slotify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	svcRepo := serviceRepo.NewMongoServiceRepo()

	if mongoAppts, ok := apptRepo.(*appointmentRepo.MongoAppointmentRepo); ok {
		if err := mongoAppts.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to create appointment indexes: %v", err)
		}
	}

	// scheduling engine. The handler shares the engine's timezone so cache
	// invalidation and day resolution agree.
	loc := config.ProviderLocation()
	engine := scheduling.NewDefaultSchedulingEngine(svcRepo, apptRepo, loc, logger)

	// handlers.
	bookingHandler := handlers.NewBookingHandler(engine, apptRepo, utils.GetCacheClient(), loc, logger)
	serviceHandler := handlers.NewServiceHandler(svcRepo, logger)

	routes.RegisterRoutes(router, bookingHandler, serviceHandler)

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
