// File: roomify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomify/config"
	"roomify/cron"
	"roomify/database"
	reservationRepoPkg "roomify/database/repository/reservation"
	roomRepoPkg "roomify/database/repository/room"
	userRepoPkg "roomify/database/repository/user"
	"roomify/handlers"
	"roomify/middleware"
	"roomify/routes"
	"roomify/services/notification"
	"roomify/services/reservation"
	"roomify/services/room"
	"roomify/services/user"
	"roomify/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(routes.CORSMiddleware())

	// repositories.
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	notifier, err := notification.NewQueueNotificationService(asynqClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	roomService := &room.DefaultRoomService{
		Repo:  roomRepo,
		Cache: utils.GetCacheClient(),
	}
	reservationService := &reservation.DefaultReservationService{
		Repo:     reservationRepo,
		RoomRepo: roomRepo,
		UserRepo: userRepo,
		Notifier: notifier,
	}

	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	roomHandler := handlers.NewRoomHandler(roomService)
	reservationHandler := handlers.NewReservationHandler(reservationService)

	routes.RegisterHealthRoute(router)
	routes.RegisterAuthRoutes(router, authHandler)
	routes.RegisterUserRoutes(router, userHandler)
	routes.RegisterRoomRoutes(router, roomHandler)
	routes.RegisterReservationRoutes(router, reservationHandler)

	// Start the notification delivery worker.
	telegramSender, err := notification.NewTelegramSender()
	if err != nil {
		logger.Sugar().Warnf("main: telegram sender unavailable, telegram notifications disabled: %v", err)
	}
	dispatcher := notification.NewDispatcher(notification.NewEmailSender(), telegramSender)
	cron.InitNotificationWorker(dispatcher)

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
