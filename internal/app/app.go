package app

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"tasktrack/internal/config"
	"tasktrack/internal/handlers"
	"tasktrack/internal/messaging"
	"tasktrack/internal/notifier"
	"tasktrack/internal/pdf"
	"tasktrack/internal/repositories"
	"tasktrack/internal/routes"
	"tasktrack/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "tasktrack/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Messaging ===
	publisher, err := messaging.Connect(cfg.NATS.URL)
	if err != nil {
		log.Fatal("failed to connect to NATS: ", err)
	}
	defer publisher.Close()

	// === Repos ===
	taskRepo := repositories.NewTaskRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// === Services ===
	authService := services.NewAuthService(
		[]byte(cfg.Auth.JWTSecret),
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)
	userService := services.NewUserService(userRepo, authService)
	taskService := services.NewTaskService(taskRepo, publisher)
	reportService := services.NewReportService(taskRepo, pdf.NewReportGenerator())

	// === Notifier (optional downstream consumer) ===
	updates := notifier.New(cfg.Notifications)
	if updates.Enabled() {
		if err := updates.Start(publisher); err != nil {
			log.Printf("failed to start notifier: %v", err)
		}
	}

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	taskHandler := handlers.NewTaskHandler(taskService, cfg.Listing)
	reportHandler := handlers.NewReportHandler(reportService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		[]byte(cfg.Auth.JWTSecret),
		authHandler,
		taskHandler,
		reportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
