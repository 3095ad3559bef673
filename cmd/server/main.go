package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskloop/task-tracker-api/internal/config"
	"github.com/taskloop/task-tracker-api/internal/database"
	"github.com/taskloop/task-tracker-api/internal/handlers"
	"github.com/taskloop/task-tracker-api/internal/identifier"
	"github.com/taskloop/task-tracker-api/internal/middleware"
	"github.com/taskloop/task-tracker-api/internal/repository"
	"github.com/taskloop/task-tracker-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(db); err != nil {
			log.Fatalf("Failed to add indexes: %v", err)
		}
	}

	// Wire up identifier generation, repositories, services and handlers
	ids := identifier.NewGenerator()
	taskRepo := repository.NewTaskRepository(db, ids)
	userRepo := repository.NewUserRepository(db)

	taskService := services.NewTaskService(taskRepo, userRepo)
	userService := services.NewUserService(userRepo, ids)

	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("%d", time.Now().Unix()),
		})
	})

	// User routes
	r.POST("/users", userHandler.CreateUser)

	// Task routes
	tasks := r.Group("/tasks")
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", middleware.RequireTask(taskRepo), taskHandler.GetTask)
		tasks.PATCH("/:id", middleware.RequireTask(taskRepo), taskHandler.UpdateTask)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
