package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/lockedin/lockedin-api/internal/config"
	"github.com/lockedin/lockedin-api/internal/database"
	"github.com/lockedin/lockedin-api/internal/handlers"
	"github.com/lockedin/lockedin-api/internal/routes"
	"github.com/lockedin/lockedin-api/internal/services"
	"github.com/lockedin/lockedin-api/internal/storage"
	"github.com/lockedin/lockedin-api/internal/storage/memory"
)

func main() {
	// .env is optional; env vars win either way
	_ = godotenv.Load()

	cfg := config.Load()

	var store storage.Storage
	if cfg.DatabaseURL == "mem://" {
		log.Println("Using in-memory storage (mem://), data will not survive restarts")
		store = memory.NewStore()
	} else {
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		store = storage.NewGormStore(db)
	}

	goalSvc := services.NewGoalService(store)
	streakSvc := services.NewStreakService(store)
	coachSvc := services.NewCoachService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	routes.Setup(app,
		handlers.NewGoalHandler(goalSvc),
		handlers.NewStreakHandler(streakSvc),
		handlers.NewEngagementHandler(store),
		handlers.NewGamificationHandler(store),
		handlers.NewCoachHandler(coachSvc, goalSvc),
	)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()
	log.Printf("Listening on :%s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
