package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sneezelab/SneezeBot/app/repository"
	"github.com/sneezelab/SneezeBot/internal/pkg/bot"
	"github.com/sneezelab/SneezeBot/internal/pkg/database"
	"github.com/sneezelab/SneezeBot/internal/pkg/env"
	"github.com/sneezelab/SneezeBot/internal/pkg/router"
)

func main() {
	env.SetupEnvFile()

	token := env.GetEnv("BOT_TOKEN", "")
	if token == "" {
		log.Fatal("BOT_TOKEN is not set! Create a .env file with BOT_TOKEN=<token>")
	}

	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatal(err)
	}

	repos := repository.NewRepositories(db)

	b, err := bot.New(token, repos, env.GetAdminIDs())
	if err != nil {
		log.Fatal(err)
	}

	// Optional ops HTTP surface (health probe, monitor).
	if port := env.GetEnv("APP_PORT", ""); port != "" {
		app := fiber.New()
		app.Use(recover.New(), logger.New())
		router.InstallRouter(app, db)

		go func() {
			addr := fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), port)
			if err := app.Listen(addr); err != nil {
				log.Printf("Ops HTTP server stopped: %v", err)
			}
		}()
	}

	b.Run()
}
