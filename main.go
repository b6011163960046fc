package main

import (
	"os"
	"os/signal"
	"syscall"

	"shopadmin/catalog"
	"shopadmin/config"
	"shopadmin/db"
	"shopadmin/logger"
	"shopadmin/media"
	"shopadmin/realtime"
	"shopadmin/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.IsProduction())

	// Initialize database
	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close(conn)
	log.Info().Str("path", cfg.DBPath).Msg("database connected")

	uploader, err := media.NewCloudinary(cfg.Cloudinary, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure image host")
	}

	hub := realtime.NewHub(log)
	go hub.Run()
	defer hub.Close()

	cat := catalog.New(conn, uploader, hub, log)

	app := fiber.New(fiber.Config{
		AppName:               "shopadmin",
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: cfg.IsProduction(),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(routes.RequestLogger(log))
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app, cat, uploader, hub)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
