package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/shafran-admin/internal/config"
	"github.com/example/shafran-admin/internal/handlers"
	"github.com/example/shafran-admin/internal/images"
	"github.com/example/shafran-admin/internal/pages"
	"github.com/example/shafran-admin/internal/routes"
	"github.com/example/shafran-admin/internal/services"
	"github.com/example/shafran-admin/internal/session"
	"github.com/example/shafran-admin/internal/storage"
	"github.com/example/shafran-admin/internal/view"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer store.Close()

	tokens := session.NewTokens(store)
	client := services.NewClient(cfg.APIURL, tokens, cfg.HTTPTimeout)
	sess := session.New(tokens, client)
	client.OnUnauthorized(sess.ForceLogout)

	var notifier pages.Notifier
	if cfg.TelegramEnabled() {
		notifier = services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Shafran Admin Dashboard",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, routes.Dependencies{
		Session:  sess,
		Client:   client,
		Storage:  store,
		Previews: images.NewPreviews(),
		Options: pages.Options{
			Notifier:  notifier,
			Assets:    view.Assets{BaseURL: cfg.AssetsURL},
			Collator:  view.NewCollator(cfg.CollationLocale),
			MaxPhotos: cfg.MaxProductPhotos,
		},
	})

	go func() {
		authenticated, err := sess.CheckSession(ctx)
		if err != nil {
			log.Printf("Session check failed: %v", err)
			return
		}
		log.Printf("Session check complete (authenticated: %t)", authenticated)
	}()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("fiber.Shutdown error: %v", err)
		}
	}()

	log.Printf("Starting dashboard on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
