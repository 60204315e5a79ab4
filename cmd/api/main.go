package main

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sreeayiengaran/storefront-golang/internal/cart"
	"github.com/sreeayiengaran/storefront-golang/internal/config"
	"github.com/sreeayiengaran/storefront-golang/internal/database"
	"github.com/sreeayiengaran/storefront-golang/internal/handlers"
	"github.com/sreeayiengaran/storefront-golang/internal/notify"
	"github.com/sreeayiengaran/storefront-golang/internal/routes"
	"github.com/sreeayiengaran/storefront-golang/internal/store"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 1. --- Configuration (.env + environment) ---
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	// 2. --- Database Connection & Migrations ---
	db, err := database.OpenDB(cfg.DSN)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}
	log.Info("Database connection established and schema up to date")

	// 3. --- Application Setup ---
	// All dependencies are built here and injected into the Handlers
	// struct; nothing lives in package-level state.
	carts := cart.NewRegistry()

	app := &handlers.Handlers{
		Catalog:  store.NewProductStore(db),
		Orders:   store.NewOrderStore(db),
		Messages: store.NewMessageStore(db),
		Carts:    carts,
		Notifier: notify.NewLogNotifier(log),
		Config:   cfg,
		Log:      log,
	}

	// 4. --- Background Worker ---
	// The janitor sweeps idle shopper sessions so abandoned carts do not
	// pile up in memory.
	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()

		log.Info("Session janitor started")

		for range ticker.C {
			if evicted := carts.Sweep(cfg.CartSessionTTL); evicted > 0 {
				log.WithField("evicted", evicted).Info("Swept idle shopper sessions")
			}
		}
	}()

	// 5. --- Router & Server ---
	router := routes.SetupRouter(app)

	log.WithField("port", cfg.Port).Info("Starting storefront API server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
