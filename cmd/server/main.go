package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"bazaardirectory/config"
	delivery "bazaardirectory/internal/delivery/http"
	"bazaardirectory/internal/delivery/http/controllers"
	"bazaardirectory/internal/delivery/http/middleware"
	"bazaardirectory/internal/domain"
	"bazaardirectory/internal/ids"
	"bazaardirectory/internal/repository/collection"
	"bazaardirectory/internal/services"
	"bazaardirectory/internal/storage/jsonfile"
	"bazaardirectory/internal/storage/postgres"
	"bazaardirectory/internal/uploads"
)

const serviceTimeout = 10 * time.Second

// main boots the service: config → logger → store → repositories →
// services → HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	var store domain.CollectionStore
	switch cfg.StoreDriver {
	case "postgres":
		db, err := postgres.Open(cfg.DBUrl)
		if err != nil {
			logger.Error("connect postgres", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		pg := postgres.New(db)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			logger.Error("ensure schema", "err", err)
			os.Exit(1)
		}
		store = pg
	default:
		store, err = jsonfile.New(cfg.DataDir)
		if err != nil {
			logger.Error("open data dir", "err", err)
			os.Exit(1)
		}
	}

	gen := ids.New()
	uploadStore, err := uploads.New(cfg.UploadsDir, gen)
	if err != nil {
		logger.Error("open uploads dir", "err", err)
		os.Exit(1)
	}

	eventRepo := collection.NewEventRepository(store, gen)
	boothRepo := collection.NewBoothRepository(store, gen)

	eventService := services.NewEventService(eventRepo, boothRepo, uploadStore, logger, serviceTimeout)
	boothService := services.NewBoothService(boothRepo, uploadStore, logger, serviceTimeout)

	eventController := controllers.NewEventController(logger, eventService)
	boothController := controllers.NewBoothController(logger, boothService)

	mux := delivery.NewRouter(eventController, boothController, uploadStore.Dir())
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("server listening", "port", cfg.Port, "store", cfg.StoreDriver, "env", cfg.Environment)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
