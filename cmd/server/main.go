// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/euphoria-shop/storefront/internal/catalog"
	"github.com/euphoria-shop/storefront/internal/config"
	"github.com/euphoria-shop/storefront/internal/imaging"
	"github.com/euphoria-shop/storefront/internal/notify"
	"github.com/euphoria-shop/storefront/internal/router"
	"github.com/euphoria-shop/storefront/internal/session"
	"github.com/euphoria-shop/storefront/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Initialize durable storage
	store, closeStore, err := openStore(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize storage: ", err)
	}
	defer closeStore()

	// Load the product catalog
	cat := catalog.Default()
	if cfg.Shop.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.Shop.CatalogPath)
		if err != nil {
			logrus.Fatal("Failed to load catalog: ", err)
		}
	}

	pipeline := imaging.NewPipeline(cfg.Shop.MaxImageDimension, cfg.Shop.JPEGQuality)
	notifier := notify.NewEmailNotifier(cfg.Email, cfg.Shop.BrandName, cfg.Shop.BrandPhone)

	sess := session.New(cat, store, pipeline, notifier, session.Options{
		ShippingFee:      cfg.Shop.ShippingFee,
		DebounceInterval: cfg.Session.DebounceInterval,
		SettleDelay:      cfg.Session.SettleDelay,
		BannerWindow:     cfg.Session.BannerWindow,
	})

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := router.Initialize(sess, cat, cfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Starting %s storefront on port %s", cfg.Shop.BrandName, cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server, then push pending debounced writes out
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
	}
	sess.Flush()

	logrus.Info("Server exited")
}

func openStore(cfg *config.Config) (storage.KeyValue, func(), error) {
	switch cfg.Storage.Driver {
	case "memory":
		return storage.NewMemoryStore(), func() {}, nil
	case "file":
		store, err := storage.NewFileStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case "postgres":
		store, err := storage.NewPostgresStore(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logrus.WithError(err).Warn("Error closing database connection")
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
