package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	config "github.com/Keoroanthony/go-pos/configs"
	"github.com/Keoroanthony/go-pos/internal/cart"
	"github.com/Keoroanthony/go-pos/internal/catalog"
	"github.com/Keoroanthony/go-pos/internal/checkout"
	"github.com/Keoroanthony/go-pos/internal/db"
	"github.com/Keoroanthony/go-pos/internal/handlers"
	"github.com/Keoroanthony/go-pos/internal/logger"
	"github.com/Keoroanthony/go-pos/internal/notifier"
	"github.com/Keoroanthony/go-pos/internal/pos"
	"github.com/Keoroanthony/go-pos/internal/printer"
)

func main() {
	cfg, err := config.Load(os.Getenv("POS_CONFIG"))
	if err != nil {
		logger.New("pos").Error("config_load_failed", "", "failed to load configuration", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Service)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("service_failed", "", "till stopped with an error", err)
		os.Exit(1)
	}
	log.Info("service_stopped", "", "till stopped gracefully", nil)
}

func run(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	store, err := db.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		return err
	}
	defer store.Close()
	log.Info("store_opened", "", "cart store ready", map[string]any{"driver": cfg.Store.Driver})

	var p printer.Printer = printer.NewWriterPrinter(os.Stdout)
	if cfg.Printer.SpoolDir != "" {
		if p, err = printer.NewSpoolPrinter(cfg.Printer.SpoolDir); err != nil {
			return err
		}
	}

	shell := pos.New(pos.Deps{
		Catalog:  catalog.Default(),
		Cart:     cart.New(ctx, store, log),
		Form:     checkout.NewForm(checkout.WithExpiryPolicy(checkout.ExpiryPolicy{MaxYear: cfg.Checkout.ExpiryMaxYear})),
		Printer:  p,
		Notifier: notifier.NewLogNotifier(log),
		Logger:   log,
	})

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: handlers.New(shell, log).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("service_started", "", "till listening", map[string]any{"port": cfg.Server.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("graceful_shutdown", "", "received shutdown signal", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
