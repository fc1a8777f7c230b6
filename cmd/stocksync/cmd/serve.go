package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/kjdelacruz/stocksync/internal/api/handlers"
	"github.com/kjdelacruz/stocksync/internal/api/middleware"
	"github.com/kjdelacruz/stocksync/internal/config"
	"github.com/kjdelacruz/stocksync/internal/engine"
	"github.com/kjdelacruz/stocksync/internal/notify"
	"github.com/kjdelacruz/stocksync/internal/store"
	"github.com/kjdelacruz/stocksync/pkg/logger"
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and workbook scan scheduler",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	var notifier notify.Notifier = notify.NewNoOpNotifier(log)
	if cfg.Notifications.Webhook.Enabled {
		notifier = notify.NewWebhookNotifier(
			cfg.Notifications.Webhook.URL,
			notify.WithHeaders(cfg.Notifications.Webhook.Headers),
			notify.WithRateLimit(
				cfg.Notifications.Webhook.PerSecond,
				cfg.Notifications.Webhook.Burst,
			),
		)
	}

	eng := engine.NewEngine(st, notifier,
		engine.WithLogger(log),
		engine.WithMaxRows(cfg.Imports.MaxRows),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	healthH := handlers.NewHealthHandler(st)
	e.GET("/healthz", healthH.Healthz)
	e.GET("/readyz", healthH.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Stocksync API", "1.0.0"))
	handlers.RegisterImportRoutes(api, handlers.NewImportsHandler(eng))
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(st))
	handlers.RegisterTaxRoutes(api, handlers.NewTaxesHandler(st))
	handlers.RegisterReturnRoutes(api, handlers.NewReturnsHandler(st))
	handlers.RegisterLedgerRoutes(api, handlers.NewLedgerHandler(st))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(st))

	var sched *engine.Scheduler
	if cfg.Imports.WatchDir != "" {
		sched, err = engine.NewScheduler(
			eng,
			cfg.Imports.WatchDir,
			domain.Platform(cfg.Imports.DefaultPlatform),
			cfg.Schedule.ScanInterval,
			log,
		)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()

		// Initial scan after a short stagger so the server is serving
		// before the first import lands.
		go func() {
			time.Sleep(cfg.Schedule.StaggerOffset)
			if err := sched.ScanOnce(context.Background()); err != nil {
				log.Error("initial scan failed", "error", err)
			}
		}()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	if sched != nil {
		<-sched.Stop().Done()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
