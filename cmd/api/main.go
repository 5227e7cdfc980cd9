package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"shopsmart/internal/cart"
	"shopsmart/internal/config"
	"shopsmart/internal/db"
	"shopsmart/internal/httpserver"
	"shopsmart/internal/metrics"
	"shopsmart/internal/migrate"
	productrepo "shopsmart/internal/repository/product"
	catalogsvc "shopsmart/internal/service/catalog"
	listsvc "shopsmart/internal/service/list"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()

	var (
		dbpool *pgxpool.Pool
		lister productrepo.Repository
	)
	if cfg.DBConnString != "" {
		var err error
		dbpool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer dbpool.Close()

		if err := migrate.Apply(ctx, dbpool); err != nil {
			logger.Fatalf("apply migrations: %v", err)
		}
		lister = productrepo.NewPostgres(dbpool, logger)
	}

	catalogService, err := catalogsvc.Load(ctx, lister, logger)
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}

	rec := metrics.New(prometheus.DefaultRegisterer)
	store := cart.New()
	listService := listsvc.New(store, catalogService, logger, rec)
	listService.Subscribe(rec.Observe)
	rec.Observe(listService.Snapshot())

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:  catalogService,
		ListSvc:     listService,
		Metrics:     promhttp.Handler(),
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
