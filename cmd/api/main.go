package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cat-registry/internal/adapters/storage/jsonfile"
	pg "cat-registry/internal/adapters/storage/postgres"
	"cat-registry/internal/config"
	"cat-registry/internal/platform/logger"
	"cat-registry/internal/router"
)

// @title Cat Registry API
// @version 1.0
// @description Censo de gatos: alta, edición, baja y manejo de ids sobre un archivo JSON.
// @BasePath /
func main() {
	cfg, err := config.Load("")
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{Logger: log}

	if cfg.DBDSN != "" {
		db, err := openDB(ctx, cfg.DBDSN)
		if err != nil {
			log.Error("database error", map[string]any{"error": err})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
		log.Info("using postgres backend", nil)
	} else {
		// JSON roto: no se arranca, para no pisarlo en la próxima escritura
		store, err := jsonfile.Open(cfg.DataFile)
		if err != nil {
			log.Error("data file error", map[string]any{"path": cfg.DataFile, "error": err})
			os.Exit(1)
		}
		opts.Store = store
		log.Info("using data file", map[string]any{"path": store.Path()})

		if cfg.WatchDataFile {
			go func() {
				if err := store.Watch(ctx, log); err != nil {
					log.Warn("data file watch disabled", map[string]any{"error": err})
				}
			}()
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := pg.Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := pg.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
