// Package server initializes and runs the upload gateway. It wires the
// database, the project cache, the signed-link registry and the file storage
// backend, and starts the HTTP server with graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/scindn/internal/logging"
	"github.com/dmitrijs2005/scindn/internal/metrics"
	"github.com/dmitrijs2005/scindn/internal/server/cache"
	"github.com/dmitrijs2005/scindn/internal/server/config"
	"github.com/dmitrijs2005/scindn/internal/server/links"
	"github.com/dmitrijs2005/scindn/internal/server/projects"
	"github.com/dmitrijs2005/scindn/internal/server/rest"
	"github.com/dmitrijs2005/scindn/internal/server/shared/db"
	"github.com/dmitrijs2005/scindn/internal/server/storage"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager db.RepositoryManager
	server  *rest.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	manager, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	projectCache := cache.NewProjectCache()
	if err := projectCache.Load(ctx, manager.Projects()); err != nil {
		return nil, fmt.Errorf("project cache load error: %w", err)
	}
	logger.Info(ctx, "project cache loaded", "projects", projectCache.Len())

	store, staticRoot, err := newFileStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	registry := links.NewRegistry()
	m := metrics.New()

	service := projects.NewService(manager.Projects(), projectCache, registry,
		store, logger, []byte(cfg.ResponseKeySalt), cfg.MaxLinkTTL)

	srv := rest.NewServer(cfg.EndpointAddr, logger, service, registry,
		projectCache, m, []byte(cfg.SecretKey), staticRoot)

	return &App{config: cfg, logger: logger, manager: manager, server: srv}, nil
}

// newFileStore selects the storage backend. Static serving only makes sense
// for the local backend, so the returned static root is empty for s3.
func newFileStore(ctx context.Context, cfg *config.Config) (storage.FileStore, string, error) {
	switch cfg.StorageBackend {
	case "s3":
		store, err := storage.NewS3Store(ctx, storage.S3Config{
			RootUser:     cfg.S3RootUser,
			RootPassword: cfg.S3RootPassword,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
		return store, "", err
	case "local":
		store, err := storage.NewLocalStore(cfg.StaticRoot)
		if err != nil {
			return nil, "", err
		}
		return store, store.Root(), nil
	default:
		return nil, "", fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr,
		"backend", app.config.StorageBackend)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	app.logger.Info(ctx, "app stopped")
}
