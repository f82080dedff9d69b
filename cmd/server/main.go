package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"devhub-server/internal/config"
	"devhub-server/internal/domain/assistant"
	"devhub-server/internal/domain/blog"
	"devhub-server/internal/domain/catalog"
	"devhub-server/internal/domain/gallery"
	"devhub-server/internal/domain/news"
	"devhub-server/internal/infrastructure/cms"
	"devhub-server/internal/infrastructure/database"
	"devhub-server/internal/infrastructure/llm"
	"devhub-server/internal/infrastructure/logger"
	catalogrepo "devhub-server/internal/infrastructure/repository/catalog"
	"devhub-server/internal/infrastructure/storage"
	"devhub-server/internal/interfaces/httpserver"
	"devhub-server/internal/interfaces/httpserver/handlers"
)

type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseDSN,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	galleryStorage, err := provideStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize storage")
	}

	services := handlers.Services{
		Catalog:   catalog.NewService(catalogrepo.NewRepository(db), log),
		Gallery:   gallery.NewService(cfg, galleryStorage, log),
		News:      news.NewService(cfg, log),
		Assistant: assistant.NewService(llm.NewClient(cfg, log), log),
		Blog:      blog.NewService(cms.NewClient(cfg, log), log),
	}

	httpServer := httpserver.New(cfg, services, log)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func provideStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (gallery.Storage, error) {
	if cfg.IsLocalStorage() {
		return storage.NewLocalStorage(cfg, log)
	}
	return storage.NewS3Storage(ctx, cfg, log)
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
