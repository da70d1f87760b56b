package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/squares-backend/internal/config"
	"github.com/rocketscienceinc/squares-backend/internal/repository"
	"github.com/rocketscienceinc/squares-backend/internal/repository/storage"
	"github.com/rocketscienceinc/squares-backend/internal/service"
	"github.com/rocketscienceinc/squares-backend/internal/squares"
	"github.com/rocketscienceinc/squares-backend/internal/usecase"
	"github.com/rocketscienceinc/squares-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	catalog, err := loadCatalog(conf.Game.CatalogPath)
	if err != nil {
		return fmt.Errorf("could not load piece catalog: %w", err)
	}

	if catalog.TotalCells() > conf.Game.BoardSize*conf.Game.BoardSize {
		log.Warn("one full piece set covers more cells than the board holds",
			"cellsPerPlayer", catalog.TotalCells(), "boardSize", conf.Game.BoardSize)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Redis.GameTTL)
	historyRepo := repository.NewHistoryRepository(redisStorage.Connection, conf.Game.HistoryLimit)
	statsRepo := repository.NewStatsRepository(sqliteStorage.Connection)

	statsService := service.NewStatsService(logger, statsRepo, historyRepo)
	gameUseCase := usecase.NewGameUseCase(logger, gameRepo, statsService, catalog, conf.Game.BoardSize)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "boardSize", conf.Game.BoardSize,
			"pieces", len(catalog), "cellsPerPlayer", catalog.TotalCells())
		server := rest.New(logger, gameUseCase, statsService)
		if httpErr := server.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func loadCatalog(path string) (squares.Catalog, error) {
	if path == "" {
		return squares.DefaultCatalog(), nil
	}

	return squares.LoadCatalog(path)
}
