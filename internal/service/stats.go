package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/squares-backend/internal/entity"
)

type StatsService interface {
	Record(ctx context.Context, summary *entity.GameSummary) error
	GetStats(ctx context.Context) (*entity.Stats, error)
	GetHistory(ctx context.Context) ([]*entity.HistoryEntry, error)
}

type statsRepoDep interface {
	Load(ctx context.Context) (*entity.Stats, error)
	Save(ctx context.Context, stats *entity.Stats) error
}

type historyRepoDep interface {
	Push(ctx context.Context, entry *entity.HistoryEntry) error
	List(ctx context.Context) ([]*entity.HistoryEntry, error)
}

type statsService struct {
	logger *slog.Logger

	statsRepo   statsRepoDep
	historyRepo historyRepoDep

	// serializes the load-record-save cycle
	mu sync.Mutex
}

func NewStatsService(logger *slog.Logger, statsRepo statsRepoDep, historyRepo historyRepoDep) StatsService {
	return &statsService{
		logger:      logger,
		statsRepo:   statsRepo,
		historyRepo: historyRepo,
	}
}

func (that *statsService) Record(ctx context.Context, summary *entity.GameSummary) error {
	log := that.logger.With("method", "Record", "gameID", summary.GameID)

	that.mu.Lock()
	defer that.mu.Unlock()

	stats, err := that.statsRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}

	stats.Record(summary)

	if err = that.statsRepo.Save(ctx, stats); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	if err = that.historyRepo.Push(ctx, summary.HistoryEntry()); err != nil {
		return fmt.Errorf("failed to push history entry: %w", err)
	}

	log.Info("game recorded", "winner", summary.Winner, "totalGames", stats.TotalGames)

	return nil
}

func (that *statsService) GetStats(ctx context.Context) (*entity.Stats, error) {
	stats, err := that.statsRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	return stats, nil
}

func (that *statsService) GetHistory(ctx context.Context) ([]*entity.HistoryEntry, error) {
	history, err := that.historyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return history, nil
}
