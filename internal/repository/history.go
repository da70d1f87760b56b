package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/squares-backend/internal/entity"
)

const historyKey = "history"

type HistoryRepository interface {
	Push(ctx context.Context, entry *entity.HistoryEntry) error
	List(ctx context.Context) ([]*entity.HistoryEntry, error)
}

// dbHistory - redis list, newest first, trimmed to limit entries.
type dbHistory struct {
	client *redis.Client
	limit  int64
}

func NewHistoryRepository(client *redis.Client, limit int) HistoryRepository {
	return &dbHistory{
		client: client,
		limit:  int64(limit),
	}
}

func (that *dbHistory) Push(ctx context.Context, entry *entity.HistoryEntry) error {
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("could not marshal history entry: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, historyKey, entryJSON)
		pipe.LTrim(ctx, historyKey, 0, that.limit-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to push history entry: %w", err)
	}

	return nil
}

func (that *dbHistory) List(ctx context.Context) ([]*entity.HistoryEntry, error) {
	response, err := that.client.LRange(ctx, historyKey, 0, that.limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	entries := make([]*entity.HistoryEntry, 0, len(response))
	for _, raw := range response {
		var entry entity.HistoryEntry
		if err = json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}
