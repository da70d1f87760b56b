package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/squares-backend/internal/entity"
)

type StatsRepository interface {
	Load(ctx context.Context) (*entity.Stats, error)
	Save(ctx context.Context, stats *entity.Stats) error
}

type statsRepository struct {
	conn *sql.DB
}

func NewStatsRepository(conn *sql.DB) StatsRepository {
	return &statsRepository{
		conn: conn,
	}
}

// Load - missing rows read as zero, so a new database yields initial stats.
func (that *statsRepository) Load(ctx context.Context) (*entity.Stats, error) {
	stats := entity.NewStats()

	query := `SELECT total_games FROM stats_summary WHERE id = 1`

	err := that.conn.QueryRowContext(ctx, query).Scan(&stats.TotalGames)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("can't load stats summary: %w", err)
	}

	query = `SELECT color, wins, high_score, games_played, average_score, cells_placed, pieces_placed FROM color_stats`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't load color stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var color string
		var wins, highScore, gamesPlayed, cellsPlaced, piecesPlaced int
		var averageScore float64

		if err = rows.Scan(&color, &wins, &highScore, &gamesPlayed, &averageScore, &cellsPlaced, &piecesPlaced); err != nil {
			return nil, fmt.Errorf("can't scan color stats: %w", err)
		}

		key := entity.Color(color)
		stats.Wins[key] = wins
		stats.HighScores[key] = highScore
		stats.GamesPlayed[key] = gamesPlayed
		stats.AverageScore[key] = averageScore
		stats.TotalCellsPlaced[key] = cellsPlaced
		stats.TotalPiecesPlaced[key] = piecesPlaced
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read color stats: %w", err)
	}

	return stats, nil
}

func (that *statsRepository) Save(ctx context.Context, stats *entity.Stats) error {
	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint: errcheck // no-op after commit

	query := `INSERT INTO stats_summary (id, total_games) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET total_games = excluded.total_games`

	if _, err = tx.ExecContext(ctx, query, stats.TotalGames); err != nil {
		return fmt.Errorf("can't save stats summary: %w", err)
	}

	query = `INSERT INTO color_stats (color, wins, high_score, games_played, average_score, cells_placed, pieces_placed)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(color) DO UPDATE SET
			wins = excluded.wins,
			high_score = excluded.high_score,
			games_played = excluded.games_played,
			average_score = excluded.average_score,
			cells_placed = excluded.cells_placed,
			pieces_placed = excluded.pieces_placed`

	for _, color := range entity.Colors {
		_, err = tx.ExecContext(ctx, query,
			string(color),
			stats.Wins[color],
			stats.HighScores[color],
			stats.GamesPlayed[color],
			stats.AverageScore[color],
			stats.TotalCellsPlaced[color],
			stats.TotalPiecesPlaced[color],
		)
		if err != nil {
			return fmt.Errorf("can't save %s stats: %w", color, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit stats: %w", err)
	}

	return nil
}
