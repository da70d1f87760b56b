package entity

import "time"

// GameSummary - terminal snapshot of a finished game.
type GameSummary struct {
	GameID       string        `json:"game_id"`
	FinishedAt   time.Time     `json:"finished_at"`
	Winner       Color         `json:"winner"`
	PlayerCount  int           `json:"player_count"`
	Scores       map[Color]int `json:"scores"`
	PiecesPlaced map[Color]int `json:"pieces_placed"`
	CellsPlaced  map[Color]int `json:"cells_placed"`
}

type Stats struct {
	TotalGames        int               `json:"total_games"`
	Wins              map[Color]int     `json:"wins"`
	HighScores        map[Color]int     `json:"high_scores"`
	GamesPlayed       map[Color]int     `json:"games_played"`
	AverageScore      map[Color]float64 `json:"average_score"`
	TotalCellsPlaced  map[Color]int     `json:"total_cells_placed"`
	TotalPiecesPlaced map[Color]int     `json:"total_pieces_placed"`
}

type HistoryEntry struct {
	GameID      string        `json:"game_id"`
	Date        time.Time     `json:"date"`
	Winner      Color         `json:"winner"`
	Scores      map[Color]int `json:"scores"`
	PlayerCount int           `json:"player_count"`
}

func NewStats() *Stats {
	stats := &Stats{
		Wins:              make(map[Color]int, len(Colors)),
		HighScores:        make(map[Color]int, len(Colors)),
		GamesPlayed:       make(map[Color]int, len(Colors)),
		AverageScore:      make(map[Color]float64, len(Colors)),
		TotalCellsPlaced:  make(map[Color]int, len(Colors)),
		TotalPiecesPlaced: make(map[Color]int, len(Colors)),
	}

	for _, color := range Colors {
		stats.Wins[color] = 0
		stats.HighScores[color] = 0
		stats.GamesPlayed[color] = 0
		stats.AverageScore[color] = 0
		stats.TotalCellsPlaced[color] = 0
		stats.TotalPiecesPlaced[color] = 0
	}

	return stats
}

// Record - folds a finished game into the aggregates.
// AverageScore is the running mean of final scores over the games a color took part in.
func (that *Stats) Record(summary *GameSummary) {
	that.TotalGames++

	for color, score := range summary.Scores {
		played := that.GamesPlayed[color]

		that.AverageScore[color] = (that.AverageScore[color]*float64(played) + float64(score)) / float64(played+1)
		that.GamesPlayed[color] = played + 1

		if score > that.HighScores[color] {
			that.HighScores[color] = score
		}

		that.TotalCellsPlaced[color] += summary.CellsPlaced[color]
		that.TotalPiecesPlaced[color] += summary.PiecesPlaced[color]
	}

	if summary.Winner.IsValid() {
		that.Wins[summary.Winner]++
	}
}

func (that *GameSummary) HistoryEntry() *HistoryEntry {
	return &HistoryEntry{
		GameID:      that.GameID,
		Date:        that.FinishedAt,
		Winner:      that.Winner,
		Scores:      that.Scores,
		PlayerCount: that.PlayerCount,
	}
}
