package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/squares-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID                 string    `json:"id"`
	Board              Board     `json:"board"`
	Players            []*Player `json:"players"`
	CurrentPlayerIndex int       `json:"current_player_index"`
	Status             string    `json:"status"`
	Winner             Color     `json:"winner,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	FinishedAt         time.Time `json:"finished_at,omitempty"`
}

func (that *Game) CurrentPlayer() *Player {
	if that.CurrentPlayerIndex < 0 || that.CurrentPlayerIndex >= len(that.Players) {
		return nil
	}
	return that.Players[that.CurrentPlayerIndex]
}

func (that *Game) PlayerByColor(color Color) *Player {
	for _, player := range that.Players {
		if player.Color == color {
			return player
		}
	}
	return nil
}

// AdvanceTurn - moves to the next seat, wrapping around.
func (that *Game) AdvanceTurn() {
	that.CurrentPlayerIndex = (that.CurrentPlayerIndex + 1) % len(that.Players)
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Clone - deep copy; the engine transitions clones so callers keep the previous snapshot.
func (that *Game) Clone() *Game {
	clone := *that
	clone.Board = that.Board.Clone()
	clone.Players = make([]*Player, len(that.Players))
	for i, player := range that.Players {
		clone.Players[i] = player.Clone()
	}
	return &clone
}
