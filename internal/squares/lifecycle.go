package squares

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/squares-backend/internal/apperror"
	"github.com/rocketscienceinc/squares-backend/internal/entity"
)

// MakeTurn - Apply followed by end-of-game detection.
func MakeTurn(game *entity.Game, piece entity.Piece, anchor entity.Point) (*entity.Game, error) {
	next, err := Apply(game, piece, anchor)
	if err != nil {
		return nil, err
	}

	UpdateGameState(next, next.Players[game.CurrentPlayerIndex])

	return next, nil
}

// UpdateGameState - finishes the game when the mover has placed everything
// or when no player has a legal placement left.
func UpdateGameState(game *entity.Game, mover *entity.Player) {
	if game.IsFinished() {
		return
	}

	if len(mover.Available) == 0 || !anyLegalMove(game) {
		finish(game)
	}
}

// Pass - hands the turn on when the current player is blocked.
func Pass(game *entity.Game) (*entity.Game, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	current := game.CurrentPlayer()
	if current == nil {
		return nil, fmt.Errorf("invalid current player index %d", game.CurrentPlayerIndex)
	}

	if HasLegalMove(game.Board, current) {
		return nil, apperror.ErrLegalMoveAvailable
	}

	next := game.Clone()
	next.AdvanceTurn()

	if !anyLegalMove(next) {
		finish(next)
	}

	return next, nil
}

// HasLegalMove - exhaustive search over the player's pieces, their distinct
// orientations and every anchor that keeps the occupied cells on the board.
// Stops at the first hit.
func HasLegalMove(board entity.Board, player *entity.Player) bool {
	size := board.Size()

	for _, piece := range player.Available {
		for _, shape := range piece.Shape.Orientations() {
			low, high, ok := occupiedBounds(shape)
			if !ok {
				continue
			}

			// empty border rows or columns may hang off the board
			for y := -low.Y; y+high.Y < size; y++ {
				for x := -low.X; x+high.X < size; x++ {
					if validateFor(board, player, shape, entity.Point{X: x, Y: y}).Legal {
						return true
					}
				}
			}
		}
	}

	return false
}

// occupiedBounds - smallest and largest local coordinates of the occupied cells.
func occupiedBounds(shape entity.Shape) (entity.Point, entity.Point, bool) {
	cells := shape.Cells()
	if len(cells) == 0 {
		return entity.Point{}, entity.Point{}, false
	}

	low, high := cells[0], cells[0]
	for _, cell := range cells[1:] {
		low.X, low.Y = min(low.X, cell.X), min(low.Y, cell.Y)
		high.X, high.Y = max(high.X, cell.X), max(high.Y, cell.Y)
	}

	return low, high, true
}

func anyLegalMove(game *entity.Game) bool {
	for _, player := range game.Players {
		if HasLegalMove(game.Board, player) {
			return true
		}
	}
	return false
}

func finish(game *entity.Game) {
	game.Status = entity.StatusFinished
	game.Winner = determineWinner(game)
	game.FinishedAt = time.Now().UTC()
}

// determineWinner - highest score; ties go to the color earliest in entity.Colors.
func determineWinner(game *entity.Game) entity.Color {
	winner := entity.EmptyCell
	best := -1

	for _, color := range entity.Colors {
		player := game.PlayerByColor(color)
		if player == nil {
			continue
		}

		if score := Score(player); score > best {
			best = score
			winner = color
		}
	}

	return winner
}

// Summarize - terminal snapshot handed to the statistics collaborator.
func Summarize(game *entity.Game) *entity.GameSummary {
	summary := &entity.GameSummary{
		GameID:       game.ID,
		FinishedAt:   game.FinishedAt,
		Winner:       game.Winner,
		PlayerCount:  len(game.Players),
		Scores:       Scores(game),
		PiecesPlaced: make(map[entity.Color]int, len(game.Players)),
		CellsPlaced:  make(map[entity.Color]int, len(game.Players)),
	}

	for _, player := range game.Players {
		summary.PiecesPlaced[player.Color] = len(player.Placed)
		summary.CellsPlaced[player.Color] = game.Board.OccupiedCount(player.Color)
	}

	return summary
}
