package squares

import (
	"fmt"

	"github.com/rocketscienceinc/squares-backend/internal/apperror"
	"github.com/rocketscienceinc/squares-backend/internal/entity"
)

// Rotate - turns the piece clockwise times%4 times; negative values turn counter-clockwise.
func Rotate(piece entity.Piece, times int) entity.Piece {
	turns := ((times % 4) + 4) % 4

	rotated := piece.Clone()
	for i := 0; i < turns; i++ {
		rotated = rotated.Rotate()
	}

	return rotated
}

// Apply - commits a placement for the current player and hands the turn to the next seat.
// The input game is never modified; on any error nothing is applied.
func Apply(game *entity.Game, piece entity.Piece, anchor entity.Point) (*entity.Game, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	mover := game.CurrentPlayer()
	if mover == nil {
		return nil, fmt.Errorf("invalid current player index %d", game.CurrentPlayerIndex)
	}

	if err := checkOwnership(mover, piece); err != nil {
		return nil, err
	}

	if result := Validate(game, piece, anchor); !result.Legal {
		return nil, &PlacementError{Reason: result.Reason}
	}

	next := game.Clone()
	nextMover := next.Players[next.CurrentPlayerIndex]

	for _, cell := range piece.Shape.Cells() {
		next.Board.Set(cell.Add(anchor), nextMover.Color)
	}

	index := nextMover.FindAvailable(piece.ID)
	nextMover.Available = append(nextMover.Available[:index], nextMover.Available[index+1:]...)
	nextMover.Placed = append(nextMover.Placed, piece.Clone())

	next.AdvanceTurn()

	return next, nil
}

// checkOwnership - the piece must be one of the mover's available pieces, in any orientation.
func checkOwnership(mover *entity.Player, piece entity.Piece) error {
	index := mover.FindAvailable(piece.ID)
	if index < 0 || piece.Color != mover.Color {
		return fmt.Errorf("%w: %s", apperror.ErrPieceNotOwned, piece.ID)
	}

	for _, orientation := range mover.Available[index].Shape.Orientations() {
		if orientation.Equal(piece.Shape) {
			return nil
		}
	}

	return fmt.Errorf("%w: shape of %s does not match", apperror.ErrPieceNotOwned, piece.ID)
}
