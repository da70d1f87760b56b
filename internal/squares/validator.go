package squares

import "github.com/rocketscienceinc/squares-backend/internal/entity"

var (
	edgeOffsets = []entity.Point{
		{X: 0, Y: -1},
		{X: 0, Y: 1},
		{X: 1, Y: 0},
		{X: -1, Y: 0},
	}

	cornerOffsets = []entity.Point{
		{X: 1, Y: -1},
		{X: -1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
	}
)

// Validate - checks a placement for the current player. Never mutates the game.
// A game whose current player index is out of range is corrupt, not a rejected move:
// Validate refuses it as ReasonOutOfBounds (the seat, not the piece, is out of bounds),
// and callers that can report errors check CurrentPlayer first, as Apply, Pass and
// the game use case do.
func Validate(game *entity.Game, piece entity.Piece, anchor entity.Point) entity.ValidationResult {
	player := game.CurrentPlayer()
	if player == nil {
		return entity.Rejected(entity.ReasonOutOfBounds)
	}

	return validateFor(game.Board, player, piece.Shape, anchor)
}

// validateFor - rules in precedence order: bounds, overlap, first-move corner,
// edge contact, corner contact. The first failing rule is reported.
func validateFor(board entity.Board, player *entity.Player, shape entity.Shape, anchor entity.Point) entity.ValidationResult {
	cells := shape.Cells()
	for i, cell := range cells {
		cells[i] = cell.Add(anchor)
	}

	for _, cell := range cells {
		if !board.InBounds(cell) {
			return entity.Rejected(entity.ReasonOutOfBounds)
		}
	}

	for _, cell := range cells {
		if board.At(cell) != entity.EmptyCell {
			return entity.Rejected(entity.ReasonOccupied)
		}
	}

	if !player.HasPlaced() {
		if coversCorner(board, cells) {
			return entity.Legal()
		}
		return entity.Rejected(entity.ReasonMustCoverCorner)
	}

	for _, cell := range cells {
		if touches(board, cell, edgeOffsets, player.Color) {
			return entity.Rejected(entity.ReasonAdjacentSameColor)
		}
	}

	for _, cell := range cells {
		if touches(board, cell, cornerOffsets, player.Color) {
			return entity.Legal()
		}
	}

	return entity.Rejected(entity.ReasonMustTouchCorner)
}

func coversCorner(board entity.Board, cells []entity.Point) bool {
	for _, corner := range board.Corners() {
		for _, cell := range cells {
			if cell == corner {
				return true
			}
		}
	}
	return false
}

func touches(board entity.Board, cell entity.Point, offsets []entity.Point, color entity.Color) bool {
	for _, offset := range offsets {
		if board.At(cell.Add(offset)) == color {
			return true
		}
	}
	return false
}
