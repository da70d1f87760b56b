package squares

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/squares-backend/internal/apperror"
	"github.com/rocketscienceinc/squares-backend/internal/entity"
)

func TestValidate_FirstMove(t *testing.T) {
	t.Run("Monomino on the origin corner is legal", func(t *testing.T) {
		// Given: a fresh game
		game := newTestGame(t, DefaultCatalog(), DefaultBoardSize, 2)

		// When: red validates a monomino at (0,0)
		result := Validate(game, pieceOf(t, game, entity.Red, 0), entity.Point{X: 0, Y: 0})

		// Then: it is legal
		assert.Equal(t, entity.Legal(), result)
	})

	t.Run("Monomino away from the corners must cover a corner", func(t *testing.T) {
		game := newTestGame(t, DefaultCatalog(), DefaultBoardSize, 2)

		result := Validate(game, pieceOf(t, game, entity.Red, 0), entity.Point{X: 1, Y: 1})

		assert.False(t, result.Legal)
		assert.Equal(t, entity.ReasonMustCoverCorner, result.Reason)
	})

	t.Run("Every board corner is accepted", func(t *testing.T) {
		game := newTestGame(t, DefaultCatalog(), DefaultBoardSize, 2)
		mono := pieceOf(t, game, entity.Red, 0)

		for _, corner := range game.Board.Corners() {
			assert.True(t, Validate(game, mono, corner).Legal, "corner %+v", corner)
		}
	})

	t.Run("Any cell of the piece may cover the corner", func(t *testing.T) {
		// Given: an L tetromino whose bottom-left cell is not at its local origin
		//   ###
		//   #..
		game := newTestGame(t, DefaultCatalog(), DefaultBoardSize, 2)
		piece := pieceOf(t, game, entity.Red, 5)

		// When: anchored so the cell (0,1) lands on the corner (0,19)
		result := Validate(game, piece, entity.Point{X: 0, Y: 18})

		// Then: it is legal
		assert.True(t, result.Legal)
	})
}

func TestValidate_BoundsAndOverlap(t *testing.T) {
	game := newTestGame(t, DefaultCatalog(), DefaultBoardSize, 2)
	game = mustTurn(t, game, pieceOf(t, game, entity.Red, 0), 0, 0)

	tests := []struct {
		name   string
		piece  entity.Piece
		anchor entity.Point
		want   entity.Reason
	}{
		{
			name:   "Anchor past the right edge",
			piece:  pieceOf(t, game, entity.Blue, 0),
			anchor: entity.Point{X: 20, Y: 0},
			want:   entity.ReasonOutOfBounds,
		},
		{
			name:   "Negative anchor",
			piece:  pieceOf(t, game, entity.Blue, 0),
			anchor: entity.Point{X: -1, Y: 5},
			want:   entity.ReasonOutOfBounds,
		},
		{
			name:   "Domino hanging over the edge",
			piece:  pieceOf(t, game, entity.Blue, 1),
			anchor: entity.Point{X: 19, Y: 19},
			want:   entity.ReasonOutOfBounds,
		},
		{
			name:   "Bounds are checked before overlap",
			piece:  pieceOf(t, game, entity.Blue, 1),
			anchor: entity.Point{X: -1, Y: 0},
			want:   entity.ReasonOutOfBounds,
		},
		{
			name:   "Overlap is checked before the corner rule",
			piece:  pieceOf(t, game, entity.Blue, 0),
			anchor: entity.Point{X: 0, Y: 0},
			want:   entity.ReasonOccupied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(game, tt.piece, tt.anchor)

			assert.False(t, result.Legal)
			assert.Equal(t, tt.want, result.Reason)
		})
	}
}

func TestValidate_Adjacency(t *testing.T) {
	// Given: red holds a monomino on (0,0), blue one on (19,19), red to move
	game := newTestGame(t, monominoCatalog(t, 3), DefaultBoardSize, 2)
	game = mustTurn(t, game, pieceOf(t, game, entity.Red, 0), 0, 0)
	game = mustTurn(t, game, pieceOf(t, game, entity.Blue, 0), 19, 19)
	mono := pieceOf(t, game, entity.Red, 1)

	t.Run("Edge contact with own color is rejected", func(t *testing.T) {
		result := Validate(game, mono, entity.Point{X: 1, Y: 0})

		assert.Equal(t, entity.Rejected(entity.ReasonAdjacentSameColor), result)
	})

	t.Run("Diagonal contact with own color is legal", func(t *testing.T) {
		result := Validate(game, mono, entity.Point{X: 1, Y: 1})

		assert.Equal(t, entity.Legal(), result)
	})

	t.Run("Piece without own corner contact is rejected", func(t *testing.T) {
		result := Validate(game, mono, entity.Point{X: 5, Y: 5})

		assert.Equal(t, entity.Rejected(entity.ReasonMustTouchCorner), result)
	})

	t.Run("Corners of the board no longer suffice after the first move", func(t *testing.T) {
		result := Validate(game, mono, entity.Point{X: 19, Y: 0})

		assert.Equal(t, entity.Rejected(entity.ReasonMustTouchCorner), result)
	})

	t.Run("Edge contact wins over a corner contact", func(t *testing.T) {
		// Given: a domino touching (0,0) diagonally with one cell and by edge with the other
		domino := entity.Piece{ID: "red-01", Shape: entity.Shape{{true}, {true}}, Color: entity.Red}

		// When: anchored at (1,0) it covers (1,0) and (1,1)
		result := Validate(game, domino, entity.Point{X: 1, Y: 0})

		// Then: the edge rule reports first
		assert.Equal(t, entity.ReasonAdjacentSameColor, result.Reason)
	})
}

func TestValidate_OtherColorsDoNotCount(t *testing.T) {
	// Given: blue holds (1,1) and a red cell sits on (2,3), blue to move
	game := newTestGame(t, monominoCatalog(t, 3), 5, 2)
	game = mustTurn(t, game, pieceOf(t, game, entity.Red, 0), 0, 0)
	game.Board.Set(entity.Point{X: 1, Y: 1}, entity.Blue)
	game.Board.Set(entity.Point{X: 2, Y: 3}, entity.Red)
	game.PlayerByColor(entity.Blue).Placed = []entity.Piece{pieceOf(t, game, entity.Blue, 0)}

	// When: blue validates (2,2), edge-adjacent to red and diagonal to blue,
	// and (1,2), edge-adjacent to blue
	diagonal := Validate(game, pieceOf(t, game, entity.Blue, 1), entity.Point{X: 2, Y: 2})
	edge := Validate(game, pieceOf(t, game, entity.Blue, 1), entity.Point{X: 1, Y: 2})

	// Then: only blue cells drive the adjacency rules
	assert.True(t, diagonal.Legal)
	assert.Equal(t, entity.ReasonAdjacentSameColor, edge.Reason)
}

func TestValidate_DoesNotMutate(t *testing.T) {
	game := newTestGame(t, DefaultCatalog(), DefaultBoardSize, 2)
	before := game.Clone()

	_ = Validate(game, pieceOf(t, game, entity.Red, 4), entity.Point{X: 0, Y: 0})
	_ = Validate(game, pieceOf(t, game, entity.Red, 4), entity.Point{X: 7, Y: 7})

	assert.Equal(t, before, game)
}

func TestCorruptSeatIndex(t *testing.T) {
	game := newTestGame(t, DefaultCatalog(), DefaultBoardSize, 2)
	piece := pieceOf(t, game, entity.Red, 0)
	game.CurrentPlayerIndex = 5

	// Validate has no error channel and refuses the move
	assert.False(t, Validate(game, piece, entity.Point{X: 0, Y: 0}).Legal)

	// Apply and Pass surface the corrupt state as an error, not a placement rejection
	_, err := Apply(game, piece, entity.Point{X: 0, Y: 0})
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperror.ErrIllegalPlacement)

	_, err = Pass(game)
	assert.Error(t, err)
}

func TestReason_Message(t *testing.T) {
	for _, reason := range []entity.Reason{
		entity.ReasonOutOfBounds,
		entity.ReasonOccupied,
		entity.ReasonMustCoverCorner,
		entity.ReasonAdjacentSameColor,
		entity.ReasonMustTouchCorner,
	} {
		assert.NotEmpty(t, reason.Message(), reason)
	}
	assert.Empty(t, entity.ReasonNone.Message())
}
