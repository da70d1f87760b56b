package squares

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/squares-backend/internal/entity"
)

func monominoCatalog(t *testing.T, count int) Catalog {
	t.Helper()

	catalog := make(Catalog, 0, count)
	for i := 0; i < count; i++ {
		catalog = append(catalog, CatalogEntry{Name: "monomino", Shape: entity.Shape{{true}}})
	}

	return catalog
}

func newTestGame(t *testing.T, catalog Catalog, boardSize, players int) *entity.Game {
	t.Helper()

	game, err := NewSession("game-1", catalog, boardSize, players)
	require.NoError(t, err)

	return game
}

func pieceOf(t *testing.T, game *entity.Game, color entity.Color, catalogIndex int) entity.Piece {
	t.Helper()

	player := game.PlayerByColor(color)
	require.NotNil(t, player, "no %s player", color)

	index := player.FindAvailable(PieceID(color, catalogIndex))
	require.GreaterOrEqual(t, index, 0, "piece %s not available", PieceID(color, catalogIndex))

	return player.Available[index]
}

func mustTurn(t *testing.T, game *entity.Game, piece entity.Piece, x, y int) *entity.Game {
	t.Helper()

	next, err := MakeTurn(game, piece, entity.Point{X: x, Y: y})
	require.NoError(t, err)

	return next
}
