package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/squares-backend/internal/apperror"
	"github.com/rocketscienceinc/squares-backend/internal/entity"
	"github.com/rocketscienceinc/squares-backend/internal/squares"
	"github.com/rocketscienceinc/squares-backend/testing/suite"
)

func newGame(t *testing.T, id string) *entity.Game {
	t.Helper()

	game, err := squares.NewSession(id, squares.DefaultCatalog(), squares.DefaultBoardSize, 2)
	require.NoError(t, err)

	return game
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, 0)

	// Given: a new game
	game := newGame(t, "123")

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and game is stored
	require.NoError(t, err)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// Given: a game after one placement
		game := newGame(t, "123")
		piece := game.Players[0].Available[0]
		game, err := squares.MakeTurn(game, piece, entity.Point{X: 0, Y: 0})
		require.NoError(t, err)

		err = gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the board, players and turn survive the round trip
		require.NoError(t, err)
		assert.Equal(t, game.ID, retrievedGame.ID)
		assert.Equal(t, game.Status, retrievedGame.Status)
		assert.Equal(t, game.Board, retrievedGame.Board)
		assert.Equal(t, game.CurrentPlayerIndex, retrievedGame.CurrentPlayerIndex)
		assert.Equal(t, game.Players, retrievedGame.Players)
		assert.True(t, game.CreatedAt.Equal(retrievedGame.CreatedAt))
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Nil(t, retrievedGame)
	})
}

func TestGameRepository_Expiry(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, time.Hour)

	// Given: a stored game
	game := newGame(t, "123")
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

	// When: reading the key expiry
	ttl, err := st.Storage.TTL(ctx, gameKey(game.ID)).Result()

	// Then: the game expires within the configured window
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour)
}
