package usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/squares-backend/internal/apperror"
	"github.com/rocketscienceinc/squares-backend/internal/entity"
	"github.com/rocketscienceinc/squares-backend/internal/repository"
	"github.com/rocketscienceinc/squares-backend/internal/squares"
	mockedUseCase "github.com/rocketscienceinc/squares-backend/mocks/usecase"
)

var (
	errRedisDown     = errors.New("redis down")
	errStorageIsFull = errors.New("storage is full")
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func mustParse(t *testing.T, rows ...string) entity.Shape {
	t.Helper()

	shape, err := entity.ParseShape(rows)
	require.NoError(t, err)

	return shape
}

func newSession(t *testing.T, catalog squares.Catalog, boardSize int) *entity.Game {
	t.Helper()

	game, err := squares.NewSession("game1", catalog, boardSize, 2)
	require.NoError(t, err)

	return game
}

func TestGameUseCase_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates and stores a new session", func(t *testing.T) {
		// Given: a repository that accepts the new game
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, squares.DefaultCatalog(), squares.DefaultBoardSize)

		mockGameRepo.EXPECT().
			CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		// When: creating a three player game
		game, err := useCase.CreateGame(ctx, 3)

		// Then: the session is ongoing with red to move
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Len(t, game.Players, 3)
		assert.Equal(t, entity.Red, game.CurrentPlayer().Color)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, squares.DefaultBoardSize, game.Board.Size())
	})

	t.Run("Rejects an invalid player count without touching storage", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, squares.DefaultCatalog(), squares.DefaultBoardSize)

		game, err := useCase.CreateGame(ctx, 5)

		assert.ErrorIs(t, err, apperror.ErrInvalidPlayerCount)
		assert.Nil(t, game)
	})

	t.Run("Returns error if the game cannot be saved", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, squares.DefaultCatalog(), squares.DefaultBoardSize)

		mockGameRepo.EXPECT().
			CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Game")).
			Return(errStorageIsFull).
			Once()

		game, err := useCase.CreateGame(ctx, 2)

		assert.ErrorIs(t, err, errStorageIsFull)
		assert.Nil(t, game)
	})
}

func TestGameUseCase_GetGame(t *testing.T) {
	ctx := context.Background()

	mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
	mockStats := mockedUseCase.NewMockstatsServiceDep(t)
	useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, squares.DefaultCatalog(), squares.DefaultBoardSize)

	mockGameRepo.EXPECT().
		GetByID(ctx, "missing").
		Return((*entity.Game)(nil), repository.ErrGameNotFound).
		Once()

	game, err := useCase.GetGame(ctx, "missing")

	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Nil(t, game)
}

func TestGameUseCase_ValidatePlacement(t *testing.T) {
	ctx := context.Background()

	t.Run("Reports a legal corner placement", func(t *testing.T) {
		// Given: a fresh default game
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, squares.DefaultCatalog(), squares.DefaultBoardSize)
		game := newSession(t, squares.DefaultCatalog(), squares.DefaultBoardSize)

		mockGameRepo.EXPECT().GetByID(ctx, game.ID).Return(game, nil).Once()

		// When: red checks its domino on the top-left corner
		result, err := useCase.ValidatePlacement(ctx, game.ID, entity.Move{PieceID: "red-01", Anchor: entity.Point{X: 0, Y: 0}})

		// Then: the move is legal and the board is untouched
		require.NoError(t, err)
		assert.True(t, result.Legal)
		assert.Equal(t, 0, game.Board.OccupiedCount(entity.EmptyCell))
	})

	t.Run("Reports the rejection reason", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, squares.DefaultCatalog(), squares.DefaultBoardSize)
		game := newSession(t, squares.DefaultCatalog(), squares.DefaultBoardSize)

		mockGameRepo.EXPECT().GetByID(ctx, game.ID).Return(game, nil).Once()

		result, err := useCase.ValidatePlacement(ctx, game.ID, entity.Move{PieceID: "red-01", Anchor: entity.Point{X: 5, Y: 5}})

		require.NoError(t, err)
		assert.False(t, result.Legal)
		assert.Equal(t, entity.ReasonMustCoverCorner, result.Reason)
	})

	t.Run("Rotation is applied before validation", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, squares.DefaultCatalog(), squares.DefaultBoardSize)
		game := newSession(t, squares.DefaultCatalog(), squares.DefaultBoardSize)

		mockGameRepo.EXPECT().GetByID(ctx, game.ID).Return(game, nil).Twice()

		// Horizontal I4 at (19,0) leaves the board, vertical I4 at (19,0) covers the top-right corner.
		flat, err := useCase.ValidatePlacement(ctx, game.ID, entity.Move{PieceID: "red-03", Anchor: entity.Point{X: 19, Y: 0}})
		require.NoError(t, err)

		upright, err := useCase.ValidatePlacement(ctx, game.ID, entity.Move{PieceID: "red-03", Rotation: 1, Anchor: entity.Point{X: 19, Y: 0}})
		require.NoError(t, err)

		assert.Equal(t, entity.ReasonOutOfBounds, flat.Reason)
		assert.True(t, upright.Legal)
	})

	t.Run("Returns error for a piece the current player does not hold", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, squares.DefaultCatalog(), squares.DefaultBoardSize)
		game := newSession(t, squares.DefaultCatalog(), squares.DefaultBoardSize)

		mockGameRepo.EXPECT().GetByID(ctx, game.ID).Return(game, nil).Once()

		_, err := useCase.ValidatePlacement(ctx, game.ID, entity.Move{PieceID: "blue-00"})

		assert.ErrorIs(t, err, apperror.ErrPieceNotOwned)
	})

	t.Run("Returns error instead of a reason for a corrupt seat index", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, squares.DefaultCatalog(), squares.DefaultBoardSize)
		game := newSession(t, squares.DefaultCatalog(), squares.DefaultBoardSize)
		game.CurrentPlayerIndex = 7

		mockGameRepo.EXPECT().GetByID(ctx, game.ID).Return(game, nil).Once()

		result, err := useCase.ValidatePlacement(ctx, game.ID, entity.Move{PieceID: "red-00"})

		require.Error(t, err)
		assert.NotErrorIs(t, err, apperror.ErrPieceNotOwned)
		assert.Equal(t, entity.ValidationResult{}, result)
	})

	t.Run("Returns error for a finished game", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, squares.DefaultCatalog(), squares.DefaultBoardSize)
		game := newSession(t, squares.DefaultCatalog(), squares.DefaultBoardSize)
		game.Status = entity.StatusFinished

		mockGameRepo.EXPECT().GetByID(ctx, game.ID).Return(game, nil).Once()

		_, err := useCase.ValidatePlacement(ctx, game.ID, entity.Move{PieceID: "red-00"})

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGameUseCase_Place(t *testing.T) {
	ctx := context.Background()

	t.Run("Places the piece and hands the turn on", func(t *testing.T) {
		// Given: a fresh default game
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, squares.DefaultCatalog(), squares.DefaultBoardSize)
		game := newSession(t, squares.DefaultCatalog(), squares.DefaultBoardSize)

		mockGameRepo.EXPECT().GetByID(ctx, game.ID).Return(game, nil).Once()
		mockGameRepo.EXPECT().
			CreateOrUpdate(ctx, mock.MatchedBy(func(saved *entity.Game) bool {
				return saved.Board.At(entity.Point{X: 0, Y: 0}) == entity.Red && saved.CurrentPlayerIndex == 1
			})).
			Return(nil).
			Once()

		// When: red places its monomino on the corner
		next, err := useCase.Place(ctx, game.ID, entity.Move{PieceID: "red-00", Anchor: entity.Point{X: 0, Y: 0}})

		// Then: the new state is saved, the loaded one is untouched
		require.NoError(t, err)
		assert.Equal(t, entity.Blue, next.CurrentPlayer().Color)
		assert.Equal(t, -1, next.Players[0].FindAvailable("red-00"))
		assert.Equal(t, entity.EmptyCell, game.Board.At(entity.Point{X: 0, Y: 0}))
		assert.Equal(t, entity.StatusOngoing, next.Status)
	})

	t.Run("Rejects an illegal placement without saving", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, squares.DefaultCatalog(), squares.DefaultBoardSize)
		game := newSession(t, squares.DefaultCatalog(), squares.DefaultBoardSize)

		mockGameRepo.EXPECT().GetByID(ctx, game.ID).Return(game, nil).Once()

		next, err := useCase.Place(ctx, game.ID, entity.Move{PieceID: "red-00", Anchor: entity.Point{X: 3, Y: 3}})

		require.ErrorIs(t, err, apperror.ErrIllegalPlacement)
		assert.Nil(t, next)

		var placementErr *squares.PlacementError
		require.ErrorAs(t, err, &placementErr)
		assert.Equal(t, entity.ReasonMustCoverCorner, placementErr.Reason)
	})

	t.Run("Records stats when the move finishes the game", func(t *testing.T) {
		// Given: a 2x2 board where each player holds a single monomino
		catalog := squares.Catalog{{Name: "monomino", Shape: mustParse(t, "#")}}
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, catalog, 2)
		game := newSession(t, catalog, 2)

		mockGameRepo.EXPECT().GetByID(ctx, game.ID).Return(game, nil).Once()
		mockGameRepo.EXPECT().CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Once()
		mockStats.EXPECT().
			Record(ctx, mock.MatchedBy(func(summary *entity.GameSummary) bool {
				return summary.GameID == game.ID &&
					summary.Winner == entity.Red &&
					summary.Scores[entity.Red] == 1 &&
					summary.Scores[entity.Blue] == 0
			})).
			Return(nil).
			Once()

		// When: red places its only piece
		next, err := useCase.Place(ctx, game.ID, entity.Move{PieceID: "red-00", Anchor: entity.Point{X: 0, Y: 0}})

		// Then: the game is over and red wins
		require.NoError(t, err)
		assert.True(t, next.IsFinished())
		assert.Equal(t, entity.Red, next.Winner)
	})

	t.Run("Stats failure does not fail the move", func(t *testing.T) {
		catalog := squares.Catalog{{Name: "monomino", Shape: mustParse(t, "#")}}
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, catalog, 2)
		game := newSession(t, catalog, 2)

		mockGameRepo.EXPECT().GetByID(ctx, game.ID).Return(game, nil).Once()
		mockGameRepo.EXPECT().CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Once()
		mockStats.EXPECT().Record(ctx, mock.AnythingOfType("*entity.GameSummary")).Return(errRedisDown).Once()

		next, err := useCase.Place(ctx, game.ID, entity.Move{PieceID: "red-00", Anchor: entity.Point{X: 0, Y: 0}})

		require.NoError(t, err)
		assert.True(t, next.IsFinished())
	})

	t.Run("Returns error if the game is missing", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, squares.DefaultCatalog(), squares.DefaultBoardSize)

		mockGameRepo.EXPECT().GetByID(ctx, "nope").Return((*entity.Game)(nil), repository.ErrGameNotFound).Once()

		_, err := useCase.Place(ctx, "nope", entity.Move{PieceID: "red-00"})

		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestGameUseCase_Pass(t *testing.T) {
	ctx := context.Background()

	t.Run("Refuses to pass while a legal move exists", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, squares.DefaultCatalog(), squares.DefaultBoardSize)
		game := newSession(t, squares.DefaultCatalog(), squares.DefaultBoardSize)

		mockGameRepo.EXPECT().GetByID(ctx, game.ID).Return(game, nil).Once()

		next, err := useCase.Pass(ctx, game.ID)

		assert.ErrorIs(t, err, apperror.ErrLegalMoveAvailable)
		assert.Nil(t, next)
	})

	t.Run("Pass by a blocked player ends a game nobody can continue", func(t *testing.T) {
		// Given: a 1x1 board and only dominoes, so nobody can ever place
		catalog := squares.Catalog{{Name: "domino", Shape: mustParse(t, "##")}}
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockStats := mockedUseCase.NewMockstatsServiceDep(t)
		useCase := NewGameUseCase(newTestLogger(), mockGameRepo, mockStats, catalog, 1)
		game := newSession(t, catalog, 1)

		mockGameRepo.EXPECT().GetByID(ctx, game.ID).Return(game, nil).Once()
		mockGameRepo.EXPECT().CreateOrUpdate(ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Once()
		mockStats.EXPECT().Record(ctx, mock.AnythingOfType("*entity.GameSummary")).Return(nil).Once()

		// When: red passes
		next, err := useCase.Pass(ctx, game.ID)

		// Then: the game finishes as a scoreless tie won by the first seat
		require.NoError(t, err)
		assert.True(t, next.IsFinished())
		assert.Equal(t, entity.Red, next.Winner)
	})
}
