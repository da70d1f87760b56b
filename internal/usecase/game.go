package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/squares-backend/internal/apperror"
	"github.com/rocketscienceinc/squares-backend/internal/entity"
	"github.com/rocketscienceinc/squares-backend/internal/squares"
)

type GameUseCase interface {
	CreateGame(ctx context.Context, playerCount int) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)

	ValidatePlacement(ctx context.Context, id string, move entity.Move) (entity.ValidationResult, error)
	Place(ctx context.Context, id string, move entity.Move) (*entity.Game, error)
	Pass(ctx context.Context, id string) (*entity.Game, error)
}

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

type statsServiceDep interface {
	Record(ctx context.Context, summary *entity.GameSummary) error
}

type gameUseCase struct {
	logger *slog.Logger

	gameRepo     gameRepoDep
	statsService statsServiceDep

	catalog   squares.Catalog
	boardSize int
}

func NewGameUseCase(
	logger *slog.Logger,
	gameRepo gameRepoDep,
	statsService statsServiceDep,
	catalog squares.Catalog,
	boardSize int,
) GameUseCase {
	return &gameUseCase{
		logger: logger,

		gameRepo:     gameRepo,
		statsService: statsService,

		catalog:   catalog,
		boardSize: boardSize,
	}
}

func (that *gameUseCase) CreateGame(ctx context.Context, playerCount int) (*entity.Game, error) {
	game, err := squares.NewSession(uuid.NewString(), that.catalog, that.boardSize, playerCount)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "players", playerCount)

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// ValidatePlacement - dry run of a move for the current player.
func (that *gameUseCase) ValidatePlacement(ctx context.Context, id string, move entity.Move) (entity.ValidationResult, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return entity.ValidationResult{}, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return entity.ValidationResult{}, err
	}

	piece, err := resolvePiece(game, move)
	if err != nil {
		return entity.ValidationResult{}, err
	}

	return squares.Validate(game, piece, move.Anchor), nil
}

func (that *gameUseCase) Place(ctx context.Context, id string, move entity.Move) (*entity.Game, error) {
	log := that.logger.With("method", "Place", "gameID", id)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	piece, err := resolvePiece(game, move)
	if err != nil {
		return nil, err
	}

	next, err := squares.MakeTurn(game, piece, move.Anchor)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	log.Debug("piece placed", "pieceID", move.PieceID, "anchor", move.Anchor)

	that.recordIfFinished(ctx, next)

	return next, nil
}

// Pass - only allowed when the current player has nothing left to place legally.
func (that *gameUseCase) Pass(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := squares.Pass(game)
	if err != nil {
		return nil, fmt.Errorf("failed to pass: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.recordIfFinished(ctx, next)

	return next, nil
}

// recordIfFinished - a finished game is already persisted, so a stats failure is only logged.
func (that *gameUseCase) recordIfFinished(ctx context.Context, game *entity.Game) {
	if !game.IsFinished() {
		return
	}

	log := that.logger.With("method", "recordIfFinished", "gameID", game.ID)

	if err := that.statsService.Record(ctx, squares.Summarize(game)); err != nil {
		log.Error("failed to record finished game", "error", err)
		return
	}

	log.Info("game finished", "winner", game.Winner)
}

func resolvePiece(game *entity.Game, move entity.Move) (entity.Piece, error) {
	player := game.CurrentPlayer()
	if player == nil {
		return entity.Piece{}, fmt.Errorf("invalid current player index %d", game.CurrentPlayerIndex)
	}

	index := player.FindAvailable(move.PieceID)
	if index < 0 {
		return entity.Piece{}, fmt.Errorf("%w: %s", apperror.ErrPieceNotOwned, move.PieceID)
	}

	return squares.Rotate(player.Available[index], move.Rotation), nil
}
