package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/squares-backend/internal/entity"
	"github.com/rocketscienceinc/squares-backend/internal/squares"
)

type Handlers interface {
	CreateGame(ctx echo.Context) error
	GetGame(ctx echo.Context) error
	ValidatePlacement(ctx echo.Context) error
	Place(ctx echo.Context) error
	Pass(ctx echo.Context) error

	GetStats(ctx echo.Context) error
	GetHistory(ctx echo.Context) error
}

type gameUseCase interface {
	CreateGame(ctx context.Context, playerCount int) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	ValidatePlacement(ctx context.Context, id string, move entity.Move) (entity.ValidationResult, error)
	Place(ctx context.Context, id string, move entity.Move) (*entity.Game, error)
	Pass(ctx context.Context, id string) (*entity.Game, error)
}

type statsUseCase interface {
	GetStats(ctx context.Context) (*entity.Stats, error)
	GetHistory(ctx context.Context) ([]*entity.HistoryEntry, error)
}

type createGameRequest struct {
	PlayerCount int `json:"player_count"`
}

type gameResponse struct {
	*entity.Game
	Scores map[entity.Color]int `json:"scores"`
}

type validationResponse struct {
	Legal   bool          `json:"legal"`
	Reason  entity.Reason `json:"reason,omitempty"`
	Message string        `json:"message,omitempty"`
}

type handlers struct {
	logger *slog.Logger

	games gameUseCase
	stats statsUseCase
}

func NewHandlers(logger *slog.Logger, games gameUseCase, stats statsUseCase) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		games:  games,
		stats:  stats,
	}
}

func newGameResponse(game *entity.Game) gameResponse {
	return gameResponse{
		Game:   game,
		Scores: squares.Scores(game),
	}
}

func (that *handlers) CreateGame(ctx echo.Context) error {
	var req createGameRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	game, err := that.games.CreateGame(ctx.Request().Context(), req.PlayerCount)
	if err != nil {
		return writeError(ctx, that.logger, err)
	}

	return ctx.JSON(http.StatusCreated, newGameResponse(game))
}

func (that *handlers) GetGame(ctx echo.Context) error {
	game, err := that.games.GetGame(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return writeError(ctx, that.logger, err)
	}

	return ctx.JSON(http.StatusOK, newGameResponse(game))
}

func (that *handlers) ValidatePlacement(ctx echo.Context) error {
	var move entity.Move
	if err := ctx.Bind(&move); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid move"})
	}

	result, err := that.games.ValidatePlacement(ctx.Request().Context(), ctx.Param("id"), move)
	if err != nil {
		return writeError(ctx, that.logger, err)
	}

	return ctx.JSON(http.StatusOK, validationResponse{
		Legal:   result.Legal,
		Reason:  result.Reason,
		Message: result.Reason.Message(),
	})
}

func (that *handlers) Place(ctx echo.Context) error {
	var move entity.Move
	if err := ctx.Bind(&move); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid move"})
	}

	game, err := that.games.Place(ctx.Request().Context(), ctx.Param("id"), move)
	if err != nil {
		return writeError(ctx, that.logger, err)
	}

	return ctx.JSON(http.StatusOK, newGameResponse(game))
}

func (that *handlers) Pass(ctx echo.Context) error {
	game, err := that.games.Pass(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return writeError(ctx, that.logger, err)
	}

	return ctx.JSON(http.StatusOK, newGameResponse(game))
}

func (that *handlers) GetStats(ctx echo.Context) error {
	stats, err := that.stats.GetStats(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, that.logger, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

func (that *handlers) GetHistory(ctx echo.Context) error {
	history, err := that.stats.GetHistory(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, that.logger, err)
	}

	return ctx.JSON(http.StatusOK, history)
}
