package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/squares-backend/internal/apperror"
	"github.com/rocketscienceinc/squares-backend/internal/entity"
	"github.com/rocketscienceinc/squares-backend/internal/squares"
)

type errorResponse struct {
	Error   string        `json:"error"`
	Reason  entity.Reason `json:"reason,omitempty"`
	Message string        `json:"message,omitempty"`
}

// writeError - maps domain errors onto HTTP statuses; anything unknown is logged and hidden behind a 500.
func writeError(ctx echo.Context, logger *slog.Logger, err error) error {
	var placementErr *squares.PlacementError

	switch {
	case errors.As(err, &placementErr):
		return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{
			Error:   apperror.ErrIllegalPlacement.Error(),
			Reason:  placementErr.Reason,
			Message: placementErr.Reason.Message(),
		})
	case errors.Is(err, apperror.ErrNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrLegalMoveAvailable):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrPieceNotOwned):
		return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrInvalidPlayerCount):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		logger.Error("unexpected error", "uri", ctx.Request().RequestURI, "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
