package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrNotFound           = errors.New("not found")
	ErrPieceNotOwned      = errors.New("piece is not available to the current player")
	ErrIllegalPlacement   = errors.New("illegal placement")
	ErrInvalidPlayerCount = errors.New("player count must be between 2 and 4")
	ErrLegalMoveAvailable = errors.New("current player still has a legal move")
	ErrInvalidCatalog     = errors.New("invalid piece catalog")
	ErrInvalidBoardSize   = errors.New("board size must be positive")
)
