package squares

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/squares-backend/internal/apperror"
	"github.com/rocketscienceinc/squares-backend/internal/entity"
)

const (
	MinPlayers = 2
	MaxPlayers = 4
)

// NewSession - builds the initial state: empty board, every player holding the full catalog.
func NewSession(id string, catalog Catalog, boardSize, playerCount int) (*entity.Game, error) {
	if playerCount < MinPlayers || playerCount > MaxPlayers || playerCount > len(entity.Colors) {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidPlayerCount, playerCount)
	}

	if boardSize < 1 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, boardSize)
	}

	if len(catalog) == 0 {
		return nil, fmt.Errorf("%w: no pieces", apperror.ErrInvalidCatalog)
	}

	players := make([]*entity.Player, 0, playerCount)
	for _, color := range entity.Colors[:playerCount] {
		players = append(players, &entity.Player{
			Color:     color,
			Available: piecesFor(color, catalog),
			Placed:    []entity.Piece{},
		})
	}

	return &entity.Game{
		ID:                 id,
		Board:              entity.NewBoard(boardSize),
		Players:            players,
		CurrentPlayerIndex: 0,
		Status:             entity.StatusOngoing,
		CreatedAt:          time.Now().UTC(),
	}, nil
}

// piecesFor - ids are derived from the catalog position so duplicate shapes stay distinguishable.
func piecesFor(color entity.Color, catalog Catalog) []entity.Piece {
	pieces := make([]entity.Piece, 0, len(catalog))
	for i, entry := range catalog {
		pieces = append(pieces, entity.Piece{
			ID:    PieceID(color, i),
			Shape: entry.Shape.Clone(),
			Color: color,
		})
	}
	return pieces
}

func PieceID(color entity.Color, catalogIndex int) string {
	return fmt.Sprintf("%s-%02d", color, catalogIndex)
}
