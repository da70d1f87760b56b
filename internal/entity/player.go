package entity

type Player struct {
	Color     Color   `json:"color"`
	Available []Piece `json:"available"`
	Placed    []Piece `json:"placed"`
}

// FindAvailable - index of the available piece with the given id, -1 if absent.
func (that *Player) FindAvailable(pieceID string) int {
	for i, piece := range that.Available {
		if piece.ID == pieceID {
			return i
		}
	}
	return -1
}

func (that *Player) HasPlaced() bool {
	return len(that.Placed) > 0
}

func (that *Player) Clone() *Player {
	clone := &Player{
		Color:     that.Color,
		Available: make([]Piece, len(that.Available)),
		Placed:    make([]Piece, len(that.Placed)),
	}

	for i, piece := range that.Available {
		clone.Available[i] = piece.Clone()
	}
	for i, piece := range that.Placed {
		clone.Placed[i] = piece.Clone()
	}

	return clone
}
