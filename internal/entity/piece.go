package entity

// Piece - a shape owned by one color. ID is stable across rotations.
type Piece struct {
	ID    string `json:"id"`
	Shape Shape  `json:"shape"`
	Color Color  `json:"color"`
}

// Rotate - returns a copy turned clockwise; the receiver is left untouched.
func (that Piece) Rotate() Piece {
	return Piece{
		ID:    that.ID,
		Shape: that.Shape.Rotate(),
		Color: that.Color,
	}
}

func (that Piece) CellCount() int {
	return that.Shape.CellCount()
}

func (that Piece) Clone() Piece {
	return Piece{
		ID:    that.ID,
		Shape: that.Shape.Clone(),
		Color: that.Color,
	}
}
