package entity

// Board - square grid of cell owners, indexed [y][x].
type Board [][]Color

func NewBoard(size int) Board {
	board := make(Board, size)
	for y := range board {
		board[y] = make([]Color, size)
	}
	return board
}

func (that Board) Size() int {
	return len(that)
}

func (that Board) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < len(that) && p.Y < len(that)
}

// At - owner of p, EmptyCell when p is off the board.
func (that Board) At(p Point) Color {
	if !that.InBounds(p) {
		return EmptyCell
	}
	return that[p.Y][p.X]
}

func (that Board) Set(p Point, color Color) {
	that[p.Y][p.X] = color
}

// Corners - the four corner cells in a fixed order.
func (that Board) Corners() []Point {
	last := len(that) - 1
	return []Point{
		{X: 0, Y: 0},
		{X: last, Y: 0},
		{X: 0, Y: last},
		{X: last, Y: last},
	}
}

// OccupiedCount - number of non-empty cells, optionally restricted to one color.
func (that Board) OccupiedCount(color Color) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				continue
			}
			if color == EmptyCell || cell == color {
				count++
			}
		}
	}
	return count
}

func (that Board) Clone() Board {
	clone := make(Board, len(that))
	for y, row := range that {
		clone[y] = append([]Color(nil), row...)
	}
	return clone
}
