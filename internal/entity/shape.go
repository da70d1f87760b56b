package entity

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidShape = errors.New("invalid shape")

// Point - board or shape-local coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Point) Add(other Point) Point {
	return Point{X: that.X + other.X, Y: that.Y + other.Y}
}

// Shape - rectangular bounding box of occupied cells, indexed [row][column].
type Shape [][]bool

// ParseShape - builds a shape from rows of '#' (occupied) and '.' (empty).
func ParseShape(rows []string) (Shape, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidShape)
	}

	width := len(rows[0])
	shape := make(Shape, len(rows))
	occupied := 0

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrInvalidShape, y, len(row), width)
		}

		shape[y] = make([]bool, width)
		for x, r := range row {
			switch r {
			case '#':
				shape[y][x] = true
				occupied++
			case '.':
			default:
				return nil, fmt.Errorf("%w: unexpected rune %q", ErrInvalidShape, r)
			}
		}
	}

	if width == 0 || occupied == 0 {
		return nil, fmt.Errorf("%w: shape has no cells", ErrInvalidShape)
	}

	return shape, nil
}

func (that Shape) Height() int {
	return len(that)
}

func (that Shape) Width() int {
	if len(that) == 0 {
		return 0
	}
	return len(that[0])
}

// Rotate - returns the shape turned 90 degrees clockwise.
// Cell (row y, col x) of an HxW shape lands on (row x, col H-1-y) of the WxH result.
func (that Shape) Rotate() Shape {
	height, width := that.Height(), that.Width()

	rotated := make(Shape, width)
	for x := range rotated {
		rotated[x] = make([]bool, height)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rotated[x][height-1-y] = that[y][x]
		}
	}

	return rotated
}

// Cells - occupied local coordinates in row-major order.
func (that Shape) Cells() []Point {
	cells := make([]Point, 0, that.Height()*that.Width())
	for y, row := range that {
		for x, occupied := range row {
			if occupied {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

func (that Shape) CellCount() int {
	count := 0
	for _, row := range that {
		for _, occupied := range row {
			if occupied {
				count++
			}
		}
	}
	return count
}

func (that Shape) Equal(other Shape) bool {
	if that.Height() != other.Height() || that.Width() != other.Width() {
		return false
	}

	for y := range that {
		for x := range that[y] {
			if that[y][x] != other[y][x] {
				return false
			}
		}
	}

	return true
}

// Orientations - the distinct rotation states, starting with the shape itself.
func (that Shape) Orientations() []Shape {
	orientations := []Shape{that}

	current := that
	for i := 0; i < 3; i++ {
		current = current.Rotate()

		duplicate := false
		for _, seen := range orientations {
			if seen.Equal(current) {
				duplicate = true
				break
			}
		}

		if !duplicate {
			orientations = append(orientations, current)
		}
	}

	return orientations
}

func (that Shape) Clone() Shape {
	clone := make(Shape, len(that))
	for y, row := range that {
		clone[y] = append([]bool(nil), row...)
	}
	return clone
}

func (that Shape) String() string {
	var sb strings.Builder
	for y, row := range that {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, occupied := range row {
			if occupied {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
