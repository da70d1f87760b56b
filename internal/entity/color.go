package entity

// Color - player color; EmptyCell marks an unowned board cell.
type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"

	EmptyCell Color = ""
)

// Colors - seat order and tie-break order.
var Colors = []Color{Red, Blue, Green, Yellow}

// Index - position in Colors, -1 for unknown colors.
func (that Color) Index() int {
	for i, color := range Colors {
		if color == that {
			return i
		}
	}
	return -1
}

func (that Color) IsValid() bool {
	return that.Index() >= 0
}
