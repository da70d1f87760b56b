package entity

// Reason - why a placement was rejected. The zero value means the placement is legal.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonOutOfBounds       Reason = "out_of_bounds"
	ReasonOccupied          Reason = "occupied"
	ReasonMustCoverCorner   Reason = "must_cover_corner"
	ReasonAdjacentSameColor Reason = "adjacent_same_color"
	ReasonMustTouchCorner   Reason = "must_touch_corner"
)

var reasonMessages = map[Reason]string{
	ReasonOutOfBounds:       "piece extends beyond the board",
	ReasonOccupied:          "cell is already occupied",
	ReasonMustCoverCorner:   "first piece must cover a board corner",
	ReasonAdjacentSameColor: "piece cannot share an edge with your own pieces",
	ReasonMustTouchCorner:   "piece must touch one of your pieces corner to corner",
}

func (that Reason) Message() string {
	return reasonMessages[that]
}

func (that Reason) String() string {
	return string(that)
}

type ValidationResult struct {
	Legal  bool   `json:"legal"`
	Reason Reason `json:"reason,omitempty"`
}

func Legal() ValidationResult {
	return ValidationResult{Legal: true}
}

func Rejected(reason Reason) ValidationResult {
	return ValidationResult{Reason: reason}
}
