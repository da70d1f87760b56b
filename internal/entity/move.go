package entity

// Move - a placement request: which piece, how many clockwise quarter turns, and where its
// top-left bounding-box cell lands.
type Move struct {
	PieceID  string `json:"piece_id"`
	Rotation int    `json:"rotation"`
	Anchor   Point  `json:"anchor"`
}
