package squares

import "github.com/rocketscienceinc/squares-backend/internal/entity"

// Score - total area of the player's placed pieces.
func Score(player *entity.Player) int {
	score := 0
	for _, piece := range player.Placed {
		score += piece.CellCount()
	}
	return score
}

func Scores(game *entity.Game) map[entity.Color]int {
	scores := make(map[entity.Color]int, len(game.Players))
	for _, player := range game.Players {
		scores[player.Color] = Score(player)
	}
	return scores
}
