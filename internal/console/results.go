package console

import (
	"github.com/aaronzipp/sus-math/internal/models"
)

// recordScores credits the winning side. Abandoned matches count for nobody.
func (ctx *Context) recordScores(g *models.Game, players []*models.Player) {
	if !g.Status.IsTerminal() {
		return
	}
	crewWon := g.Status == models.StatusCrewWin
	for _, p := range players {
		score, ok := ctx.Scores[p.Name]
		if !ok {
			score = &models.PlayerScore{}
			ctx.Scores[p.Name] = score
		}
		if p.IsCrew() == crewWon {
			score.GamesWon++
		} else {
			score.GamesLost++
		}
	}
}
