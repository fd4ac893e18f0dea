package game

import (
	"github.com/aaronzipp/sus-math/internal/models"
)

// Verdict is the outcome of a win check
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictCrewWin
	VerdictImpostorWin
)

// Status maps a verdict to the terminal status it declares. VerdictNone has none.
func (v Verdict) Status() (models.GameStatus, bool) {
	switch v {
	case VerdictCrewWin:
		return models.StatusCrewWin, true
	case VerdictImpostorWin:
		return models.StatusImpostorWin, true
	default:
		return "", false
	}
}

// String returns a short description of the verdict
func (v Verdict) String() string {
	switch v {
	case VerdictCrewWin:
		return "crew_win"
	case VerdictImpostorWin:
		return "impostor_win"
	default:
		return "none"
	}
}

// Evaluate decides whether the match is over. Checks run in a fixed order and the
// first match wins, so task completion beats an impostor majority.
func Evaluate(registry *Registry, g *models.Game) Verdict {
	if g.TasksCompleted >= g.TaskTarget {
		return VerdictCrewWin
	}

	crew := len(registry.AliveCrew())
	impostors := len(registry.AliveImpostors())

	if impostors >= crew {
		return VerdictImpostorWin
	}
	if crew == 0 {
		return VerdictImpostorWin
	}
	return VerdictNone
}

// ApplyVerdict writes a verdict to the match. Terminal matches are left untouched.
func ApplyVerdict(g *models.Game, v Verdict) bool {
	status, ok := v.Status()
	if !ok || g.Status.IsFinished() {
		return false
	}
	g.Status = status
	return true
}
