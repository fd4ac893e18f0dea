package models

// GameStatus represents the current state of a match
type GameStatus string

const (
	StatusLobby       GameStatus = "lobby"
	StatusTaskPhase   GameStatus = "task_phase"
	StatusVoting      GameStatus = "voting"
	StatusImpostorWin GameStatus = "impostor_win"
	StatusCrewWin     GameStatus = "crew_win"
	StatusGameOver    GameStatus = "game_over"
)

var validTransitions = map[GameStatus][]GameStatus{
	StatusLobby:     {StatusTaskPhase, StatusGameOver},
	StatusTaskPhase: {StatusVoting, StatusImpostorWin, StatusCrewWin, StatusGameOver},
	StatusVoting:    {StatusTaskPhase, StatusImpostorWin, StatusCrewWin, StatusGameOver},
}

// String returns the string representation of the status
func (s GameStatus) String() string {
	return string(s)
}

// IsTerminal reports whether a side has won. Terminal statuses never change.
func (s GameStatus) IsTerminal() bool {
	return s == StatusCrewWin || s == StatusImpostorWin
}

// IsFinished reports whether the match has ended, either with a winner or abandoned.
func (s GameStatus) IsFinished() bool {
	return s.IsTerminal() || s == StatusGameOver
}

// CanTransitionTo checks if a transition from the current status to target is valid
func (s GameStatus) CanTransitionTo(target GameStatus) bool {
	for _, status := range validTransitions[s] {
		if status == target {
			return true
		}
	}
	return false
}
