package models

// Game is the single match-state record shared by the round engine and the win evaluator
type Game struct {
	ID             string
	Status         GameStatus
	Round          int
	TasksCompleted int // global counter across all players
	TaskTarget     int
}
