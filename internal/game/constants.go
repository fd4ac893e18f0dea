package game

const (
	// MinPlayers is the minimum number of players required to start a match
	MinPlayers = 3

	// MaxPlayers is the largest roster the console accepts
	MaxPlayers = 15

	// TaskTarget is the global number of solved tasks that wins the match for the crew
	TaskTarget = 25

	// TasksPerPlayer caps the tasks a single crew member can be credited with
	TasksPerPlayer = 5

	// ImpostorDivisor sets the impostor count to players/ImpostorDivisor (at least one)
	ImpostorDivisor = 4

	// DefaultNameFormat names players who did not enter a name
	DefaultNameFormat = "Player %d"
)
