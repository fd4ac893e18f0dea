package events

// Match event name constants
const (
	EventMatchStarted     = "match-started"
	EventTurnStarted      = "turn-started"
	EventTaskResolved     = "task-resolved"
	EventVotingStarted    = "voting-started"
	EventVotingSkipped    = "voting-skipped"
	EventPlayerEliminated = "player-eliminated"
	EventRoundEnded       = "round-ended"
	EventMatchEnded       = "match-ended"
)
