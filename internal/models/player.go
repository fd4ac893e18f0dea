package models

// Role is assigned once at match start
type Role string

const (
	RoleUnassigned Role = ""
	RoleCrew       Role = "crew"
	RoleImpostor   Role = "impostor"
)

// IsImpostor returns true if this role is the impostor
func (r Role) IsImpostor() bool {
	return r == RoleImpostor
}

// Player represents a player in the match
type Player struct {
	ID             int
	Name           string
	Role           Role
	Eliminated     bool
	TasksCompleted int
	TaskQuota      int
}

// IsAlive reports whether the player is still in the match
func (p *Player) IsAlive() bool {
	return !p.Eliminated
}

// IsCrew reports whether the player is a crew member
func (p *Player) IsCrew() bool {
	return p.Role == RoleCrew
}

// PlayerScore tracks wins and losses across replays in one session
type PlayerScore struct {
	GamesWon  int
	GamesLost int
}
