package game

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aaronzipp/sus-math/internal/models"
)

// Registry owns the roster of one match
type Registry struct {
	players       []*models.Player
	rolesAssigned bool
	taskQuota     int
	rng           Rand
	logger        *zap.Logger
}

// NewRegistry creates an empty registry. A nil logger discards warnings.
func NewRegistry(rng Rand, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		taskQuota: TasksPerPlayer,
		rng:       rng,
		logger:    logger,
	}
}

// SetTaskQuota changes the per-player task cap for players created afterwards
func (r *Registry) SetTaskQuota(quota int) {
	if quota > 0 {
		r.taskQuota = quota
	}
}

// CreatePlayers builds the roster with ids 1..N in input order. Blank names get a default.
func (r *Registry) CreatePlayers(names []string) ([]*models.Player, error) {
	if len(r.players) > 0 {
		return nil, ErrRosterExists
	}
	if len(names) == 0 {
		return nil, ErrEmptyRoster
	}

	players := make([]*models.Player, 0, len(names))
	for i, name := range names {
		id := i + 1
		name = strings.TrimSpace(name)
		if name == "" {
			name = DefaultName(id)
		}
		players = append(players, &models.Player{
			ID:        id,
			Name:      name,
			TaskQuota: r.taskQuota,
		})
	}
	r.players = players
	return r.Players(), nil
}

// AssignRoles marks impostorCount distinct random players as impostors and the rest as crew
func (r *Registry) AssignRoles(impostorCount int) error {
	if len(r.players) == 0 {
		return ErrEmptyRoster
	}
	if r.rolesAssigned {
		return ErrRolesAssigned
	}
	if impostorCount < 1 {
		return ErrNoImpostors
	}
	if impostorCount >= len(r.players) {
		return fmt.Errorf("%w: %d impostors for %d players", ErrTooManyImpostors, impostorCount, len(r.players))
	}

	for _, p := range r.players {
		p.Role = models.RoleCrew
	}
	for _, idx := range r.rng.Perm(len(r.players))[:impostorCount] {
		r.players[idx].Role = models.RoleImpostor
	}
	r.rolesAssigned = true
	return nil
}

// RolesAssigned reports whether AssignRoles has succeeded
func (r *Registry) RolesAssigned() bool {
	return r.rolesAssigned
}

// Eliminate removes a player from play. It returns false, without error, when the
// player was already eliminated.
func (r *Registry) Eliminate(id int) (bool, error) {
	p, err := r.Player(id)
	if err != nil {
		return false, err
	}
	if p.Eliminated {
		r.logger.Warn("Player already eliminated", zap.Int("player_id", id), zap.String("name", p.Name))
		return false, nil
	}
	p.Eliminated = true
	return true, nil
}

// CompleteTask credits one solved task to a player, up to the player's quota.
// It returns false when the quota was already reached.
func (r *Registry) CompleteTask(id int) (bool, error) {
	p, err := r.Player(id)
	if err != nil {
		return false, err
	}
	if p.TaskQuota > 0 && p.TasksCompleted >= p.TaskQuota {
		return false, nil
	}
	p.TasksCompleted++
	return true, nil
}

// Player looks up a player by id
func (r *Registry) Player(id int) (*models.Player, error) {
	if id < 1 || id > len(r.players) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownPlayer, id)
	}
	return r.players[id-1], nil
}

// Players returns the whole roster in id order
func (r *Registry) Players() []*models.Player {
	out := make([]*models.Player, len(r.players))
	copy(out, r.players)
	return out
}

// Len returns the roster size
func (r *Registry) Len() int {
	return len(r.players)
}

// Alive returns every player still in the match
func (r *Registry) Alive() []*models.Player {
	return r.filter(func(p *models.Player) bool { return p.IsAlive() })
}

// AliveCrew returns the crew members still in the match
func (r *Registry) AliveCrew() []*models.Player {
	return r.filter(func(p *models.Player) bool { return p.IsAlive() && p.IsCrew() })
}

// AliveImpostors returns the impostors still in the match
func (r *Registry) AliveImpostors() []*models.Player {
	return r.filter(func(p *models.Player) bool { return p.IsAlive() && p.Role.IsImpostor() })
}

func (r *Registry) filter(keep func(*models.Player) bool) []*models.Player {
	out := make([]*models.Player, 0, len(r.players))
	for _, p := range r.players {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
