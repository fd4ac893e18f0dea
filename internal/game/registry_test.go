package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/sus-math/internal/models"
)

func newRoster(t *testing.T, n int, seed uint64) *Registry {
	t.Helper()
	r := NewRegistry(NewRand(seed), nil)
	names := make([]string, n)
	for i := range names {
		names[i] = DefaultName(i + 1)
	}
	_, err := r.CreatePlayers(names)
	require.NoError(t, err)
	return r
}

func TestCreatePlayers(t *testing.T) {
	t.Run("assigns ids in input order", func(t *testing.T) {
		r := NewRegistry(NewRand(1), nil)
		players, err := r.CreatePlayers([]string{"Ana", "Budi", "Citra"})
		require.NoError(t, err)

		require.Len(t, players, 3)
		for i, p := range players {
			assert.Equal(t, i+1, p.ID)
			assert.True(t, p.IsAlive())
			assert.Equal(t, models.RoleUnassigned, p.Role)
			assert.Equal(t, TasksPerPlayer, p.TaskQuota)
		}
		assert.Equal(t, "Budi", players[1].Name)
	})

	t.Run("blank names get defaults", func(t *testing.T) {
		r := NewRegistry(NewRand(1), nil)
		players, err := r.CreatePlayers([]string{"", "  ", "Dewi"})
		require.NoError(t, err)

		assert.Equal(t, "Player 1", players[0].Name)
		assert.Equal(t, "Player 2", players[1].Name)
		assert.Equal(t, "Dewi", players[2].Name)
	})

	t.Run("rejects empty input and a second roster", func(t *testing.T) {
		r := NewRegistry(NewRand(1), nil)
		_, err := r.CreatePlayers(nil)
		assert.ErrorIs(t, err, ErrEmptyRoster)

		_, err = r.CreatePlayers([]string{"a", "b", "c"})
		require.NoError(t, err)
		_, err = r.CreatePlayers([]string{"d"})
		assert.ErrorIs(t, err, ErrRosterExists)
		assert.Equal(t, 3, r.Len())
	})
}

func TestAssignRoles(t *testing.T) {
	t.Run("exact impostor count for every valid count", func(t *testing.T) {
		for n := MinPlayers; n <= MaxPlayers; n++ {
			for k := 1; k < n; k++ {
				r := newRoster(t, n, uint64(n*100+k))
				require.NoError(t, r.AssignRoles(k))

				impostors, crew := 0, 0
				for _, p := range r.Players() {
					switch p.Role {
					case models.RoleImpostor:
						impostors++
					case models.RoleCrew:
						crew++
					default:
						t.Fatalf("player %d has no role", p.ID)
					}
				}
				assert.Equal(t, k, impostors, "n=%d k=%d", n, k)
				assert.Equal(t, n-k, crew, "n=%d k=%d", n, k)
			}
		}
	})

	t.Run("rejects impostor count at or above player count", func(t *testing.T) {
		r := newRoster(t, 4, 7)
		err := r.AssignRoles(4)
		assert.ErrorIs(t, err, ErrTooManyImpostors)
		assert.ErrorIs(t, err, ErrInvariant)
		assert.False(t, r.RolesAssigned())
		for _, p := range r.Players() {
			assert.Equal(t, models.RoleUnassigned, p.Role)
		}
	})

	t.Run("rejects zero impostors", func(t *testing.T) {
		r := newRoster(t, 4, 7)
		assert.ErrorIs(t, r.AssignRoles(0), ErrNoImpostors)
	})

	t.Run("roles are assigned once", func(t *testing.T) {
		r := newRoster(t, 5, 3)
		require.NoError(t, r.AssignRoles(1))
		before := r.AliveImpostors()[0].ID

		assert.ErrorIs(t, r.AssignRoles(2), ErrRolesAssigned)
		require.Len(t, r.AliveImpostors(), 1)
		assert.Equal(t, before, r.AliveImpostors()[0].ID)
	})

	t.Run("same seed gives same impostors", func(t *testing.T) {
		a, b := newRoster(t, 8, 42), newRoster(t, 8, 42)
		require.NoError(t, a.AssignRoles(2))
		require.NoError(t, b.AssignRoles(2))

		for i, p := range a.Players() {
			assert.Equal(t, p.Role, b.Players()[i].Role)
		}
	})
}

func TestEliminate(t *testing.T) {
	t.Run("second call is a no-op", func(t *testing.T) {
		r := newRoster(t, 5, 9)
		require.NoError(t, r.AssignRoles(1))

		changed, err := r.Eliminate(2)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = r.Eliminate(2)
		require.NoError(t, err)
		assert.False(t, changed)

		assert.Equal(t, 5, r.Len())
		assert.Len(t, r.Alive(), 4)
		p, err := r.Player(2)
		require.NoError(t, err)
		assert.False(t, p.IsAlive())
	})

	t.Run("unknown id is an invariant violation", func(t *testing.T) {
		r := newRoster(t, 3, 9)
		_, err := r.Eliminate(4)
		assert.ErrorIs(t, err, ErrUnknownPlayer)
		_, err = r.Eliminate(0)
		assert.ErrorIs(t, err, ErrInvariant)
		assert.Len(t, r.Alive(), 3)
	})

	t.Run("alive views reflect live state", func(t *testing.T) {
		r := newRoster(t, 6, 11)
		require.NoError(t, r.AssignRoles(1))
		crew := r.AliveCrew()
		require.Len(t, crew, 5)

		_, err := r.Eliminate(crew[0].ID)
		require.NoError(t, err)
		assert.Len(t, r.AliveCrew(), 4)
		assert.Len(t, r.AliveImpostors(), 1)

		_, err = r.Eliminate(r.AliveImpostors()[0].ID)
		require.NoError(t, err)
		assert.Empty(t, r.AliveImpostors())
		assert.Len(t, r.Alive(), 4)
	})
}

func TestCompleteTask(t *testing.T) {
	r := NewRegistry(NewRand(1), nil)
	r.SetTaskQuota(2)
	_, err := r.CreatePlayers([]string{"a", "b", "c"})
	require.NoError(t, err)

	for range 2 {
		ok, err := r.CompleteTask(1)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := r.CompleteTask(1)
	require.NoError(t, err)
	assert.False(t, ok)

	p, _ := r.Player(1)
	assert.Equal(t, 2, p.TasksCompleted)

	_, err = r.CompleteTask(9)
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}
