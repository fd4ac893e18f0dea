package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/sus-math/internal/models"
)

func TestEvaluate(t *testing.T) {
	t.Run("task target reached wins for crew", func(t *testing.T) {
		r := newRoster(t, 6, 1)
		require.NoError(t, r.AssignRoles(1))
		g := NewGame(TaskTarget)
		g.TasksCompleted = 25

		assert.Equal(t, VerdictCrewWin, Evaluate(r, g))
	})

	t.Run("task completion takes precedence over impostor majority", func(t *testing.T) {
		r := newRoster(t, 4, 2)
		require.NoError(t, r.AssignRoles(1))
		for _, p := range r.AliveCrew()[:2] {
			_, err := r.Eliminate(p.ID)
			require.NoError(t, err)
		}
		g := NewGame(TaskTarget)
		g.TasksCompleted = TaskTarget

		assert.Equal(t, VerdictCrewWin, Evaluate(r, g))

		g.TasksCompleted = TaskTarget - 1
		assert.Equal(t, VerdictImpostorWin, Evaluate(r, g))
	})

	t.Run("no crew left", func(t *testing.T) {
		r := newRoster(t, 3, 3)
		require.NoError(t, r.AssignRoles(1))
		for _, p := range r.AliveCrew() {
			_, err := r.Eliminate(p.ID)
			require.NoError(t, err)
		}
		assert.Equal(t, VerdictImpostorWin, Evaluate(r, NewGame(TaskTarget)))
	})

	t.Run("game continues", func(t *testing.T) {
		r := newRoster(t, 6, 4)
		require.NoError(t, r.AssignRoles(1))
		g := NewGame(TaskTarget)
		g.TasksCompleted = 10

		assert.Equal(t, VerdictNone, Evaluate(r, g))
	})

	t.Run("idempotent", func(t *testing.T) {
		r := newRoster(t, 5, 5)
		require.NoError(t, r.AssignRoles(2))
		_, err := r.Eliminate(r.AliveCrew()[0].ID)
		require.NoError(t, err)
		g := NewGame(TaskTarget)

		first := Evaluate(r, g)
		second := Evaluate(r, g)
		assert.Equal(t, first, second)
		assert.Equal(t, VerdictImpostorWin, first)
		assert.Equal(t, models.StatusLobby, g.Status, "evaluation must not mutate the match")
	})
}

func TestApplyVerdict(t *testing.T) {
	g := NewGame(TaskTarget)
	g.Status = models.StatusVoting

	assert.False(t, ApplyVerdict(g, VerdictNone))
	assert.Equal(t, models.StatusVoting, g.Status)

	assert.True(t, ApplyVerdict(g, VerdictCrewWin))
	assert.Equal(t, models.StatusCrewWin, g.Status)

	assert.False(t, ApplyVerdict(g, VerdictImpostorWin))
	assert.Equal(t, models.StatusCrewWin, g.Status)
}

func TestImpostorCountFor(t *testing.T) {
	assert.Equal(t, 1, ImpostorCountFor(3, ImpostorDivisor))
	assert.Equal(t, 1, ImpostorCountFor(7, ImpostorDivisor))
	assert.Equal(t, 2, ImpostorCountFor(8, ImpostorDivisor))
	assert.Equal(t, 3, ImpostorCountFor(15, ImpostorDivisor))
	assert.Equal(t, 1, ImpostorCountFor(6, 0))
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "none", VerdictNone.String())
	assert.Equal(t, "crew_win", VerdictCrewWin.String())
	assert.Equal(t, "impostor_win", VerdictImpostorWin.String())
}
