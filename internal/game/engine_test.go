package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/sus-math/internal/events"
	"github.com/aaronzipp/sus-math/internal/models"
)

// scriptedChooser answers and votes through plain functions and records who was asked
type scriptedChooser struct {
	answer func(p *models.Player, task models.Task) (int, error)
	vote   func(candidates []*models.Player) (int, error)
	turns  []int
}

func (c *scriptedChooser) ChooseAnswer(p *models.Player, task models.Task) (int, error) {
	c.turns = append(c.turns, p.ID)
	return c.answer(p, task)
}

func (c *scriptedChooser) ChooseVote(candidates []*models.Player) (int, error) {
	return c.vote(candidates)
}

func correctIndex(task models.Task) int {
	for i, o := range task.Options() {
		if o == task.Answer() {
			return i
		}
	}
	return -1
}

func wrongIndex(task models.Task) int {
	for i, o := range task.Options() {
		if o != task.Answer() {
			return i
		}
	}
	return -1
}

func alwaysCorrect(_ *models.Player, task models.Task) (int, error) { return correctIndex(task), nil }
func alwaysWrong(_ *models.Player, task models.Task) (int, error) { return wrongIndex(task), nil }

// voteFirstCrew votes out the first crew member among the candidates
func voteFirstCrew(candidates []*models.Player) (int, error) {
	for i, p := range candidates {
		if p.IsCrew() {
			return i, nil
		}
	}
	return 0, nil
}

func voteImpostor(candidates []*models.Player) (int, error) {
	for i, p := range candidates {
		if p.Role.IsImpostor() {
			return i, nil
		}
	}
	return 0, nil
}

func newTestEngine(t *testing.T, players, impostors int, chooser Chooser, opts ...EngineOption) *Engine {
	t.Helper()
	rng := NewRand(uint64(players*31 + impostors))
	r := NewRegistry(rng, nil)
	names := make([]string, players)
	_, err := r.CreatePlayers(names)
	require.NoError(t, err)
	require.NoError(t, r.AssignRoles(impostors))
	return NewEngine(NewGame(TaskTarget), r, NewTaskGenerator(DefaultQuestions(), rng), chooser, opts...)
}

func TestEngineStart(t *testing.T) {
	t.Run("requires roles", func(t *testing.T) {
		r := NewRegistry(NewRand(1), nil)
		_, err := r.CreatePlayers([]string{"a", "b", "c"})
		require.NoError(t, err)
		e := NewEngine(NewGame(TaskTarget), r, NewTaskGenerator(DefaultQuestions(), NewRand(1)), &scriptedChooser{})

		assert.ErrorIs(t, e.Start(), ErrNotReady)
		assert.Equal(t, models.StatusLobby, e.Game().Status)
	})

	t.Run("requires a roster", func(t *testing.T) {
		e := NewEngine(NewGame(TaskTarget), NewRegistry(NewRand(1), nil), NewTaskGenerator(DefaultQuestions(), NewRand(1)), &scriptedChooser{})
		assert.ErrorIs(t, e.Start(), ErrNotReady)
	})

	t.Run("enters the first task phase", func(t *testing.T) {
		e := newTestEngine(t, 4, 1, &scriptedChooser{})
		require.NoError(t, e.Start())
		assert.Equal(t, models.StatusTaskPhase, e.Game().Status)
		assert.Equal(t, 1, e.Game().Round)

		assert.ErrorIs(t, e.Start(), ErrBadTransition)
	})

	t.Run("round before start", func(t *testing.T) {
		e := newTestEngine(t, 4, 1, &scriptedChooser{})
		assert.ErrorIs(t, e.PlayRound(), ErrBadTransition)
	})
}

func TestEngineScenarios(t *testing.T) {
	t.Run("crew reaches the task target", func(t *testing.T) {
		c := &scriptedChooser{answer: alwaysCorrect, vote: voteFirstCrew}
		e := newTestEngine(t, 6, 1, c)
		require.NoError(t, e.Start())
		e.Game().TasksCompleted = 20

		require.NoError(t, e.PlayRound())
		assert.Equal(t, models.StatusCrewWin, e.Game().Status)
		assert.Equal(t, 25, e.Game().TasksCompleted)
		assert.NotEmpty(t, e.Registry().AliveCrew())
	})

	t.Run("impostor reaches parity", func(t *testing.T) {
		c := &scriptedChooser{answer: alwaysWrong, vote: voteFirstCrew}
		e := newTestEngine(t, 4, 1, c)

		status, err := e.Run()
		require.NoError(t, err)
		assert.Equal(t, models.StatusImpostorWin, status)
		assert.Equal(t, 2, e.Game().Round)
		assert.Zero(t, e.Game().TasksCompleted)
		assert.Len(t, e.Registry().AliveCrew(), 1)
		assert.Len(t, e.Registry().AliveImpostors(), 1)
	})

	t.Run("sole impostor voted out in round one", func(t *testing.T) {
		c := &scriptedChooser{answer: alwaysWrong, vote: voteImpostor}
		e := newTestEngine(t, 6, 1, c)

		status, err := e.Run()
		require.NoError(t, err)
		assert.Equal(t, models.StatusCrewWin, status)
		assert.Equal(t, 1, e.Game().Round)
		assert.Zero(t, e.Game().TasksCompleted)
	})

	t.Run("correct answers credit player and match", func(t *testing.T) {
		c := &scriptedChooser{answer: alwaysCorrect, vote: voteFirstCrew}
		e := newTestEngine(t, 6, 1, c)
		require.NoError(t, e.Start())
		crew := e.Registry().AliveCrew()

		require.NoError(t, e.PlayRound())
		assert.Equal(t, 5, e.Game().TasksCompleted)
		for _, p := range crew {
			assert.Equal(t, 1, p.TasksCompleted)
		}
		for _, p := range e.Registry().AliveImpostors() {
			assert.Zero(t, p.TasksCompleted)
		}
		assert.Equal(t, models.StatusTaskPhase, e.Game().Status)
		assert.Equal(t, 2, e.Game().Round)
	})

	t.Run("empty crew at phase entry", func(t *testing.T) {
		c := &scriptedChooser{answer: alwaysCorrect, vote: voteFirstCrew}
		e := newTestEngine(t, 3, 1, c)
		require.NoError(t, e.Start())
		for _, p := range e.Registry().AliveCrew() {
			_, err := e.Registry().Eliminate(p.ID)
			require.NoError(t, err)
		}

		require.NoError(t, e.PlayRound())
		assert.Equal(t, models.StatusImpostorWin, e.Game().Status)
		assert.Empty(t, c.turns)
	})
}

func TestEngineSkipsPlayersEliminatedMidPhase(t *testing.T) {
	var e *Engine
	c := &scriptedChooser{vote: voteFirstCrew}
	c.answer = func(p *models.Player, task models.Task) (int, error) {
		if len(c.turns) == 1 {
			crew := e.Registry().AliveCrew()
			_, err := e.Registry().Eliminate(crew[len(crew)-1].ID)
			require.NoError(t, err)
		}
		return correctIndex(task), nil
	}
	e = newTestEngine(t, 6, 1, c)
	require.NoError(t, e.Start())
	crew := e.Registry().AliveCrew()

	require.NoError(t, e.PlayRound())
	assert.Len(t, c.turns, len(crew)-1)
	assert.NotContains(t, c.turns, crew[len(crew)-1].ID)
}

func TestEngineTerminalStatusIsFinal(t *testing.T) {
	c := &scriptedChooser{answer: alwaysWrong, vote: voteImpostor}
	e := newTestEngine(t, 5, 1, c)
	status, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, models.StatusCrewWin, status)
	round := e.Game().Round

	assert.ErrorIs(t, e.PlayRound(), ErrMatchFinished)
	assert.ErrorIs(t, e.Start(), ErrMatchFinished)
	assert.ErrorIs(t, e.Abort(), ErrMatchFinished)
	status, err = e.Run()
	assert.NoError(t, err)

	assert.Equal(t, models.StatusCrewWin, status)
	assert.Equal(t, models.StatusCrewWin, e.Game().Status)
	assert.Equal(t, round, e.Game().Round)
}

func TestEngineSelections(t *testing.T) {
	t.Run("out of range answer", func(t *testing.T) {
		c := &scriptedChooser{
			answer: func(*models.Player, models.Task) (int, error) { return 9, nil },
			vote:   voteFirstCrew,
		}
		e := newTestEngine(t, 4, 1, c)
		require.NoError(t, e.Start())
		assert.ErrorIs(t, e.PlayRound(), ErrInvalidSelection)
	})

	t.Run("out of range vote", func(t *testing.T) {
		c := &scriptedChooser{
			answer: alwaysWrong,
			vote:   func([]*models.Player) (int, error) { return -1, nil },
		}
		e := newTestEngine(t, 4, 1, c)
		require.NoError(t, e.Start())
		assert.ErrorIs(t, e.PlayRound(), ErrInvalidSelection)
		assert.Len(t, e.Registry().Alive(), 4)
	})

	t.Run("chooser failure aborts", func(t *testing.T) {
		errClosed := errors.New("closed")
		c := &scriptedChooser{
			answer: func(*models.Player, models.Task) (int, error) { return 0, errClosed },
		}
		e := newTestEngine(t, 4, 1, c)
		_, err := e.Run()
		assert.ErrorIs(t, err, errClosed)

		require.NoError(t, e.Abort())
		assert.Equal(t, models.StatusGameOver, e.Game().Status)
		assert.ErrorIs(t, e.PlayRound(), ErrMatchFinished)
	})
}

func TestEngineEvents(t *testing.T) {
	bus := events.NewBus()
	var names []string
	bus.Subscribe(func(ev events.Event) {
		names = append(names, ev.Name)
	})

	c := &scriptedChooser{answer: alwaysCorrect, vote: voteImpostor}
	e := newTestEngine(t, 3, 1, c, WithBus(bus))
	status, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, models.StatusCrewWin, status)

	want := []string{
		events.EventMatchStarted,
		events.EventTurnStarted, events.EventTaskResolved,
		events.EventTurnStarted, events.EventTaskResolved,
		events.EventVotingStarted,
		events.EventPlayerEliminated,
		events.EventMatchEnded,
	}
	assert.Equal(t, want, names)
}

func TestEngineSkipsVotingWithOnePlayerLeft(t *testing.T) {
	bus := events.NewBus()
	var names []string
	bus.Subscribe(func(ev events.Event) {
		names = append(names, ev.Name)
	})

	voted := false
	c := &scriptedChooser{
		answer: alwaysWrong,
		vote: func([]*models.Player) (int, error) {
			voted = true
			return 0, nil
		},
	}
	e := newTestEngine(t, 3, 1, c, WithBus(bus))
	require.NoError(t, e.Start())

	r := e.Registry()
	_, err := r.Eliminate(r.AliveImpostors()[0].ID)
	require.NoError(t, err)
	_, err = r.Eliminate(r.AliveCrew()[0].ID)
	require.NoError(t, err)
	require.Len(t, r.Alive(), 1)

	require.NoError(t, e.PlayRound())
	assert.False(t, voted)
	assert.Len(t, r.Alive(), 1)
	assert.Equal(t, models.StatusTaskPhase, e.Game().Status)
	assert.Equal(t, 2, e.Game().Round)

	want := []string{
		events.EventMatchStarted,
		events.EventTurnStarted, events.EventTaskResolved,
		events.EventVotingSkipped,
		events.EventRoundEnded,
	}
	assert.Equal(t, want, names)
}
