package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aaronzipp/sus-math/internal/events"
	"github.com/aaronzipp/sus-math/internal/models"
)

// Chooser supplies the already-validated selections the engine needs.
// Indexes are 0-based.
type Chooser interface {
	ChooseAnswer(player *models.Player, task models.Task) (int, error)
	ChooseVote(candidates []*models.Player) (int, error)
}

// Engine drives one match through task phases, voting phases and win checks
type Engine struct {
	game     *models.Game
	registry *Registry
	tasks    *TaskGenerator
	chooser  Chooser
	bus      *events.Bus
	logger   *zap.Logger
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithBus publishes match events on bus
func WithBus(bus *events.Bus) EngineOption {
	return func(e *Engine) { e.bus = bus }
}

// WithLogger sets the engine logger
func WithLogger(logger *zap.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates an engine for game g
func NewEngine(g *models.Game, registry *Registry, tasks *TaskGenerator, chooser Chooser, opts ...EngineOption) *Engine {
	e := &Engine{
		game:     g,
		registry: registry,
		tasks:    tasks,
		chooser:  chooser,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(zap.String("match_id", g.ID))
	return e
}

// Game returns the match-state record
func (e *Engine) Game() *models.Game {
	return e.game
}

// Registry returns the roster
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Start moves the match from the lobby into the first task phase
func (e *Engine) Start() error {
	if e.game.Status.IsFinished() {
		return ErrMatchFinished
	}
	if e.registry.Len() == 0 || !e.registry.RolesAssigned() {
		return ErrNotReady
	}
	if err := e.transition(models.StatusTaskPhase); err != nil {
		return err
	}
	e.game.Round = 1

	e.logger.Info("Match started",
		zap.Int("players", e.registry.Len()),
		zap.Int("impostors", len(e.registry.AliveImpostors())),
		zap.Int("task_target", e.game.TaskTarget))
	e.publish(events.Event{Name: events.EventMatchStarted})
	return nil
}

// Run starts the match if needed and plays rounds until it finishes
func (e *Engine) Run() (models.GameStatus, error) {
	if e.game.Status == models.StatusLobby {
		if err := e.Start(); err != nil {
			return e.game.Status, err
		}
	}
	for !e.game.Status.IsFinished() {
		if err := e.PlayRound(); err != nil {
			return e.game.Status, err
		}
	}
	return e.game.Status, nil
}

// PlayRound runs one task phase, one voting phase and one win check
func (e *Engine) PlayRound() error {
	if e.game.Status.IsFinished() {
		return ErrMatchFinished
	}
	if e.game.Status != models.StatusTaskPhase {
		return fmt.Errorf("%w: round cannot begin in %s", ErrBadTransition, e.game.Status)
	}

	if err := e.taskPhase(); err != nil {
		return err
	}
	if !e.game.Status.IsFinished() {
		if err := e.transition(models.StatusVoting); err != nil {
			return err
		}
		if err := e.votingPhase(); err != nil {
			return err
		}
	}
	if !e.game.Status.IsFinished() {
		verdict := Evaluate(e.registry, e.game)
		if ApplyVerdict(e.game, verdict) {
			e.logger.Info("Win condition met",
				zap.Int("round", e.game.Round),
				zap.String("verdict", verdict.String()))
		}
	}

	if e.game.Status.IsFinished() {
		e.finish()
		return nil
	}

	e.publish(events.Event{Name: events.EventRoundEnded})
	e.logger.Debug("Round ended", zap.Int("round", e.game.Round), zap.Int("tasks", e.game.TasksCompleted))
	e.game.Round++
	return e.transition(models.StatusTaskPhase)
}

// Abort ends an unfinished match without a winner
func (e *Engine) Abort() error {
	if e.game.Status.IsFinished() {
		return ErrMatchFinished
	}
	if err := e.transition(models.StatusGameOver); err != nil {
		return err
	}
	e.finish()
	return nil
}

func (e *Engine) taskPhase() error {
	crew := e.registry.AliveCrew()
	if len(crew) == 0 {
		return e.transition(models.StatusImpostorWin)
	}

	for _, p := range crew {
		if !p.IsAlive() {
			continue
		}
		task := e.tasks.Generate()
		e.publish(events.Event{Name: events.EventTurnStarted, Player: p, Task: &task})

		choice, err := e.chooser.ChooseAnswer(p, task)
		if err != nil {
			return fmt.Errorf("answer for player %d: %w", p.ID, err)
		}
		if choice < 0 || choice >= task.OptionCount() {
			return fmt.Errorf("%w: option %d of %d", ErrInvalidSelection, choice+1, task.OptionCount())
		}

		correct := task.Check(choice)
		if correct {
			if _, err := e.registry.CompleteTask(p.ID); err != nil {
				return err
			}
			e.game.TasksCompleted++
		}
		e.logger.Debug("Task resolved",
			zap.Int("round", e.game.Round),
			zap.Int("player_id", p.ID),
			zap.Bool("correct", correct))
		e.publish(events.Event{Name: events.EventTaskResolved, Player: p, Task: &task, Correct: correct})
	}
	return nil
}

func (e *Engine) votingPhase() error {
	alive := e.registry.Alive()
	if len(alive) < 2 {
		e.publish(events.Event{Name: events.EventVotingSkipped})
		return nil
	}
	e.publish(events.Event{Name: events.EventVotingStarted, Alive: alive})

	choice, err := e.chooser.ChooseVote(alive)
	if err != nil {
		return fmt.Errorf("vote: %w", err)
	}
	if choice < 0 || choice >= len(alive) {
		return fmt.Errorf("%w: candidate %d of %d", ErrInvalidSelection, choice+1, len(alive))
	}

	target := alive[choice]
	if _, err := e.registry.Eliminate(target.ID); err != nil {
		return err
	}
	e.logger.Info("Player eliminated",
		zap.Int("round", e.game.Round),
		zap.Int("player_id", target.ID),
		zap.String("role", string(target.Role)))
	e.publish(events.Event{Name: events.EventPlayerEliminated, Player: target})

	if target.Role.IsImpostor() {
		return e.transition(models.StatusCrewWin)
	}
	return nil
}

func (e *Engine) finish() {
	e.logger.Info("Match ended",
		zap.String("status", e.game.Status.String()),
		zap.Int("round", e.game.Round),
		zap.Int("tasks", e.game.TasksCompleted))
	e.publish(events.Event{Name: events.EventMatchEnded})
}

func (e *Engine) transition(target models.GameStatus) error {
	if !e.game.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrBadTransition, e.game.Status, target)
	}
	e.game.Status = target
	return nil
}

func (e *Engine) publish(ev events.Event) {
	ev.GameID = e.game.ID
	ev.Round = e.game.Round
	ev.Status = e.game.Status
	ev.Tasks = e.game.TasksCompleted
	e.bus.Publish(ev)
}
