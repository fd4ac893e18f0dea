package console

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aaronzipp/sus-math/internal/events"
	"github.com/aaronzipp/sus-math/internal/game"
	"github.com/aaronzipp/sus-math/internal/models"
	"github.com/aaronzipp/sus-math/internal/prompt"
	"github.com/aaronzipp/sus-math/internal/render"
)

// chooser asks the players at the console. Range checks happen in the prompter.
type chooser struct {
	prompt *prompt.Prompter
}

func (c chooser) ChooseAnswer(p *models.Player, task models.Task) (int, error) {
	n := task.OptionCount()
	choice, err := c.prompt.Int(fmt.Sprintf("Choose an answer (1-%d): ", n), 1, n)
	if err != nil {
		return 0, err
	}
	return choice - 1, nil
}

func (c chooser) ChooseVote(candidates []*models.Player) (int, error) {
	n := len(candidates)
	choice, err := c.prompt.Int(fmt.Sprintf("Vote out who? (1-%d): ", n), 1, n)
	if err != nil {
		return 0, err
	}
	return choice - 1, nil
}

// HandleGame runs matches until the players decline a replay
func (ctx *Context) HandleGame() error {
	ctx.print(render.Intro(ctx.Styles))
	for {
		if err := ctx.playMatch(); err != nil {
			if errors.Is(err, prompt.ErrInputClosed) {
				return nil
			}
			return err
		}
		ctx.print(render.ScoreTable(ctx.Styles, ctx.Scores))

		again, err := ctx.Prompt.YesNo("\nPlay again? (y/n): ")
		if errors.Is(err, prompt.ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			ctx.print("\nThanks for playing!\n")
			return nil
		}
	}
}

// playMatch sets up one match from console input and plays it to the end
func (ctx *Context) playMatch() error {
	cfg := ctx.Config.Game
	count, err := ctx.Prompt.Int(fmt.Sprintf("\nHow many players? (%d-%d): ", cfg.MinPlayers, cfg.MaxPlayers), cfg.MinPlayers, cfg.MaxPlayers)
	if err != nil {
		return err
	}
	names, err := ctx.askNames(count)
	if err != nil {
		return err
	}

	registry := game.NewRegistry(ctx.Rand, ctx.Logger)
	registry.SetTaskQuota(cfg.TasksPerPlayer)
	if _, err := registry.CreatePlayers(names); err != nil {
		return err
	}
	if err := registry.AssignRoles(game.ImpostorCountFor(count, cfg.ImpostorDivisor)); err != nil {
		return err
	}
	ctx.print("\n")
	ctx.print(render.Roster(ctx.Styles, registry.Players()))

	bus := events.NewBus()
	bus.Subscribe(ctx.renderEvents)
	bus.Subscribe(logEvents(ctx.Logger))

	engine := game.NewEngine(
		game.NewGame(cfg.TaskTarget),
		registry,
		game.NewTaskGenerator(ctx.Questions, ctx.Rand),
		chooser{prompt: ctx.Prompt},
		game.WithBus(bus),
		game.WithLogger(ctx.Logger),
	)

	if err := ctx.Prompt.Pause("Press ENTER to start the match..."); err != nil {
		return err
	}
	err = ctx.runEngine(engine)
	if errors.Is(err, prompt.ErrInputClosed) {
		if abortErr := engine.Abort(); abortErr != nil {
			ctx.Logger.Warn("Abort failed", zap.Error(abortErr))
		}
	}

	g := engine.Game()
	ctx.print(render.FinalStats(ctx.Styles, g, registry.Players()))
	ctx.recordScores(g, registry.Players())
	return err
}

// askNames reads count distinct names. Blank entries take the default name and names
// are compared case-insensitively, since session scores are keyed by name.
func (ctx *Context) askNames(count int) ([]string, error) {
	names := make([]string, 0, count)
	taken := make(map[string]bool, count)
	for len(names) < count {
		i := len(names) + 1
		name, err := ctx.Prompt.Line(fmt.Sprintf("Enter a name for player %d: ", i))
		if err != nil {
			return nil, err
		}
		if name == "" {
			name = game.DefaultName(i)
		}
		key := strings.ToLower(name)
		if taken[key] {
			ctx.print(render.Error(ctx.Styles, fmt.Sprintf("%q is already taken.", name)))
			continue
		}
		taken[key] = true
		names = append(names, name)
	}
	return names, nil
}

// runEngine plays rounds, pausing between them
func (ctx *Context) runEngine(engine *game.Engine) error {
	if err := engine.Start(); err != nil {
		return err
	}
	g := engine.Game()
	for !g.Status.IsFinished() {
		ctx.print(render.RoundHeader(ctx.Styles, g.Round))
		if err := engine.PlayRound(); err != nil {
			return err
		}
		if g.Status.IsFinished() {
			break
		}
		ctx.print(render.RoundSummary(ctx.Styles, g))
		if err := ctx.Prompt.Pause(fmt.Sprintf("Round %d is next. Press ENTER to continue...", g.Round)); err != nil {
			return err
		}
	}
	return nil
}
