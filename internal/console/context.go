// Package console runs the interactive game, calculator and to-do screens.
package console

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/aaronzipp/sus-math/internal/config"
	"github.com/aaronzipp/sus-math/internal/game"
	"github.com/aaronzipp/sus-math/internal/models"
	"github.com/aaronzipp/sus-math/internal/prompt"
	"github.com/aaronzipp/sus-math/internal/render"
)

// Context holds shared console dependencies
type Context struct {
	Prompt    *prompt.Prompter
	Out       io.Writer
	Styles    render.Styles
	Logger    *zap.Logger
	Config    *config.Config
	Rand      game.Rand
	Questions []models.Question
	Scores    map[string]*models.PlayerScore // player name -> wins/losses this session
}

// NewContext wires a console over in and out
func NewContext(in io.Reader, out io.Writer, cfg *config.Config, logger *zap.Logger) (*Context, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	questions := game.DefaultQuestions()
	if cfg.Game.QuestionsFile != "" {
		loaded, err := game.LoadQuestions(cfg.Game.QuestionsFile)
		if err != nil {
			return nil, fmt.Errorf("loading question bank: %w", err)
		}
		questions = loaded
	}
	logger.Debug("Question bank ready", zap.Int("questions", len(questions)))

	return &Context{
		Prompt:    prompt.New(in, out),
		Out:       out,
		Styles:    render.DefaultStyles(),
		Logger:    logger,
		Config:    cfg,
		Rand:      game.NewRand(cfg.Game.Seed),
		Questions: questions,
		Scores:    make(map[string]*models.PlayerScore),
	}, nil
}

func (ctx *Context) print(s string) {
	fmt.Fprint(ctx.Out, s)
}
