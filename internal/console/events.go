package console

import (
	"go.uber.org/zap"

	"github.com/aaronzipp/sus-math/internal/events"
	"github.com/aaronzipp/sus-math/internal/render"
)

// renderEvents prints engine events as they happen
func (ctx *Context) renderEvents(ev events.Event) {
	switch ev.Name {
	case events.EventTurnStarted:
		ctx.print(render.TaskCard(ctx.Styles, ev.Player, *ev.Task))
	case events.EventTaskResolved:
		ctx.print(render.TaskResult(ctx.Styles, ev.Player, *ev.Task, ev.Correct))
	case events.EventVotingStarted:
		ctx.print(render.VoteCandidates(ctx.Styles, ev.Alive))
	case events.EventVotingSkipped:
		ctx.print(render.VotingSkipped(ctx.Styles))
	case events.EventPlayerEliminated:
		ctx.print(render.Eliminated(ctx.Styles, ev.Player))
	}
}

// logEvents records engine events at debug level
func logEvents(logger *zap.Logger) events.Listener {
	return func(ev events.Event) {
		fields := []zap.Field{
			zap.String("event", ev.Name),
			zap.String("match_id", ev.GameID),
			zap.Int("round", ev.Round),
			zap.String("status", ev.Status.String()),
			zap.Int("tasks", ev.Tasks),
		}
		if ev.Player != nil {
			fields = append(fields, zap.Int("player_id", ev.Player.ID))
		}
		logger.Debug("Match event", fields...)
	}
}
