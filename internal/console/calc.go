package console

import (
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/aaronzipp/sus-math/internal/calc"
	"github.com/aaronzipp/sus-math/internal/prompt"
	"github.com/aaronzipp/sus-math/internal/render"
)

// HandleCalculator runs the calculator until the exit option is chosen
func (ctx *Context) HandleCalculator() error {
	ctx.print(render.Banner(ctx.Styles, "SIMPLE CALCULATOR"))
	exit := strconv.Itoa(len(calc.Operators) + 1)
	for {
		ctx.print(render.CalcMenu(ctx.Styles))
		choice, err := ctx.Prompt.Line("Choose an operation (1-5): ")
		if err != nil {
			return closed(err)
		}
		if choice == exit {
			ctx.print("\nGoodbye!\n")
			return nil
		}

		op, err := calc.ParseMenuChoice(choice)
		if err != nil {
			ctx.print(render.Error(ctx.Styles, "Invalid choice, try again."))
			continue
		}
		a, err := ctx.Prompt.Float("First number: ")
		if err != nil {
			return closed(err)
		}
		b, err := ctx.Prompt.Float("Second number: ")
		if err != nil {
			return closed(err)
		}

		result, err := calc.Apply(op, a, b)
		if errors.Is(err, calc.ErrDivisionByZero) {
			ctx.print(render.Error(ctx.Styles, "Cannot divide by zero."))
			continue
		}
		if err != nil {
			return err
		}
		ctx.Logger.Debug("Calculated", zap.String("op", op.Name()), zap.Float64("result", result))
		ctx.print(render.CalcResult(ctx.Styles, op, a, b, result))
	}
}

// closed turns end of input into a clean exit
func closed(err error) error {
	if errors.Is(err, prompt.ErrInputClosed) {
		return nil
	}
	return err
}
