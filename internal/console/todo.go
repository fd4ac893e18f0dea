package console

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aaronzipp/sus-math/internal/render"
	"github.com/aaronzipp/sus-math/internal/todo"
)

const todoExit = 7

// HandleTodo runs the interactive to-do menu over list
func (ctx *Context) HandleTodo(list *todo.List) error {
	for {
		ctx.print(render.TodoMenu(ctx.Styles))
		choice, err := ctx.Prompt.Int("Choose an option (1-7): ", 1, todoExit)
		if err != nil {
			return closed(err)
		}
		if choice == todoExit {
			ctx.print("\nGoodbye!\n")
			return nil
		}
		if err := ctx.todoAction(list, choice); err != nil {
			return closed(err)
		}
	}
}

// todoAction runs one menu entry. Store failures are reported and the menu continues.
func (ctx *Context) todoAction(list *todo.List, choice int) error {
	switch choice {
	case 1:
		ctx.print(render.TodoTable(ctx.Styles, list.All()))
	case 2:
		text, err := ctx.Prompt.Line("New task: ")
		if err != nil {
			return err
		}
		item, err := list.Add(text)
		if err != nil {
			ctx.reportTodoError(err)
			return nil
		}
		ctx.print(render.Notice(ctx.Styles, fmt.Sprintf("Added task #%d.", item.ID)))
	case 3:
		id, ok, err := ctx.pickTodo(list, "Task number to mark done: ")
		if err != nil || !ok {
			return err
		}
		item, err := list.Complete(id)
		if err != nil {
			ctx.reportTodoError(err)
			return nil
		}
		ctx.print(render.Notice(ctx.Styles, fmt.Sprintf("Task %q marked done.", item.Task)))
	case 4:
		id, ok, err := ctx.pickTodo(list, "Task number to edit: ")
		if err != nil || !ok {
			return err
		}
		text, err := ctx.Prompt.Line("New text: ")
		if err != nil {
			return err
		}
		old, err := list.Update(id, text)
		if err != nil {
			ctx.reportTodoError(err)
			return nil
		}
		ctx.print(render.Notice(ctx.Styles, fmt.Sprintf("Changed %q to %q.", old, text)))
	case 5:
		id, ok, err := ctx.pickTodo(list, "Task number to delete: ")
		if err != nil || !ok {
			return err
		}
		item, err := list.Delete(id)
		if err != nil {
			ctx.reportTodoError(err)
			return nil
		}
		ctx.print(render.Notice(ctx.Styles, fmt.Sprintf("Deleted %q.", item.Task)))
	case 6:
		ctx.print(render.TodoStats(ctx.Styles, list.Stats()))
	}
	return nil
}

// pickTodo shows the list and asks for an id. ok is false when the list is empty.
func (ctx *Context) pickTodo(list *todo.List, label string) (id int, ok bool, err error) {
	items := list.All()
	ctx.print(render.TodoTable(ctx.Styles, items))
	if len(items) == 0 {
		return 0, false, nil
	}
	id, err = ctx.Prompt.Int(label, 1, len(items))
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (ctx *Context) reportTodoError(err error) {
	switch {
	case errors.Is(err, todo.ErrAlreadyDone):
		ctx.print(render.Warn(ctx.Styles, "That task is already done."))
	case errors.Is(err, todo.ErrEmptyTask):
		ctx.print(render.Error(ctx.Styles, "Task text must not be empty."))
	case errors.Is(err, todo.ErrNotFound):
		ctx.print(render.Error(ctx.Styles, "No task with that number."))
	default:
		ctx.Logger.Error("To-do operation failed", zap.Error(err))
		ctx.print(render.Error(ctx.Styles, err.Error()))
	}
}
