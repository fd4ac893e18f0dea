package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aaronzipp/sus-math/internal/render"
	"github.com/aaronzipp/sus-math/internal/store"
	"github.com/aaronzipp/sus-math/internal/todo"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage the to-do list (interactive without a subcommand)",
	Args:  cobra.NoArgs,
	RunE:  runTodo,
}

var todoAddCmd = &cobra.Command{
	Use:   "add [task]",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTodoAdd,
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every task",
	Args:  cobra.NoArgs,
	RunE:  runTodoList,
}

var todoDoneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Mark a task done",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoDone,
}

var todoEditCmd = &cobra.Command{
	Use:   "edit [id] [task]",
	Short: "Replace a task's text",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runTodoEdit,
}

var todoRmCmd = &cobra.Command{
	Use:     "rm [id]",
	Aliases: []string{"delete"},
	Short:   "Delete a task and renumber the rest",
	Args:    cobra.ExactArgs(1),
	RunE:    runTodoRm,
}

var todoStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion statistics",
	Args:  cobra.NoArgs,
	RunE:  runTodoStats,
}

func init() {
	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoListCmd)
	todoCmd.AddCommand(todoDoneCmd)
	todoCmd.AddCommand(todoEditCmd)
	todoCmd.AddCommand(todoRmCmd)
	todoCmd.AddCommand(todoStatsCmd)
}

// openTodoList opens the configured store. The returned func releases it.
func openTodoList() (*todo.List, func(), error) {
	s, err := store.Open(cfg.Todo.Backend, cfg.Todo.Path)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				logger.Warn("Closing todo store failed", zap.Error(err))
			}
		}
	}

	list, err := todo.Open(s, todo.WithLogger(logger))
	if err != nil {
		release()
		return nil, nil, err
	}
	fields := []zap.Field{zap.String("backend", cfg.Todo.Backend)}
	if p, ok := s.(interface{ Path() string }); ok {
		fields = append(fields, zap.String("path", p.Path()))
	}
	logger.Debug("Todo store opened", fields...)
	return list, release, nil
}

func runTodo(cmd *cobra.Command, args []string) error {
	list, release, err := openTodoList()
	if err != nil {
		return err
	}
	defer release()

	ctx, err := newConsole(cmd)
	if err != nil {
		return err
	}
	return ctx.HandleTodo(list)
}

func runTodoAdd(cmd *cobra.Command, args []string) error {
	list, release, err := openTodoList()
	if err != nil {
		return err
	}
	defer release()

	item, err := list.Add(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), render.Notice(render.DefaultStyles(), fmt.Sprintf("Added task #%d.", item.ID)))
	return nil
}

func runTodoList(cmd *cobra.Command, args []string) error {
	list, release, err := openTodoList()
	if err != nil {
		return err
	}
	defer release()

	fmt.Fprint(cmd.OutOrStdout(), render.TodoTable(render.DefaultStyles(), list.All()))
	return nil
}

func runTodoDone(cmd *cobra.Command, args []string) error {
	id, err := parseTodoID(args[0])
	if err != nil {
		return err
	}
	list, release, err := openTodoList()
	if err != nil {
		return err
	}
	defer release()

	styles := render.DefaultStyles()
	item, err := list.Complete(id)
	if errors.Is(err, todo.ErrAlreadyDone) {
		fmt.Fprint(cmd.OutOrStdout(), render.Warn(styles, fmt.Sprintf("Task #%d is already done.", id)))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), render.Notice(styles, fmt.Sprintf("Task %q marked done.", item.Task)))
	return nil
}

func runTodoEdit(cmd *cobra.Command, args []string) error {
	id, err := parseTodoID(args[0])
	if err != nil {
		return err
	}
	list, release, err := openTodoList()
	if err != nil {
		return err
	}
	defer release()

	text := strings.Join(args[1:], " ")
	old, err := list.Update(id, text)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), render.Notice(render.DefaultStyles(), fmt.Sprintf("Changed %q to %q.", old, text)))
	return nil
}

func runTodoRm(cmd *cobra.Command, args []string) error {
	id, err := parseTodoID(args[0])
	if err != nil {
		return err
	}
	list, release, err := openTodoList()
	if err != nil {
		return err
	}
	defer release()

	item, err := list.Delete(id)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), render.Notice(render.DefaultStyles(), fmt.Sprintf("Deleted %q.", item.Task)))
	return nil
}

func runTodoStats(cmd *cobra.Command, args []string) error {
	list, release, err := openTodoList()
	if err != nil {
		return err
	}
	defer release()

	fmt.Fprint(cmd.OutOrStdout(), render.TodoStats(render.DefaultStyles(), list.Stats()))
	return nil
}

func parseTodoID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid task number %q", arg)
	}
	return id, nil
}
