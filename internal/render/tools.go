package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aaronzipp/sus-math/internal/calc"
	"github.com/aaronzipp/sus-math/internal/models"
	"github.com/aaronzipp/sus-math/internal/todo"
)

// CreatedAtLayout is how to-do creation times are shown
const CreatedAtLayout = "2006-01-02 15:04:05"

// TodoTable renders the to-do list, or a hint when it is empty
func TodoTable(styles Styles, todos []models.Todo) string {
	if len(todos) == 0 {
		return styles.Muted.Render("No tasks yet. Add one!") + "\n"
	}
	t := NewTable("", "ID", "Task", "Status", "Created")
	for _, item := range todos {
		status := "○ Pending"
		if item.IsDone() {
			status = "✓ Done"
		}
		t.AddRow(strconv.Itoa(item.ID), item.Task, status, item.CreatedAt.Local().Format(CreatedAtLayout))
	}
	return t.View(styles)
}

// TodoStats renders the list statistics
func TodoStats(styles Styles, s todo.Stats) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("TO-DO STATISTICS"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total    : %d\n", s.Total)
	fmt.Fprintf(&b, "Done     : %d\n", s.Done)
	fmt.Fprintf(&b, "Pending  : %d\n", s.Pending)
	if s.Total > 0 {
		fmt.Fprintf(&b, "Progress : %.1f%%\n", s.Percent())
	}
	return b.String()
}

// TodoMenu renders the interactive to-do menu
func TodoMenu(styles Styles) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(Banner(styles, "TO-DO LIST"))
	b.WriteString("1. View all tasks\n")
	b.WriteString("2. Add a task\n")
	b.WriteString("3. Mark a task done\n")
	b.WriteString("4. Edit a task\n")
	b.WriteString("5. Delete a task\n")
	b.WriteString("6. Statistics\n")
	b.WriteString("7. Exit\n")
	return b.String()
}

// CalcMenu renders the calculator menu
func CalcMenu(styles Styles) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(styles.Title.Render("Operations"))
	b.WriteString("\n")
	for i, op := range calc.Operators {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, op.Name(), op.Symbol())
	}
	fmt.Fprintf(&b, "%d. Exit\n", len(calc.Operators)+1)
	return b.String()
}

// CalcResult renders a b op result line
func CalcResult(styles Styles, op calc.Operator, a, b, result float64) string {
	return styles.Success.Render(fmt.Sprintf("%s %s %s = %s", Number(a), op.Symbol(), Number(b), Number(result))) + "\n"
}

// Number formats a float without trailing zeros
func Number(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Notice renders a success message
func Notice(styles Styles, msg string) string {
	return styles.Success.Render("✓ "+msg) + "\n"
}

// Warn renders a warning message
func Warn(styles Styles, msg string) string {
	return styles.Warning.Render("⚠ "+msg) + "\n"
}

// Error renders an error message
func Error(styles Styles, msg string) string {
	return styles.Failure.Render("✗ "+msg) + "\n"
}
