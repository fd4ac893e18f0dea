package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aaronzipp/sus-math/internal/models"
)

// Banner renders a boxed title
func Banner(styles Styles, title string) string {
	return styles.Banner.Render(title) + "\n"
}

// Intro renders the game introduction
func Intro(styles Styles) string {
	var b strings.Builder
	b.WriteString(Banner(styles, "AMONG US: MATH EDITION"))
	b.WriteString("\nCrewmates solve math tasks to fill the task bar.\n")
	b.WriteString("Impostors blend in and hope the crew votes out the wrong person.\n")
	return b.String()
}

// Roster renders the players with their role and status
func Roster(styles Styles, players []*models.Player) string {
	t := NewTable("Players", "Name", "Role", "Status")
	for _, p := range players {
		t.AddRow(p.Name, roleLabel(p.Role), statusLabel(p))
	}
	return t.View(styles)
}

// RoundHeader renders the heading for a task phase
func RoundHeader(styles Styles, round int) string {
	return "\n" + styles.Title.Render(fmt.Sprintf("ROUND %d - TASK PHASE", round)) + "\n"
}

// TaskCard renders a player's question and numbered options
func TaskCard(styles Styles, p *models.Player, task models.Task) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(styles.Bold.Render(p.Name + "'s turn"))
	b.WriteString("\n")
	b.WriteString(task.Question())
	b.WriteString("\n")
	for i, o := range task.Options() {
		b.WriteString("  ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(strconv.Itoa(o))
		b.WriteString("\n")
	}
	return b.String()
}

// TaskResult renders the outcome of one answer
func TaskResult(styles Styles, p *models.Player, task models.Task, correct bool) string {
	if correct {
		return styles.Success.Render(fmt.Sprintf("Correct! %s completed a task.", p.Name)) + "\n"
	}
	return styles.Failure.Render(fmt.Sprintf("Wrong! The answer was %d.", task.Answer())) + "\n"
}

// VoteCandidates renders the numbered list of players who can be voted out
func VoteCandidates(styles Styles, alive []*models.Player) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(styles.Title.Render("EMERGENCY MEETING"))
	b.WriteString("\nWho is acting sus?\n")
	for i, p := range alive {
		b.WriteString("  ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(p.Name)
		b.WriteString("\n")
	}
	return b.String()
}

// VotingSkipped renders the notice for a round without a vote
func VotingSkipped(styles Styles) string {
	return styles.Muted.Render("Not enough players left to vote.") + "\n"
}

// Eliminated renders who was voted out and what they were
func Eliminated(styles Styles, p *models.Player) string {
	if p.Role.IsImpostor() {
		return styles.Success.Render(fmt.Sprintf("%s was an IMPOSTOR!", p.Name)) + "\n"
	}
	return styles.Failure.Render(fmt.Sprintf("%s was a CREWMATE.", p.Name)) + "\n"
}

// RoundSummary renders the task bar after a round
func RoundSummary(styles Styles, g *models.Game) string {
	return styles.Muted.Render(fmt.Sprintf("Tasks completed: %d/%d", g.TasksCompleted, g.TaskTarget)) + "\n"
}

// FinalStats renders the winner, every player's role, status and tasks, and the task bar
func FinalStats(styles Styles, g *models.Game, players []*models.Player) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(Banner(styles, "FINAL RESULTS"))
	switch g.Status {
	case models.StatusCrewWin:
		b.WriteString(styles.Success.Render("CREWMATES WIN!"))
	case models.StatusImpostorWin:
		b.WriteString(styles.Failure.Render("IMPOSTORS WIN!"))
	default:
		b.WriteString(styles.Warning.Render("Match abandoned."))
	}
	b.WriteString("\n\n")

	t := NewTable("Statistics", "Name", "Role", "Status", "Tasks")
	for _, p := range players {
		t.AddRow(p.Name, roleLabel(p.Role), statusLabel(p), strconv.Itoa(p.TasksCompleted))
	}
	b.WriteString(t.View(styles))
	b.WriteString(fmt.Sprintf("\nTotal tasks completed: %d/%d after %d round(s)\n", g.TasksCompleted, g.TaskTarget, g.Round))
	return b.String()
}

// ScoreTable renders session scores, most wins first
func ScoreTable(styles Styles, scores map[string]*models.PlayerScore) string {
	if len(scores) == 0 {
		return ""
	}
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		wi, wj := scores[names[i]].GamesWon, scores[names[j]].GamesWon
		if wi == wj {
			return strings.ToLower(names[i]) < strings.ToLower(names[j])
		}
		return wi > wj
	})

	t := NewTable("Scores", "Player", "Wins", "Losses")
	for _, name := range names {
		s := scores[name]
		t.AddRow(name, strconv.Itoa(s.GamesWon), strconv.Itoa(s.GamesLost))
	}
	return t.View(styles)
}

func roleLabel(r models.Role) string {
	switch r {
	case models.RoleImpostor:
		return "IMPOSTOR"
	case models.RoleCrew:
		return "CREWMATE"
	default:
		return "-"
	}
}

func statusLabel(p *models.Player) string {
	if p.IsAlive() {
		return "ALIVE"
	}
	return "DEAD"
}
