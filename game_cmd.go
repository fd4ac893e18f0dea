package main

import (
	"github.com/spf13/cobra"
)

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Play Among Us: Math Edition",
	Long: `Pass-and-play social deduction for 3 to 15 players.

Each round every living crewmate answers a multiple-choice math question, then
everyone votes one player out. Crewmates win by filling the task bar or voting
out every impostor. Impostors win once they match the crew in number.`,
	Args: cobra.NoArgs,
	RunE: runGame,
}

func runGame(cmd *cobra.Command, args []string) error {
	ctx, err := newConsole(cmd)
	if err != nil {
		return err
	}
	return ctx.HandleGame()
}
