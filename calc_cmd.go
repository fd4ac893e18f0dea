package main

import (
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Interactive four-function calculator",
	Args:  cobra.NoArgs,
	RunE:  runCalc,
}

func runCalc(cmd *cobra.Command, args []string) error {
	ctx, err := newConsole(cmd)
	if err != nil {
		return err
	}
	return ctx.HandleCalculator()
}
