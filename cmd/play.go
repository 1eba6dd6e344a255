/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SvenDH/go-bartog/game"
	"github.com/SvenDH/go-bartog/ui/window"
)

var scale int

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open a window and play against the computer.

Keys: Z or Space to play a card or press a button, X or Backspace to draw,
Tab to edit the rules, Enter to show the event log, arrows to move.
F12 saves a screenshot and F3 shows the frame rate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config(cmd)
		if err != nil {
			return err
		}
		g, err := game.NewGame(cfg, logger())
		if err != nil {
			return err
		}
		return window.Run(g, scale, false)
	},
}

func init() {
	playCmd.Flags().IntVar(&scale, "scale", 3, "window scale")
	rootCmd.AddCommand(playCmd)
}
