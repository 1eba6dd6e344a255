/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SvenDH/go-bartog/game"
	"github.com/SvenDH/go-bartog/ui/term"
)

var mute bool

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Play in the terminal. The keys are the same as in the window;
Escape or q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config(cmd)
		if err != nil {
			return err
		}
		g, err := game.NewGame(cfg, logger())
		if err != nil {
			return err
		}
		return term.Run(g, mute)
	},
}

func init() {
	tuiCmd.Flags().BoolVar(&mute, "mute", false, "no sound")
	rootCmd.AddCommand(tuiCmd)
}
