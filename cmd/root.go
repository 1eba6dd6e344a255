/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SvenDH/go-bartog/game"
	"github.com/SvenDH/go-bartog/rules"
)

var (
	seed      uint64
	cpus      int
	handSize  int
	rulesPath string
	strict    bool
	verbose   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bartog",
	Short: "A house-rules card game",
	Long: `Bartog is a crazy eights style card game against up to three
computer players. Select opens the rule editor, where you decide which
cards may be played on which. House rules can also be loaded from a file:

  QS on KH, 5S      # the queen of spades may only follow these
  *H also on *D     # hearts may follow diamonds
  8C never on 8D`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Uint64Var(&seed, "seed", 0, "random seed (default: time based)")
	flags.IntVar(&cpus, "cpus", game.MaxCPUs, "number of computer players")
	flags.IntVar(&handSize, "hand-size", game.DefaultHandSize, "cards dealt to each player")
	flags.StringVar(&rulesPath, "rules", "", "house rules file")
	flags.BoolVar(&strict, "strict", false, "panic on broken invariants")
	flags.BoolVar(&verbose, "verbose", false, "log game events")
}

// loadRules parses a house rules file and applies it to the default rules.
func loadRules(path string) (rules.Graph, error) {
	base := rules.Default()
	f, err := rules.ParseFile(path)
	if err != nil {
		return base, err
	}
	changes, err := f.Changes(base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return base.Commit(changes), nil
}

func config(cmd *cobra.Command) (game.Config, error) {
	cfg := game.DefaultConfig()
	cfg.Seed = seed
	if !cmd.Flags().Changed("seed") {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	cfg.CPUs = cpus
	cfg.HandSize = handSize
	cfg.Strict = strict
	if rulesPath != "" {
		g, err := loadRules(rulesPath)
		if err != nil {
			return cfg, err
		}
		cfg.Rules = &g
	}
	return cfg, cfg.Validate()
}

func logger() game.Logger {
	if !verbose {
		return nil
	}
	return func(msg string) { log.Print(msg) }
}
