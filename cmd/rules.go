/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"errors"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/SvenDH/go-bartog/cards"
	"github.com/SvenDH/go-bartog/rules"
)

var showAll bool

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules [file]",
	Short: "Check a house rules file",
	Long: `Parse a house rules file and print which cards each card may be
played on afterwards. Without a file argument the --rules file is used.
Only cards that differ from the default rules are listed unless --all is
given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := rulesPath
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return errors.New("no rules file given")
		}
		graph, err := loadRules(path)
		if err != nil {
			return err
		}

		base := rules.Default()
		changed := map[cards.Card]bool{}
		for _, c := range base.Diff(&graph) {
			changed[c] = true
		}

		data := pterm.TableData{{"card", "playable on"}}
		for c := cards.Card(0); c < cards.DeckSize; c++ {
			if !showAll && !changed[c] {
				continue
			}
			var on []string
			for _, t := range graph.Edges(c).Cards() {
				on = append(on, t.Short())
			}
			name := c.Short()
			if changed[c] {
				name = pterm.LightYellow(name)
			}
			data = append(data, []string{name, strings.Join(on, " ")})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
		pterm.Info.Printfln("%d cards differ from the default rules", len(changed))
		return nil
	},
}

func init() {
	rulesCmd.Flags().BoolVar(&showAll, "all", false, "list every card")
	rootCmd.AddCommand(rulesCmd)
}
