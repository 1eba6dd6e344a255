/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/SvenDH/go-bartog/sim"
	"github.com/SvenDH/go-bartog/store"
)

var (
	games     int
	maxFrames int
	dbPath    string
)

// simCmd represents the sim command
var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play games headless",
	Long: `Play a batch of games without a window. The human seat is taken
by an autopilot that always plays its first legal card. A batch with the
same --seed plays the same games.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config(cmd)
		if err != nil {
			return err
		}
		results, err := sim.Batch(cfg, games, maxFrames, logger())
		if err != nil {
			return err
		}

		data := pterm.TableData{{"deal", "seed", "cpus", "frames", "events", "winners"}}
		wins := map[string]int{}
		unfinished := 0
		for _, r := range results {
			winners := strings.Join(r.Winners, ", ")
			if !r.Finished {
				winners = pterm.LightRed("unfinished")
				unfinished++
			}
			for _, w := range r.Winners {
				wins[w]++
			}
			data = append(data, []string{
				r.ID.String(),
				strconv.FormatUint(r.Seed, 10),
				strconv.Itoa(r.CPUs),
				strconv.Itoa(r.Frames),
				strconv.Itoa(r.Events),
				winners,
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}

		for _, name := range sortedKeys(wins) {
			pterm.Info.Printfln("%s won %d of %d games", name, wins[name], len(results))
		}
		if unfinished > 0 {
			pterm.Warning.Printfln("%d games hit the frame limit", unfinished)
		}
		if dbPath != "" {
			return record(dbPath, results)
		}
		return nil
	},
}

func record(path string, results []sim.Result) error {
	repo, err := store.Open(path)
	if err != nil {
		return err
	}
	defer repo.Close()
	if err := repo.AddResults(results); err != nil {
		return err
	}
	total, err := repo.Count()
	if err != nil {
		return err
	}
	wins, err := repo.Wins()
	if err != nil {
		return err
	}
	pterm.Success.Printfln("stored %d games in %s", len(results), path)
	data := pterm.TableData{{"player", "wins", "of"}}
	for _, name := range sortedKeys(wins) {
		data = append(data, []string{name, strconv.Itoa(wins[name]), strconv.Itoa(total)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	simCmd.Flags().IntVar(&games, "games", 10, "number of games")
	simCmd.Flags().IntVar(&maxFrames, "max-frames", 100000, "frame limit per game")
	simCmd.Flags().StringVar(&dbPath, "db", "", "sqlite database to add the results to")
	rootCmd.AddCommand(simCmd)
}
