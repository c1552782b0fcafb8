package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pokedex/cmd/pokedex/ui"
	"pokedex/internal/pokeapi"
)

var showAll bool

var showCmd = &cobra.Command{
	Use:   "show <name|id>",
	Short: "Print a Pokémon's combined dex record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client := pokeapi.New(cfg.API.BaseURL, cfg.API.Timeout)
		styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))

		rec, err := client.Detail(ctx, args[0])
		if err != nil {
			if errors.Is(err, pokeapi.ErrNotFound) {
				return fmt.Errorf("no Pokémon named %q", args[0])
			}
			return err
		}

		fmt.Println(ui.DetailHeader(styles, rec, false, false))
		fmt.Println(styles.Subtitle.Render("Stats"))
		fmt.Println(ui.StatsPanel(styles, rec))
		fmt.Println(styles.Subtitle.Render("Abilities"))
		fmt.Println(ui.AbilitiesPanel(styles, rec))

		if !showAll {
			return nil
		}

		fmt.Println(ui.SummaryPanel(styles, rec))
		fmt.Println(styles.Subtitle.Render("Moves"))
		fmt.Println(ui.MovesPanel(styles, rec))

		// Matchups and the chain are separate fetches; report failures
		// without abandoning what already printed.
		if rel, err := client.Matchups(ctx, rec.Types); err != nil {
			fmt.Println(styles.Error.Render("Matchup data unavailable: " + err.Error()))
		} else {
			fmt.Println(styles.Subtitle.Render("Matchups"))
			fmt.Println(ui.MatchupPanel(styles, rel))
		}

		if rec.Species == nil {
			return nil
		}
		if chain, err := client.EvolutionChainFor(ctx, rec.Species); err != nil {
			fmt.Println(styles.Error.Render("Evolution data unavailable: " + err.Error()))
		} else {
			root := pokeapi.StageOf(chain.Chain)
			fmt.Println(styles.Subtitle.Render("Evolution"))
			fmt.Println(ui.EvolutionTree(styles, root, rec.ID))
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVarP(&showAll, "all", "a", false,
		"include dex entries, moves, matchups, and the evolution chain")
}
