package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pokedex/cmd/pokedex/ui"
	"pokedex/internal/pokeapi"
	"pokedex/internal/shiny"
)

var shinyCmd = &cobra.Command{
	Use:   "shiny",
	Short: "List every shiny the generator has rolled",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := shiny.NewLog(cfg.DataDir)
		if err := log.Load(); err != nil {
			return err
		}
		entries := log.All()
		if len(entries) == 0 {
			fmt.Println("No shinies yet. Keep rolling.")
			return nil
		}

		styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
		table := ui.NewTable(
			fmt.Sprintf("Shiny log (%d)", len(entries)),
			[]string{"Pokémon", "Form", "Gender", "Found"})
		for _, e := range entries {
			table.AddRow(
				pokeapi.DisplayName(e.Pokemon),
				e.Form,
				e.Gender,
				e.Date.Format("2006-01-02"),
			)
		}
		fmt.Println(table.View(styles))
		return nil
	},
}
