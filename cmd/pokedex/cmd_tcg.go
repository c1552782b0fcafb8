package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pokedex/cmd/pokedex/ui"
	"pokedex/internal/tcg"
)

var tcgFlags struct {
	cardType string
	rarity   string
	setID    string
}

var tcgCmd = &cobra.Command{
	Use:   "tcg <name>",
	Short: "Search Pokémon trading cards",
	Long: `tcg searches the Pokémon TCG API for cards by Pokémon name.

An API key is required; set it in the config file or via the
POKEDEX_TCG_API_KEY environment variable.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newTCGClient()
		q := tcg.Query{
			Name:   strings.Join(args, " "),
			Type:   tcgFlags.cardType,
			Rarity: tcgFlags.rarity,
			SetID:  tcgFlags.setID,
		}

		cards, err := client.Cards(context.Background(), q)
		if err != nil {
			if errors.Is(err, tcg.ErrNoAPIKey) {
				return fmt.Errorf("no TCG API key configured; get one at https://dev.pokemontcg.io and set POKEDEX_TCG_API_KEY")
			}
			return err
		}
		if len(cards) == 0 {
			fmt.Println("No cards found.")
			return nil
		}

		styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
		table := ui.NewTable("", []string{"Card", "Set", "#", "Rarity", "Market"})
		for _, c := range cards {
			price := ""
			if p := c.MarketPrice(); p > 0 {
				price = fmt.Sprintf("$%.2f", p)
			}
			table.AddRow(c.Name, c.Set.Name, c.Number, c.Rarity, price)
		}
		fmt.Println(table.View(styles))
		return nil
	},
}

var tcgSetsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List card sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newTCGClient()
		sets, err := client.Sets(context.Background())
		if err != nil {
			if errors.Is(err, tcg.ErrNoAPIKey) {
				return fmt.Errorf("no TCG API key configured; get one at https://dev.pokemontcg.io and set POKEDEX_TCG_API_KEY")
			}
			return err
		}

		styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
		table := ui.NewTable("", []string{"ID", "Set", "Series", "Released", "Cards"})
		for _, s := range sets {
			table.AddRow(s.ID, s.Name, s.Series, s.ReleaseDate, fmt.Sprintf("%d", s.Total))
		}
		fmt.Println(table.View(styles))
		return nil
	},
}

func newTCGClient() *tcg.Client {
	return tcg.New(cfg.TCG.BaseURL, cfg.TCG.APIKey, cfg.TCG.PageSize, cfg.API.Timeout)
}

func init() {
	tcgCmd.Flags().StringVarP(&tcgFlags.cardType, "type", "t", "", "energy type (e.g. Lightning)")
	tcgCmd.Flags().StringVarP(&tcgFlags.rarity, "rarity", "r", "", "card rarity (e.g. \"Rare Holo\")")
	tcgCmd.Flags().StringVarP(&tcgFlags.setID, "set", "s", "", "set id (see pokedex tcg sets)")
	tcgCmd.AddCommand(tcgSetsCmd)
}
