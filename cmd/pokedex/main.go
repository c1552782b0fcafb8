// pokedex is a terminal Pokédex: an interactive browser over PokéAPI with
// a type-matchup engine, an evolution-chain renderer, a random team
// generator, a trading-card search, and a persisted shiny log.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pokedex/cmd/pokedex/browse"
	"pokedex/internal/config"
	"pokedex/internal/logging"
	"pokedex/internal/pokeapi"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	// Loaded in PersistentPreRunE, read by every subcommand.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "A terminal Pokédex",
	Long: `pokedex is a terminal Pokédex client for PokéAPI.

Browse species by generation and type, inspect stats, abilities, moves,
evolution chains and type matchups, generate themed random teams, search
trading cards, and keep a log of every shiny you roll.

Run without arguments to start the interactive browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		file := cfg.Logging.File
		// The browser owns the terminal; stderr logging would corrupt it.
		// Without a log file the interactive loggers stay no-op.
		if interactive := cmd.Name() == "pokedex" || cmd.Name() == "browse"; interactive {
			if file == "" {
				if !verbose {
					return nil
				}
				file = filepath.Join(cfg.DataDir, "pokedex.log")
			}
		}
		if file != "" {
			if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
				return fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		if err := logging.Init(level, file); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Start the interactive browser (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func runBrowse() error {
	client := pokeapi.New(cfg.API.BaseURL, cfg.API.Timeout)
	model := browse.New(client, cfg)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(tcgCmd)
	rootCmd.AddCommand(shinyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
