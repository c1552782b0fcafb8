package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pokedex/cmd/pokedex/ui"
	"pokedex/internal/dex"
	"pokedex/internal/generator"
	"pokedex/internal/pokeapi"
	"pokedex/internal/shiny"
	"pokedex/internal/snapshot"
)

var randomFlags struct {
	count  int
	gens   []int
	types  []string
	stages []int

	legendary    bool
	subLegendary bool
	mythical     bool
	ultraBeast   bool
	paradox      bool

	regional bool
	mega     bool
	gmax     bool

	shinyRate float64
	seed      int64
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a random team from the offline snapshot",
	Long: `random samples a team from the offline species snapshot.

Run pokedex-data first to build the snapshot. Filters are conjunctive:
a candidate must match every flag you pass. Shiny rolls are appended to
the shiny log automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := buildFilter()
		if err != nil {
			return err
		}

		store, err := snapshot.Open(snapshotPath())
		if err != nil {
			return fmt.Errorf("failed to open snapshot (run pokedex-data first): %w", err)
		}
		defer store.Close()

		rows, err := store.All()
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return fmt.Errorf("snapshot is empty; run pokedex-data first")
		}
		pool := generator.PoolFromSnapshot(rows)

		log := shiny.NewLog(cfg.DataDir)
		if err := log.Load(); err != nil {
			return err
		}

		rate := cfg.EffectiveShinyChance()
		if cmd.Flags().Changed("shiny-rate") {
			rate = randomFlags.shinyRate
		}
		opts := []generator.Option{generator.WithShinyLog(log)}
		if cmd.Flags().Changed("seed") {
			opts = append(opts, generator.WithSeed(randomFlags.seed))
		}

		gen := generator.New(rate, opts...)
		batch := gen.Generate(pool, f, randomFlags.count)
		if len(batch.Results) == 0 {
			return fmt.Errorf("no Pokémon match the given filters")
		}
		printBatch(batch)
		return nil
	},
}

func snapshotPath() string {
	return filepath.Join(cfg.DataDir, "snapshot.db")
}

func buildFilter() (generator.Filter, error) {
	f := generator.Filter{
		Legendary:     randomFlags.legendary,
		SubLegendary:  randomFlags.subLegendary,
		Mythical:      randomFlags.mythical,
		UltraBeast:    randomFlags.ultraBeast,
		Paradox:       randomFlags.paradox,
		RegionalForms: randomFlags.regional,
		Mega:          randomFlags.mega,
		Gigantamax:    randomFlags.gmax,
	}
	if len(randomFlags.gens) > 0 {
		f.Generations = map[int]bool{}
		for _, g := range randomFlags.gens {
			if _, ok := dex.GenerationByNumber(g); !ok {
				return f, fmt.Errorf("unknown generation %d", g)
			}
			f.Generations[g] = true
		}
	}
	if len(randomFlags.types) > 0 {
		f.Types = map[string]bool{}
		for _, t := range randomFlags.types {
			t = strings.ToLower(t)
			if !dex.IsType(t) {
				return f, fmt.Errorf("unknown type %q", t)
			}
			f.Types[t] = true
		}
	}
	if len(randomFlags.stages) > 0 {
		f.Stages = map[int]bool{}
		for _, s := range randomFlags.stages {
			f.Stages[s] = true
		}
	}
	return f, nil
}

func printBatch(batch generator.Batch) {
	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))

	table := ui.NewTable("Your team", []string{"#", "Name", "Gen", "Types", "Nature", "Gender", ""})
	for _, r := range batch.Results {
		mark := ""
		if r.Shiny {
			mark = styles.Shiny.Render("★ shiny")
		}
		table.AddRow(
			fmt.Sprintf("%04d", r.ID),
			pokeapi.DisplayName(r.Name),
			fmt.Sprintf("%d", r.Generation),
			strings.Join(r.Types, "/"),
			r.Nature,
			r.Gender,
			mark,
		)
	}
	fmt.Println(table.View(styles))
}

func init() {
	fl := randomCmd.Flags()
	fl.IntVarP(&randomFlags.count, "count", "n", 6, "team size")
	fl.IntSliceVarP(&randomFlags.gens, "gen", "g", nil, "restrict to generations (repeatable)")
	fl.StringSliceVarP(&randomFlags.types, "type", "t", nil, "restrict to types (repeatable)")
	fl.IntSliceVar(&randomFlags.stages, "stage", nil, "restrict to evolution stages (repeatable)")

	fl.BoolVar(&randomFlags.legendary, "legendary", false, "include legendaries")
	fl.BoolVar(&randomFlags.subLegendary, "sub-legendary", false, "include sub-legendaries")
	fl.BoolVar(&randomFlags.mythical, "mythical", false, "include mythicals")
	fl.BoolVar(&randomFlags.ultraBeast, "ultra-beast", false, "include ultra beasts")
	fl.BoolVar(&randomFlags.paradox, "paradox", false, "include paradox Pokémon")

	fl.BoolVar(&randomFlags.regional, "regional", false, "include regional forms")
	fl.BoolVar(&randomFlags.mega, "mega", false, "include mega evolutions (at most one per team)")
	fl.BoolVar(&randomFlags.gmax, "gmax", false, "include Gigantamax forms (at most one per team)")

	fl.Float64Var(&randomFlags.shinyRate, "shiny-rate", 0, "override the shiny chance (0..1)")
	fl.Int64Var(&randomFlags.seed, "seed", 0, "fix the random seed")
}
