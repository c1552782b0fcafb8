// Package generator produces themed random Pokémon teams: a deterministic
// conjunctive filter over an annotated pool, then uniform sampling without
// replacement, with per-pick shiny/gender/nature rolls and a bounded batch
// history for back/forward navigation.
package generator

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pokedex/internal/dex"
	"pokedex/internal/logging"
	"pokedex/internal/shiny"
)

// Candidate is one pool entry with the annotations the filter reads.
type Candidate struct {
	ID               int
	Name             string
	Generation       int
	Types            []string
	Class            dex.SpecialClass
	Stage            int
	IsFinal          bool
	HasGenderSprites bool
	Kind             dex.VariantKind
}

// Filter is the conjunction of inclusion rules. Empty sets mean "no
// restriction"; the boolean flags gate their class or form kind in.
type Filter struct {
	Generations map[int]bool
	Types       map[string]bool
	Stages      map[int]bool // evolution stage membership, 1-based

	Legendary    bool
	SubLegendary bool
	Mythical     bool
	UltraBeast   bool
	Paradox      bool

	RegionalForms bool
	Mega          bool
	Gigantamax    bool
}

// Result is one generated Pokémon.
type Result struct {
	Candidate
	Shiny  bool
	Gender string // "male", "female", or "" for genderless pools
	Nature string
}

// Batch is one generator invocation's output.
type Batch struct {
	ID      string
	At      time.Time
	Results []Result
}

// Generator rolls batches. Not safe for concurrent use; the UI owns one.
type Generator struct {
	rng         *rand.Rand
	shinyChance float64
	log         *shiny.Log // optional; shiny finds are appended when set
	zlog        *zap.Logger

	history []Batch
	histMax int
	cursor  int // index into history for back/forward, len(history) = live
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed fixes the random source, for tests.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithShinyLog persists shiny rolls to the given log.
func WithShinyLog(l *shiny.Log) Option {
	return func(g *Generator) { g.log = l }
}

// WithHistorySize bounds the retained batch history.
func WithHistorySize(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.histMax = n
		}
	}
}

// New creates a generator. shinyChance of 0 means full odds (1/4096).
func New(shinyChance float64, opts ...Option) *Generator {
	g := &Generator{
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		shinyChance: shinyChance,
		histMax:     10,
		zlog:        logging.For(logging.CategoryGenerator),
	}
	if g.shinyChance == 0 {
		g.shinyChance = dex.ShinyChanceDefault
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Eligible applies the filter deterministically, preserving pool order.
func Eligible(pool []Candidate, f Filter) []Candidate {
	out := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if !matches(c, f) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(c Candidate, f Filter) bool {
	if len(f.Generations) > 0 && !f.Generations[c.Generation] {
		return false
	}
	if len(f.Types) > 0 {
		any := false
		for _, t := range c.Types {
			if f.Types[t] {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	if len(f.Stages) > 0 && !f.Stages[c.Stage] {
		return false
	}

	switch c.Class {
	case dex.ClassLegendary:
		if !f.Legendary {
			return false
		}
	case dex.ClassSubLegendary:
		if !f.SubLegendary {
			return false
		}
	case dex.ClassMythical:
		if !f.Mythical {
			return false
		}
	case dex.ClassUltraBeast:
		if !f.UltraBeast {
			return false
		}
	case dex.ClassParadox:
		if !f.Paradox {
			return false
		}
	}

	switch c.Kind {
	case dex.KindMega:
		if !f.Mega {
			return false
		}
	case dex.KindGigantamax:
		if !f.Gigantamax {
			return false
		}
	case dex.KindRegional:
		if !f.RegionalForms {
			return false
		}
	}
	return true
}

// Generate rolls a batch of up to count Pokémon from the pool. Sampling is
// uniform without replacement; output order is selection order. Once a Mega
// (resp. Gigantamax) form is picked, every remaining candidate of that same
// restricted kind leaves the pool, so one batch cannot fill up with gimmick
// forms. Fewer than count results are returned when the eligible pool is
// smaller.
func (g *Generator) Generate(pool []Candidate, f Filter, count int) Batch {
	eligible := Eligible(pool, f)

	batch := Batch{ID: uuid.NewString(), At: time.Now()}
	for len(batch.Results) < count && len(eligible) > 0 {
		i := g.rng.Intn(len(eligible))
		picked := eligible[i]
		eligible = append(eligible[:i], eligible[i+1:]...)

		if picked.Kind == dex.KindMega || picked.Kind == dex.KindGigantamax {
			eligible = dropKind(eligible, picked.Kind)
		}

		batch.Results = append(batch.Results, g.annotate(picked))
	}

	g.push(batch)
	g.zlog.Debug("generated batch",
		zap.String("id", batch.ID), zap.Int("count", len(batch.Results)))
	return batch
}

func dropKind(pool []Candidate, kind dex.VariantKind) []Candidate {
	out := pool[:0]
	for _, c := range pool {
		if c.Kind == kind {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (g *Generator) annotate(c Candidate) Result {
	r := Result{
		Candidate: c,
		Shiny:     g.rng.Float64() < g.shinyChance,
		Nature:    dex.Natures[g.rng.Intn(len(dex.Natures))],
	}
	if c.HasGenderSprites {
		if g.rng.Intn(2) == 0 {
			r.Gender = "male"
		} else {
			r.Gender = "female"
		}
	}
	if r.Shiny && g.log != nil {
		entry := shiny.Entry{Pokemon: c.Name, Gender: r.Gender, Date: time.Now()}
		if c.Kind != dex.KindBase {
			entry.Form = c.Kind.String()
		}
		if err := g.log.Append(entry); err != nil {
			g.zlog.Warn("failed to record shiny", zap.Error(err))
		}
	}
	return r
}

// push appends a batch to the bounded history and resets the cursor to the
// newest entry.
func (g *Generator) push(b Batch) {
	g.history = append(g.history, b)
	if len(g.history) > g.histMax {
		g.history = g.history[len(g.history)-g.histMax:]
	}
	g.cursor = len(g.history) - 1
}

// Back moves to the previous batch, if any.
func (g *Generator) Back() (Batch, bool) {
	if g.cursor <= 0 {
		return Batch{}, false
	}
	g.cursor--
	return g.history[g.cursor], true
}

// Forward moves to the next batch, if any.
func (g *Generator) Forward() (Batch, bool) {
	if g.cursor >= len(g.history)-1 {
		return Batch{}, false
	}
	g.cursor++
	return g.history[g.cursor], true
}

// History returns the retained batches, oldest first.
func (g *Generator) History() []Batch {
	out := make([]Batch, len(g.history))
	copy(out, g.history)
	return out
}
