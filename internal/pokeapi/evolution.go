package pokeapi

import (
	"context"
	"fmt"
	"strings"
)

// EvolutionChainFor fetches the evolution chain reachable from a species'
// embedded chain URL. Chains are cached by URL for the session.
func (c *Client) EvolutionChainFor(ctx context.Context, s *Species) (*EvolutionChain, error) {
	if s == nil || s.EvolutionChainRef.URL == "" {
		return nil, fmt.Errorf("species has no evolution chain")
	}
	url := s.EvolutionChainRef.URL
	if ch, ok := c.cache.chain(url); ok {
		return ch, nil
	}
	var ch EvolutionChain
	if err := c.getJSON(ctx, url, &ch); err != nil {
		return nil, err
	}
	c.cache.storeChain(url, &ch)
	return &ch, nil
}

// Stage is one rendered node of an evolution chain.
type Stage struct {
	Name     string
	ID       int
	Trigger  string  // how this stage is reached from its parent
	Children []Stage // populated only when the node branches
}

// StageOf converts an evolution node into a renderable stage. A node with
// exactly one child chains vertically; multiple children become a branch.
func StageOf(node EvolutionNode) Stage {
	st := Stage{
		Name:    node.Species.Name,
		ID:      node.Species.ID(),
		Trigger: DescribeTriggers(node.EvolutionDetails),
	}
	for _, child := range node.EvolvesTo {
		st.Children = append(st.Children, StageOf(child))
	}
	return st
}

// CountStages returns the number of stage cards a chain renders, across
// all branches.
func CountStages(st Stage) int {
	n := 1
	for _, c := range st.Children {
		n += CountStages(c)
	}
	return n
}

// DescribeTriggers builds the human-readable trigger line for a node,
// one clause per populated condition field, in a fixed checklist order.
// Nodes with several detail entries (e.g. version-split evolutions) use
// the first entry, matching how the detail view presents them.
func DescribeTriggers(details []EvolutionDetail) string {
	if len(details) == 0 {
		return ""
	}
	d := details[0]

	var clauses []string
	add := func(format string, args ...any) {
		clauses = append(clauses, fmt.Sprintf(format, args...))
	}

	if d.Item != nil {
		add("use %s", DisplayName(d.Item.Name))
	}
	if d.HeldItem != nil {
		add("holding %s", DisplayName(d.HeldItem.Name))
	}
	if d.KnownMove != nil {
		add("knowing %s", DisplayName(d.KnownMove.Name))
	}
	if d.KnownMoveType != nil {
		add("knowing a %s move", d.KnownMoveType.Name)
	}
	if d.TimeOfDay != "" {
		add("at %s", d.TimeOfDay)
	}
	if d.MinLevel != nil {
		add("level %d", *d.MinLevel)
	}
	if d.MinHappiness != nil {
		add("happiness %d+", *d.MinHappiness)
	}
	if d.MinAffection != nil {
		add("affection %d+", *d.MinAffection)
	}
	if d.MinBeauty != nil {
		add("beauty %d+", *d.MinBeauty)
	}
	if d.Location != nil {
		add("at %s", DisplayName(d.Location.Name))
	}
	if d.PartySpecies != nil {
		add("with %s in party", DisplayName(d.PartySpecies.Name))
	}
	if d.PartyType != nil {
		add("with a %s type in party", d.PartyType.Name)
	}
	if d.RelativePhysicalStats != nil {
		switch *d.RelativePhysicalStats {
		case 1:
			add("attack > defense")
		case -1:
			add("attack < defense")
		default:
			add("attack = defense")
		}
	}
	if d.NeedsOverworldRain {
		add("while raining")
	}
	if d.TradeSpecies != nil {
		add("trade for %s", DisplayName(d.TradeSpecies.Name))
	}
	if d.TurnUpsideDown {
		add("console upside down")
	}

	trigger := d.Trigger.Name
	switch trigger {
	case "level-up":
		if len(clauses) == 0 {
			return "level up"
		}
	case "trade":
		if len(clauses) == 0 {
			return "trade"
		}
		clauses = append([]string{"trade"}, clauses...)
	case "use-item":
		// the item clause already says it
	case "":
	default:
		if len(clauses) == 0 {
			return strings.ReplaceAll(trigger, "-", " ")
		}
	}
	return strings.Join(clauses, ", ")
}
