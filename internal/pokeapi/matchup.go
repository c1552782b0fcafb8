package pokeapi

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// TypeRelations is the six-bucket damage profile of a (possibly dual-typed)
// Pokémon, each bucket a sorted list of type names.
type TypeRelations struct {
	DoubleDamageFrom []string
	HalfDamageFrom   []string
	NoDamageFrom     []string
	DoubleDamageTo   []string
	HalfDamageTo     []string
	NoDamageTo       []string
}

// Matchups aggregates the damage relations for one or two types, fetching
// the type tables in parallel. Each bucket is the union across types; the
// defensive ("from") buckets are then reconciled so that no-damage beats
// half and double, and half beats double. The offensive ("to") buckets are
// left as plain unions and are not reconciled.
func (c *Client) Matchups(ctx context.Context, types []string) (*TypeRelations, error) {
	tables := make([]*TypeData, len(types))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range types {
		g.Go(func() error {
			td, err := c.typeData(gctx, name)
			if err != nil {
				return err
			}
			tables[i] = td
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doubleFrom := make(map[string]struct{})
	halfFrom := make(map[string]struct{})
	noFrom := make(map[string]struct{})
	doubleTo := make(map[string]struct{})
	halfTo := make(map[string]struct{})
	noTo := make(map[string]struct{})
	for _, td := range tables {
		addNames(doubleFrom, td.DamageRelations.DoubleDamageFrom)
		addNames(halfFrom, td.DamageRelations.HalfDamageFrom)
		addNames(noFrom, td.DamageRelations.NoDamageFrom)
		addNames(doubleTo, td.DamageRelations.DoubleDamageTo)
		addNames(halfTo, td.DamageRelations.HalfDamageTo)
		addNames(noTo, td.DamageRelations.NoDamageTo)
	}

	// Defensive reconciliation: immunity dominates, resistance beats
	// weakness.
	for t := range noFrom {
		delete(doubleFrom, t)
		delete(halfFrom, t)
	}
	for t := range halfFrom {
		delete(doubleFrom, t)
	}

	return &TypeRelations{
		DoubleDamageFrom: sortedNames(doubleFrom),
		HalfDamageFrom:   sortedNames(halfFrom),
		NoDamageFrom:     sortedNames(noFrom),
		DoubleDamageTo:   sortedNames(doubleTo),
		HalfDamageTo:     sortedNames(halfTo),
		NoDamageTo:       sortedNames(noTo),
	}, nil
}

func addNames(set map[string]struct{}, refs []NamedResource) {
	for _, r := range refs {
		set[r.Name] = struct{}{}
	}
}

func sortedNames(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
