package pokeapi

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"pokedex/internal/dex"
)

// GenerationList returns the species of one generation (1..9) or the whole
// national dex (gen 0), sorted by id ascending. Results are cached for the
// session; a failed fetch returns an empty list along with the error and
// leaves the cache untouched.
func (c *Client) GenerationList(ctx context.Context, gen int) ([]SpeciesSummary, error) {
	if list, ok := c.cache.generation(gen); ok {
		c.log.Debug("generation cache hit", zap.Int("gen", gen))
		return list, nil
	}

	var refs []NamedResource
	switch {
	case gen == 0:
		var list resourceList
		url := c.url("/pokemon-species?limit=%d", dex.MaxSpeciesID)
		if err := c.getJSON(ctx, url, &list); err != nil {
			return nil, err
		}
		refs = list.Results
	default:
		if _, ok := dex.GenerationByNumber(gen); !ok {
			return nil, fmt.Errorf("unknown generation %d", gen)
		}
		var g generationResource
		if err := c.getJSON(ctx, c.url("/generation/%d", gen), &g); err != nil {
			return nil, err
		}
		refs = g.PokemonSpecies
	}

	list := summarize(refs)
	c.cache.storeGeneration(gen, list)
	return list, nil
}

// TypePokemon returns the species of one type, sorted by id ascending,
// with the same caching contract as GenerationList. The grid intersects
// this with a generation list when a type filter is active.
func (c *Client) TypePokemon(ctx context.Context, typeName string) ([]SpeciesSummary, error) {
	if list, ok := c.cache.typeList(typeName); ok {
		return list, nil
	}

	td, err := c.typeData(ctx, typeName)
	if err != nil {
		return nil, err
	}

	refs := make([]NamedResource, 0, len(td.Pokemon))
	for _, p := range td.Pokemon {
		refs = append(refs, p.Pokemon)
	}
	list := summarize(refs)
	c.cache.storeTypeList(typeName, list)
	return list, nil
}

// typeData fetches a /type resource through the relations cache. Shared by
// TypePokemon and the matchup aggregator.
func (c *Client) typeData(ctx context.Context, typeName string) (*TypeData, error) {
	if td, ok := c.cache.typeRelations(typeName); ok {
		return td, nil
	}
	var td TypeData
	if err := c.getJSON(ctx, c.url("/type/%s", typeName), &td); err != nil {
		return nil, err
	}
	c.cache.storeTypeRelations(typeName, &td)
	return &td, nil
}

// summarize maps resource references to SpeciesSummary records and sorts
// them by numeric id. Entries without a parsable id are dropped.
func summarize(refs []NamedResource) []SpeciesSummary {
	list := make([]SpeciesSummary, 0, len(refs))
	for _, r := range refs {
		id := r.ID()
		if id == 0 {
			continue
		}
		list = append(list, SpeciesSummary{Name: r.Name, ID: id, URL: r.URL})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// Intersect returns the members of list whose id also appears in other,
// preserving list's order. Used for generation x type filtering.
func Intersect(list, other []SpeciesSummary) []SpeciesSummary {
	ids := make(map[int]struct{}, len(other))
	for _, s := range other {
		ids[s.ID] = struct{}{}
	}
	out := make([]SpeciesSummary, 0, len(list))
	for _, s := range list {
		if _, ok := ids[s.ID]; ok {
			out = append(out, s)
		}
	}
	return out
}
