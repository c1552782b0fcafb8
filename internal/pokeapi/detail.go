package pokeapi

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pokedex/internal/dex"
)

// VariantRef is one alternate form of a species.
type VariantRef struct {
	Name       string // display name
	Identifier string // lookup key for Detail
	URL        string
}

// PokemonRecord is the combined record for one species/form, joined from
// the pokemon and species resources.
type PokemonRecord struct {
	ID               int
	Name             string
	BaseName         string
	Sprite           string
	Types            []string
	Kind             dex.VariantKind
	HasVariants      bool
	HasGenderSprites bool
	Varieties        []VariantRef

	// Raw responses, kept for the detail tabs.
	Pokemon *Pokemon
	Species *Species
}

// Detail returns the combined record for a name or numeric-id identifier.
// The cache key is the lowercased identifier. On a miss the fetch is
// two-phase: the pokemon resource is fetched once to discover the species
// URL, then the pokemon and species resources are fetched in parallel.
// The second pokemon fetch is redundant but lets both requests overlap,
// trading one extra request for latency. A species failure degrades the
// record (no varieties, BaseName = Name) instead of failing the call.
func (c *Client) Detail(ctx context.Context, identifier string) (*PokemonRecord, error) {
	key := RecordKey(identifier)
	if rec, ok := c.cache.Record(key); ok {
		c.log.Debug("detail cache hit", zap.String("key", key))
		return rec, nil
	}

	var probe Pokemon
	if err := c.getJSON(ctx, c.url("/pokemon/%s", key), &probe); err != nil {
		return nil, err
	}

	var (
		pokemon Pokemon
		species Species
		spOK    bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gctx, c.url("/pokemon/%s", key), &pokemon)
	})
	g.Go(func() error {
		if probe.Species.URL == "" {
			return nil
		}
		if err := c.getJSON(gctx, probe.Species.URL, &species); err != nil {
			c.log.Warn("species fetch failed, degrading record",
				zap.String("key", key), zap.Error(err))
			return nil
		}
		spOK = true
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rec := buildRecord(&pokemon, &species, spOK)
	c.cache.storeRecord(key, rec)
	return rec, nil
}

// buildRecord joins a pokemon resource with its species resource. spOK is
// false when the species fetch failed and the record should degrade.
func buildRecord(p *Pokemon, s *Species, spOK bool) *PokemonRecord {
	rec := &PokemonRecord{
		ID:       p.ID,
		Name:     p.Name,
		BaseName: p.Name,
		Sprite:   p.Sprites.Best(),
		Pokemon:  p,
	}
	for _, t := range p.Types {
		rec.Types = append(rec.Types, t.Type.Name)
	}
	rec.HasGenderSprites = p.Sprites.FrontFemale != ""

	if !spOK {
		rec.Kind = dex.ClassifyForm(p.Name, p.Name)
		return rec
	}

	rec.Species = s
	rec.BaseName = s.Name
	rec.Kind = dex.ClassifyForm(p.Name, s.Name)
	rec.HasVariants = len(s.Varieties) > 1
	for _, v := range s.Varieties {
		rec.Varieties = append(rec.Varieties, VariantRef{
			Name:       displayFormName(v.Pokemon.Name, s.Name),
			Identifier: v.Pokemon.Name,
			URL:        v.Pokemon.URL,
		})
	}
	return rec
}

// displayFormName turns a form identifier into a display label, e.g.
// "charizard-mega-x" with species "charizard" -> "Mega X".
func displayFormName(identifier, species string) string {
	suffix := strings.TrimPrefix(identifier, species)
	suffix = strings.Trim(suffix, "-")
	if suffix == "" {
		return "Base"
	}
	parts := strings.Split(suffix, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// Encounters returns the location areas a Pokémon can be found in. A fetch
// failure yields an empty list so detail aggregation never fails on
// location data.
func (c *Client) Encounters(ctx context.Context, id int) []Encounter {
	var out []Encounter
	if err := c.getJSON(ctx, c.url("/pokemon/%d/encounters", id), &out); err != nil {
		c.log.Warn("encounters fetch failed", zap.Int("id", id), zap.Error(err))
		return nil
	}
	return out
}

// PrefetchDetails warms the record cache for a page of summaries, fetching
// in parallel and tolerating individual failures. Used by the grid when a
// page becomes visible.
func (c *Client) PrefetchDetails(ctx context.Context, page []SpeciesSummary) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, s := range page {
		g.Go(func() error {
			if _, err := c.Detail(gctx, s.Name); err != nil {
				c.log.Debug("prefetch failed", zap.String("name", s.Name), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()
}
