package generator

import (
	"pokedex/internal/dex"
	"pokedex/internal/snapshot"
)

// PoolFromSnapshot expands snapshot rows into generator candidates. Each
// species contributes its base form plus one candidate per alternate form,
// classified once here so the filter never inspects identifiers.
func PoolFromSnapshot(rows []snapshot.Species) []Candidate {
	var pool []Candidate
	for _, sp := range rows {
		base := Candidate{
			ID:               sp.ID,
			Name:             sp.Name,
			Generation:       sp.Generation,
			Types:            sp.Types,
			Class:            dex.Classify(sp.ID, sp.IsLegendary, sp.IsMythical),
			Stage:            sp.Stage,
			IsFinal:          sp.IsFinal,
			HasGenderSprites: sp.HasGenderSprites,
			Kind:             dex.KindBase,
		}
		pool = append(pool, base)

		for _, form := range sp.Forms {
			kind := dex.ClassifyForm(form, sp.Name)
			if kind == dex.KindBase {
				continue
			}
			fc := base
			fc.Name = form
			fc.Kind = kind
			pool = append(pool, fc)
		}
	}
	return pool
}
