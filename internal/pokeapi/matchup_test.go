package pokeapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const grassTypeJSON = `{
	"id": 12, "name": "grass",
	"damage_relations": {
		"double_damage_from": [
			{"name": "fire", "url": ""}, {"name": "ice", "url": ""},
			{"name": "poison", "url": ""}, {"name": "flying", "url": ""},
			{"name": "bug", "url": ""}
		],
		"half_damage_from": [
			{"name": "water", "url": ""}, {"name": "grass", "url": ""},
			{"name": "electric", "url": ""}, {"name": "ground", "url": ""}
		],
		"no_damage_from": [],
		"double_damage_to": [
			{"name": "water", "url": ""}, {"name": "ground", "url": ""},
			{"name": "rock", "url": ""}
		],
		"half_damage_to": [
			{"name": "fire", "url": ""}, {"name": "grass", "url": ""}
		],
		"no_damage_to": []
	},
	"pokemon": []
}`

// A made-up type that is immune to fire, to pin the dominance rule.
const ashTypeJSON = `{
	"id": 99, "name": "ash",
	"damage_relations": {
		"double_damage_from": [{"name": "water", "url": ""}],
		"half_damage_from": [{"name": "ice", "url": ""}],
		"no_damage_from": [{"name": "fire", "url": ""}],
		"double_damage_to": [{"name": "grass", "url": ""}],
		"half_damage_to": [],
		"no_damage_to": []
	},
	"pokemon": []
}`

func TestMatchupsImmunityDominates(t *testing.T) {
	f := newFakeAPI(t)
	f.set("/type/grass", grassTypeJSON)
	f.set("/type/ash", ashTypeJSON)

	rel, err := f.client().Matchups(context.Background(), []string{"grass", "ash"})
	require.NoError(t, err)

	// Grass is doubly weak to fire, ash is immune: immunity wins.
	assert.NotContains(t, rel.DoubleDamageFrom, "fire")
	assert.Contains(t, rel.NoDamageFrom, "fire")

	// Grass is weak to ice, ash resists it: resistance wins.
	assert.NotContains(t, rel.DoubleDamageFrom, "ice")
	assert.Contains(t, rel.HalfDamageFrom, "ice")

	// Grass resists water, ash is weak to it: no immunity involved, so the
	// half entry suppresses the double entry.
	assert.NotContains(t, rel.DoubleDamageFrom, "water")
	assert.Contains(t, rel.HalfDamageFrom, "water")
}

func TestMatchupsOffensiveBucketsAreRawUnions(t *testing.T) {
	f := newFakeAPI(t)
	f.set("/type/grass", grassTypeJSON)
	f.set("/type/ash", ashTypeJSON)

	rel, err := f.client().Matchups(context.Background(), []string{"grass", "ash"})
	require.NoError(t, err)

	// Grass hits grass for half, ash hits grass for double; neither entry
	// is removed on the offensive side.
	assert.Contains(t, rel.DoubleDamageTo, "grass")
	assert.Contains(t, rel.HalfDamageTo, "grass")
}

func TestMatchupsSingleType(t *testing.T) {
	f := newFakeAPI(t)
	f.set("/type/grass", grassTypeJSON)

	rel, err := f.client().Matchups(context.Background(), []string{"grass"})
	require.NoError(t, err)

	assert.Equal(t, []string{"bug", "fire", "flying", "ice", "poison"}, rel.DoubleDamageFrom)
	assert.Empty(t, rel.NoDamageFrom)
}

func TestMatchupsFetchFailurePropagates(t *testing.T) {
	f := newFakeAPI(t)
	f.set("/type/grass", grassTypeJSON)

	_, err := f.client().Matchups(context.Background(), []string{"grass", "unknown"})
	require.Error(t, err)
}
