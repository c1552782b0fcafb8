package ui

import (
	"strings"

	"pokedex/internal/pokeapi"
)

// matchupBuckets fixes the display order of the six relation buckets.
var matchupBuckets = []struct {
	label string
	pick  func(*pokeapi.TypeRelations) []string
}{
	{"Weak to (2x)", func(r *pokeapi.TypeRelations) []string { return r.DoubleDamageFrom }},
	{"Resists (½x)", func(r *pokeapi.TypeRelations) []string { return r.HalfDamageFrom }},
	{"Immune to (0x)", func(r *pokeapi.TypeRelations) []string { return r.NoDamageFrom }},
	{"Strong against (2x)", func(r *pokeapi.TypeRelations) []string { return r.DoubleDamageTo }},
	{"Weak against (½x)", func(r *pokeapi.TypeRelations) []string { return r.HalfDamageTo }},
	{"No effect on (0x)", func(r *pokeapi.TypeRelations) []string { return r.NoDamageTo }},
}

// MatchupPanel renders the six weakness/resistance buckets. An empty bucket
// shows a single "None" placeholder.
func MatchupPanel(styles Styles, rel *pokeapi.TypeRelations) string {
	var sb strings.Builder
	for _, bucket := range matchupBuckets {
		sb.WriteString(styles.Subtitle.Render(bucket.label))
		sb.WriteString("\n")

		types := bucket.pick(rel)
		if len(types) == 0 {
			sb.WriteString(styles.Muted.Render("None"))
			sb.WriteString("\n\n")
			continue
		}
		var badges []string
		for _, t := range types {
			badges = append(badges, styles.TypeBadge(t))
		}
		sb.WriteString(strings.Join(badges, " "))
		sb.WriteString("\n\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}
