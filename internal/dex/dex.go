// Package dex holds the static Pokédex tables shared by every other
// component: generation ranges, type and nature lists, stat ordering, and
// the form-suffix tables used to classify variants.
package dex

import "strings"

// Generation describes one game generation as a closed national-dex id span.
type Generation struct {
	Number int
	Name   string
	First  int
	Last   int
}

// Generations lists every generation in order. Generation 0 is the "all"
// pseudo-generation spanning the whole national dex.
var Generations = []Generation{
	{1, "Kanto", 1, 151},
	{2, "Johto", 152, 251},
	{3, "Hoenn", 252, 386},
	{4, "Sinnoh", 387, 493},
	{5, "Unova", 494, 649},
	{6, "Kalos", 650, 721},
	{7, "Alola", 722, 809},
	{8, "Galar", 810, 905},
	{9, "Paldea", 906, 1025},
}

// MaxSpeciesID is the highest national-dex id covered by the tables above.
const MaxSpeciesID = 1025

// GenerationByNumber returns the generation with the given number, or false
// when the number is out of range (0 is not a real generation).
func GenerationByNumber(n int) (Generation, bool) {
	for _, g := range Generations {
		if g.Number == n {
			return g, true
		}
	}
	return Generation{}, false
}

// GenerationOf returns the generation number a national-dex id falls in,
// or 0 when the id is outside every known range.
func GenerationOf(id int) int {
	for _, g := range Generations {
		if id >= g.First && id <= g.Last {
			return g.Number
		}
	}
	return 0
}

// TypeNames lists the 18 damage types in canonical order.
var TypeNames = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

// IsType reports whether name is one of the 18 known types.
func IsType(name string) bool {
	name = strings.ToLower(name)
	for _, t := range TypeNames {
		if t == name {
			return true
		}
	}
	return false
}

// Natures lists the 25 nature names the generator rolls from.
var Natures = []string{
	"Adamant", "Bashful", "Bold", "Brave", "Calm",
	"Careful", "Docile", "Gentle", "Hardy", "Hasty",
	"Impish", "Jolly", "Lax", "Lonely", "Mild",
	"Modest", "Naive", "Naughty", "Quiet", "Quirky",
	"Rash", "Relaxed", "Sassy", "Serious", "Timid",
}

// StatOrder is the canonical "default" ordering for the six base stats,
// keyed by the raw stat names the API uses.
var StatOrder = []string{
	"hp", "attack", "defense", "special-attack", "special-defense", "speed",
}

// StatDisplayNames maps raw stat keys to the labels shown in the UI.
var StatDisplayNames = map[string]string{
	"hp":              "HP",
	"attack":          "Attack",
	"defense":         "Defense",
	"special-attack":  "Sp. Atk",
	"special-defense": "Sp. Def",
	"speed":           "Speed",
}

// VariantKind classifies an alternate form once, when a record is built.
// Call sites switch on the kind instead of re-inspecting identifiers.
type VariantKind int

const (
	KindBase VariantKind = iota
	KindMega
	KindGigantamax
	KindRegional
	KindOther
)

func (k VariantKind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindMega:
		return "mega"
	case KindGigantamax:
		return "gigantamax"
	case KindRegional:
		return "regional"
	default:
		return "other"
	}
}

// regionalSuffixes are the form suffixes that mark a regional variant.
var regionalSuffixes = []string{"-alola", "-galar", "-hisui", "-paldea"}

// ClassifyForm derives the VariantKind for a form identifier such as
// "charizard-mega-x" or "raichu-alola". The base form of a species
// classifies as KindBase only when the identifier equals the species name.
func ClassifyForm(identifier, species string) VariantKind {
	id := strings.ToLower(identifier)
	if id == strings.ToLower(species) {
		return KindBase
	}
	if strings.Contains(id, "-mega") {
		return KindMega
	}
	if strings.Contains(id, "-gmax") {
		return KindGigantamax
	}
	for _, s := range regionalSuffixes {
		if strings.Contains(id, s) {
			return KindRegional
		}
	}
	return KindOther
}

// ShinyChanceDefault is the full-odds shiny rate used when the config does
// not override it.
const ShinyChanceDefault = 1.0 / 4096
