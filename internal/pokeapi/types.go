package pokeapi

import (
	"strconv"
	"strings"
)

// NamedResource is the {name, url} pair PokéAPI uses for every reference.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ID extracts the numeric id from the resource URL's trailing path segment,
// e.g. ".../pokemon-species/25/" -> 25. Returns 0 when no id is present.
func (r NamedResource) ID() int {
	return idFromURL(r.URL)
}

func idFromURL(url string) int {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return 0
	}
	id, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil {
		return 0
	}
	return id
}

// SpeciesSummary is the identity-only record used by list views.
type SpeciesSummary struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
	URL  string `json:"url"`
}

// Pokemon is the raw /pokemon/{id} resource, trimmed to the fields the
// application reads.
type Pokemon struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Height  int     `json:"height"`
	Weight  int     `json:"weight"`
	Sprites Sprites `json:"sprites"`
	Types   []struct {
		Slot int           `json:"slot"`
		Type NamedResource `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     NamedResource `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		IsHidden bool          `json:"is_hidden"`
		Ability  NamedResource `json:"ability"`
	} `json:"abilities"`
	Moves   []RawMove     `json:"moves"`
	Species NamedResource `json:"species"`
}

// RawMove is one entry of a Pokémon's move list.
type RawMove struct {
	Move                NamedResource `json:"move"`
	VersionGroupDetails []struct {
		LevelLearnedAt  int           `json:"level_learned_at"`
		MoveLearnMethod NamedResource `json:"move_learn_method"`
		VersionGroup    NamedResource `json:"version_group"`
	} `json:"version_group_details"`
}

// Sprites holds the sprite URLs for a Pokémon, including the female and
// shiny variants the UI can toggle between.
type Sprites struct {
	FrontDefault     string `json:"front_default"`
	FrontShiny       string `json:"front_shiny"`
	FrontFemale      string `json:"front_female"`
	FrontShinyFemale string `json:"front_shiny_female"`
	Other            struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
			FrontShiny   string `json:"front_shiny"`
		} `json:"official-artwork"`
	} `json:"other"`
}

// Best returns the preferred display sprite: official artwork when present,
// the plain front sprite otherwise.
func (s Sprites) Best() string {
	if s.Other.OfficialArtwork.FrontDefault != "" {
		return s.Other.OfficialArtwork.FrontDefault
	}
	return s.FrontDefault
}

// Species is the raw /pokemon-species/{id} resource.
type Species struct {
	ID                int           `json:"id"`
	Name              string        `json:"name"`
	GenderRate        int           `json:"gender_rate"`
	IsLegendary       bool          `json:"is_legendary"`
	IsMythical        bool          `json:"is_mythical"`
	IsBaby            bool          `json:"is_baby"`
	Generation        NamedResource `json:"generation"`
	EvolutionChainRef struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
	FlavorTextEntries []struct {
		FlavorText string        `json:"flavor_text"`
		Language   NamedResource `json:"language"`
		Version    NamedResource `json:"version"`
	} `json:"flavor_text_entries"`
	Varieties []struct {
		IsDefault bool          `json:"is_default"`
		Pokemon   NamedResource `json:"pokemon"`
	} `json:"varieties"`
}

// TypeData is the raw /type/{name} resource.
type TypeData struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	DamageRelations struct {
		DoubleDamageFrom []NamedResource `json:"double_damage_from"`
		HalfDamageFrom   []NamedResource `json:"half_damage_from"`
		NoDamageFrom     []NamedResource `json:"no_damage_from"`
		DoubleDamageTo   []NamedResource `json:"double_damage_to"`
		HalfDamageTo     []NamedResource `json:"half_damage_to"`
		NoDamageTo       []NamedResource `json:"no_damage_to"`
	} `json:"damage_relations"`
	Pokemon []struct {
		Slot    int           `json:"slot"`
		Pokemon NamedResource `json:"pokemon"`
	} `json:"pokemon"`
}

// EvolutionChain is the raw evolution-chain resource: a tree of nodes.
type EvolutionChain struct {
	ID    int           `json:"id"`
	Chain EvolutionNode `json:"chain"`
}

// EvolutionNode is one node of the evolution tree.
type EvolutionNode struct {
	Species          NamedResource     `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []EvolutionNode   `json:"evolves_to"`
}

// EvolutionDetail carries the trigger conditions for one evolution edge.
type EvolutionDetail struct {
	Trigger               NamedResource  `json:"trigger"`
	Item                  *NamedResource `json:"item"`
	HeldItem              *NamedResource `json:"held_item"`
	KnownMove             *NamedResource `json:"known_move"`
	KnownMoveType         *NamedResource `json:"known_move_type"`
	Location              *NamedResource `json:"location"`
	PartySpecies          *NamedResource `json:"party_species"`
	PartyType             *NamedResource `json:"party_type"`
	TradeSpecies          *NamedResource `json:"trade_species"`
	MinLevel              *int           `json:"min_level"`
	MinHappiness          *int           `json:"min_happiness"`
	MinBeauty             *int           `json:"min_beauty"`
	MinAffection          *int           `json:"min_affection"`
	RelativePhysicalStats *int           `json:"relative_physical_stats"`
	TimeOfDay             string         `json:"time_of_day"`
	NeedsOverworldRain    bool           `json:"needs_overworld_rain"`
	TurnUpsideDown        bool           `json:"turn_upside_down"`
}

// Encounter is one location-area entry of /pokemon/{id}/encounters.
type Encounter struct {
	LocationArea   NamedResource `json:"location_area"`
	VersionDetails []struct {
		Version NamedResource `json:"version"`
	} `json:"version_details"`
}

// resourceList is the generic paginated list envelope.
type resourceList struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// generationResource is the raw /generation/{n} resource.
type generationResource struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	PokemonSpecies []NamedResource `json:"pokemon_species"`
}
