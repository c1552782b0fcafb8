package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI serves canned JSON per path and counts requests per path.
type fakeAPI struct {
	mu        sync.Mutex
	responses map[string]string
	status    map[string]int
	hits      map[string]int
	server    *httptest.Server
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{
		responses: make(map[string]string),
		status:    make(map[string]int),
		hits:      make(map[string]int),
	}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.hits[r.URL.Path]++
		body, ok := f.responses[r.URL.Path]
		code := f.status[r.URL.Path]
		f.mu.Unlock()

		if code != 0 {
			w.WriteHeader(code)
			fmt.Fprint(w, body)
			return
		}
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, body)
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) set(path, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = body
}

func (f *fakeAPI) setStatus(path string, code int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status[path] = code
	f.responses[path] = body
}

func (f *fakeAPI) hitCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func (f *fakeAPI) client() *Client {
	return New(f.server.URL, 5*time.Second)
}

func (f *fakeAPI) addPikachu() {
	pokemonBody := fmt.Sprintf(`{
		"id": 25, "name": "pikachu",
		"sprites": {"front_default": "pika.png", "front_female": "pika-f.png"},
		"types": [{"slot": 1, "type": {"name": "electric", "url": "%s/type/13/"}}],
		"stats": [
			{"base_stat": 90, "stat": {"name": "speed"}},
			{"base_stat": 35, "stat": {"name": "hp"}}
		],
		"abilities": [{"is_hidden": false, "ability": {"name": "static"}}],
		"moves": [],
		"species": {"name": "pikachu", "url": "%s/pokemon-species/25/"}
	}`, f.server.URL, f.server.URL)
	f.set("/pokemon/25", pokemonBody)
	f.set("/pokemon/pikachu", pokemonBody)
	f.set("/pokemon-species/25/", `{
		"id": 25, "name": "pikachu", "gender_rate": 4,
		"evolution_chain": {"url": ""},
		"flavor_text_entries": [],
		"varieties": [
			{"is_default": true, "pokemon": {"name": "pikachu", "url": "p/25/"}},
			{"is_default": false, "pokemon": {"name": "pikachu-gmax", "url": "p/10199/"}}
		]
	}`)
}

func TestDetailByIDAndNameAgree(t *testing.T) {
	f := newFakeAPI(t)
	f.addPikachu()
	c := f.client()

	byID, err := c.Detail(context.Background(), "25")
	require.NoError(t, err)
	byName, err := c.Detail(context.Background(), "Pikachu")
	require.NoError(t, err)

	assert.Equal(t, byID.ID, byName.ID)
	assert.Equal(t, byID.Types, byName.Types)
	assert.Equal(t, []string{"electric"}, byID.Types)
}

func TestDetailBuildsCombinedRecord(t *testing.T) {
	f := newFakeAPI(t)
	f.addPikachu()

	rec, err := f.client().Detail(context.Background(), "pikachu")
	require.NoError(t, err)

	assert.Equal(t, 25, rec.ID)
	assert.Equal(t, "pikachu", rec.BaseName)
	assert.True(t, rec.HasVariants, "two varieties means variants")
	assert.True(t, rec.HasGenderSprites, "female sprite present")
	require.Len(t, rec.Varieties, 2)
	assert.Equal(t, "pikachu-gmax", rec.Varieties[1].Identifier)
}

func TestDetailCacheHitMakesNoNetworkCalls(t *testing.T) {
	f := newFakeAPI(t)
	f.addPikachu()
	c := f.client()

	_, err := c.Detail(context.Background(), "pikachu")
	require.NoError(t, err)
	// Two-phase fetch: probe plus parallel re-fetch.
	assert.Equal(t, 2, f.hitCount("/pokemon/pikachu"))
	assert.Equal(t, 1, f.hitCount("/pokemon-species/25/"))

	_, err = c.Detail(context.Background(), "pikachu")
	require.NoError(t, err)
	_, err = c.Detail(context.Background(), "PIKACHU")
	require.NoError(t, err)
	assert.Equal(t, 2, f.hitCount("/pokemon/pikachu"), "cache hit must not refetch")
	assert.Equal(t, 1, f.hitCount("/pokemon-species/25/"))
}

func TestDetailDegradesWhenSpeciesFails(t *testing.T) {
	f := newFakeAPI(t)
	f.addPikachu()
	f.setStatus("/pokemon-species/25/", http.StatusInternalServerError, `{}`)

	rec, err := f.client().Detail(context.Background(), "pikachu")
	require.NoError(t, err, "species failure must not fail the record")
	assert.Equal(t, "pikachu", rec.BaseName)
	assert.False(t, rec.HasVariants)
	assert.Empty(t, rec.Varieties)
}

func TestDetailNotFound(t *testing.T) {
	f := newFakeAPI(t)

	_, err := f.client().Detail(context.Background(), "missingno")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAPIErrorCarriesStatusAndMessage(t *testing.T) {
	f := newFakeAPI(t)
	f.setStatus("/pokemon/25", http.StatusBadGateway, `{"message": "upstream sad"}`)

	_, err := f.client().Detail(context.Background(), "25")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream sad", apiErr.Message)
}

func TestGenerationListSortedAndCached(t *testing.T) {
	f := newFakeAPI(t)
	f.set("/generation/1", `{
		"id": 1, "name": "generation-i",
		"pokemon_species": [
			{"name": "bulbasaur", "url": "https://x/pokemon-species/1/"},
			{"name": "mew", "url": "https://x/pokemon-species/151/"},
			{"name": "pikachu", "url": "https://x/pokemon-species/25/"}
		]
	}`)
	c := f.client()

	list, err := c.GenerationList(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{1, 25, 151}, []int{list[0].ID, list[1].ID, list[2].ID})

	_, err = c.GenerationList(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, f.hitCount("/generation/1"))
}

func TestGenerationListFailureLeavesCacheUntouched(t *testing.T) {
	f := newFakeAPI(t)
	f.setStatus("/generation/1", http.StatusInternalServerError, `{}`)
	c := f.client()

	_, err := c.GenerationList(context.Background(), 1)
	require.Error(t, err)

	// Recovery: a later fetch goes back to the network.
	f.setStatus("/generation/1", http.StatusOK,
		`{"id":1,"name":"generation-i","pokemon_species":[{"name":"bulbasaur","url":"https://x/pokemon-species/1/"}]}`)
	list, err := c.GenerationList(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGenerationListRejectsUnknownGeneration(t *testing.T) {
	f := newFakeAPI(t)
	_, err := f.client().GenerationList(context.Background(), 42)
	assert.Error(t, err)
}

func TestTypePokemonCached(t *testing.T) {
	f := newFakeAPI(t)
	f.set("/type/electric", `{
		"id": 13, "name": "electric",
		"damage_relations": {
			"double_damage_from": [{"name": "ground", "url": ""}],
			"half_damage_from": [], "no_damage_from": [],
			"double_damage_to": [], "half_damage_to": [], "no_damage_to": []
		},
		"pokemon": [
			{"slot": 1, "pokemon": {"name": "pikachu", "url": "https://x/pokemon/25/"}},
			{"slot": 1, "pokemon": {"name": "voltorb", "url": "https://x/pokemon/100/"}}
		]
	}`)
	c := f.client()

	list, err := c.TypePokemon(context.Background(), "electric")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 25, list[0].ID)

	_, err = c.TypePokemon(context.Background(), "electric")
	require.NoError(t, err)
	// The relations cache also serves Matchups without another fetch.
	_, err = c.Matchups(context.Background(), []string{"electric"})
	require.NoError(t, err)
	assert.Equal(t, 1, f.hitCount("/type/electric"))
}

func TestEncountersFailureYieldsEmptyList(t *testing.T) {
	f := newFakeAPI(t)
	assert.Empty(t, f.client().Encounters(context.Background(), 25))

	f.set("/pokemon/25/encounters", `[
		{"location_area": {"name": "viridian-forest", "url": ""}, "version_details": []}
	]`)
	enc := f.client().Encounters(context.Background(), 25)
	require.Len(t, enc, 1)
	assert.Equal(t, "viridian-forest", enc[0].LocationArea.Name)
}

func TestPrefetchDetailsToleratesFailures(t *testing.T) {
	f := newFakeAPI(t)
	f.addPikachu()
	c := f.client()

	c.PrefetchDetails(context.Background(), []SpeciesSummary{
		{Name: "pikachu", ID: 25},
		{Name: "missingno", ID: 0},
	})

	_, ok := c.Cache().Record("pikachu")
	assert.True(t, ok, "prefetch should warm the cache for the good entry")
	_, ok = c.Cache().Record("missingno")
	assert.False(t, ok)
}

func TestIntersect(t *testing.T) {
	gen := []SpeciesSummary{{ID: 1}, {ID: 25}, {ID: 151}}
	typ := []SpeciesSummary{{ID: 25}, {ID: 100}}
	got := Intersect(gen, typ)
	require.Len(t, got, 1)
	assert.Equal(t, 25, got[0].ID)
}

func TestIDFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want int
	}{
		{"https://pokeapi.co/api/v2/pokemon-species/25/", 25},
		{"https://pokeapi.co/api/v2/pokemon/10199", 10199},
		{"https://pokeapi.co/api/v2/pokemon/abc/", 0},
		{"", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, idFromURL(tc.url), tc.url)
	}
}
