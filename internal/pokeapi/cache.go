package pokeapi

import (
	"strings"
	"sync"
)

// Cache is the process-lifetime session cache: independent lazily
// populated maps, append-only, never evicted. Concurrent misses for the
// same key are not de-duplicated; each caller fetches and the last store
// wins with identical content.
type Cache struct {
	mu sync.RWMutex

	generations map[int][]SpeciesSummary    // generation number (0 = all) -> sorted list
	records     map[string]*PokemonRecord   // lowercased identifier -> combined record
	typePokemon map[string][]SpeciesSummary // type name -> member list
	typeData    map[string]*TypeData        // type name -> damage relations
	chains      map[string]*EvolutionChain  // chain URL -> tree
}

// NewCache creates an empty session cache.
func NewCache() *Cache {
	return &Cache{
		generations: make(map[int][]SpeciesSummary),
		records:     make(map[string]*PokemonRecord),
		typePokemon: make(map[string][]SpeciesSummary),
		typeData:    make(map[string]*TypeData),
		chains:      make(map[string]*EvolutionChain),
	}
}

// RecordKey normalizes a name-or-id identifier into the cache key form.
func RecordKey(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

func (c *Cache) generation(n int) ([]SpeciesSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	list, ok := c.generations[n]
	return list, ok
}

func (c *Cache) storeGeneration(n int, list []SpeciesSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[n] = list
}

// Record returns the cached combined record for an identifier, if present.
func (c *Cache) Record(identifier string) (*PokemonRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.records[RecordKey(identifier)]
	return rec, ok
}

func (c *Cache) storeRecord(identifier string, rec *PokemonRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[RecordKey(identifier)] = rec
}

func (c *Cache) typeList(name string) ([]SpeciesSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	list, ok := c.typePokemon[name]
	return list, ok
}

func (c *Cache) storeTypeList(name string, list []SpeciesSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.typePokemon[name] = list
}

func (c *Cache) typeRelations(name string) (*TypeData, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	td, ok := c.typeData[name]
	return td, ok
}

func (c *Cache) storeTypeRelations(name string, td *TypeData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.typeData[name] = td
}

func (c *Cache) chain(url string) (*EvolutionChain, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ch, ok := c.chains[url]
	return ch, ok
}

func (c *Cache) storeChain(url string, ch *EvolutionChain) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chains[url] = ch
}

// Stats reports per-map entry counts, used by the TUI status line.
func (c *Cache) Stats() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return map[string]int{
		"generations": len(c.generations),
		"records":     len(c.records),
		"types":       len(c.typePokemon),
		"relations":   len(c.typeData),
		"chains":      len(c.chains),
	}
}
