package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "snapshot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUpsertAndAllRoundTrip(t *testing.T) {
	s := openTestStore(t)

	venusaur := Species{
		ID:               3,
		Name:             "venusaur",
		Generation:       1,
		Types:            []string{"grass", "poison"},
		Stage:            3,
		IsFinal:          true,
		BaseStatTotal:    525,
		HasGenderSprites: true,
		Forms:            []string{"venusaur-mega", "venusaur-gmax"},
	}
	require.NoError(t, s.Upsert(Species{ID: 150, Name: "mewtwo", Generation: 1,
		Types: []string{"psychic"}, IsLegendary: true, Stage: 1, IsFinal: true}))
	require.NoError(t, s.Upsert(venusaur))

	all, err := s.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Ordered by id.
	if diff := cmp.Diff(venusaur, all[0]); diff != "" {
		t.Errorf("venusaur mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, all[1].IsLegendary)
}

func TestUpsertReplacesExistingRow(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Upsert(Species{ID: 1, Name: "bulbasaur", Generation: 1,
		Types: []string{"grass"}, Stage: 1}))
	require.NoError(t, s.Upsert(Species{ID: 1, Name: "bulbasaur", Generation: 1,
		Types: []string{"grass", "poison"}, Stage: 1, StageHeuristic: true}))

	all, err := s.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []string{"grass", "poison"}, all[0].Types)
	assert.True(t, all[0].StageHeuristic)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Upsert(Species{ID: 1, Name: "bulbasaur", Generation: 1, Types: []string{"grass"}}))
	require.NoError(t, s.Close())

	// Reopening must not lose data or fail on existing tables.
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	n, err := s2.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
