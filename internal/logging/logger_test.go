package logging

import (
	"path/filepath"
	"testing"
)

func TestForIsNopBeforeInit(t *testing.T) {
	// Must not panic and must be usable without Init.
	For(CategoryAPI).Info("quiet by default")
}

func TestInitRejectsBadLevel(t *testing.T) {
	if err := Init("loud", ""); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokedex.log")
	if err := Init("debug", path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	For(CategoryCache).Debug("hit")
	Sync()
}
