package testsupport

import (
	"testing"

	"subclean/internal/config"
	"subclean/internal/history"
)

// MustOpenHistory opens the config's history store and registers cleanup.
func MustOpenHistory(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
