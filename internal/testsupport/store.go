package testsupport

import (
	"testing"

	"scribe/internal/config"
	"scribe/internal/history"
)

// MustOpenStore opens a history store for the test config and closes it when
// the test finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}
