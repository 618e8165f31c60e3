package tests

import (
	"context"
	"testing"

	"github.com/chalklab/chalkline/pkg/domain"
	"github.com/chalklab/chalkline/pkg/ports"
)

// RunStateStoreContract is a reusable test suite that verifies an adapter
// complies with ports.StateStore semantics.
func RunStateStoreContract(t *testing.T, store ports.StateStore) {
	t.Helper()
	ctx := context.Background()

	state := domain.NewSessionState("contract-1", "knapsack", map[string]any{
		"capacity": 5,
	})
	state.Cursor = 7

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		if err != domain.ErrSessionNotFound {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Save_Load_Roundtrip", func(t *testing.T) {
		if err := store.Save(ctx, state.ID, state); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		loaded, err := store.Load(ctx, state.ID)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded.Algorithm != "knapsack" || loaded.Cursor != 7 {
			t.Errorf("state mismatch: %+v", loaded)
		}
	})

	t.Run("Load_Isolation", func(t *testing.T) {
		loaded, err := store.Load(ctx, state.ID)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		loaded.Cursor = 99
		loaded.Inputs["capacity"] = -1

		again, err := store.Load(ctx, state.ID)
		if err != nil {
			t.Fatalf("second load failed: %v", err)
		}
		if again.Cursor != 7 {
			t.Errorf("store leaked caller mutation: cursor = %d", again.Cursor)
		}
	})

	t.Run("List", func(t *testing.T) {
		ids, err := store.List(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		found := false
		for _, id := range ids {
			if id == state.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("session %s missing from list %v", state.ID, ids)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Delete(ctx, state.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := store.Load(ctx, state.ID); err != domain.ErrSessionNotFound {
			t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
		}
	})
}
