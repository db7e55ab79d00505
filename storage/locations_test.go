package storage

import "testing"

func TestAddLocationIdempotent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	created, err := store.AddLocation("Rig AB-100")
	if err != nil {
		t.Fatalf("add location: %v", err)
	}
	if !created {
		t.Fatalf("expected new location to be created")
	}

	created, err = store.AddLocation("Rig AB-100")
	if err != nil {
		t.Fatalf("re-add location: %v", err)
	}
	if created {
		t.Fatalf("re-adding must be a no-op")
	}

	if _, err := store.AddLocation("  "); err == nil {
		t.Fatalf("expected error for blank name")
	}
}

func TestSeedLocations(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	if err := store.SeedLocations([]string{"Kantor", "", "Rig AB-100", "Kantor"}); err != nil {
		t.Fatalf("seed locations: %v", err)
	}

	names, err := store.ListLocations()
	if err != nil {
		t.Fatalf("list locations: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 locations, got %v", names)
	}
	if names[0] != "Kantor" || names[1] != "Rig AB-100" {
		t.Fatalf("unexpected order: %v", names)
	}
}
