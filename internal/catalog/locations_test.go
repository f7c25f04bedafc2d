package catalog

import "testing"

func TestLocationByID(t *testing.T) {
	t.Parallel()

	l, ok := LocationByID("rajwada")
	if !ok {
		t.Fatal("rajwada missing from catalog")
	}
	if l.Name == "" || l.Lat == 0 || l.Lng == 0 {
		t.Errorf("incomplete catalog entry: %+v", l)
	}

	if _, ok := LocationByID("nowhere"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestLocations_UniqueIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, l := range Locations() {
		if seen[l.ID] {
			t.Errorf("duplicate location id %q", l.ID)
		}
		seen[l.ID] = true
	}
}
