package entities

import "testing"

func TestCatalogCopiesEntriesOnConstruction(t *testing.T) {
	entries := map[string]string{"subtitle-owl": "Owl hooting"}
	catalog := NewCatalog("en", entries)

	entries["subtitle-owl"] = "mutated"
	entries["subtitle-new"] = "sneaked in"

	if text, _ := catalog.Get("subtitle-owl"); text != "Owl hooting" {
		t.Fatalf("catalog saw caller mutation: %q", text)
	}
	if _, ok := catalog.Get("subtitle-new"); ok {
		t.Fatal("catalog saw key added after construction")
	}
}

func TestCatalogEntriesReturnsCopy(t *testing.T) {
	catalog := NewCatalog("en", map[string]string{"subtitle-owl": "Owl hooting"})

	out := catalog.Entries()
	out["subtitle-owl"] = "mutated"

	if text, _ := catalog.Get("subtitle-owl"); text != "Owl hooting" {
		t.Fatalf("Entries exposed internal map: %q", text)
	}
}

func TestCatalogKeysSorted(t *testing.T) {
	catalog := NewCatalog("en", map[string]string{
		"subtitle-owl":  "Owl hooting",
		"subtitle-bees": "Bees buzzing",
		"subtitle-rain": "Rain falling",
	})

	keys := catalog.Keys()
	want := []string{"subtitle-bees", "subtitle-owl", "subtitle-rain"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
