package locale

import "testing"

func TestNormalize(t *testing.T) {
	got, err := Normalize("cs-cz")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got != "cs-CZ" {
		t.Fatalf("normalized = %q, want cs-CZ", got)
	}

	if _, err := Normalize("!!"); err == nil {
		t.Fatal("expected error for invalid tag")
	}
}

func TestBase(t *testing.T) {
	if got := Base("cs-CZ"); got != "cs" {
		t.Fatalf("Base(cs-CZ) = %q, want cs", got)
	}
	if got := Base("cs"); got != "" {
		t.Fatalf("Base(cs) = %q, want empty (no distinct base)", got)
	}
	if got := Base("!!"); got != "" {
		t.Fatalf("Base(!!) = %q, want empty", got)
	}
}
