package team

import "testing"

func TestLookup(t *testing.T) {
	got, ok := Lookup("Chennai Super Kings")
	if !ok || got.Short != "CSK" {
		t.Fatalf("expected CSK, got %+v ok=%t", got, ok)
	}

	got, ok = Lookup("  chennai   super kings ")
	if !ok || got.Short != "CSK" {
		t.Fatalf("normalized lookup failed: %+v ok=%t", got, ok)
	}

	if _, ok := Lookup("Deccan Chargers"); ok {
		t.Fatal("expected unknown franchise to miss")
	}
}

func TestAllIsCopy(t *testing.T) {
	first := All()
	first[0].Name = "mutated"
	if All()[0].Name == "mutated" {
		t.Fatal("All must return a copy")
	}
}
