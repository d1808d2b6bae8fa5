package random

import "testing"

// TestNewSeedVaries ensures successive seeds are not constant.
func TestNewSeedVaries(t *testing.T) {
	first, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed returned error: %v", err)
	}
	second, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed returned error: %v", err)
	}
	// Two equal 64-bit seeds in a row indicate a broken entropy source.
	if first == second {
		t.Fatalf("expected distinct seeds, got %d twice", first)
	}
}
