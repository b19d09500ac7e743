package util

import "testing"

func TestContentHashStable(t *testing.T) {
	a := ContentHash("procedures text")
	b := ContentHash("procedures text")
	if a != b {
		t.Fatalf("expected stable hash, got %s and %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
	if a == ContentHash("other text") {
		t.Fatal("expected different inputs to hash differently")
	}
}
