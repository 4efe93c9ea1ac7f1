package crypto

import (
	"strings"
	"testing"
)

// Requirement: NewID produces fixed-length identifiers over the URL-safe alphabet.
func TestNewID(t *testing.T) {
	t.Run("length and alphabet", func(t *testing.T) {
		id, err := NewID()
		if err != nil {
			t.Fatalf("NewID() error = %v", err)
		}
		if len(id) != idLength {
			t.Errorf("NewID() length = %d, want %d", len(id), idLength)
		}
		for _, ch := range id {
			if !strings.ContainsRune(idAlphabet, ch) {
				t.Errorf("NewID() produced %q outside the alphabet", ch)
			}
		}
	})

	t.Run("no collisions across many draws", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 10000; i++ {
			id, err := NewID()
			if err != nil {
				t.Fatalf("NewID() error = %v", err)
			}
			if seen[id] {
				t.Fatalf("NewID() produced duplicate %q", id)
			}
			seen[id] = true
		}
	})
}
