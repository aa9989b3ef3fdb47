package addon

import (
	"testing"

	"github.com/google/uuid"
)

func TestDeterministicUUIDStable(t *testing.T) {
	first := DeterministicUUID("bp.header", "fire_dragon")
	second := DeterministicUUID("bp.header", "fire_dragon")
	if first != second {
		t.Fatalf("same inputs produced %s and %s", first, second)
	}
}

func TestDeterministicUUIDDistinctPerNamespace(t *testing.T) {
	seen := map[string]string{}
	for _, ns := range []string{"bp.header", "bp.module", "rp.header", "rp.module"} {
		value := DeterministicUUID(ns, "fire_dragon")
		if prev, ok := seen[value]; ok {
			t.Fatalf("namespace %s collides with %s on %s", ns, prev, value)
		}
		seen[value] = ns
	}
}

func TestDeterministicUUIDIsVersion5(t *testing.T) {
	parsed, err := uuid.Parse(DeterministicUUID("rp.header", "fire_dragon"))
	if err != nil {
		t.Fatalf("parse uuid: %v", err)
	}
	if parsed.Version() != 5 {
		t.Fatalf("version = %d, want 5", parsed.Version())
	}
}
