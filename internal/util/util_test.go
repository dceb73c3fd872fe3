package util

import (
	"testing"
)

func TestCalculateChecksum_Deterministic(t *testing.T) {
	t.Parallel()

	value := map[string]any{"orders": []string{"S-1", "S-2"}, "total": "123.45"}

	first, err := CalculateChecksum(value)
	if err != nil {
		t.Fatalf("CalculateChecksum returned error: %v", err)
	}
	second, err := CalculateChecksum(value)
	if err != nil {
		t.Fatalf("CalculateChecksum returned error: %v", err)
	}

	if first != second {
		t.Fatalf("checksum not deterministic: %s vs %s", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(first))
	}
}

func TestCalculateChecksum_DistinguishesValues(t *testing.T) {
	t.Parallel()

	a, err := CalculateChecksum(map[string]string{"key": "a"})
	if err != nil {
		t.Fatalf("CalculateChecksum returned error: %v", err)
	}
	b, err := CalculateChecksum(map[string]string{"key": "b"})
	if err != nil {
		t.Fatalf("CalculateChecksum returned error: %v", err)
	}

	if a == b {
		t.Fatal("different values produced the same checksum")
	}
}

func TestCalculateChecksum_UnencodableValue(t *testing.T) {
	t.Parallel()

	if _, err := CalculateChecksum(func() {}); err == nil {
		t.Fatal("expected error for unencodable value")
	}
}
