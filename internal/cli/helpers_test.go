package cli

import (
	"testing"
)

func TestParseQuantities(t *testing.T) {
	quantities, err := parseQuantities([]string{"1=2", "3=1.5", "5=0"})
	if err != nil {
		t.Fatalf("parseQuantities failed: %v", err)
	}

	want := map[int64]string{1: "2", 3: "1.5", 5: "0"}
	for id, qty := range want {
		if quantities[id] != qty {
			t.Errorf("quantities[%d] = %q, want %q", id, quantities[id], qty)
		}
	}
}

func TestParseQuantities_QuantityTextPassedThrough(t *testing.T) {
	// The service owns quantity validation; the flag parser must not touch
	// the text
	quantities, err := parseQuantities([]string{"1= 2.50 "})
	if err != nil {
		t.Fatalf("parseQuantities failed: %v", err)
	}
	if quantities[1] != " 2.50 " {
		t.Errorf("quantities[1] = %q, want %q", quantities[1], " 2.50 ")
	}
}

func TestParseQuantities_Malformed(t *testing.T) {
	for _, spec := range []string{"no-equals", "abc=2"} {
		if _, err := parseQuantities([]string{spec}); err == nil {
			t.Errorf("spec %q: expected error", spec)
		}
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	if err != nil || id != 42 {
		t.Errorf("parseID(42) = %d, %v", id, err)
	}
	if _, err := parseID("forty-two"); err == nil {
		t.Error("expected error for non-numeric ID")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("a very long client name", 10); got != "a very ..." {
		t.Errorf("truncate = %q", got)
	}
}
