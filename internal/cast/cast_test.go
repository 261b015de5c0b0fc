package cast

import (
	"math"
	"testing"
)

func TestInt(t *testing.T) {
	tests := []struct {
		in      any
		want    int
		wantErr bool
	}{
		{4, 4, false},
		{int64(2), 2, false},
		{uint8(7), 7, false},
		{"12", 12, false},
		{float64(3), 3, false},
		{"four", 0, true},
		{uint64(math.MaxUint64), 0, true},
	}

	for _, tt := range tests {
		got, err := Int(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("Int(%#v) expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Int(%#v) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Int(%#v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	if got, err := String("-"); err != nil || got != "-" {
		t.Fatalf("String(%q) = %q, %v", "-", got, err)
	}
	if got, err := String(42); err != nil || got != "42" {
		t.Fatalf("String(42) = %q, %v", got, err)
	}
	for _, v := range []any{nil, map[string]any{"a": 1}, []any{"a"}} {
		if _, err := String(v); err == nil {
			t.Fatalf("String(%#v) expected error", v)
		}
	}
}

func TestCollections(t *testing.T) {
	s, err := Slice([]any{"a", 1})
	if err != nil || len(s) != 2 {
		t.Fatalf("Slice = %v, %v", s, err)
	}

	m, err := StringMap(map[string]any{"text": "x"})
	if err != nil || m["text"] != "x" {
		t.Fatalf("StringMap = %v, %v", m, err)
	}

	if _, err := StringMap("nope"); err == nil {
		t.Fatalf("StringMap(string) expected error")
	}

	if b, err := Bool("true"); err != nil || !b {
		t.Fatalf("Bool(%q) = %v, %v", "true", b, err)
	}
}
