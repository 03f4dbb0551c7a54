package repositories

import (
	"database/sql"
	"encoding/json"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	valid := []struct {
		raw  string
		want float64
	}{
		{"12", 12},
		{" 40.5 ", 40.5},
		{"1e3", 1000},
		{"0", 0},
	}
	for _, tc := range valid {
		got, err := ParseQuantity(sql.NullString{String: tc.raw, Valid: true})
		if err != nil {
			t.Fatalf("ParseQuantity(%q): unexpected error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseQuantity(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}

	for _, raw := range []string{"", "  ", "abc", "12 m3", "NaN", "Inf", "-4"} {
		if _, err := ParseQuantity(sql.NullString{String: raw, Valid: true}); err == nil {
			t.Errorf("ParseQuantity(%q): expected error", raw)
		}
	}
	if _, err := ParseQuantity(sql.NullString{}); err == nil {
		t.Error("ParseQuantity(NULL): expected error")
	}
}

func TestRawQuantityUnmarshal(t *testing.T) {
	var w WellSeed
	if err := json.Unmarshal([]byte(`{"id":"a","yield":12.5}`), &w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.Yield.Valid || w.Yield.Value != "12.5" {
		t.Fatalf("number yield = %+v", w.Yield)
	}

	if err := json.Unmarshal([]byte(`{"id":"a","yield":"s/d"}`), &w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.Yield.Valid || w.Yield.Value != "s/d" {
		t.Fatalf("string yield = %+v", w.Yield)
	}

	if err := json.Unmarshal([]byte(`{"id":"a","yield":null}`), &w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Yield.Valid {
		t.Fatalf("null yield = %+v, want invalid", w.Yield)
	}

	if err := json.Unmarshal([]byte(`{"id":"a","yield":true}`), &w); err == nil {
		t.Fatal("expected error for boolean yield")
	}
}
