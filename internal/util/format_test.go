package util

import "testing"

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"Tarte Tatin", 20, "Tarte Tatin"},
		{"Beef Wellington", 10, "Beef We..."},
		{"Crème brûlée", 8, "Crème..."},
		{"Pho", 2, "Ph"},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.maxLen); got != tt.want {
			t.Fatalf("TruncateString(%q, %d): expected %q, got %q", tt.in, tt.maxLen, tt.want, got)
		}
	}
}

func TestTitle(t *testing.T) {
	if got := Title("search-results"); got != "Search Results" {
		t.Fatalf("expected %q, got %q", "Search Results", got)
	}
	if got := Title("home"); got != "Home" {
		t.Fatalf("expected %q, got %q", "Home", got)
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(1, "meal"); got != "1 meal" {
		t.Fatalf("expected singular, got %q", got)
	}
	if got := FormatCount(14, "meal"); got != "14 meals" {
		t.Fatalf("expected plural, got %q", got)
	}
}
