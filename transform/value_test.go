package transform

import "testing"

func TestCanonicalBitString(t *testing.T) {
	tests := []struct {
		caption string
		raw     string
		want    string
	}{
		{"no whitespace", "1010", "0b1010"},
		{"embedded whitespace stripped", "10 10", "0b1010"},
		{"preserves length", "00001", "0b00001"},
		{"empty string", "", "0b"},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if got := canonicalBitString(tt.raw); got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCanonicalHexString(t *testing.T) {
	tests := []struct {
		caption string
		raw     string
		want    string
	}{
		{"lowercased", "DEAD", "0xdead"},
		{"embedded whitespace stripped", "DE AD", "0xdead"},
		{"already lowercase", "beef", "0xbeef"},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if got := canonicalHexString(tt.raw); got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseIntText(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"0", 0},
		{"42", 42},
		{"-7", -7},
	}
	for _, tt := range tests {
		if got := parseIntText(tt.raw); got != tt.want {
			t.Fatalf("parseIntText(%q): want %d, got %d", tt.raw, tt.want, got)
		}
	}
}
