package main

import "testing"

func TestBasisLabel(t *testing.T) {
	tests := []struct {
		value int
		width int
		want  string
	}{
		{0, 1, "0"},
		{1, 1, "1"},
		{0, 3, "000"},
		{1, 3, "100"}, // qubit 0 is the least-significant bit
		{2, 3, "010"},
		{4, 3, "001"},
		{5, 3, "101"},
		{7, 3, "111"},
		{6, 4, "0110"},
	}

	for _, tt := range tests {
		if got := BasisLabel(tt.value, tt.width); got != tt.want {
			t.Errorf("BasisLabel(%d, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
		}
	}
}

func TestBasisLabelRoundTrip(t *testing.T) {
	for width := 1; width <= 6; width++ {
		for value := 0; value < 1<<width; value++ {
			label := BasisLabel(value, width)
			if len(label) != width {
				t.Fatalf("BasisLabel(%d, %d): label %q has wrong width", value, width, label)
			}
			got, err := ParseBasisLabel(label)
			if err != nil {
				t.Fatalf("ParseBasisLabel(%q): %v", label, err)
			}
			if got != value {
				t.Errorf("round trip %d → %q → %d (width %d)", value, label, got, width)
			}
		}
	}
}
