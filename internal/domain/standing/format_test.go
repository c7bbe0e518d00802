package standing

import (
	"math"
	"testing"
)

func TestFormatPlayerDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "Player"},
		{in: "   \t ", want: "Player"},
		{in: "pelé", want: "Pelé"},
		{in: "lionel messi", want: "Lionel M."},
		{in: "  maria   lopez  garcia ", want: "Maria G."},
		{in: "Jean-Luc van der berg", want: "Jean-Luc B."},
		{in: "émile zola", want: "Émile Z."},
	}

	for _, tt := range tests {
		if got := FormatPlayerDisplayName(tt.in); got != tt.want {
			t.Fatalf("FormatPlayerDisplayName(%q)=%q want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    float64
		decimals int
		want     string
	}{
		{value: 3, decimals: 2, want: "3"},
		{value: 2.5, decimals: 2, want: "2.50"},
		{value: 0.67, decimals: 2, want: "0.67"},
		{value: 1.333, decimals: 1, want: "1.3"},
		{value: 4, decimals: 0, want: "4"},
		{value: 1.25, decimals: -1, want: "1.25"},
		{value: math.NaN(), decimals: 2, want: "0"},
		{value: math.Inf(1), decimals: 2, want: "0"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.value, tt.decimals); got != tt.want {
			t.Fatalf("FormatNumber(%v, %d)=%q want %q", tt.value, tt.decimals, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()

	if got := Round2(2.0 / 3.0); got != 0.67 {
		t.Fatalf("Round2(2/3)=%v", got)
	}
	if got := Round2(0.125); got != 0.13 {
		t.Fatalf("Round2(0.125)=%v", got)
	}
}
