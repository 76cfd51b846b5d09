package ui

import (
	"slices"
	"testing"

	"cgol/internal/core"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "State", Params: []core.Parameter{
			{Key: "generation", Label: "Generation", Value: "12"},
			{Key: "color", Value: "3"},
		}},
		{Name: "Totals", Params: []core.Parameter{{Key: "frames", Label: "Frames", Value: "99"}}},
	}}
	want := []string{"State", "  Generation: 12", "  color: 3", "", "Totals", "  Frames: 99"}
	if got := Lines(snap); !slices.Equal(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
	if got := Lines(core.ParameterSnapshot{}); len(got) != 0 {
		t.Fatalf("empty snapshot produced %q", got)
	}
}
