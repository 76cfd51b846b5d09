package ui

import (
	"fmt"

	"cgol/internal/core"
)

// Lines flattens a parameter snapshot into HUD text, one group header
// followed by its "label: value" rows.
func Lines(snap core.ParameterSnapshot) []string {
	var lines []string
	for i, g := range snap.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", label, p.Value))
		}
	}
	return lines
}
