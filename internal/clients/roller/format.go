package roller

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatGroups renders the roll breakdown for display, one line per
// die group. Dies with a modifier show the contribution as
// "die + mod = adjusted"; unmodified groups show the raw values.
func FormatGroups(groups []RollGroup) string {
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, formatGroup(g))
	}
	return strings.Join(lines, "\n")
}

func formatGroup(g RollGroup) string {
	parts := make([]string, 0, len(g.Results))

	if len(g.Mods) == 0 {
		for _, r := range g.Results {
			parts = append(parts, strconv.Itoa(r))
		}
	} else {
		for i, r := range g.Results {
			mod := 0
			if i < len(g.Mods) {
				mod = g.Mods[i]
			}
			parts = append(parts, fmt.Sprintf("%d %+d = %d", r, mod, r+mod))
		}
	}

	return fmt.Sprintf("🎲 **%s**: [%s] = **%d**", g.Info, strings.Join(parts, ", "), g.Total)
}
