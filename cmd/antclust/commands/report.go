package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/antclust/core"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f")).Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00b8ff"))
)

// renderSummary prints a per-cluster size table with proportional bars.
func renderSummary(runID, engine string, ds *core.Dataset, cl core.Clusterer) string {
	var (
		assign = cl.Assignments()
		num    = cl.NumClusters()
		sizes  = make([]int, num)
		noise  int
	)
	for _, c := range assign {
		if c < 0 {
			noise++
			continue
		}
		sizes[c]++
	}
	largest := 1
	for _, s := range sizes {
		if s > largest {
			largest = s
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("antclust") + " " + dimStyle.Render(runID) + "\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %d   %s %d\n",
		labelStyle.Render("engine:"), engine,
		labelStyle.Render("points:"), ds.Len(),
		labelStyle.Render("clusters:"), num))
	for c, s := range sizes {
		bar := strings.Repeat("█", 1+s*24/largest)
		b.WriteString(fmt.Sprintf("  %s %s %d\n",
			labelStyle.Render(fmt.Sprintf("%3d", c)), barStyle.Render(bar), s))
	}
	if noise > 0 {
		b.WriteString("  " + dimStyle.Render(fmt.Sprintf("noise %d", noise)) + "\n")
	}
	return b.String()
}
