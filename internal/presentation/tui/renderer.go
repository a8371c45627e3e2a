package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"sortvis/pkg/step"
)

// Role colors, default fill last. Roughly the palette of the original
// visualizer: comparisons warm, writes green, pivots purple.
var roleColors = map[step.Role]string{
	step.RoleCompareLeft:  "#fbbf24",
	step.RoleCompareRight: "#f59e0b",
	step.RolePivot:        "#c084fc",
	step.RoleBoundary:     "#f472b6",
	step.RoleWritten:      "#34d399",
	step.RoleWrittenBack:  "#2dd4bf",
	step.RoleSelected:     "#38bdf8",
	step.RoleSettled:      "#64748b",
}

const defaultColor = "#818cf8"

// BarRenderer draws a step snapshot as horizontal bars, one element per
// line, width proportional to value, fill color by role.
type BarRenderer struct {
	profile termenv.Profile
	width   int
}

// NewBarRenderer detects the color profile and terminal width. Falls
// back to 80 columns when stdout is not a terminal.
func NewBarRenderer() *BarRenderer {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	return &BarRenderer{
		profile: termenv.ColorProfile(),
		width:   width,
	}
}

// Render returns the full multi-line frame for one step.
func (r *BarRenderer) Render(s step.State) string {
	if len(s.Result) == 0 {
		return "(empty array)\n"
	}
	maxVal := s.Result[0]
	for _, v := range s.Result {
		if v > maxVal {
			maxVal = v
		}
	}

	// Leave room for the "nnn " value prefix.
	barSpace := r.width - 5
	if barSpace < 8 {
		barSpace = 8
	}

	var b strings.Builder
	for i, v := range s.Result {
		n := 1
		if maxVal > 0 {
			n = 1 + v*(barSpace-1)/maxVal
		}
		bar := strings.Repeat("█", n)

		color := defaultColor
		if c, ok := roleColors[s.Role(i)]; ok {
			color = c
		}
		fmt.Fprintf(&b, "%3d %s\n", v,
			termenv.String(bar).Foreground(r.profile.Color(color)))
	}
	return b.String()
}
