package tui

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/chalklab/chalkline/pkg/domain"
)

var (
	styleTarget = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	styleDep    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleStatus = lipgloss.NewStyle().Italic(true)
)

// GridView is a terminal projection of playback state. It implements
// ports.RenderSink for all three display families: DP tables render as a
// labeled grid, array algorithms as one row per phase, Strassen as a
// result matrix. Safe for concurrent use; the player ticks from a timer
// goroutine while the host reads View.
type GridView struct {
	mu sync.Mutex

	rows, cols int
	rowLabels  []string
	colLabels  []string
	cells      map[[2]int]*int

	phaseOrder []string
	arrays     map[string][]int

	matrix [][]int

	target domain.Coord
	deps   []domain.Coord
	active bool

	status string
	stats  domain.Stats
}

// NewGridView creates a view sized for a table algorithm. Zero dims are
// fine for array and matrix families; the grid section simply stays empty.
func NewGridView(rows, cols int) *GridView {
	return &GridView{
		rows:   rows,
		cols:   cols,
		cells:  map[[2]int]*int{},
		arrays: map[string][]int{},
	}
}

// SetLabels attaches axis labels to the grid (item rows, capacity columns,
// string characters). Either slice may be nil.
func (g *GridView) SetLabels(rowLabels, colLabels []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rowLabels = rowLabels
	g.colLabels = colLabels
}

func (g *GridView) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = false
	g.deps = nil
}

func (g *GridView) Highlight(target domain.Coord, deps []domain.Coord) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.target = target
	g.deps = deps
	g.active = true
}

func (g *GridView) SetValue(c domain.Coord, v *int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if v == nil {
		delete(g.cells, [2]int{c.Row, c.Col})
		return
	}
	val := *v
	g.cells[[2]int{c.Row, c.Col}] = &val
}

func (g *GridView) SetArray(phase string, snapshot []int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, seen := g.arrays[phase]; !seen {
		g.phaseOrder = append(g.phaseOrder, phase)
	}
	g.arrays[phase] = append([]int(nil), snapshot...)
}

func (g *GridView) SetMatrix(snapshot [][]int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	m := make([][]int, len(snapshot))
	for i, row := range snapshot {
		m[i] = append([]int(nil), row...)
	}
	g.matrix = m
}

func (g *GridView) Status(text string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = text
}

func (g *GridView) Stats(s domain.Stats) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stats = s
}

func (g *GridView) isTarget(r, c int) bool {
	return g.active && g.target.Row == r && g.target.Col == c
}

func (g *GridView) isDep(r, c int) bool {
	if !g.active {
		return false
	}
	for _, d := range g.deps {
		if d.Row == r && d.Col == c {
			return true
		}
	}
	return false
}

// View renders the whole projection as a string.
func (g *GridView) View() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder

	if g.rows > 0 && g.cols > 0 {
		g.renderGrid(&b)
	}
	if len(g.arrays) > 0 {
		g.renderArrays(&b)
	}
	if g.matrix != nil {
		g.renderMatrix(&b)
	}

	if g.status != "" {
		b.WriteString(styleStatus.Render(g.status))
		b.WriteString("\n")
	}
	b.WriteString(styleDim.Render(formatStats(g.stats)))
	b.WriteString("\n")
	return b.String()
}

func (g *GridView) renderGrid(b *strings.Builder) {
	if g.colLabels != nil {
		b.WriteString(styleLabel.Render(fmt.Sprintf("%6s", "")))
		for c := 0; c < g.cols; c++ {
			b.WriteString(styleLabel.Render(fmt.Sprintf("%5s", label(g.colLabels, c))))
		}
		b.WriteString("\n")
	}
	for r := 0; r < g.rows; r++ {
		b.WriteString(styleLabel.Render(fmt.Sprintf("%6s", label(g.rowLabels, r))))
		for c := 0; c < g.cols; c++ {
			text := "    ."
			if v, ok := g.cells[[2]int{r, c}]; ok {
				text = fmt.Sprintf("%5d", *v)
			}
			switch {
			case g.isTarget(r, c):
				text = styleTarget.Render(text)
			case g.isDep(r, c):
				text = styleDep.Render(text)
			}
			b.WriteString(text)
		}
		b.WriteString("\n")
	}
}

func (g *GridView) renderArrays(b *strings.Builder) {
	// Unnamed phase first, then named phases in first-seen order.
	order := append([]string(nil), g.phaseOrder...)
	sort.SliceStable(order, func(i, j int) bool { return order[i] == "" && order[j] != "" })

	for _, phase := range order {
		name := phase
		if name == "" {
			name = "array"
		}
		b.WriteString(styleLabel.Render(fmt.Sprintf("%-12s", name)))
		for i, v := range g.arrays[phase] {
			text := fmt.Sprintf("%4d", v)
			switch {
			case g.isTarget(0, i):
				text = styleTarget.Render(text)
			case g.isDep(0, i):
				text = styleDep.Render(text)
			}
			b.WriteString(text)
		}
		b.WriteString("\n")
	}
}

func (g *GridView) renderMatrix(b *strings.Builder) {
	b.WriteString(styleLabel.Render("result"))
	b.WriteString("\n")
	for _, row := range g.matrix {
		for _, v := range row {
			b.WriteString(fmt.Sprintf("%6d", v))
		}
		b.WriteString("\n")
	}
}

func formatStats(s domain.Stats) string {
	parts := []string{}
	if s.Comparisons > 0 {
		parts = append(parts, fmt.Sprintf("comparisons=%d", s.Comparisons))
	}
	if s.Swaps > 0 {
		parts = append(parts, fmt.Sprintf("swaps=%d", s.Swaps))
	}
	if s.HeapifyCalls > 0 {
		parts = append(parts, fmt.Sprintf("heapify=%d", s.HeapifyCalls))
	}
	if s.RecursiveCalls > 0 {
		parts = append(parts, fmt.Sprintf("recursive=%d", s.RecursiveCalls))
	}
	if s.Products > 0 {
		parts = append(parts, fmt.Sprintf("products=%d", s.Products))
	}
	if len(parts) == 0 {
		return "counters: none yet"
	}
	return "counters: " + strings.Join(parts, " ")
}

func label(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return fmt.Sprintf("%d", i)
}
