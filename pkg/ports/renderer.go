package ports

import "github.com/chalklab/chalkline/pkg/domain"

// RenderSink is the command surface the player drives on each transition.
// The engine never touches presentation state directly; hosts implement
// this interface (terminal view, test recorder, remote bridge) and project
// the commands however they like.
type RenderSink interface {
	// Clear resets all highlight state before a new step is applied.
	Clear()

	// Highlight marks the target coordinate and its dependency coordinates.
	Highlight(target domain.Coord, deps []domain.Coord)

	// SetValue writes the displayed value at a coordinate.
	// Nil means "pending" (inspect steps).
	SetValue(c domain.Coord, v *int)

	// SetArray replaces the displayed array state (snapshot families).
	SetArray(phase string, snapshot []int)

	// SetMatrix replaces the displayed matrix state (Strassen).
	SetMatrix(snapshot [][]int)

	// Status updates the human-readable status line.
	Status(text string)

	// Stats updates the displayed counters.
	Stats(s domain.Stats)
}
