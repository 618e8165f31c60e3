package domain

// Trace is the complete result of one solve pass: the ordered step sequence
// plus the final observable state. It is owned by the solver until returned
// and read-only thereafter.
type Trace struct {
	// Algorithm is the registry name of the solver that produced the trace.
	Algorithm string `json:"algorithm"`

	// Steps is the full step sequence in emission order.
	Steps []Step `json:"steps"`

	// Table is the completed two-dimensional result for table algorithms
	// (the DP matrix, the Strassen product matrix). Counting sort stores its
	// three derived arrays here as rows: count, cumulative, output.
	Table [][]int `json:"table,omitempty"`

	// Array is the completed one-dimensional result for array algorithms
	// (the heap array, the sorted output).
	Array []int `json:"array,omitempty"`

	// Initial is the input array before any mutation. Players adopt it when
	// stepping backward past the first snapshot.
	Initial []int `json:"initial,omitempty"`

	// Extracted is the removed maximum for heap extract operations.
	// Nil when the operation does not extract, or when the heap was empty.
	Extracted *int `json:"extracted,omitempty"`

	// Stats holds the final counter totals.
	Stats Stats `json:"stats"`
}

// HasSnapshots reports whether the trace records full array snapshots,
// which determines the player's backward-stepping strategy.
func (t *Trace) HasSnapshots() bool {
	for i := range t.Steps {
		if t.Steps[i].Snapshot != nil || t.Steps[i].MatrixSnapshot != nil {
			return true
		}
	}
	return false
}

// CloneTable returns a deep copy of a 2D table.
func CloneTable(table [][]int) [][]int {
	if table == nil {
		return nil
	}
	out := make([][]int, len(table))
	for i, row := range table {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// CloneArray returns a copy of a 1D array.
func CloneArray(arr []int) []int {
	if arr == nil {
		return nil
	}
	return append([]int(nil), arr...)
}
