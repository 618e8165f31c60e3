package domain

// Stats holds the monotonically increasing counters of a solve pass.
// A copy is attached to every step so players can display live counters
// without recomputation.
type Stats struct {
	Comparisons    int `json:"comparisons"`
	Swaps          int `json:"swaps"`
	HeapifyCalls   int `json:"heapifyCalls,omitempty"`
	RecursiveCalls int `json:"recursiveCalls,omitempty"`
	Products       int `json:"products,omitempty"`
}
