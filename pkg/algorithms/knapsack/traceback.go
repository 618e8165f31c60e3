package knapsack

import (
	"fmt"
	"sort"

	"github.com/chalklab/chalkline/pkg/domain"
	"github.com/chalklab/chalkline/pkg/traceback"
)

type tracebackRule struct {
	table [][]int
	in    Input
}

// TracebackRule returns the deterministic walk over a solved knapsack table.
// At (i, w): if dp[i][w] != dp[i-1][w] the item was included, so move to
// (i-1, w-weights[i-1]); otherwise move to (i-1, w). Terminates at i==0 or w==0.
func TracebackRule(table [][]int, in Input) traceback.Rule {
	return &tracebackRule{table: table, in: in}
}

func (r *tracebackRule) Start() domain.Coord {
	return domain.Cell(len(r.table)-1, len(r.table[0])-1)
}

func (r *tracebackRule) Next(at domain.Coord) (traceback.Hop, bool) {
	i, w := at.Row, at.Col
	if i <= 0 || w <= 0 {
		return traceback.Hop{}, false
	}
	if r.table[i][w] != r.table[i-1][w] {
		weight := r.in.Weights[i-1]
		to := domain.Cell(i-1, w-weight)
		return traceback.Hop{
			From:  at,
			To:    to,
			Take:  true,
			Label: fmt.Sprintf("item %d", i),
			Description: fmt.Sprintf("dp[%d][%d] = %d differs from dp[%d][%d] = %d: item %d included, move to dp[%d][%d]",
				i, w, r.table[i][w], i-1, w, r.table[i-1][w], i, i-1, w-weight),
		}, true
	}
	return traceback.Hop{
		From: at,
		To:   domain.Cell(i-1, w),
		Description: fmt.Sprintf("dp[%d][%d] = dp[%d][%d] = %d: item %d excluded, move up",
			i, w, i-1, w, r.table[i][w], i),
	}, true
}

// Traceback walks the solved table and returns the zero-based indices of
// the included items in ascending order.
func Traceback(table [][]int, in Input) []int {
	walker := traceback.NewWalker(TracebackRule(table, in))
	var items []int
	for _, hop := range walker.Run() {
		if hop.Take {
			items = append(items, hop.From.Row-1)
		}
	}
	sort.Ints(items)
	return items
}
