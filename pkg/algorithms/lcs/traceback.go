package lcs

import (
	"fmt"

	"github.com/chalklab/chalkline/pkg/domain"
	"github.com/chalklab/chalkline/pkg/traceback"
)

type tracebackRule struct {
	table [][]int
	a, b  []rune
}

// TracebackRule returns the deterministic walk over a solved LCS table.
// At (i, j): on a character match, take the character and move diagonally;
// otherwise move to whichever of (i-1, j) / (i, j-1) holds the larger value,
// tie-breaking up. Terminates at i==0 or j==0.
func TracebackRule(table [][]int, in Input) traceback.Rule {
	return &tracebackRule{table: table, a: []rune(in.S1), b: []rune(in.S2)}
}

func (r *tracebackRule) Start() domain.Coord {
	return domain.Cell(len(r.a), len(r.b))
}

func (r *tracebackRule) Next(at domain.Coord) (traceback.Hop, bool) {
	i, j := at.Row, at.Col
	if i <= 0 || j <= 0 {
		return traceback.Hop{}, false
	}
	if r.a[i-1] == r.b[j-1] {
		ch := string(r.a[i-1])
		return traceback.Hop{
			From:  at,
			To:    domain.Cell(i-1, j-1),
			Take:  true,
			Label: ch,
			Description: fmt.Sprintf("%q matches at (%d, %d): prepend it and move diagonally to dp[%d][%d]",
				ch, i, j, i-1, j-1),
		}, true
	}
	top := r.table[i-1][j]
	left := r.table[i][j-1]
	if top >= left {
		return traceback.Hop{
			From: at,
			To:   domain.Cell(i-1, j),
			Description: fmt.Sprintf("No match at (%d, %d): top dp[%d][%d] = %d >= left dp[%d][%d] = %d, move up",
				i, j, i-1, j, top, i, j-1, left),
		}, true
	}
	return traceback.Hop{
		From: at,
		To:   domain.Cell(i, j-1),
		Description: fmt.Sprintf("No match at (%d, %d): left dp[%d][%d] = %d > top dp[%d][%d] = %d, move left",
			i, j, i, j-1, left, i-1, j, top),
	}, true
}

// Traceback walks the solved table and returns the assembled common
// subsequence.
func Traceback(table [][]int, in Input) string {
	walker := traceback.NewWalker(TracebackRule(table, in))
	out := ""
	for _, hop := range walker.Run() {
		if hop.Take {
			// Hops walk backward, so taken characters are prepended.
			out = hop.Label + out
		}
	}
	return out
}
