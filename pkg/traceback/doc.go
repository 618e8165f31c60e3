// Package traceback reconstructs the optimal decision path from a solved DP
// table. The walk is a second, independent replay path: it consumes the
// final table through a per-algorithm Rule, not the forward step log, and
// supports the same two presentation modes as the step player: timed
// animation and monk-mode click validation.
package traceback
