/*
Package chalkline is a deterministic step-recording and replay engine for
animating classic algorithms: 0/1 knapsack, longest common subsequence,
binary max-heap operations, counting sort and Strassen matrix multiplication.

It separates the solve pass (Logic) from playback (Presentation) and
student interaction (Monk mode). A solver runs the algorithm to completion
and records an immutable step trace; a player walks that trace forward and
backward against any render sink. This Hexagonal Architecture allows
chalkline to be embedded in any interface: CLI, TUI, or HTTP server.

# Key Features

  - Deterministic Traces: Given the same inputs, a solver always records
    the identical step sequence.
  - Full-State Snapshots: Array and matrix algorithms snapshot their whole
    state per step, so backward stepping is a lookup, not an undo.
  - Monk Mode: Validators gate student answers cell-by-cell, swap-by-swap
    or phase-by-phase, with derivable hints.
  - Traceback: Solved DP tables replay their optimal path hop by hop, with
    click validation for guessing games.

# Usage

Initialize the engine, solve, and drive a player:

	package main

	import (
		"context"
		"log"

		"github.com/chalklab/chalkline"
		"github.com/chalklab/chalkline/pkg/player"
	)

	func main() {
		eng := chalkline.New()

		trace, err := eng.Solve(context.Background(), "knapsack", map[string]any{
			"capacity": 5,
			"weights":  []int{2, 3, 4},
			"values":   []int{3, 4, 5},
		})
		if err != nil {
			log.Fatal(err)
		}

		pl := player.New(mySink{})
		pl.Load(trace)
		for pl.Status() != player.StatusFinished {
			pl.Next()
		}
	}

For a ready-made loop over stdin/stdout, see Runner.
*/
package chalkline
