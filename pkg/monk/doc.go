// Package monk implements the interactive practice validators. Three
// strategies coexist deliberately: free-form table editing (knapsack, LCS),
// strictly gated sequential swaps (heap) and phase-locked cell filling with
// hints (counting sort). They encode different pedagogical intents, from
// open exploration to enforced ordering, and share only the ProgressChecker
// surface. Wrong answers are never errors; monk mode exists to tolerate them.
package monk
