package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// registerInputFlags adds the per-algorithm input flags shared by the
// play, monk, solve and traceback commands.
func registerInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("scenario", "", "YAML scenario file (overrides input flags)")
	cmd.Flags().String("array", "", "Comma-separated array (heap, countsort)")
	cmd.Flags().Int("capacity", 0, "Knapsack capacity")
	cmd.Flags().String("weights", "", "Comma-separated knapsack weights")
	cmd.Flags().String("values", "", "Comma-separated knapsack values")
	cmd.Flags().String("s1", "", "First string (lcs)")
	cmd.Flags().String("s2", "", "Second string (lcs)")
	cmd.Flags().String("op", "build", "Heap operation: build, extract, insert")
	cmd.Flags().Int("insert", 0, "Value for the heap insert operation")
	cmd.Flags().String("matrix-a", "", "Left matrix as JSON, e.g. [[1,2],[3,4]] (strassen)")
	cmd.Flags().String("matrix-b", "", "Right matrix as JSON (strassen)")
}

// parseInputFlags collects whatever input flags were set into the loose
// map the solvers decode. Unused keys are harmless; each solver picks the
// fields it knows.
func parseInputFlags(cmd *cobra.Command) (map[string]any, error) {
	inputs := map[string]any{}

	for _, name := range []string{"array", "weights", "values"} {
		raw, _ := cmd.Flags().GetString(name)
		if raw == "" {
			continue
		}
		ints, err := parseIntList(raw)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", name, err)
		}
		inputs[name] = ints
	}

	if cmd.Flags().Changed("capacity") {
		capacity, _ := cmd.Flags().GetInt("capacity")
		inputs["capacity"] = capacity
	}
	for _, name := range []string{"s1", "s2"} {
		if s, _ := cmd.Flags().GetString(name); s != "" {
			inputs[name] = s
		}
	}
	if cmd.Flags().Changed("op") {
		op, _ := cmd.Flags().GetString("op")
		inputs["operation"] = op
	}
	if cmd.Flags().Changed("insert") {
		v, _ := cmd.Flags().GetInt("insert")
		inputs["insertValue"] = v
	}

	for flag, key := range map[string]string{"matrix-a": "matrixA", "matrix-b": "matrixB"} {
		raw, _ := cmd.Flags().GetString(flag)
		if raw == "" {
			continue
		}
		var m [][]int
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, fmt.Errorf("--%s: %w", flag, err)
		}
		inputs[key] = m
	}

	return inputs, nil
}

func parseIntList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", p)
		}
		out = append(out, v)
	}
	return out, nil
}
