package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve [algorithm]",
	Short: "Solve an algorithm and print the trace as JSON",
	Long: `Runs the solve pass without playback and writes the full recorded
trace to stdout (or --output). Useful for piping into other tools or
diffing two runs to confirm determinism.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := resolveScenario(cmd, args)
		if err != nil {
			return err
		}

		engine := newEngine(cmd)
		trace, err := engine.Solve(cmd.Context(), sc.Algorithm, sc.Inputs)
		if err != nil {
			return err
		}

		out := os.Stdout
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(trace)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	registerInputFlags(solveCmd)
	solveCmd.Flags().StringP("output", "o", "", "Write the trace to a file instead of stdout")
	solveCmd.Flags().Bool("pretty", false, "Indent the JSON output")
}
