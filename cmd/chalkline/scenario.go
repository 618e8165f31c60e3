package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chalklab/chalkline/pkg/scenario"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenarios [dir]",
	Short: "List the scenario files in a directory",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		scenarios, err := scenario.LoadDir(dir)
		if err != nil {
			fmt.Printf("Error loading scenarios: %v\n", err)
			os.Exit(1)
		}
		if len(scenarios) == 0 {
			fmt.Println("No scenario files found.")
			return
		}

		for _, s := range scenarios {
			fmt.Printf("%-30s %s\n", s.Name, s.Algorithm)
		}
	},
}

func init() {
	rootCmd.AddCommand(scenarioCmd)
}
