package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chalklab/chalkline"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of chalkline",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chalkline version %s\n", strings.TrimSpace(chalkline.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
