package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chalklab/chalkline"
	"github.com/chalklab/chalkline/internal/presentation/tui"
	"github.com/chalklab/chalkline/pkg/player"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play [algorithm]",
	Short: "Replay an algorithm step by step",
	Long: `Solves the algorithm, then steps through the recorded trace
interactively. With --tui a full-screen view redraws the board on every
step; without it a transcript-style prompt loop runs on stdin/stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := resolveScenario(cmd, args)
		if err != nil {
			return err
		}
		useTUI, _ := cmd.Flags().GetBool("tui")
		headless, _ := cmd.Flags().GetBool("headless")
		speed := sc.Interval(player.DefaultSpeed)

		engine := newEngine(cmd)
		isTTY := term.IsTerminal(int(os.Stdout.Fd()))

		if useTUI {
			if !isTTY {
				return fmt.Errorf("--tui requires a terminal")
			}
			trace, err := engine.Solve(cmd.Context(), sc.Algorithm, sc.Inputs)
			if err != nil {
				return err
			}

			rows, cols := 0, 0
			if !trace.HasSnapshots() && trace.Table != nil {
				rows, cols = len(trace.Table), len(trace.Table[0])
			}
			grid := tui.NewGridView(rows, cols)
			pl := player.New(grid)
			pl.Load(trace)
			return tui.Run(sc.Name, pl, grid, speed)
		}

		runner := chalkline.NewRunner()
		runner.Input = os.Stdin
		runner.Output = os.Stdout
		runner.Headless = headless || !isTTY
		runner.Speed = speed
		if isTTY && !headless {
			tui.PrintBanner()
			runner.Renderer = tui.NewRenderer()
		}
		return runner.Run(cmd.Context(), engine, sc.Algorithm, sc.Inputs)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	registerInputFlags(playCmd)
	playCmd.Flags().Bool("tui", false, "Full-screen interactive playback")
	playCmd.Flags().Bool("headless", false, "Replay the whole trace without prompting")
}
