package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chalklab/chalkline/pkg/algorithms/knapsack"
	"github.com/chalklab/chalkline/pkg/algorithms/lcs"
	"github.com/chalklab/chalkline/pkg/domain"
	"github.com/chalklab/chalkline/pkg/traceback"
)

// tracebackCmd represents the traceback command
var tracebackCmd = &cobra.Command{
	Use:   "traceback [algorithm]",
	Short: "Walk the optimal path back through a solved DP table",
	Long: `Solves the algorithm, then replays the traceback hop by hop: which
cells the walk visits, which condition it checks at each one, and what it
takes along the way. With --guess you click the next cell yourself.

Only table algorithms (knapsack, lcs) have a traceback.`,
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

		var rule traceback.Rule
		var conclude func()
		switch sc.Algorithm {
		case knapsack.Name:
			var in knapsack.Input
			if err := domain.DecodeInputs(sc.Inputs, &in); err != nil {
				return err
			}
			rule = knapsack.TracebackRule(trace.Table, in)
			conclude = func() {
				fmt.Printf("included items: %v\n", knapsack.Traceback(trace.Table, in))
			}
		case lcs.Name:
			var in lcs.Input
			if err := domain.DecodeInputs(sc.Inputs, &in); err != nil {
				return err
			}
			rule = lcs.TracebackRule(trace.Table, in)
			conclude = func() {
				fmt.Printf("longest common subsequence: %q\n", lcs.Traceback(trace.Table, in))
			}
		default:
			return fmt.Errorf("no traceback for %q", sc.Algorithm)
		}

		w := traceback.NewWalker(rule, traceback.WithLogger(newLogger(cmd)))

		if guess, _ := cmd.Flags().GetBool("guess"); guess {
			if err := guessLoop(w); err != nil {
				return err
			}
		} else {
			for _, hop := range w.Run() {
				printHop(hop)
			}
		}
		conclude()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tracebackCmd)
	registerInputFlags(tracebackCmd)
	tracebackCmd.Flags().Bool("guess", false, "Guess each next cell instead of watching")
}

func printHop(hop traceback.Hop) {
	arrow := fmt.Sprintf("(%d,%d) -> (%d,%d)", hop.From.Row, hop.From.Col, hop.To.Row, hop.To.Col)
	if hop.Take {
		fmt.Printf("%s  take %s  %s\n", arrow, hop.Label, hop.Description)
	} else {
		fmt.Printf("%s  %s\n", arrow, hop.Description)
	}
}

// guessLoop quizzes the user on each next traceback cell. Wrong guesses
// never advance the walk.
func guessLoop(w *traceback.Walker) error {
	in := bufio.NewScanner(os.Stdin)
	fmt.Printf("walk starts at (%d,%d); guess the next cell as: <row> <col>\n",
		w.Position().Row, w.Position().Col)

	for !w.Done() {
		if _, ok := w.Expected(); !ok {
			break
		}
		fmt.Print("? ")
		if !in.Scan() {
			return nil
		}
		fields := strings.Fields(in.Text())
		if len(fields) != 2 {
			fmt.Println("usage: <row> <col>")
			continue
		}
		r, err1 := strconv.Atoi(fields[0])
		c, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			fmt.Println("usage: <row> <col>")
			continue
		}
		if w.ValidateClick(domain.Cell(r, c)) {
			hops := w.Hops()
			printHop(hops[len(hops)-1])
		} else {
			fmt.Println("not the next cell on the path, try again")
		}
	}
	return nil
}
