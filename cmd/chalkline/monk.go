package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chalklab/chalkline/pkg/algorithms/countsort"
	"github.com/chalklab/chalkline/pkg/algorithms/heap"
	"github.com/chalklab/chalkline/pkg/algorithms/knapsack"
	"github.com/chalklab/chalkline/pkg/algorithms/lcs"
	"github.com/chalklab/chalkline/pkg/domain"
	"github.com/chalklab/chalkline/pkg/monk"
)

// monkCmd represents the monk command
var monkCmd = &cobra.Command{
	Use:   "monk [algorithm]",
	Short: "Practice an algorithm by filling in the answers yourself",
	Long: `Monk mode solves the algorithm silently and then quizzes you against
the answer key. Table algorithms (knapsack, lcs) accept cells in any
order; heap practice gates on the exact next swap; counting sort unlocks
its three phases one full check at a time.`,
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

		in := bufio.NewScanner(os.Stdin)
		out := os.Stdout

		switch sc.Algorithm {
		case knapsack.Name, lcs.Name:
			return monkTable(in, out, trace)
		case heap.Name:
			return monkSwaps(in, out, trace)
		case countsort.Name:
			return monkPhased(in, out, trace)
		default:
			return fmt.Errorf("no monk mode for %q", sc.Algorithm)
		}
	},
}

func init() {
	rootCmd.AddCommand(monkCmd)
	registerInputFlags(monkCmd)
}

func monkTable(in *bufio.Scanner, out *os.File, trace *domain.Trace) error {
	v := monk.NewTableValidator(trace.Algorithm, trace.Table)
	fmt.Fprintf(out, "Fill the %dx%d table (row 0 and column 0 are given as 0).\n",
		len(trace.Table), len(trace.Table[0]))
	fmt.Fprintln(out, "commands: <row> <col> <value>, check, quit")

	for prompt(out) && in.Scan() {
		fields := strings.Fields(in.Text())
		switch {
		case len(fields) == 0:
			continue
		case fields[0] == "quit" || fields[0] == "q":
			return nil
		case fields[0] == "check":
			p := v.Check()
			fmt.Fprintf(out, "score %d/%d\n", p.Score, p.Total)
			if p.Complete {
				fmt.Fprintln(out, "table complete, well done")
				return nil
			}
		case len(fields) == 3:
			r, err1 := strconv.Atoi(fields[0])
			c, err2 := strconv.Atoi(fields[1])
			val, err3 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil || err3 != nil {
				fmt.Fprintln(out, "usage: <row> <col> <value>")
				continue
			}
			if !v.Editable(domain.Cell(r, c)) {
				fmt.Fprintln(out, "that cell is not editable")
				continue
			}
			if v.Submit(domain.Cell(r, c), val) {
				fmt.Fprintln(out, "correct")
			} else {
				fmt.Fprintln(out, "incorrect, try again")
			}
		default:
			fmt.Fprintln(out, "commands: <row> <col> <value>, check, quit")
		}
	}
	return nil
}

func monkSwaps(in *bufio.Scanner, out *os.File, trace *domain.Trace) error {
	expected := heap.ExpectedSwaps(trace, domain.PhaseBuild)
	v := monk.NewSwapValidator(trace.Algorithm, expected, trace.Initial)

	fmt.Fprintf(out, "Build the max-heap: %v\n", v.Array())
	fmt.Fprintln(out, "commands: <i> <j> (swap indices), show, check, quit")

	for !v.Done() && prompt(out) && in.Scan() {
		fields := strings.Fields(in.Text())
		switch {
		case len(fields) == 0:
			continue
		case fields[0] == "quit" || fields[0] == "q":
			return nil
		case fields[0] == "show":
			fmt.Fprintf(out, "%v\n", v.Array())
		case fields[0] == "check":
			p := v.Check()
			fmt.Fprintf(out, "swaps %d/%d\n", p.Score, p.Total)
		case len(fields) == 2:
			a, err1 := strconv.Atoi(fields[0])
			b, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil {
				fmt.Fprintln(out, "usage: <i> <j>")
				continue
			}
			if v.ValidateSwap(a, b) {
				fmt.Fprintf(out, "correct: %v\n", v.Array())
			} else {
				fmt.Fprintln(out, "that is not the next swap, try again")
			}
		default:
			fmt.Fprintln(out, "commands: <i> <j>, show, check, quit")
		}
	}
	if v.Done() {
		fmt.Fprintf(out, "heap built in %d swaps: %v\n", v.Stats().Swaps, v.Array())
	}
	return nil
}

func monkPhased(in *bufio.Scanner, out *os.File, trace *domain.Trace) error {
	count, cumulative, output := countsort.Keys(trace.Initial)
	v := monk.NewPhasedValidator(trace.Algorithm, trace.Initial, count, cumulative, output)

	fmt.Fprintf(out, "Counting sort practice for input %v\n", v.Source())
	fmt.Fprintln(out, "commands: <index> <value>, check (whole phase), hint, quit")

	for prompt(out) && in.Scan() {
		fields := strings.Fields(in.Text())
		switch {
		case len(fields) == 0:
			continue
		case fields[0] == "quit" || fields[0] == "q":
			return nil
		case fields[0] == "hint":
			if h := v.Hint(); h != "" {
				fmt.Fprintln(out, h)
			} else {
				fmt.Fprintln(out, "phase looks complete, run check")
			}
		case fields[0] == "check":
			phase := v.Phase()
			if v.CheckPhase() {
				fmt.Fprintf(out, "%s phase complete\n", phase)
				if p := v.Check(); p.Complete {
					fmt.Fprintln(out, "all phases done, the array is sorted")
					return nil
				}
				fmt.Fprintf(out, "now fill the %s phase\n", v.Phase())
			} else {
				fmt.Fprintln(out, "the phase has wrong or missing cells")
			}
		case len(fields) == 2:
			i, err1 := strconv.Atoi(fields[0])
			val, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil {
				fmt.Fprintln(out, "usage: <index> <value>")
				continue
			}
			if v.Submit(i, val) {
				fmt.Fprintln(out, "correct")
			} else {
				fmt.Fprintln(out, "incorrect, try again")
			}
		default:
			fmt.Fprintln(out, "commands: <index> <value>, check, hint, quit")
		}
	}
	return nil
}

func prompt(out *os.File) bool {
	fmt.Fprint(out, "> ")
	return true
}
