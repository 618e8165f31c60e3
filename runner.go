package chalkline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chalklab/chalkline/pkg/domain"
	"github.com/chalklab/chalkline/pkg/player"
)

// Runner handles the interactive playback loop using provided IO.
// This allows for easy testing and integration with different frontends (CLI, TUI, etc).
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer ContentRenderer
	Speed    time.Duration
}

// ContentRenderer is a function that transforms step descriptions before
// outputting them. This allows for TUI rendering (markdown to ANSI) without
// coupling the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a new Runner. The caller sets Input/Output explicitly
// (use os.Stdin / os.Stdout for a real terminal).
func NewRunner() *Runner {
	return &Runner{
		Speed: player.DefaultSpeed,
	}
}

// Run solves the algorithm and steps through its trace until termination.
// Headless mode replays the whole trace without prompting, one line per step.
func (r *Runner) Run(ctx context.Context, engine *Engine, algorithm string, inputs map[string]any) error {
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	if !r.Headless && r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}

	trace, err := engine.Solve(ctx, algorithm, inputs)
	if err != nil {
		return err
	}

	sink := &lineSink{writer: r.Output, renderer: r.Renderer}
	pl := player.New(sink)
	pl.Load(trace)

	if r.Headless {
		for pl.Status() != player.StatusFinished && pl.Status() != player.StatusIdle {
			pl.Next()
		}
		r.printSummary(trace)
		return nil
	}

	fmt.Fprintf(r.Output, "--- chalkline: %s (%d steps) ---\n", algorithm, len(trace.Steps))
	fmt.Fprintln(r.Output, "enter=next  p=prev  a=auto  s N=seek  q=quit")

	lineReader := bufio.NewReader(r.Input)
	for {
		fmt.Fprintf(r.Output, "[%d/%d] > ", pl.Cursor(), pl.Len())
		text, err := lineReader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("input error: %w", err)
		}

		input := strings.TrimSpace(text)
		switch {
		case input == "" || input == "n" || input == "next":
			pl.Next()
		case input == "p" || input == "prev":
			pl.Prev()
		case input == "a" || input == "auto":
			for pl.Status() != player.StatusFinished {
				pl.Next()
				time.Sleep(r.Speed)
			}
		case strings.HasPrefix(input, "s "):
			i, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(input, "s ")))
			if err != nil {
				fmt.Fprintln(r.Output, "usage: s <step>")
				continue
			}
			pl.Seek(i)
		case input == "q" || input == "quit" || input == "exit":
			fmt.Fprintln(r.Output, "Bye!")
			return nil
		default:
			fmt.Fprintf(r.Output, "unknown command %q\n", input)
		}

		if pl.Status() == player.StatusFinished {
			r.printSummary(trace)
			return nil
		}
	}
	return nil
}

func (r *Runner) printSummary(trace *domain.Trace) {
	fmt.Fprintf(r.Output, "finished: %d steps", len(trace.Steps))
	if trace.Extracted != nil {
		fmt.Fprintf(r.Output, ", extracted %d", *trace.Extracted)
	}
	fmt.Fprintln(r.Output)
}

// lineSink is a transcript-style render sink: each applied step becomes a
// few lines of output instead of a redraw. Used by the plain runner; the
// full-screen grid lives in the TUI layer.
type lineSink struct {
	writer   io.Writer
	renderer ContentRenderer
}

func (s *lineSink) Clear() {}

func (s *lineSink) Highlight(target domain.Coord, deps []domain.Coord) {
	if len(deps) == 0 {
		return
	}
	parts := make([]string, len(deps))
	for i, d := range deps {
		parts[i] = fmt.Sprintf("(%d,%d)", d.Row, d.Col)
	}
	fmt.Fprintf(s.writer, "  looking at %s\n", strings.Join(parts, " "))
}

func (s *lineSink) SetValue(c domain.Coord, v *int) {
	if v == nil {
		return
	}
	fmt.Fprintf(s.writer, "  [%d][%d] = %d\n", c.Row, c.Col, *v)
}

func (s *lineSink) SetArray(phase string, snapshot []int) {
	if phase == "" {
		fmt.Fprintf(s.writer, "  %v\n", snapshot)
		return
	}
	fmt.Fprintf(s.writer, "  %s: %v\n", phase, snapshot)
}

func (s *lineSink) SetMatrix(snapshot [][]int) {
	for _, row := range snapshot {
		fmt.Fprintf(s.writer, "  %v\n", row)
	}
}

func (s *lineSink) Status(text string) {
	if text == "" {
		return
	}
	if s.renderer != nil {
		if rendered, err := s.renderer(text); err == nil {
			text = strings.TrimSpace(rendered)
		}
	}
	fmt.Fprintln(s.writer, text)
}

func (s *lineSink) Stats(domain.Stats) {}
