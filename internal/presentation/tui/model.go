package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chalklab/chalkline/pkg/player"
)

var styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1)

type keyMap struct {
	Play   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Start  key.Binding
	End    key.Binding
	Faster key.Binding
	Slower key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Next, k.Prev, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Next, k.Prev},
		{k.Start, k.End, k.Faster, k.Slower},
		{k.Quit},
	}
}

var defaultKeys = keyMap{
	Play:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
	Next:   key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "next step")),
	Prev:   key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p/←", "previous step")),
	Start:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "rewind")),
	End:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "skip to end")),
	Faster: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
	Slower: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "slower")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type tickMsg time.Time

// Model is the interactive playback screen. The player stays paused the
// whole time; the tea loop owns the clock and calls Next on each tick so
// every frame renders from the update goroutine.
type Model struct {
	title   string
	pl      *player.Player
	grid    *GridView
	keys    keyMap
	help    help.Model
	playing bool
	speed   time.Duration
}

// NewModel builds the playback model for a loaded player and its view.
func NewModel(title string, pl *player.Player, grid *GridView, speed time.Duration) Model {
	if speed <= 0 {
		speed = player.DefaultSpeed
	}
	return Model{
		title: title,
		pl:    pl,
		grid:  grid,
		keys:  defaultKeys,
		help:  help.New(),
		speed: speed,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.speed, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.playing {
			return m, nil
		}
		m.pl.Next()
		if m.pl.Status() == player.StatusFinished {
			m.playing = false
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Play):
			if m.playing {
				m.playing = false
				return m, nil
			}
			if m.pl.Status() == player.StatusFinished {
				return m, nil
			}
			m.playing = true
			return m, m.tick()
		case key.Matches(msg, m.keys.Next):
			m.playing = false
			m.pl.Next()
		case key.Matches(msg, m.keys.Prev):
			m.playing = false
			m.pl.Prev()
		case key.Matches(msg, m.keys.Start):
			m.playing = false
			m.pl.Seek(0)
		case key.Matches(msg, m.keys.End):
			m.playing = false
			m.pl.Seek(m.pl.Len())
		case key.Matches(msg, m.keys.Faster):
			if m.speed > 50*time.Millisecond {
				m.speed /= 2
			}
		case key.Matches(msg, m.keys.Slower):
			m.speed *= 2
		}
	}
	return m, nil
}

func (m Model) View() string {
	progress := fmt.Sprintf("step %d/%d", m.pl.Cursor(), m.pl.Len())
	if m.playing {
		progress += "  ▶ " + m.speed.String()
	} else {
		progress += "  ⏸"
	}
	return styleTitle.Render(m.title) + "\n" +
		m.grid.View() + "\n" +
		styleDim.Render(progress) + "\n\n" +
		m.help.View(m.keys) + "\n"
}

// Run launches the interactive playback program on the current terminal.
func Run(title string, pl *player.Player, grid *GridView, speed time.Duration) error {
	prog := tea.NewProgram(NewModel(title, pl, grid, speed))
	_, err := prog.Run()
	return err
}
