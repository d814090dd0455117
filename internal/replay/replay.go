// Package replay implements an optional bubbletea step-through viewer
// for a solved game: replaying the solution move by move over the
// initial state (cmd/solitaire-play's -step flag), in the same
// tea.Model shape the teacher uses for its interactive screens.
package replay

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/herbhall/solitaire-solver/internal/gamestate"
	"github.com/herbhall/solitaire-solver/internal/moves"
	"github.com/herbhall/solitaire-solver/internal/render"
)

// Model is the step-through viewer's tea.Model. It owns a private
// replay of the state sequence, not the solver's own state.
type Model struct {
	initial  *gamestate.State
	solution []moves.Move
	step     int // number of moves applied so far
	current  *gamestate.State
	width    int
	height   int
	done     bool
}

// New builds a viewer starting at the initial (unsolved) state.
func New(initial *gamestate.State, solution []moves.Move) Model {
	return Model{
		initial:  initial,
		solution: solution,
		current:  initial.Clone(),
	}
}

// Init returns nil; no initial command needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles step navigation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "right", "n", " ":
			if m.step < len(m.solution) {
				moves.Apply(m.current, m.solution[m.step])
				m.step++
			}
		case "left", "p":
			if m.step > 0 {
				m.step--
				m.current = m.replayTo(m.step)
			}
		case "g":
			m.step = len(m.solution)
			m.current = m.replayTo(m.step)
		case "0":
			m.step = 0
			m.current = m.initial.Clone()
		case "q", "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// replayTo rebuilds the board at a given step by replaying from the
// initial state; simplest correct approach given how cheap Apply is
// over a 52-card board.
func (m Model) replayTo(step int) *gamestate.State {
	s := m.initial.Clone()
	for i := 0; i < step; i++ {
		moves.Apply(s, m.solution[i])
	}
	return s
}

// Done returns true once the viewer should exit.
func (m Model) Done() bool {
	return m.done
}

// View renders the board at the current step plus navigation hints.
func (m Model) View() string {
	header := fmt.Sprintf("Step %d / %d", m.step, len(m.solution))
	hint := render.Footer("n/right: next   p/left: prev   g: end   0: start   q: quit")
	return header + "\n\n" + render.Board(m.current) + "\n" + hint
}
