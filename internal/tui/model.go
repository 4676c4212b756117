package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifelog-cli/internal/models"
	"github.com/julianstephens/lifelog-cli/internal/sync"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateTasks
	StateJournal
	StateChat
	stateCount
)

// Model is the dashboard root. All engine calls happen on the update
// goroutine, so the snapshot copy is refreshed after every mutation.
type Model struct {
	engine *sync.Engine
	snap   models.Snapshot

	state  SessionState
	cursor map[SessionState]int
	adding bool
	input  textinput.Model
	notice string

	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

func NewModel(engine *sync.Engine, snap models.Snapshot) Model {
	input := textinput.New()
	input.CharLimit = 500
	input.Width = 48

	return Model{
		engine: engine,
		snap:   snap,
		cursor: make(map[SessionState]int),
		input:  input,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh re-reads the engine's snapshot and clamps the cursor
func (m *Model) refresh() {
	m.snap = m.engine.Current()
	if max := m.listLen() - 1; m.cursor[m.state] > max {
		if max < 0 {
			max = 0
		}
		m.cursor[m.state] = max
	}
}

func (m Model) listLen() int {
	switch m.state {
	case StateHabits:
		return len(m.snap.Habits)
	case StateTasks:
		return len(m.snap.Tasks)
	case StateJournal:
		return len(m.snap.Journals)
	case StateChat:
		return len(m.snap.Messages)
	}
	return 0
}
