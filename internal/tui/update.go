package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifelog-cli/internal/sync"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % stateCount
		m.notice = ""

	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state - 1 + stateCount) % stateCount
		m.notice = ""

	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.state] > 0 {
			m.cursor[m.state]--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.state] < m.listLen()-1 {
			m.cursor[m.state]++
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.input.SetValue("")
		m.input.Placeholder = m.addPlaceholder()
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.toggleSelected()

	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()
	}
	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.adding = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		text := m.input.Value()
		m.adding = false
		m.input.Blur()
		if text != "" {
			m.submit(text)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) addPlaceholder() string {
	switch m.state {
	case StateHabits:
		return "New habit name"
	case StateTasks:
		return "New task title"
	case StateJournal:
		return "What's on your mind?"
	case StateChat:
		return "Message the coach"
	}
	return ""
}

func (m *Model) submit(text string) {
	ctx := context.Background()
	var res sync.Result
	switch m.state {
	case StateHabits:
		_, res = m.engine.AddHabit(ctx, text)
	case StateTasks:
		_, res = m.engine.AddTask(ctx, text, "", "", nil)
	case StateJournal:
		_, res = m.engine.AddJournal(ctx, text)
	case StateChat:
		_, res = m.engine.SendChatMessage(ctx, text)
	}
	m.notice = res.Notice
	m.refresh()
}

func (m *Model) toggleSelected() {
	ctx := context.Background()
	var res sync.Result
	switch m.state {
	case StateHabits:
		if i := m.cursor[m.state]; i < len(m.snap.Habits) {
			_, res = m.engine.ToggleHabit(ctx, m.snap.Habits[i].ID)
		}
	case StateTasks:
		if i := m.cursor[m.state]; i < len(m.snap.Tasks) {
			_, res = m.engine.ToggleTask(ctx, m.snap.Tasks[i].ID)
		}
	default:
		return
	}
	m.notice = res.Notice
	m.refresh()
}

func (m *Model) deleteSelected() {
	ctx := context.Background()
	var res sync.Result
	switch m.state {
	case StateHabits:
		if i := m.cursor[m.state]; i < len(m.snap.Habits) {
			res = m.engine.DeleteHabit(ctx, m.snap.Habits[i].ID)
		}
	case StateTasks:
		if i := m.cursor[m.state]; i < len(m.snap.Tasks) {
			res = m.engine.DeleteTask(ctx, m.snap.Tasks[i].ID)
		}
	case StateJournal:
		if i := m.cursor[m.state]; i < len(m.snap.Journals) {
			res = m.engine.DeleteJournal(ctx, m.snap.Journals[i].ID)
		}
	default:
		return
	}
	m.notice = res.Notice
	m.refresh()
}
