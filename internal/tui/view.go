package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifelog-cli/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHabits:
		content = m.viewHabits()
	case StateTasks:
		content = m.viewTasks()
	case StateJournal:
		content = m.viewJournal()
	case StateChat:
		content = m.viewChat()
	}

	sections := []string{
		headerStyle.Render("lifelog") + "  " + m.snap.Mood,
		m.viewTabs(),
		docStyle.Render(content),
	}
	if m.adding {
		sections = append(sections, docStyle.Render(m.input.View()))
	}
	if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Tasks", "Journal", "Chat"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewHabits() string {
	if len(m.snap.Habits) == 0 {
		return dimStyle.Render("No habits yet. Press 'a' to add one.")
	}

	var out string
	for i, h := range m.snap.Habits {
		line := fmt.Sprintf("%s %s", checkbox(h.Completed), h.Name)
		if h.Streak > 0 {
			line += "  " + streakStyle.Render(fmt.Sprintf("🔥 %d", h.Streak))
		}
		if i == m.cursor[m.state] {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		out += line + "\n"
	}
	for _, insight := range m.snap.Insights {
		out += "\n" + dimStyle.Render("💡 "+insight)
	}
	return out
}

func (m Model) viewTasks() string {
	if len(m.snap.Tasks) == 0 {
		return dimStyle.Render("No tasks yet. Press 'a' to add one.")
	}

	var out string
	for i, t := range m.snap.Tasks {
		line := fmt.Sprintf("%s %s  %s", checkbox(t.Status == constants.StatusCompleted), t.Title, dimStyle.Render(string(t.Priority)))
		if t.DueDate != nil {
			line += dimStyle.Render("  due " + t.DueDate.Format(constants.DateFormat))
		}
		if i == m.cursor[m.state] {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		out += line + "\n"
	}
	return out
}

func (m Model) viewJournal() string {
	if len(m.snap.Journals) == 0 {
		return dimStyle.Render("No journal entries yet. Press 'a' to write one.")
	}

	var out string
	for i, j := range m.snap.Journals {
		line := dimStyle.Render(j.CreatedAt.Format(constants.DateFormat)) + "  " + j.Text
		if i == m.cursor[m.state] {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		out += line + "\n"
	}
	return out
}

func (m Model) viewChat() string {
	var out string
	for _, msg := range m.snap.Messages {
		if msg.From == constants.SenderAI {
			out += coachStyle.Render("coach") + "  " + msg.Text + "\n"
		} else {
			out += headerStyle.Render("you") + "    " + msg.Text + "\n"
		}
	}
	out += "\n" + dimStyle.Render("Press 'a' to write a message.")
	return out
}
