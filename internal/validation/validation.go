package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/lifelog-cli/internal/constants"
)

const (
	// MaxNameLength bounds habit names and task titles
	MaxNameLength = 120
	// MaxTextLength bounds journal entries and chat messages
	MaxTextLength = 10000
)

// HabitName checks a habit name for presence and length
func HabitName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("habit name exceeds %d characters", MaxNameLength)
	}
	return nil
}

// JournalText checks a journal entry body
func JournalText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("journal entry cannot be empty")
	}
	if len(text) > MaxTextLength {
		return fmt.Errorf("journal entry exceeds %d characters", MaxTextLength)
	}
	return nil
}

// ChatText checks an outgoing chat message
func ChatText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("message cannot be empty")
	}
	if len(text) > MaxTextLength {
		return fmt.Errorf("message exceeds %d characters", MaxTextLength)
	}
	return nil
}

// TaskTitle checks a task title
func TaskTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	if len(title) > MaxNameLength {
		return fmt.Errorf("task title exceeds %d characters", MaxNameLength)
	}
	return nil
}

// Priority parses and checks a task priority. An empty value defaults to
// medium.
func Priority(s string) (constants.TaskPriority, error) {
	switch constants.TaskPriority(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return constants.PriorityMedium, nil
	case constants.PriorityLow:
		return constants.PriorityLow, nil
	case constants.PriorityMedium:
		return constants.PriorityMedium, nil
	case constants.PriorityHigh:
		return constants.PriorityHigh, nil
	default:
		return "", fmt.Errorf("invalid priority %q (low|medium|high)", s)
	}
}

// Status parses and checks a task status
func Status(s string) (constants.TaskStatus, error) {
	switch constants.TaskStatus(strings.ToLower(strings.TrimSpace(s))) {
	case constants.StatusPending:
		return constants.StatusPending, nil
	case constants.StatusInProgress:
		return constants.StatusInProgress, nil
	case constants.StatusCompleted:
		return constants.StatusCompleted, nil
	default:
		return "", fmt.Errorf("invalid status %q (pending|in-progress|completed)", s)
	}
}

// ThemeName parses and checks a display theme
func ThemeName(s string) (constants.Theme, error) {
	switch constants.Theme(strings.ToLower(strings.TrimSpace(s))) {
	case constants.ThemeLight:
		return constants.ThemeLight, nil
	case constants.ThemeDark:
		return constants.ThemeDark, nil
	default:
		return "", fmt.Errorf("invalid theme %q (light|dark)", s)
	}
}

// Date parses a YYYY-MM-DD value
func Date(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// Email performs a light shape check on a login email
func Email(s string) error {
	s = strings.TrimSpace(s)
	at := strings.Index(s, "@")
	if at < 1 || at == len(s)-1 || !strings.Contains(s[at+1:], ".") {
		return fmt.Errorf("invalid email address %q", s)
	}
	return nil
}

// Page checks a page number and size for journal listings
func Page(page, size int) error {
	if page < 1 {
		return fmt.Errorf("page must be at least 1")
	}
	if size < 1 || size > 100 {
		return fmt.Errorf("page size must be between 1 and 100")
	}
	return nil
}
