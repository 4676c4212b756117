package models

// Habit represents a recurring practice tracked day by day
type Habit struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Streak    int    `json:"streak"`
	Category  string `json:"category,omitempty"`
}

// Toggle flips the completed flag and adjusts the streak: off->on adds one,
// on->off removes one, floored at zero. The counter is toggle-driven rather
// than date-driven; repeated same-day toggles move it up and down
// symmetrically.
func (h *Habit) Toggle() {
	h.Completed = !h.Completed
	if h.Completed {
		h.Streak++
	} else if h.Streak > 0 {
		h.Streak--
	}
}
