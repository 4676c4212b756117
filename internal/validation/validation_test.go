package validation

import (
	"strings"
	"testing"

	"github.com/julianstephens/lifelog-cli/internal/constants"
)

func TestHabitName(t *testing.T) {
	if err := HabitName("Read 30 mins"); err != nil {
		t.Errorf("HabitName() error = %v, want nil", err)
	}
	if err := HabitName("   "); err == nil {
		t.Error("blank habit name accepted")
	}
	if err := HabitName(strings.Repeat("x", MaxNameLength+1)); err == nil {
		t.Error("oversized habit name accepted")
	}
}

func TestJournalText(t *testing.T) {
	if err := JournalText("a decent day"); err != nil {
		t.Errorf("JournalText() error = %v, want nil", err)
	}
	if err := JournalText(""); err == nil {
		t.Error("empty journal entry accepted")
	}
}

func TestPriority(t *testing.T) {
	tests := []struct {
		in      string
		want    constants.TaskPriority
		wantErr bool
	}{
		{"low", constants.PriorityLow, false},
		{"HIGH", constants.PriorityHigh, false},
		{" medium ", constants.PriorityMedium, false},
		{"", constants.PriorityMedium, false},
		{"urgent", "", true},
	}
	for _, tc := range tests {
		got, err := Priority(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Priority(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("Priority(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStatus(t *testing.T) {
	if _, err := Status("in-progress"); err != nil {
		t.Errorf("Status() error = %v, want nil", err)
	}
	if _, err := Status("done"); err == nil {
		t.Error("unknown status accepted")
	}
}

func TestThemeName(t *testing.T) {
	if got, err := ThemeName("Dark"); err != nil || got != constants.ThemeDark {
		t.Errorf("ThemeName(Dark) = %q, %v", got, err)
	}
	if _, err := ThemeName("sepia"); err == nil {
		t.Error("unknown theme accepted")
	}
}

func TestDate(t *testing.T) {
	if _, err := Date("2026-08-28"); err != nil {
		t.Errorf("Date() error = %v, want nil", err)
	}
	if _, err := Date("28/08/2026"); err == nil {
		t.Error("non-ISO date accepted")
	}
}

func TestEmail(t *testing.T) {
	for _, valid := range []string{"a@b.co", "user.name@example.org"} {
		if err := Email(valid); err != nil {
			t.Errorf("Email(%q) error = %v, want nil", valid, err)
		}
	}
	for _, invalid := range []string{"", "plain", "@x.com", "a@", "a@nodot"} {
		if err := Email(invalid); err == nil {
			t.Errorf("Email(%q) accepted", invalid)
		}
	}
}

func TestPage(t *testing.T) {
	if err := Page(1, 10); err != nil {
		t.Errorf("Page() error = %v, want nil", err)
	}
	if err := Page(0, 10); err == nil {
		t.Error("page 0 accepted")
	}
	if err := Page(1, 500); err == nil {
		t.Error("oversized page accepted")
	}
}
