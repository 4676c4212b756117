package sync

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/julianstephens/lifelog-cli/internal/models"
)

// stopwords excluded from journal word-frequency counts
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "a": {}, "to": {}, "is": {}, "it": {}, "in": {},
	"of": {}, "for": {}, "on": {}, "i": {}, "you": {}, "my": {}, "that": {},
	"was": {}, "with": {}, "as": {}, "at": {}, "this": {}, "be": {},
}

// Tips rotate through the stats view alongside the computed insight lines
var Tips = []string{
	"Remember to take a deep breath and pause for a moment.",
	"Reflect on one small win today — it helps build positivity.",
	"Even writing a single line can help you process your thoughts.",
	"Consistency beats intensity — small steps matter.",
	"Check in with yourself — what's one thing you're grateful for?",
}

// Stats summarizes a snapshot over a trailing window of days. All fields
// derive purely from the snapshot, so the view is identical offline.
type Stats struct {
	RangeDays int

	// Journal activity, one bucket per day, oldest first
	DayLabels    []string // MM-DD
	DayCounts    []int
	TotalEntries int

	TotalHabits     int
	CompletedHabits int
	AvgStreak       int // rounded mean
	TopStreak       int

	TopWords []string // most frequent journal words, capped at five
}

// ComputeStats aggregates the snapshot over the rangeDays ending today.
// Range values below 1 are clamped to 1.
func ComputeStats(snap models.Snapshot, rangeDays int, now time.Time) Stats {
	if rangeDays < 1 {
		rangeDays = 1
	}

	stats := Stats{
		RangeDays: rangeDays,
		DayLabels: make([]string, rangeDays),
		DayCounts: make([]int, rangeDays),
	}

	buckets := make(map[string]int, rangeDays)
	for i := 0; i < rangeDays; i++ {
		day := now.AddDate(0, 0, -(rangeDays - 1 - i))
		key := day.Format("2006-01-02")
		stats.DayLabels[i] = key[5:]
		buckets[key] = i
	}
	for _, j := range snap.Journals {
		if i, ok := buckets[j.CreatedAt.Format("2006-01-02")]; ok {
			stats.DayCounts[i]++
			stats.TotalEntries++
		}
	}

	stats.TotalHabits = len(snap.Habits)
	var streakSum int
	for _, h := range snap.Habits {
		if h.Completed {
			stats.CompletedHabits++
		}
		streakSum += h.Streak
		if h.Streak > stats.TopStreak {
			stats.TopStreak = h.Streak
		}
	}
	if stats.TotalHabits > 0 {
		// Rounded mean
		stats.AvgStreak = (streakSum + stats.TotalHabits/2) / stats.TotalHabits
	}

	stats.TopWords = topWords(snap.Journals, 5)
	return stats
}

// topWords tallies journal words, skipping stopwords and words shorter
// than three characters. Ties break alphabetically so the output is
// stable.
func topWords(journals []models.Journal, limit int) []string {
	counts := make(map[string]int)
	for _, j := range journals {
		cleaned := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
				return unicode.ToLower(r)
			}
			return ' '
		}, j.Text)
		for _, w := range strings.Fields(cleaned) {
			if _, skip := stopwords[w]; skip || len(w) < 3 {
				continue
			}
			counts[w]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > limit {
		words = words[:limit]
	}
	return words
}

// InsightLines phrases the stats as short encouragements, one line per
// area with activity to speak about.
func (s Stats) InsightLines() []string {
	var lines []string

	switch {
	case s.TotalEntries == 0:
		lines = append(lines, "No journaling yet — start small, even a line a day!")
	case s.TotalEntries >= s.RangeDays:
		lines = append(lines, "Amazing streak! Your journaling habit is strong.")
	default:
		lines = append(lines, fmt.Sprintf("You've written %d entries in the last %d days. Keep going!", s.TotalEntries, s.RangeDays))
	}

	switch {
	case s.TotalHabits == 0:
		lines = append(lines, "No habits tracked yet — add one and start small!")
	case s.CompletedHabits == s.TotalHabits:
		lines = append(lines, "Excellent! All habits completed consistently.")
	case s.CompletedHabits == 0:
		lines = append(lines, "Looks like habits need some love — try focusing on one at a time.")
	default:
		lines = append(lines, fmt.Sprintf("You've completed %d/%d habits. Keep up the momentum!", s.CompletedHabits, s.TotalHabits))
	}

	if len(s.TopWords) > 0 {
		lines = append(lines, fmt.Sprintf("Common themes in your journal: %s.", strings.Join(s.TopWords, ", ")))
	}
	return lines
}
