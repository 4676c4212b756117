package sync

import (
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/lifelog-cli/internal/models"
)

// SearchResultType identifies which part of the snapshot matched
type SearchResultType string

const (
	ResultHabit   SearchResultType = "Habit"
	ResultJournal SearchResultType = "Journal"
)

// SearchResult is one match from a snapshot search
type SearchResult struct {
	Type SearchResultType
	Text string
	Date time.Time
}

// SearchSnapshot finds habits and journal entries whose text contains the
// query, case-insensitively, newest first. Pure function over the
// snapshot, so it behaves identically offline.
func SearchSnapshot(snap models.Snapshot, query string, now time.Time) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []SearchResult
	for _, h := range snap.Habits {
		if strings.Contains(strings.ToLower(h.Name), q) {
			results = append(results, SearchResult{Type: ResultHabit, Text: h.Name, Date: now})
		}
	}
	for _, j := range snap.Journals {
		if strings.Contains(strings.ToLower(j.Text), q) {
			results = append(results, SearchResult{Type: ResultJournal, Text: j.Text, Date: j.CreatedAt})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Date.After(results[j].Date)
	})
	return results
}
