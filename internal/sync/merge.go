package sync

import (
	"github.com/julianstephens/lifelog-cli/internal/constants"
	"github.com/julianstephens/lifelog-cli/internal/models"
)

// mergeLists applies the non-regression rule for list-valued fields: the
// remote list wins unless it is empty while the local list is not. A
// newly-provisioned or transiently-empty remote document must never
// visibly delete data the user already has offline.
func mergeLists[T any](local, remote []T) []T {
	if len(remote) == 0 && len(local) > 0 {
		return local
	}
	return remote
}

// MergeSnapshots computes the effective snapshot from the durable local
// copy and a freshly fetched remote document
func MergeSnapshots(local, remote models.Snapshot) models.Snapshot {
	out := models.Snapshot{
		Habits:   mergeLists(local.Habits, remote.Habits),
		Journals: mergeLists(local.Journals, remote.Journals),
		Tasks:    mergeLists(local.Tasks, remote.Tasks),
		Messages: mergeLists(local.Messages, remote.Messages),
		Insights: mergeLists(local.Insights, remote.Insights),
	}

	out.Mood = remote.Mood
	if out.Mood == "" {
		out.Mood = local.Mood
	}
	if out.Mood == "" {
		out.Mood = constants.DefaultMood
	}

	out.Theme = remote.Theme
	if out.Theme == "" {
		out.Theme = local.Theme
	}
	if out.Theme == "" {
		out.Theme = constants.ThemeLight
	}

	out.LastReset = remote.LastReset
	if out.LastReset == "" {
		out.LastReset = local.LastReset
	}

	return out
}
