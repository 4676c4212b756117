package models

import (
	"time"

	"github.com/julianstephens/lifelog-cli/internal/constants"
)

// ChatMessage represents one turn in the coach conversation. The message
// list is append-only and ordered by insertion.
type ChatMessage struct {
	ID   ID                      `json:"id"`
	From constants.MessageSender `json:"from"`
	Text string                  `json:"text"`
	Date time.Time               `json:"date"`
}
