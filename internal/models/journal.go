package models

import "time"

// Journal represents a single journal entry. Entries display newest-first.
type Journal struct {
	ID        ID        `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
