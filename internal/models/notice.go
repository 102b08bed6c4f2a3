package models

import "time"

// Notice represents a council announcement published on the site.
type Notice struct {
	ID        int       `json:"id"`        // ID is the unique identifier for the notice.
	Title     string    `json:"title"`     // Title is the notice headline.
	Content   string    `json:"content"`   // Content is the notice body.
	Category  string    `json:"category"`  // Category groups notices (학사, 행사, ...).
	Pinned    bool      `json:"pinned"`    // Pinned marks notices shown at the top of the list.
	CreatedAt time.Time `json:"createdAt"` // CreatedAt is the publication time.
	UpdatedAt time.Time `json:"updatedAt"` // UpdatedAt is the last modification time.
}
