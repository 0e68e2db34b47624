package domain

import "time"

// ScrapbookEntry is a guest message attached to an invitation. ImageURL is
// the canonical, already-normalized image location; empty when the entry has
// no usable image.
type ScrapbookEntry struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Relation    string    `json:"relation"`
	Message     string    `json:"message"`
	Phone       string    `json:"phone,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	SubmittedAt time.Time `json:"submittedAt,omitempty"`
}

// NewEntry is a guest submission before it is stored. InvitationID is
// required at persistence time; an entry must always belong to an invitation.
type NewEntry struct {
	InvitationID     int
	Name             string
	Relation         string
	Message          string
	Phone            string
	Photo            []byte
	PhotoContentType string
	PhotoFilename    string
}
