package domain

import "context"

// Invitation types as modeled in the content store.
const (
	InvitationTypeWedding   = "Wedding"
	InvitationTypeCorporate = "Corporate"
	InvitationTypeBirthday  = "Birthday"
	InvitationTypeSocial    = "Social"
)

// Invitation is a single event invitation page managed in the content store.
type Invitation struct {
	ID              int    `json:"id"`
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle,omitempty"`
	Type            string `json:"type,omitempty"`
	EventDate       string `json:"eventDate"` // YYYY-MM-DD
	Time            string `json:"time,omitempty"`
	Location        string `json:"location,omitempty"`
	Description     string `json:"description,omitempty"`
	HeroImageURL    string `json:"heroImageUrl,omitempty"`
	ScrapbookPDFURL string `json:"scrapbookPdfUrl,omitempty"`
}

// InvitationSummary is the admin listing shape.
type InvitationSummary struct {
	Invitation
	EntryCount int  `json:"entryCount"`
	IsExpired  bool `json:"isExpired"`
}

// InvitationService exposes invitation reads backed by the content store.
type InvitationService interface {
	List(ctx context.Context) ([]InvitationSummary, error)
	GetBySlug(ctx context.Context, slug string) (*Invitation, error)
}
