package domain

import "context"

// ContentStore is the headless content store backing invitations, scrapbook
// entries, landing-page content and media uploads.
type ContentStore interface {
	GetInvitationBySlug(ctx context.Context, slug string) (*Invitation, error)
	GetInvitationByID(ctx context.Context, id int) (*Invitation, error)
	ListInvitations(ctx context.Context) ([]Invitation, error)

	ListEntriesByInvitationID(ctx context.Context, invitationID int) ([]ScrapbookEntry, error)
	CountEntriesByInvitationID(ctx context.Context, invitationID int) (int, error)
	CreateEntry(ctx context.Context, entry NewEntry) (*ScrapbookEntry, error)

	UploadPDF(ctx context.Context, filename string, data []byte) (string, error)
	SetInvitationPDFURL(ctx context.Context, invitationID int, url string) error

	// GetHomePage returns whatever landing-page fields the store has. Missing
	// fields stay zero; merging with defaults is the caller's job.
	GetHomePage(ctx context.Context) (*HomeContent, error)
}
