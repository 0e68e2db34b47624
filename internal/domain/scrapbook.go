package domain

import "context"

// EntriesPerPage is the fixed section page size for scrapbook documents.
const EntriesPerPage = 4

// Category names, in fixed evaluation and presentation order.
const (
	CategoryFriends        = "friends"
	CategoryCloseRelatives = "closeRelatives"
	CategoryExtendedFamily = "extendedFamily"
	CategoryColleagues     = "colleagues"
	CategoryOthers         = "others"
)

// CategoryOrder is the fixed bucket order used everywhere buckets are
// iterated. It must never be reordered.
var CategoryOrder = []string{
	CategoryFriends,
	CategoryCloseRelatives,
	CategoryExtendedFamily,
	CategoryColleagues,
	CategoryOthers,
}

// CategoryTitles maps bucket names to their display titles.
var CategoryTitles = map[string]string{
	CategoryFriends:        "Friends",
	CategoryCloseRelatives: "Close Relatives",
	CategoryExtendedFamily: "Extended Family",
	CategoryColleagues:     "Colleagues",
	CategoryOthers:         "Friends & Well-Wishers",
}

// CategorizedEntries holds the five ordered buckets. Each bucket preserves
// its internal order; the union of all buckets equals the filtered entry set.
type CategorizedEntries struct {
	Friends        []ScrapbookEntry `json:"friends"`
	CloseRelatives []ScrapbookEntry `json:"closeRelatives"`
	ExtendedFamily []ScrapbookEntry `json:"extendedFamily"`
	Colleagues     []ScrapbookEntry `json:"colleagues"`
	Others         []ScrapbookEntry `json:"others"`
}

// Bucket returns the bucket with the given category name.
func (c *CategorizedEntries) Bucket(name string) []ScrapbookEntry {
	switch name {
	case CategoryFriends:
		return c.Friends
	case CategoryCloseRelatives:
		return c.CloseRelatives
	case CategoryExtendedFamily:
		return c.ExtendedFamily
	case CategoryColleagues:
		return c.Colleagues
	default:
		return c.Others
	}
}

// SetBucket replaces the bucket with the given category name.
func (c *CategorizedEntries) SetBucket(name string, entries []ScrapbookEntry) {
	switch name {
	case CategoryFriends:
		c.Friends = entries
	case CategoryCloseRelatives:
		c.CloseRelatives = entries
	case CategoryExtendedFamily:
		c.ExtendedFamily = entries
	case CategoryColleagues:
		c.Colleagues = entries
	default:
		c.Others = entries
	}
}

// Append adds an entry to the end of the named bucket.
func (c *CategorizedEntries) Append(name string, entry ScrapbookEntry) {
	c.SetBucket(name, append(c.Bucket(name), entry))
}

// Highlights holds the two curated entry lists.
type Highlights struct {
	Funny  []ScrapbookEntry `json:"funny"`
	Secret []ScrapbookEntry `json:"secret"`
}

// Pagination describes how the filtered entries split into section pages.
type Pagination struct {
	EntriesPerPage int `json:"entriesPerPage"`
	TotalPages     int `json:"totalPages"`
}

// OrganizedScrapbook is the result of running the organization pipeline over
// an invitation's entries.
type OrganizedScrapbook struct {
	Invitation      Invitation         `json:"invitation"`
	FilteredEntries []ScrapbookEntry   `json:"filteredEntries"`
	Categorized     CategorizedEntries `json:"categorized"`
	Highlights      Highlights         `json:"highlights"`
	Pagination      Pagination         `json:"pagination"`
}

// ContentOrganizer turns raw entries into an organized scrapbook.
type ContentOrganizer interface {
	Organize(ctx context.Context, inv Invitation, entries []ScrapbookEntry) (*OrganizedScrapbook, error)
}

// ScrapbookService is the full scrapbook workflow: guest submission,
// ingestion, organization, document assembly, and PDF handling.
type ScrapbookService interface {
	SubmitEntry(ctx context.Context, slug string, entry NewEntry) (*ScrapbookEntry, error)
	ListEntries(ctx context.Context, slug string) ([]ScrapbookEntry, error)
	Generate(ctx context.Context, slug string, id int) (*GeneratedScrapbook, error)
	RenderPDF(ctx context.Context, slug string, id int) ([]byte, *Invitation, error)
	AttachPDF(ctx context.Context, slug string, id int, pdf []byte, filename string) (*AttachedPDF, error)
}

// GeneratedScrapbook bundles the organized scrapbook with its assembled
// document.
type GeneratedScrapbook struct {
	Scrapbook OrganizedScrapbook `json:"scrapbook"`
	Document  ScrapbookDocument  `json:"document"`
}

// AttachedPDF is the result of uploading a scrapbook PDF and associating it
// with its invitation.
type AttachedPDF struct {
	PDFURL         string `json:"pdfUrl"`
	InvitationID   int    `json:"invitationId"`
	InvitationSlug string `json:"invitationSlug"`
}
