package domain

// Page kinds of an assembled scrapbook document.
const (
	PageKindCover      = "cover"
	PageKindSection    = "section"
	PageKindHighlights = "highlights"
	PageKindClosing    = "closing"
)

// ScrapbookPage is one renderable page of the assembled document. Entries is
// set for section pages, Highlights for the highlights page.
type ScrapbookPage struct {
	Kind       string           `json:"kind"`
	Title      string           `json:"title,omitempty"`
	Category   string           `json:"category,omitempty"`
	Entries    []ScrapbookEntry `json:"entries,omitempty"`
	Highlights *Highlights      `json:"highlights,omitempty"`
}

// ScrapbookDocument is the ordered sequence of pages assembled from an
// organized scrapbook. Concatenating a category's section pages reproduces
// that bucket exactly.
type ScrapbookDocument struct {
	Pages []ScrapbookPage `json:"pages"`
}
