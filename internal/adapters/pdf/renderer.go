// Package pdf renders an assembled scrapbook document to a PDF. Layout only;
// page boundaries come from the document assembler and are never reshuffled
// here. Entry images are referenced by URL in a footnote rather than
// embedded, remote rasterization belongs to the client renderer.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"celebrationgarden/internal/domain"
)

// Renderer turns scrapbook documents into PDF bytes.
type Renderer struct{}

// NewRenderer returns a document renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces one PDF page per document page.
func (r *Renderer) Render(inv domain.Invitation, doc domain.ScrapbookDocument) ([]byte, error) {
	f := gofpdf.New("P", "mm", "Letter", "")
	f.SetMargins(20, 20, 20)
	f.SetAutoPageBreak(false, 20)

	for _, page := range doc.Pages {
		f.AddPage()
		switch page.Kind {
		case domain.PageKindCover:
			r.cover(f, inv)
		case domain.PageKindSection:
			r.section(f, page)
		case domain.PageKindHighlights:
			r.highlights(f, page)
		case domain.PageKindClosing:
			r.closing(f, inv)
		}
	}

	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) cover(f *gofpdf.Fpdf, inv domain.Invitation) {
	f.SetY(90)
	f.SetFont("Times", "B", 32)
	f.MultiCell(0, 14, inv.Title, "", "C", false)
	if inv.Subtitle != "" {
		f.Ln(4)
		f.SetFont("Times", "I", 18)
		f.MultiCell(0, 9, inv.Subtitle, "", "C", false)
	}
	if inv.EventDate != "" {
		f.Ln(8)
		f.SetFont("Times", "", 14)
		f.MultiCell(0, 8, inv.EventDate, "", "C", false)
	}
}

func (r *Renderer) section(f *gofpdf.Fpdf, page domain.ScrapbookPage) {
	f.SetFont("Times", "B", 20)
	f.MultiCell(0, 10, page.Title, "", "C", false)
	f.Ln(6)

	for _, e := range page.Entries {
		r.entry(f, e)
	}
}

func (r *Renderer) entry(f *gofpdf.Fpdf, e domain.ScrapbookEntry) {
	header := e.Name
	if e.Relation != "" {
		header = fmt.Sprintf("%s (%s)", e.Name, e.Relation)
	}
	f.SetFont("Times", "B", 12)
	f.MultiCell(0, 6, header, "", "L", false)

	f.SetFont("Times", "", 11)
	f.MultiCell(0, 5.5, e.Message, "", "L", false)

	if e.ImageURL != "" {
		f.SetFont("Times", "I", 8)
		f.SetTextColor(110, 110, 110)
		f.MultiCell(0, 4, "photo: "+e.ImageURL, "", "L", false)
		f.SetTextColor(0, 0, 0)
	}
	f.Ln(5)
}

func (r *Renderer) highlights(f *gofpdf.Fpdf, page domain.ScrapbookPage) {
	f.SetFont("Times", "B", 20)
	f.MultiCell(0, 10, page.Title, "", "C", false)
	f.Ln(6)

	if page.Highlights == nil {
		return
	}
	if len(page.Highlights.Funny) > 0 {
		f.SetFont("Times", "B", 14)
		f.MultiCell(0, 7, "Moments That Made Us Laugh", "", "L", false)
		f.Ln(2)
		for _, e := range page.Highlights.Funny {
			r.entry(f, e)
		}
	}
	if len(page.Highlights.Secret) > 0 {
		f.SetFont("Times", "B", 14)
		f.MultiCell(0, 7, "Little Secrets Shared", "", "L", false)
		f.Ln(2)
		for _, e := range page.Highlights.Secret {
			r.entry(f, e)
		}
	}
}

func (r *Renderer) closing(f *gofpdf.Fpdf, inv domain.Invitation) {
	f.SetY(110)
	f.SetFont("Times", "I", 18)
	f.MultiCell(0, 9, "With love and gratitude", "", "C", false)
	f.Ln(6)
	f.SetFont("Times", "", 12)
	f.MultiCell(0, 7, inv.Title, "", "C", false)
}
