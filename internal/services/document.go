package services

import "celebrationgarden/internal/domain"

// AssembleDocument lays an organized scrapbook out into pages: cover, then
// section pages per non-empty bucket in fixed order, a highlights page when
// either highlight list has entries, and a closing page. Pure and
// deterministic; concatenating a category's section pages reproduces its
// bucket exactly.
func AssembleDocument(org *domain.OrganizedScrapbook) domain.ScrapbookDocument {
	pageSize := org.Pagination.EntriesPerPage
	if pageSize <= 0 {
		pageSize = domain.EntriesPerPage
	}

	doc := domain.ScrapbookDocument{}
	doc.Pages = append(doc.Pages, domain.ScrapbookPage{
		Kind:  domain.PageKindCover,
		Title: org.Invitation.Title,
	})

	for _, name := range domain.CategoryOrder {
		entries := org.Categorized.Bucket(name)
		for start := 0; start < len(entries); start += pageSize {
			end := start + pageSize
			if end > len(entries) {
				end = len(entries)
			}
			doc.Pages = append(doc.Pages, domain.ScrapbookPage{
				Kind:     domain.PageKindSection,
				Title:    domain.CategoryTitles[name],
				Category: name,
				Entries:  entries[start:end],
			})
		}
	}

	if len(org.Highlights.Funny) > 0 || len(org.Highlights.Secret) > 0 {
		h := org.Highlights
		doc.Pages = append(doc.Pages, domain.ScrapbookPage{
			Kind:       domain.PageKindHighlights,
			Title:      "Highlights",
			Highlights: &h,
		})
	}

	doc.Pages = append(doc.Pages, domain.ScrapbookPage{
		Kind:  domain.PageKindClosing,
		Title: org.Invitation.Title,
	})
	return doc
}
