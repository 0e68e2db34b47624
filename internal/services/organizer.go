package services

import (
	"context"
	"sort"
	"strings"

	"celebrationgarden/internal/domain"
)

// blockedWords is a deliberately simple placeholder filter. It is known to be
// weak and must stay that way; real moderation happens in the model pass.
var blockedWords = []string{"abuse", "hate", "offensive"}

// HeuristicOrganizer organizes entries with deterministic rules. It is the
// always-available baseline and the fallback for every model-assisted aspect.
type HeuristicOrganizer struct{}

// NewHeuristicOrganizer returns the rule-based organizer.
func NewHeuristicOrganizer() *HeuristicOrganizer {
	return &HeuristicOrganizer{}
}

// Organize filters, categorizes and highlights entries without any model
// involvement. It never fails.
func (o *HeuristicOrganizer) Organize(_ context.Context, inv domain.Invitation, entries []domain.ScrapbookEntry) (*domain.OrganizedScrapbook, error) {
	filtered := filterEntries(entries)
	categorized := categorizeEntries(filtered)
	categorized = repairCategorized(filtered, categorized)

	return &domain.OrganizedScrapbook{
		Invitation:      inv,
		FilteredEntries: filtered,
		Categorized:     categorized,
		Highlights:      pickHighlights(filtered),
		Pagination:      paginationFor(len(filtered)),
	}, nil
}

// filterEntries drops entries containing a blocked word in the message and
// entries with an empty name, message or relation. Idempotent.
func filterEntries(entries []domain.ScrapbookEntry) []domain.ScrapbookEntry {
	out := make([]domain.ScrapbookEntry, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" || e.Message == "" || e.Relation == "" {
			continue
		}
		msg := strings.ToLower(e.Message)
		blocked := false
		for _, w := range blockedWords {
			if strings.Contains(msg, w) {
				blocked = true
				break
			}
		}
		if !blocked {
			out = append(out, e)
		}
	}
	return out
}

// categoryFor assigns an entry to a bucket by substring rules on its
// lowercased relation. First match wins; the rule order is fixed.
func categoryFor(relation string) string {
	rel := strings.ToLower(relation)
	switch {
	case containsAny(rel, "friend", "best man", "maid"):
		return domain.CategoryFriends
	case containsAny(rel, "mom", "dad", "mother", "father", "grand", "parent"):
		return domain.CategoryCloseRelatives
	case containsAny(rel, "uncle", "aunt", "cousin"):
		return domain.CategoryExtendedFamily
	case containsAny(rel, "colleague", "cowork", "office"):
		return domain.CategoryColleagues
	default:
		return domain.CategoryOthers
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// categorizeEntries buckets entries in ingestion order.
func categorizeEntries(entries []domain.ScrapbookEntry) domain.CategorizedEntries {
	var c domain.CategorizedEntries
	for _, e := range entries {
		c.Append(categoryFor(e.Relation), e)
	}
	return c
}

// pickHighlights sorts by descending message length (stable, ties keep
// ingestion order): the first three are "funny", the next three "secret".
func pickHighlights(entries []domain.ScrapbookEntry) domain.Highlights {
	sorted := make([]domain.ScrapbookEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Message) > len(sorted[j].Message)
	})

	var h domain.Highlights
	h.Funny = sliceRange(sorted, 0, 3)
	h.Secret = sliceRange(sorted, 3, 6)
	return h
}

func sliceRange(entries []domain.ScrapbookEntry, lo, hi int) []domain.ScrapbookEntry {
	if lo >= len(entries) {
		return nil
	}
	if hi > len(entries) {
		hi = len(entries)
	}
	out := make([]domain.ScrapbookEntry, hi-lo)
	copy(out, entries[lo:hi])
	return out
}

// repairCategorized reconciles buckets against the filtered set so that the
// union of buckets always equals it exactly:
//   - ids outside the filtered set are dropped
//   - duplicates keep their first placement, walking buckets in fixed order
//   - filtered entries absent from every bucket are appended, placed by the
//     heuristic rule, in original order
func repairCategorized(filtered []domain.ScrapbookEntry, c domain.CategorizedEntries) domain.CategorizedEntries {
	allowed := make(map[int]bool, len(filtered))
	for _, e := range filtered {
		allowed[e.ID] = true
	}

	placed := make(map[int]bool, len(filtered))
	var out domain.CategorizedEntries
	for _, name := range domain.CategoryOrder {
		for _, e := range c.Bucket(name) {
			if !allowed[e.ID] || placed[e.ID] {
				continue
			}
			placed[e.ID] = true
			out.Append(name, e)
		}
	}

	for _, e := range filtered {
		if !placed[e.ID] {
			placed[e.ID] = true
			out.Append(categoryFor(e.Relation), e)
		}
	}
	return out
}

func paginationFor(total int) domain.Pagination {
	pages := (total + domain.EntriesPerPage - 1) / domain.EntriesPerPage
	if pages < 1 {
		pages = 1
	}
	return domain.Pagination{EntriesPerPage: domain.EntriesPerPage, TotalPages: pages}
}
