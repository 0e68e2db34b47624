package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tidwall/gjson"

	"celebrationgarden/internal/domain"
)

// ModelOrganizer asks a hosted model to moderate, categorize, highlight and
// order entries, falling back to the heuristic organizer per aspect on any
// failure. Model output is only ever trusted for entry IDs; all entry values
// come from the ingested set, so a model cannot alter guest content.
type ModelOrganizer struct {
	gen       domain.TextGenerator
	heuristic *HeuristicOrganizer
	logger    *slog.Logger
}

// NewModelOrganizer wraps a text generator around the heuristic baseline.
func NewModelOrganizer(gen domain.TextGenerator, heuristic *HeuristicOrganizer, logger *slog.Logger) *ModelOrganizer {
	return &ModelOrganizer{gen: gen, heuristic: heuristic, logger: logger}
}

// modelResult carries the id-level outcome of the three model calls. A nil
// slice/map means that aspect fell back to the heuristic.
type modelResult struct {
	filteredIDs   []int            // moderation pass
	categorizedID map[string][]int // bucket name -> ids
	funnyIDs      []int
	secretIDs     []int
	orderedIDs    map[string][]int // bucket name -> ids
}

// Organize runs the model pipeline. The moderation+categorization call and
// the highlights call run concurrently; ordering runs only once
// categorization has resolved. Every failure degrades silently.
func (o *ModelOrganizer) Organize(ctx context.Context, inv domain.Invitation, entries []domain.ScrapbookEntry) (*domain.OrganizedScrapbook, error) {
	byID := make(map[int]domain.ScrapbookEntry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}

	var res modelResult
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		res.filteredIDs, res.categorizedID = o.moderateAndCategorize(ctx, inv, entries)
	}()
	go func() {
		defer wg.Done()
		res.funnyIDs, res.secretIDs = o.extractHighlights(ctx, inv, entries)
	}()
	wg.Wait()

	// Filtered set: model moderation when available, heuristic otherwise.
	var filtered []domain.ScrapbookEntry
	if res.filteredIDs != nil {
		filtered = resolveIDs(res.filteredIDs, byID)
	} else {
		filtered = filterEntries(entries)
	}

	// Buckets: model categorization when available, heuristic otherwise.
	var categorized domain.CategorizedEntries
	if res.categorizedID != nil {
		for name, ids := range res.categorizedID {
			categorized.SetBucket(name, resolveIDs(ids, byID))
		}
		res.orderedIDs = o.orderEntries(ctx, categorized)
	} else {
		categorized = categorizeEntries(filtered)
	}

	if res.orderedIDs != nil {
		categorized = applyOrdering(categorized, res.orderedIDs)
	}
	categorized = repairCategorized(filtered, categorized)

	// Highlights may only reference filtered entries, so moderated-out ids
	// resolve to nothing even when the model returns them.
	var highlights domain.Highlights
	if res.funnyIDs != nil || res.secretIDs != nil {
		filteredByID := make(map[int]domain.ScrapbookEntry, len(filtered))
		for _, e := range filtered {
			filteredByID[e.ID] = e
		}
		highlights.Funny = resolveIDs(res.funnyIDs, filteredByID)
		highlights.Secret = resolveIDs(res.secretIDs, filteredByID)
	} else {
		highlights = pickHighlights(filtered)
	}

	return &domain.OrganizedScrapbook{
		Invitation:      inv,
		FilteredEntries: filtered,
		Categorized:     categorized,
		Highlights:      highlights,
		Pagination:      paginationFor(len(filtered)),
	}, nil
}

func (o *ModelOrganizer) moderateAndCategorize(ctx context.Context, inv domain.Invitation, entries []domain.ScrapbookEntry) ([]int, map[string][]int) {
	doc, ok := o.generateJSON(ctx, "moderation", buildModerationPrompt(inv, entries))
	if !ok {
		return nil, nil
	}
	filteredField := doc.Get("filtered_entries")
	catField := doc.Get("categorized_entries")
	if !filteredField.IsArray() || !catField.IsObject() {
		o.logger.Warn("moderation response has wrong shape, using heuristics")
		return nil, nil
	}

	filteredIDs := idList(filteredField)
	categorized := make(map[string][]int, len(domain.CategoryOrder))
	for _, name := range domain.CategoryOrder {
		categorized[name] = idList(catField.Get(name))
	}
	return filteredIDs, categorized
}

func (o *ModelOrganizer) extractHighlights(ctx context.Context, inv domain.Invitation, entries []domain.ScrapbookEntry) (funny, secret []int) {
	doc, ok := o.generateJSON(ctx, "highlights", buildHighlightsPrompt(inv, entries))
	if !ok {
		return nil, nil
	}
	funnyField := doc.Get("funny")
	secretField := doc.Get("secret")
	if !funnyField.IsArray() && !secretField.IsArray() {
		o.logger.Warn("highlights response has wrong shape, using heuristics")
		return nil, nil
	}
	return idList(funnyField), idList(secretField)
}

func (o *ModelOrganizer) orderEntries(ctx context.Context, c domain.CategorizedEntries) map[string][]int {
	doc, ok := o.generateJSON(ctx, "ordering", buildOrderingPrompt(c))
	if !ok {
		return nil
	}
	out := make(map[string][]int, len(domain.CategoryOrder))
	found := false
	for _, name := range domain.CategoryOrder {
		ids := doc.Get(name + ".ordered_ids")
		if ids.IsArray() {
			found = true
			out[name] = idList(ids)
		}
	}
	if !found {
		o.logger.Warn("ordering response has wrong shape, keeping category order")
		return nil
	}
	return out
}

// generateJSON runs one model call and extracts its JSON payload. Any
// failure is logged and reported as a soft miss.
func (o *ModelOrganizer) generateJSON(ctx context.Context, call, prompt string) (gjson.Result, bool) {
	text, err := o.gen.Generate(ctx, prompt)
	if err != nil {
		o.logger.Warn("model call failed, using heuristics", "call", call, "err", err)
		return gjson.Result{}, false
	}
	doc, ok := extractJSON(text)
	if !ok {
		o.logger.Warn("model returned unparseable output, using heuristics", "call", call)
		return gjson.Result{}, false
	}
	return doc, true
}

// extractJSON pulls the first {...} block out of model output, tolerating
// markdown fences and prose around it. The parse-or-nil boundary lives here
// and nowhere else.
func extractJSON(text string) (gjson.Result, bool) {
	start := -1
	end := -1
	for i := 0; i < len(text); i++ {
		if text[i] == '{' {
			start = i
			break
		}
	}
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] == '}' {
			end = i
			break
		}
	}
	if start < 0 || end <= start {
		return gjson.Result{}, false
	}
	candidate := text[start : end+1]
	if !gjson.Valid(candidate) {
		return gjson.Result{}, false
	}
	return gjson.Parse(candidate), true
}

// idList reads the entry ids out of either a list of entry objects or a bare
// id array.
func idList(field gjson.Result) []int {
	if !field.IsArray() {
		return []int{}
	}
	arr := field.Array()
	out := make([]int, 0, len(arr))
	for _, item := range arr {
		if item.IsObject() {
			out = append(out, int(item.Get("id").Int()))
		} else {
			out = append(out, int(item.Int()))
		}
	}
	return out
}

// resolveIDs maps ids back to the original ingested entries. Unknown ids are
// dropped; duplicates are kept out.
func resolveIDs(ids []int, byID map[int]domain.ScrapbookEntry) []domain.ScrapbookEntry {
	out := make([]domain.ScrapbookEntry, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		e, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, e)
	}
	return out
}

// applyOrdering reorders each bucket by the model's id list. Unknown ids are
// ignored; bucket entries missing from the list keep their original order at
// the end.
func applyOrdering(c domain.CategorizedEntries, ordering map[string][]int) domain.CategorizedEntries {
	var out domain.CategorizedEntries
	for _, name := range domain.CategoryOrder {
		entries := c.Bucket(name)
		ids, ok := ordering[name]
		if !ok {
			out.SetBucket(name, entries)
			continue
		}
		byID := make(map[int]domain.ScrapbookEntry, len(entries))
		for _, e := range entries {
			byID[e.ID] = e
		}
		ordered := resolveIDs(ids, byID)
		placed := make(map[int]bool, len(ordered))
		for _, e := range ordered {
			placed[e.ID] = true
		}
		for _, e := range entries {
			if !placed[e.ID] {
				ordered = append(ordered, e)
			}
		}
		out.SetBucket(name, ordered)
	}
	return out
}
