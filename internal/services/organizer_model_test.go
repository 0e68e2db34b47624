package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celebrationgarden/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeGenerator answers each prompt by keyword, so one fake can serve all
// three pipeline calls.
type fakeGenerator struct {
	moderation string
	highlights string
	ordering   string
	err        error
	calls      []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "moderating and categorizing"):
		f.calls = append(f.calls, "moderation")
		return f.moderation, f.err
	case strings.Contains(prompt, "extracting highlights"):
		f.calls = append(f.calls, "highlights")
		return f.highlights, f.err
	case strings.Contains(prompt, "ordering scrapbook entries"):
		f.calls = append(f.calls, "ordering")
		return f.ordering, f.err
	}
	return "", fmt.Errorf("unexpected prompt")
}

func modelTestEntries() []domain.ScrapbookEntry {
	return []domain.ScrapbookEntry{
		entry(1, "Ava", "Bride's Friend", "congrats to you"),
		entry(2, "Mom", "Mother", "so very proud of you my dear"),
		entry(3, "Joe", "Uncle", "well done"),
		entry(4, "Pat", "Coworker", "cheers from the office"),
	}
}

func TestModelOrganizer_UsesModelResults(t *testing.T) {
	gen := &fakeGenerator{
		moderation: "```json\n" + `{
			"filtered_entries": [{"id":1},{"id":2},{"id":3},{"id":4}],
			"categorized_entries": {
				"friends": [{"id":1}],
				"closeRelatives": [{"id":2}],
				"extendedFamily": [{"id":3}],
				"colleagues": [{"id":4}],
				"others": []
			}
		}` + "\n```",
		highlights: `{"funny":[{"id":3}],"secret":[{"id":2}]}`,
		ordering:   `{"friends":{"ordered_ids":[1]},"closeRelatives":{"ordered_ids":[2]},"extendedFamily":{"ordered_ids":[3]},"colleagues":{"ordered_ids":[4]},"others":{"ordered_ids":[]}}`,
	}
	o := NewModelOrganizer(gen, NewHeuristicOrganizer(), testLogger)

	org, err := o.Organize(context.Background(), domain.Invitation{ID: 1, Title: "Gala"}, modelTestEntries())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"moderation", "highlights", "ordering"}, gen.calls)
	assert.Len(t, org.FilteredEntries, 4)
	require.Len(t, org.Highlights.Funny, 1)
	assert.Equal(t, 3, org.Highlights.Funny[0].ID)
	// Entry values come from ingestion, never from model text.
	assert.Equal(t, "well done", org.Highlights.Funny[0].Message)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, allBucketIDs(org.Categorized))
}

func TestModelOrganizer_FallsBackOnError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model down")}
	o := NewModelOrganizer(gen, NewHeuristicOrganizer(), testLogger)

	org, err := o.Organize(context.Background(), domain.Invitation{ID: 1}, modelTestEntries())
	require.NoError(t, err)

	// No ordering call happens when categorization failed.
	assert.ElementsMatch(t, []string{"moderation", "highlights"}, gen.calls)
	assert.Len(t, org.FilteredEntries, 4)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, allBucketIDs(org.Categorized))
	assert.NotEmpty(t, org.Highlights.Funny)
}

func TestModelOrganizer_FallsBackOnGarbage(t *testing.T) {
	gen := &fakeGenerator{
		moderation: "I'm sorry, I can't produce JSON today.",
		highlights: `{"funny": "not an array"}`,
	}
	o := NewModelOrganizer(gen, NewHeuristicOrganizer(), testLogger)

	org, err := o.Organize(context.Background(), domain.Invitation{ID: 1}, modelTestEntries())
	require.NoError(t, err)
	assert.Len(t, org.FilteredEntries, 4)
	assert.NotEmpty(t, org.Highlights.Funny)
}

func TestModelOrganizer_ModerationDropsEntry(t *testing.T) {
	gen := &fakeGenerator{
		moderation: `{
			"filtered_entries": [{"id":1},{"id":2},{"id":3}],
			"categorized_entries": {
				"friends": [{"id":1}], "closeRelatives": [{"id":2}],
				"extendedFamily": [{"id":3}], "colleagues": [], "others": []
			}
		}`,
		highlights: `{"funny":[],"secret":[]}`,
		ordering:   `nothing useful`,
	}
	o := NewModelOrganizer(gen, NewHeuristicOrganizer(), testLogger)

	org, err := o.Organize(context.Background(), domain.Invitation{ID: 1}, modelTestEntries())
	require.NoError(t, err)
	assert.Len(t, org.FilteredEntries, 3)
	assert.ElementsMatch(t, []int{1, 2, 3}, allBucketIDs(org.Categorized))
	assert.Empty(t, org.Categorized.Colleagues)
	assert.Equal(t, 1, org.Pagination.TotalPages)
}

func TestModelOrganizer_HighlightsDrawOnlyFromFilteredEntries(t *testing.T) {
	// Moderation drops entry 4; the highlights call still names it.
	gen := &fakeGenerator{
		moderation: `{
			"filtered_entries": [{"id":1},{"id":2},{"id":3}],
			"categorized_entries": {
				"friends": [{"id":1}], "closeRelatives": [{"id":2}],
				"extendedFamily": [{"id":3}], "colleagues": [], "others": []
			}
		}`,
		highlights: `{"funny":[{"id":4}],"secret":[{"id":2}]}`,
		ordering:   `{}`,
	}
	o := NewModelOrganizer(gen, NewHeuristicOrganizer(), testLogger)

	org, err := o.Organize(context.Background(), domain.Invitation{ID: 1}, modelTestEntries())
	require.NoError(t, err)

	filtered := make(map[int]bool, len(org.FilteredEntries))
	for _, e := range org.FilteredEntries {
		filtered[e.ID] = true
	}
	assert.False(t, filtered[4])
	assert.Empty(t, org.Highlights.Funny)
	require.Len(t, org.Highlights.Secret, 1)
	assert.Equal(t, 2, org.Highlights.Secret[0].ID)
	for _, e := range append(org.Highlights.Funny, org.Highlights.Secret...) {
		assert.True(t, filtered[e.ID])
	}
}

func TestModelOrganizer_RepairsMalformedCategorization(t *testing.T) {
	gen := &fakeGenerator{
		// id 99 does not exist, id 1 is duplicated, id 4 is missing.
		moderation: `{
			"filtered_entries": [{"id":1},{"id":2},{"id":3},{"id":4}],
			"categorized_entries": {
				"friends": [{"id":1},{"id":99}], "closeRelatives": [{"id":2},{"id":1}],
				"extendedFamily": [{"id":3}], "colleagues": [], "others": []
			}
		}`,
		highlights: `{"funny":[],"secret":[]}`,
		ordering:   `{}`,
	}
	o := NewModelOrganizer(gen, NewHeuristicOrganizer(), testLogger)

	org, err := o.Organize(context.Background(), domain.Invitation{ID: 1}, modelTestEntries())
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{1, 2, 3, 4}, allBucketIDs(org.Categorized))
	require.Len(t, org.Categorized.Friends, 1)
	assert.Equal(t, 1, org.Categorized.Friends[0].ID)
	// Missing entry 4 (a coworker) lands in colleagues via the heuristic rule.
	require.Len(t, org.Categorized.Colleagues, 1)
	assert.Equal(t, 4, org.Categorized.Colleagues[0].ID)
}

func TestApplyOrdering_RepairsUnknownAndMissingIDs(t *testing.T) {
	var c domain.CategorizedEntries
	c.Friends = []domain.ScrapbookEntry{
		entry(1, "A", "Friend", "m"),
		entry(2, "B", "Friend", "m"),
		entry(3, "C", "Friend", "m"),
	}

	out := applyOrdering(c, map[string][]int{
		domain.CategoryFriends: {3, 42, 1}, // 42 unknown, 2 missing
	})

	got := make([]int, 0, 3)
	for _, e := range out.Friends {
		got = append(got, e.ID)
	}
	assert.Equal(t, []int{3, 1, 2}, got)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"bare json", `{"a":1}`, true},
		{"fenced json", "```json\n{\"a\":1}\n```", true},
		{"prose around json", `Sure! Here you go: {"a":1} Hope that helps.`, true},
		{"no json", "I cannot help with that.", false},
		{"unbalanced", `{"a":1`, false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, ok := extractJSON(tt.input)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, int64(1), doc.Get("a").Int())
			}
		})
	}
}
