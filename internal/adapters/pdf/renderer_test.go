package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celebrationgarden/internal/domain"
)

func TestRenderer_ProducesPDF(t *testing.T) {
	doc := domain.ScrapbookDocument{Pages: []domain.ScrapbookPage{
		{Kind: domain.PageKindCover},
		{Kind: domain.PageKindSection, Title: "Friends", Entries: []domain.ScrapbookEntry{
			{ID: 1, Name: "Ava", Relation: "Friend", Message: "Congratulations!"},
			{ID: 2, Name: "Ben", Relation: "Best Man", Message: "What a day.", ImageURL: "https://cdn.example.com/b.jpg"},
		}},
		{Kind: domain.PageKindHighlights, Title: "Highlights", Highlights: &domain.Highlights{
			Funny: []domain.ScrapbookEntry{{ID: 1, Name: "Ava", Message: "Congratulations!"}},
		}},
		{Kind: domain.PageKindClosing},
	}}

	out, err := NewRenderer().Render(domain.Invitation{Title: "Rose Garden Gala", EventDate: "2026-06-20"}, doc)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderer_EmptyDocument(t *testing.T) {
	out, err := NewRenderer().Render(domain.Invitation{}, domain.ScrapbookDocument{})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
