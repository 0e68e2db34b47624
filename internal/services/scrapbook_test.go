package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celebrationgarden/internal/domain"
)

// fakeContentStore is a hand-written in-memory content store.
type fakeContentStore struct {
	invitations []domain.Invitation
	entries     map[int][]domain.ScrapbookEntry
	created     []domain.NewEntry
	uploadedPDF []byte
	pdfURL      string
	pdfURLSet   map[int]string
	failWith    error
}

func newFakeStore() *fakeContentStore {
	return &fakeContentStore{
		entries:   map[int][]domain.ScrapbookEntry{},
		pdfURLSet: map[int]string{},
		pdfURL:    "https://media.example.com/scrapbook.pdf",
	}
}

func (f *fakeContentStore) GetInvitationBySlug(_ context.Context, slug string) (*domain.Invitation, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, inv := range f.invitations {
		if inv.Slug == slug {
			out := inv
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeContentStore) GetInvitationByID(_ context.Context, id int) (*domain.Invitation, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, inv := range f.invitations {
		if inv.ID == id {
			out := inv
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeContentStore) ListInvitations(_ context.Context) ([]domain.Invitation, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.invitations, nil
}

func (f *fakeContentStore) ListEntriesByInvitationID(_ context.Context, id int) ([]domain.ScrapbookEntry, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.entries[id], nil
}

func (f *fakeContentStore) CountEntriesByInvitationID(_ context.Context, id int) (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return len(f.entries[id]), nil
}

func (f *fakeContentStore) CreateEntry(_ context.Context, e domain.NewEntry) (*domain.ScrapbookEntry, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.created = append(f.created, e)
	return &domain.ScrapbookEntry{
		ID: 100 + len(f.created), Name: e.Name, Relation: e.Relation, Message: e.Message,
	}, nil
}

func (f *fakeContentStore) UploadPDF(_ context.Context, _ string, data []byte) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	f.uploadedPDF = data
	return f.pdfURL, nil
}

func (f *fakeContentStore) SetInvitationPDFURL(_ context.Context, id int, url string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.pdfURLSet[id] = url
	return nil
}

func (f *fakeContentStore) GetHomePage(_ context.Context) (*domain.HomeContent, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &domain.HomeContent{}, nil
}

type fakeRenderer struct{ out []byte }

func (f *fakeRenderer) Render(domain.Invitation, domain.ScrapbookDocument) ([]byte, error) {
	return f.out, nil
}

func newScrapbookService(store *fakeContentStore) *ScrapbookService {
	return NewScrapbookService(
		store,
		NewHeuristicOrganizer(),
		&fakeRenderer{out: []byte("%PDF-1.4 fake")},
		testLogger,
		time.Second,
		time.Second,
	)
}

func galaStore() *fakeContentStore {
	store := newFakeStore()
	store.invitations = []domain.Invitation{{ID: 7, Slug: "gala", Title: "Rose Garden Gala"}}
	store.entries[7] = []domain.ScrapbookEntry{
		entry(1, "Ava", "Bride's Friend", "congrats"),
		entry(2, "Mom", "Mother", "so proud"),
	}
	return store
}

func TestScrapbookService_SubmitEntry(t *testing.T) {
	store := galaStore()
	svc := newScrapbookService(store)

	created, err := svc.SubmitEntry(context.Background(), "gala", domain.NewEntry{
		Name: "Ben", Message: "cheers", Relation: "Best Man",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ben", created.Name)
	require.Len(t, store.created, 1)
	assert.Equal(t, 7, store.created[0].InvitationID)
}

func TestScrapbookService_SubmitEntry_Validation(t *testing.T) {
	svc := newScrapbookService(galaStore())

	tests := []struct {
		name  string
		slug  string
		entry domain.NewEntry
	}{
		{"missing name", "gala", domain.NewEntry{Message: "hi"}},
		{"missing message", "gala", domain.NewEntry{Name: "Ben"}},
		{"missing slug", "", domain.NewEntry{Name: "Ben", Message: "hi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitEntry(context.Background(), tt.slug, tt.entry)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestScrapbookService_SubmitEntry_UnknownSlug(t *testing.T) {
	svc := newScrapbookService(galaStore())
	_, err := svc.SubmitEntry(context.Background(), "nope", domain.NewEntry{Name: "B", Message: "m"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScrapbookService_Generate(t *testing.T) {
	svc := newScrapbookService(galaStore())

	gen, err := svc.Generate(context.Background(), "gala", 0)
	require.NoError(t, err)
	assert.Equal(t, "Rose Garden Gala", gen.Scrapbook.Invitation.Title)
	assert.Len(t, gen.Scrapbook.FilteredEntries, 2)
	require.NotEmpty(t, gen.Document.Pages)
	assert.Equal(t, domain.PageKindCover, gen.Document.Pages[0].Kind)
}

func TestScrapbookService_Generate_SlugXorID(t *testing.T) {
	svc := newScrapbookService(galaStore())

	_, err := svc.Generate(context.Background(), "", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Generate(context.Background(), "gala", 7)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Generate(context.Background(), "", 7)
	assert.NoError(t, err)
}

func TestScrapbookService_Generate_UpstreamFailure(t *testing.T) {
	store := galaStore()
	store.failWith = domain.ErrUpstreamUnavailable
	svc := newScrapbookService(store)

	_, err := svc.Generate(context.Background(), "gala", 0)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestScrapbookService_RenderPDF(t *testing.T) {
	svc := newScrapbookService(galaStore())

	pdf, inv, err := svc.RenderPDF(context.Background(), "gala", 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), pdf)
	assert.Equal(t, "gala", inv.Slug)
}

func TestScrapbookService_AttachPDF(t *testing.T) {
	store := galaStore()
	svc := newScrapbookService(store)

	att, err := svc.AttachPDF(context.Background(), "gala", 0, []byte("%PDF"), "")
	require.NoError(t, err)
	assert.Equal(t, store.pdfURL, att.PDFURL)
	assert.Equal(t, 7, att.InvitationID)
	assert.Equal(t, "gala", att.InvitationSlug)
	assert.Equal(t, store.pdfURL, store.pdfURLSet[7])
}

func TestScrapbookService_AttachPDF_RequiresFile(t *testing.T) {
	svc := newScrapbookService(galaStore())
	_, err := svc.AttachPDF(context.Background(), "gala", 0, nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestScrapbookService_ListEntries(t *testing.T) {
	svc := newScrapbookService(galaStore())
	entries, err := svc.ListEntries(context.Background(), "gala")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
