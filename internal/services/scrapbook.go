package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"celebrationgarden/internal/domain"
)

// PDFRenderer renders an assembled document into PDF bytes.
type PDFRenderer interface {
	Render(inv domain.Invitation, doc domain.ScrapbookDocument) ([]byte, error)
}

// ScrapbookService is the scrapbook workflow: guest submission, ingestion,
// organization, document assembly and PDF handling.
type ScrapbookService struct {
	store           domain.ContentStore
	organizer       domain.ContentOrganizer
	renderer        PDFRenderer
	logger          *slog.Logger
	contextTimeout  time.Duration
	organizeTimeout time.Duration
}

// NewScrapbookService creates the scrapbook service. organizeTimeout bounds
// the model-assisted organization; contextTimeout bounds everything else.
func NewScrapbookService(
	store domain.ContentStore,
	organizer domain.ContentOrganizer,
	renderer PDFRenderer,
	logger *slog.Logger,
	contextTimeout, organizeTimeout time.Duration,
) *ScrapbookService {
	return &ScrapbookService{
		store:           store,
		organizer:       organizer,
		renderer:        renderer,
		logger:          logger,
		contextTimeout:  contextTimeout,
		organizeTimeout: organizeTimeout,
	}
}

// resolveInvitation fetches the invitation named by exactly one of slug/id.
func (s *ScrapbookService) resolveInvitation(ctx context.Context, slug string, id int) (*domain.Invitation, error) {
	switch {
	case slug != "" && id != 0:
		return nil, fmt.Errorf("both slug and id given: %w", domain.ErrInvalidInput)
	case slug != "":
		return s.store.GetInvitationBySlug(ctx, slug)
	case id != 0:
		return s.store.GetInvitationByID(ctx, id)
	default:
		return nil, fmt.Errorf("slug or id required: %w", domain.ErrInvalidInput)
	}
}

// SubmitEntry validates and persists a guest entry for the invitation with
// the given slug.
func (s *ScrapbookService) SubmitEntry(ctx context.Context, slug string, entry domain.NewEntry) (*domain.ScrapbookEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if entry.Name == "" || entry.Message == "" || slug == "" {
		return nil, fmt.Errorf("name, message and invitation slug are required: %w", domain.ErrInvalidInput)
	}

	inv, err := s.store.GetInvitationBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("resolve invitation: %w", err)
	}

	entry.InvitationID = inv.ID
	created, err := s.store.CreateEntry(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return created, nil
}

// ListEntries returns the entries for the invitation with the given slug.
func (s *ScrapbookService) ListEntries(ctx context.Context, slug string) ([]domain.ScrapbookEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	inv, err := s.store.GetInvitationBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("resolve invitation: %w", err)
	}
	entries, err := s.store.ListEntriesByInvitationID(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// ingest fetches the invitation and its entries.
func (s *ScrapbookService) ingest(ctx context.Context, slug string, id int) (*domain.Invitation, []domain.ScrapbookEntry, error) {
	inv, err := s.resolveInvitation(ctx, slug, id)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve invitation: %w", err)
	}
	entries, err := s.store.ListEntriesByInvitationID(ctx, inv.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list entries: %w", err)
	}
	return inv, entries, nil
}

// Generate ingests, organizes and assembles the scrapbook for one
// invitation. Organization degradation never surfaces as an error.
func (s *ScrapbookService) Generate(ctx context.Context, slug string, id int) (*domain.GeneratedScrapbook, error) {
	ctx, cancel := context.WithTimeout(ctx, s.organizeTimeout)
	defer cancel()

	inv, entries, err := s.ingest(ctx, slug, id)
	if err != nil {
		return nil, err
	}

	org, err := s.organizer.Organize(ctx, *inv, entries)
	if err != nil {
		return nil, fmt.Errorf("organize scrapbook: %w", err)
	}

	return &domain.GeneratedScrapbook{
		Scrapbook: *org,
		Document:  AssembleDocument(org),
	}, nil
}

// RenderPDF generates the scrapbook and renders it server-side.
func (s *ScrapbookService) RenderPDF(ctx context.Context, slug string, id int) ([]byte, *domain.Invitation, error) {
	gen, err := s.Generate(ctx, slug, id)
	if err != nil {
		return nil, nil, err
	}
	pdf, err := s.renderer.Render(gen.Scrapbook.Invitation, gen.Document)
	if err != nil {
		return nil, nil, fmt.Errorf("render pdf: %w", err)
	}
	inv := gen.Scrapbook.Invitation
	return pdf, &inv, nil
}

// AttachPDF uploads a finished scrapbook PDF to the media host and records
// its URL on the invitation.
func (s *ScrapbookService) AttachPDF(ctx context.Context, slug string, id int, pdf []byte, filename string) (*domain.AttachedPDF, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if len(pdf) == 0 {
		return nil, fmt.Errorf("pdf file is required: %w", domain.ErrInvalidInput)
	}

	inv, err := s.resolveInvitation(ctx, slug, id)
	if err != nil {
		return nil, fmt.Errorf("resolve invitation: %w", err)
	}

	if filename == "" {
		filename = fmt.Sprintf("scrapbook-%s.pdf", inv.Slug)
	}
	url, err := s.store.UploadPDF(ctx, filename, pdf)
	if err != nil {
		return nil, fmt.Errorf("upload pdf: %w", err)
	}
	if err := s.store.SetInvitationPDFURL(ctx, inv.ID, url); err != nil {
		return nil, fmt.Errorf("record pdf url: %w", err)
	}

	return &domain.AttachedPDF{
		PDFURL:         url,
		InvitationID:   inv.ID,
		InvitationSlug: inv.Slug,
	}, nil
}
