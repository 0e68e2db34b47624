package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"celebrationgarden/internal/domain"
)

// InvitationService exposes invitation reads for the public and admin
// surfaces.
type InvitationService struct {
	store          domain.ContentStore
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewInvitationService creates an invitation service.
func NewInvitationService(store domain.ContentStore, logger *slog.Logger, timeout time.Duration) *InvitationService {
	return &InvitationService{
		store:          store,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// GetBySlug returns one invitation by its public slug.
func (s *InvitationService) GetBySlug(ctx context.Context, slug string) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if slug == "" {
		return nil, fmt.Errorf("slug is required: %w", domain.ErrInvalidInput)
	}
	inv, err := s.store.GetInvitationBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return inv, nil
}

// List returns all invitations with their entry counts and expiry flags for
// the admin surface. A failed count leaves that summary at zero rather than
// failing the listing.
func (s *InvitationService) List(ctx context.Context) ([]domain.InvitationSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	invitations, err := s.store.ListInvitations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}

	today := s.now().UTC().Format("2006-01-02")
	out := make([]domain.InvitationSummary, 0, len(invitations))
	for _, inv := range invitations {
		summary := domain.InvitationSummary{
			Invitation: inv,
			IsExpired:  inv.EventDate != "" && inv.EventDate < today,
		}
		count, err := s.store.CountEntriesByInvitationID(ctx, inv.ID)
		if err != nil {
			s.logger.Warn("entry count failed", "invitation_id", inv.ID, "err", err)
		} else {
			summary.EntryCount = count
		}
		out = append(out, summary)
	}
	return out, nil
}
