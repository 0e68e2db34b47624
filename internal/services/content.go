package services

import (
	"context"
	"log/slog"
	"time"

	"celebrationgarden/internal/domain"
)

// ContentService serves the merged landing-page content.
type ContentService struct {
	store          domain.ContentStore
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewContentService creates a content service.
func NewContentService(store domain.ContentStore, logger *slog.Logger, timeout time.Duration) *ContentService {
	return &ContentService{store: store, logger: logger, contextTimeout: timeout}
}

// HomePage merges live store content over the site defaults field by field.
// It never fails: when the store is unreachable the defaults stand alone.
func (s *ContentService) HomePage(ctx context.Context) (*domain.HomeContent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	merged := domain.SiteContentDefaults()

	live, err := s.store.GetHomePage(ctx)
	if err != nil {
		s.logger.Warn("home page fetch failed, serving defaults", "err", err)
		return &merged, nil
	}

	overlayString(&merged.HeroTitle, live.HeroTitle)
	overlayString(&merged.HeroSubtitle, live.HeroSubtitle)
	overlayString(&merged.HeroDescription, live.HeroDescription)
	overlayString(&merged.HeroImageURL, live.HeroImageURL)
	overlayString(&merged.AboutText, live.AboutText)
	overlayString(&merged.Address.Line1, live.Address.Line1)
	overlayString(&merged.Address.Line2, live.Address.Line2)
	overlayString(&merged.Address.Line3, live.Address.Line3)
	overlayString(&merged.Address.Country, live.Address.Country)
	overlayString(&merged.PhoneNumber, live.PhoneNumber)
	overlayString(&merged.WhatsappPhone, live.WhatsappPhone)
	overlayString(&merged.InstagramURL, live.InstagramURL)
	overlayString(&merged.FooterText, live.FooterText)
	overlayString(&merged.MetaTitle, live.MetaTitle)
	overlayString(&merged.MetaDescription, live.MetaDescription)
	if len(live.FAQs) > 0 {
		merged.FAQs = live.FAQs
		merged.FAQCategories = live.FAQCategories
	}
	return &merged, nil
}

func overlayString(dst *string, live string) {
	if live != "" {
		*dst = live
	}
}
