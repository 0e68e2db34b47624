package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"celebrationgarden/internal/domain"
)

// InquiryService handles venue inquiry intake and the admin listing.
type InquiryService struct {
	repo           domain.InquiryRepository
	mailer         domain.Mailer
	templates      domain.EmailTemplateRenderer
	notifyAddress  string
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewInquiryService creates an inquiry service. notifyAddress is the
// concierge inbox; when empty, no notification is sent.
func NewInquiryService(
	repo domain.InquiryRepository,
	mailer domain.Mailer,
	templates domain.EmailTemplateRenderer,
	notifyAddress string,
	logger *slog.Logger,
	timeout time.Duration,
) *InquiryService {
	return &InquiryService{
		repo:           repo,
		mailer:         mailer,
		templates:      templates,
		notifyAddress:  notifyAddress,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// Submit validates and stores a new inquiry, then notifies the concierge.
// Notification failure is logged and never fails the submission.
func (s *InquiryService) Submit(ctx context.Context, inquiry domain.Inquiry) (*domain.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateInquiry(inquiry); err != nil {
		return nil, err
	}

	inquiry.Status = domain.InquiryStatusNew
	inquiry.SubmittedAt = s.now().UTC()
	if err := s.repo.Create(ctx, &inquiry); err != nil {
		return nil, fmt.Errorf("store inquiry: %w", err)
	}

	s.notify(ctx, inquiry)
	return &inquiry, nil
}

// List returns inquiries newest first, with the total count for pagination.
func (s *InquiryService) List(ctx context.Context, page, pageSize int) ([]domain.Inquiry, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	offset := (page - 1) * pageSize
	inquiries, err := s.repo.List(ctx, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list inquiries: %w", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count inquiries: %w", err)
	}
	return inquiries, total, nil
}

func validateInquiry(inq domain.Inquiry) error {
	var missing []string
	if inq.Name == "" {
		missing = append(missing, "name")
	}
	if inq.Email == "" {
		missing = append(missing, "email")
	}
	if inq.Phone == "" {
		missing = append(missing, "phone")
	}
	if inq.PreferredLawn == "" {
		missing = append(missing, "preferred_lawn")
	}
	if inq.DesiredDate == "" {
		missing = append(missing, "desired_date")
	}
	if inq.GuestCount <= 0 {
		missing = append(missing, "guest_count")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing fields %s: %w", strings.Join(missing, ", "), domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(inq.Email); err != nil {
		return fmt.Errorf("invalid email address: %w", domain.ErrInvalidInput)
	}
	return nil
}

func (s *InquiryService) notify(ctx context.Context, inq domain.Inquiry) {
	if s.notifyAddress == "" {
		return
	}
	subject, html, text, err := s.templates.Render("inquiry", domain.InquiryEmailData{
		Name:          inq.Name,
		Email:         inq.Email,
		Phone:         inq.Phone,
		PreferredLawn: inq.PreferredLawn,
		DesiredDate:   inq.DesiredDate,
		GuestCount:    inq.GuestCount,
		SubmittedAt:   inq.SubmittedAt.Format(time.RFC3339),
	})
	if err != nil {
		s.logger.Error("render inquiry email failed", "err", err)
		return
	}
	err = s.mailer.Send(ctx, domain.EmailMessage{
		To:       []string{s.notifyAddress},
		Subject:  subject,
		HTMLBody: html,
		TextBody: text,
	})
	if err != nil {
		s.logger.Error("inquiry notification failed", "inquiry_id", inq.ID, "err", err)
	}
}
