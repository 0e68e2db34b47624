// Package email implements outbound mail for inquiry notifications.
package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"celebrationgarden/internal/domain"
)

// SESConfig configures the SES provider.
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// MailerConfig selects and configures a mail provider.
type MailerConfig struct {
	Provider    string // "ses" or "noop"
	FromAddress string
	FromName    string
	SES         SESConfig
}

// NewMailer returns the configured mailer. Unknown providers fall back to
// the noop mailer so a misconfigured environment never blocks requests.
func NewMailer(cfg MailerConfig, logger *slog.Logger) domain.Mailer {
	switch cfg.Provider {
	case "ses":
		return newSESMailer(cfg, logger)
	default:
		return &noopMailer{logger: logger}
	}
}

type sesMailer struct {
	client *ses.Client
	from   string
	logger *slog.Logger
}

func newSESMailer(cfg MailerConfig, logger *slog.Logger) *sesMailer {
	awsCfg := aws.Config{
		Region: cfg.SES.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.SES.AccessKeyID, cfg.SES.SecretAccessKey, ""),
	}
	from := cfg.FromAddress
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress)
	}
	return &sesMailer{
		client: ses.NewFromConfig(awsCfg),
		from:   from,
		logger: logger,
	}
}

func (m *sesMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	input := &ses.SendEmailInput{
		Source: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: msg.To,
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject)},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(msg.HTMLBody)},
				Text: &types.Content{Data: aws.String(msg.TextBody)},
			},
		},
	}
	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}

type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) Send(_ context.Context, msg domain.EmailMessage) error {
	m.logger.Info("email suppressed (noop mailer)", "to", msg.To, "subject", msg.Subject)
	return nil
}
