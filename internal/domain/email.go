package domain

import "context"

// EmailMessage is a rendered email ready to send.
type EmailMessage struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer sends email. Implementations must be safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailTemplateRenderer renders a named template with data into subject,
// HTML body and text body.
type EmailTemplateRenderer interface {
	Render(name string, data any) (subject, html, text string, err error)
}

// InquiryEmailData is the payload for the inquiry notification template.
type InquiryEmailData struct {
	Name          string
	Email         string
	Phone         string
	PreferredLawn string
	DesiredDate   string
	GuestCount    int
	SubmittedAt   string
}
