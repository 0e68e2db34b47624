package domain

import (
	"context"
	"time"
)

// InquiryStatusNew is the status assigned to every fresh inquiry.
const InquiryStatusNew = "new"

// Inquiry is a venue booking inquiry submitted from the public site.
type Inquiry struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	PreferredLawn string    `json:"preferredLawn"`
	DesiredDate   string    `json:"desiredDate"`
	GuestCount    int       `json:"guestCount"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// InquiryRepository persists inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *Inquiry) error
	List(ctx context.Context, limit, offset int) ([]Inquiry, error)
	Count(ctx context.Context) (int, error)
}

// InquiryService handles inquiry intake and the admin listing.
type InquiryService interface {
	Submit(ctx context.Context, inquiry Inquiry) (*Inquiry, error)
	List(ctx context.Context, page, pageSize int) ([]Inquiry, int, error)
}
