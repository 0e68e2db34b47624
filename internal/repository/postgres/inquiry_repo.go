// Package postgres implements persistence for venue inquiries.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"celebrationgarden/internal/domain"
)

// InquiryRepository stores inquiries in the venue_inquiries table.
type InquiryRepository struct {
	db *sql.DB
}

// NewInquiryRepository creates an inquiry repository.
func NewInquiryRepository(db *sql.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// Create inserts a new inquiry and fills in its generated id.
func (r *InquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	query := `
		INSERT INTO venue_inquiries (name, email, phone, preferred_lawn, desired_date, guest_count, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		inquiry.Name,
		inquiry.Email,
		inquiry.Phone,
		inquiry.PreferredLawn,
		inquiry.DesiredDate,
		inquiry.GuestCount,
		inquiry.Status,
		inquiry.SubmittedAt,
	).Scan(&inquiry.ID)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

// List returns inquiries newest first.
func (r *InquiryRepository) List(ctx context.Context, limit, offset int) ([]domain.Inquiry, error) {
	query := `
		SELECT id, name, email, phone, preferred_lawn, desired_date, guest_count, status, submitted_at
		FROM venue_inquiries
		ORDER BY submitted_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var out []domain.Inquiry
	for rows.Next() {
		var inq domain.Inquiry
		var phone, lawn, date sql.NullString
		if err := rows.Scan(
			&inq.ID,
			&inq.Name,
			&inq.Email,
			&phone,
			&lawn,
			&date,
			&inq.GuestCount,
			&inq.Status,
			&inq.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inq.Phone = phone.String
		inq.PreferredLawn = lawn.String
		inq.DesiredDate = date.String
		out = append(out, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inquiries: %w", err)
	}
	return out, nil
}

// Count returns the total number of inquiries.
func (r *InquiryRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM venue_inquiries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count inquiries: %w", err)
	}
	return n, nil
}
